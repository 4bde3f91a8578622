package util

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
)

// PrintPrettyJSON writes v to w as two-space indented JSON. A nil slice is
// written as [] rather than null; other nil values stay null.
func PrintPrettyJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && rv.IsNil() {
		data = []byte("[]")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
