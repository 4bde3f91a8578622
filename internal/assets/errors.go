package assets

import "fmt"

// ReadError reports a payload file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read asset %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// TemplateError reports markup that does not contain exactly one script placeholder.
type TemplateError struct {
	Path    string
	Matches int
}

func (e *TemplateError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("markup %s has no empty module script placeholder", e.Path)
	}
	return fmt.Sprintf("markup %s has %d script placeholders, expected exactly one", e.Path, e.Matches)
}
