package devserver

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	readyAttempts = 40
	readyDelay    = 250 * time.Millisecond
)

// WaitReady polls address until it answers an HTTP request. Any response,
// whatever its status, counts as ready.
func WaitReady(ctx context.Context, address string) error {
	return waitReady(ctx, address, readyAttempts, readyDelay)
}

func waitReady(ctx context.Context, address string, maxAttempts int, delay time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
		if err != nil {
			return fmt.Errorf("invalid dev server address: %w", err)
		}
		resp, err := client.Do(req)
		if err == nil {
			resp.Body.Close()
			return nil
		}

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("dev server at %s not reachable after %d attempts", address, maxAttempts)
}
