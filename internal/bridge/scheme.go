package bridge

import (
	"fmt"
	"net/http"

	"github.com/pterm/pterm"
)

// Scheme is the custom URL scheme whose fetch requests are answered natively.
const Scheme = "webshell"

// SchemeRequest is a script fetch addressed to Scheme. Body is the raw text body.
type SchemeRequest struct {
	URL    string
	Method string
	Body   string
}

// SchemeResponse is the text answer returned to the script's fetch.
type SchemeResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        string `json:"body"`
}

// SchemeHandler answers requests made to Scheme.
type SchemeHandler func(req SchemeRequest) (SchemeResponse, error)

// HandleScheme installs the handler for Scheme requests. Only one handler may be set.
func (b *Bridge) HandleScheme(handler SchemeHandler) error {
	if handler == nil {
		return fmt.Errorf("scheme handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sealed {
		return ErrSealed
	}
	if b.scheme != nil {
		return &DuplicateBindingError{Name: Scheme + "://"}
	}
	b.scheme = handler
	return nil
}

// HasScheme reports whether a scheme handler is installed.
func (b *Bridge) HasScheme() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.scheme != nil
}

// ServeScheme answers req with the installed handler. Requests without a
// handler and handler failures, panics included, become error responses
// instead of rejections, the way a failed network request would.
func (b *Bridge) ServeScheme(req SchemeRequest) (res SchemeResponse) {
	b.mu.RLock()
	handler := b.scheme
	b.mu.RUnlock()

	if handler == nil {
		return textResponse(http.StatusNotFound, fmt.Sprintf("no handler for %s", req.URL))
	}

	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Printf("Scheme handler for %s panicked: %v\n", req.URL, r)
			res = textResponse(http.StatusInternalServerError, fmt.Sprintf("scheme handler failed: %v", r))
		}
	}()

	res, err := handler(req)
	if err != nil {
		return textResponse(http.StatusInternalServerError, err.Error())
	}
	if res.Status == 0 {
		res.Status = http.StatusOK
	}
	if res.ContentType == "" {
		res.ContentType = "text/plain; charset=utf-8"
	}
	return res
}

func textResponse(status int, body string) SchemeResponse {
	return SchemeResponse{Status: status, ContentType: "text/plain; charset=utf-8", Body: body}
}
