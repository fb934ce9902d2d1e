package apify

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the structured error body the platform returns alongside
// non-2xx responses.
type APIError struct {
	StatusCode int    `json:"-"`
	Type       string `json:"type"`
	Message    string `json:"message"`
}

func (me *APIError) Error() string {
	return fmt.Sprintf("apify: %s (%s, http %d)", me.Message, me.Type, me.StatusCode)
}

// IsCreditExhausted reports whether err means the account behind the current
// token has used up its platform credits and the caller should move to the
// next one.
func IsCreditExhausted(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == http.StatusPaymentRequired {
		return true
	}
	switch apiErr.Type {
	case "usage-hard-limit-exceeded", "monthly-usage-hard-limit-exceeded":
		return true
	}
	return false
}
