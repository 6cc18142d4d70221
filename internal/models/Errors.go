package models

import (
	"errors"
	"fmt"
)

// ErrFetchTimeout is returned when the forecast fan-out does not finish in time.
var ErrFetchTimeout = errors.New("forecast fetch timed out")

// ConfigError reports a configuration problem detected before any network call.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// UpstreamError is returned when a forecast provider answers with a non-success status.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Status     string
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Request failed: %d %s - %s", e.StatusCode, statusText(e.Status, e.StatusCode), e.Body)
}

// DeliveryError is returned when the messaging provider rejects a message.
type DeliveryError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("Telegram error: %d %s - %s", e.StatusCode, statusText(e.Status, e.StatusCode), e.Body)
}

// statusText strips the numeric prefix net/http puts into Response.Status.
func statusText(status string, code int) string {
	prefix := fmt.Sprintf("%d ", code)
	if len(status) > len(prefix) && status[:len(prefix)] == prefix {
		return status[len(prefix):]
	}
	return status
}
