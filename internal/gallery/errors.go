package gallery

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrInvalidFile is returned when an upload fails type or size checks.
var ErrInvalidFile = errors.New("invalid image file")

// ErrMalformedResponse is returned when a remote store answers with a payload
// that cannot be decoded or lacks required fields.
var ErrMalformedResponse = errors.New("malformed response")

// ConfigError reports required configuration that is absent.
type ConfigError struct {
	Provider string
	Missing  []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: missing configuration %s", e.Provider, strings.Join(e.Missing, ", "))
}

// StatusError is a non-2xx answer from a remote endpoint.
type StatusError struct {
	Endpoint string
	Code     int
	Status   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP error %s", e.Endpoint, e.Status)
}

// checkRequired returns a ConfigError naming every empty value, or nil.
func checkRequired(provider string, values map[string]string) error {
	var missing []string
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ConfigError{Provider: provider, Missing: missing}
}
