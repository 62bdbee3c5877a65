package board

import (
	"errors"

	"mspro-labs/menuboard/internal/metrics"
)

// FetchError marks a failure to retrieve the source document.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "failed to fetch menu source: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err came from the source fetch.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

func outcomeOf(err error) string {
	if IsFetchError(err) {
		return metrics.OutcomeFetchError
	}
	return metrics.OutcomeError
}
