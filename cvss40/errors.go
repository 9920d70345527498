package cvss40

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedVector is returned by ParseVector when the input is
	// not a canonical CVSS v4.0 vector.
	ErrMalformedVector = errors.New("malformed CVSS v4.0 vector")

	// ErrOutOfBoundsScore is returned by Rating for a score outside [0, 10].
	ErrOutOfBoundsScore = errors.New("score out of bounds")
)

// ErrInvalidMetric is returned when an abbreviation is not a CVSS v4.0 metric.
type ErrInvalidMetric struct {
	Abv string
}

func (err *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("invalid CVSS v4.0 metric %q", err.Abv)
}

// ErrInvalidMetricValue is returned when a value is not legal for its metric.
type ErrInvalidMetricValue struct {
	Abv   string
	Value string
}

func (err *ErrInvalidMetricValue) Error() string {
	return fmt.Sprintf("invalid CVSS v4.0 value %q for metric %s", err.Value, err.Abv)
}
