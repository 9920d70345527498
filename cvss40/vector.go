// Package cvss40 implements the CVSS v4.0 vector codec and scoring
// system, as described in https://www.first.org/cvss/v4.0/specification-document.
package cvss40

import (
	"fmt"
	"strings"
)

// CVSS40 embeds all the metric values defined by FIRST CVSS
// v4.0. It is only valid when built by New or ParseVector.
type CVSS40 struct {
	values map[string]string
}

// New returns a CVSS v4.0 object with every Base metric set to its
// least severe impact (no impact at all, thus a score of 0.0) and
// every optional metric Not Defined.
func New() *CVSS40 {
	return &CVSS40{
		values: map[string]string{
			"AV": "N", "AC": "L", "AT": "N", "PR": "N", "UI": "N",
			"VC": "N", "VI": "N", "VA": "N", "SC": "N", "SI": "N", "SA": "N",
		},
	}
}

// ParseVector parses a CVSS v4.0 vector. Metrics must appear in the
// order of the FIRST CVSS v4.0 Table 23, each at most once, and every
// Base metric is required.
// Failures always match ErrMalformedVector with errors.Is.
func ParseVector(vector string) (*CVSS40, error) {
	pts := strings.Split(vector, "/")
	if pts[0] != prefix {
		return nil, fmt.Errorf("%w: expected prefix %s", ErrMalformedVector, prefix)
	}

	vec := &CVSS40{values: make(map[string]string, len(metrics))}
	last := -1
	for _, pt := range pts[1:] {
		abv, value, ok := strings.Cut(pt, ":")
		if !ok {
			return nil, fmt.Errorf("%w: invalid metric segment %q", ErrMalformedVector, pt)
		}
		i, ok := metricIndex[abv]
		if !ok {
			return nil, fmt.Errorf("%w: %w", ErrMalformedVector, &ErrInvalidMetric{Abv: abv})
		}
		if _, dup := vec.values[abv]; dup {
			return nil, fmt.Errorf("%w: metric %s defined twice", ErrMalformedVector, abv)
		}
		if i < last {
			return nil, fmt.Errorf("%w: metric %s out of order", ErrMalformedVector, abv)
		}
		if missing := firstMandatory(last+1, i); missing != "" {
			return nil, fmt.Errorf("%w: missing metric %s", ErrMalformedVector, missing)
		}
		if !metrics[i].accepts(value) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedVector, &ErrInvalidMetricValue{Abv: abv, Value: value})
		}
		vec.values[abv] = value
		last = i
	}
	if missing := firstMandatory(last+1, len(metrics)); missing != "" {
		return nil, fmt.Errorf("%w: missing metric %s", ErrMalformedVector, missing)
	}
	return vec, nil
}

// firstMandatory returns the first mandatory metric in metrics[from:to].
func firstMandatory(from, to int) string {
	for _, m := range metrics[from:to] {
		if m.mandatory {
			return m.abv
		}
	}
	return ""
}

// Vector returns the canonical vector string. Not Defined metrics
// are omitted.
func (cvss40 *CVSS40) Vector() string {
	var sb strings.Builder
	sb.WriteString(prefix)
	for _, m := range metrics {
		value := cvss40.get(m.abv)
		if value == notDefined {
			continue
		}
		sb.WriteString("/" + m.abv + ":" + value)
	}
	return sb.String()
}

// Get returns the value of the given metric abbreviation.
func (cvss40 *CVSS40) Get(abv string) (string, error) {
	if _, ok := metricIndex[abv]; !ok {
		return "", &ErrInvalidMetric{Abv: abv}
	}
	return cvss40.get(abv), nil
}

// Set sets the value of the given metric abbreviation.
func (cvss40 *CVSS40) Set(abv, value string) error {
	i, ok := metricIndex[abv]
	if !ok {
		return &ErrInvalidMetric{Abv: abv}
	}
	if !metrics[i].accepts(value) {
		return &ErrInvalidMetricValue{Abv: abv, Value: value}
	}
	cvss40.values[abv] = value
	return nil
}

// get assumes abv is in the catalog. Absent metrics are Not Defined.
func (cvss40 *CVSS40) get(abv string) string {
	if v, ok := cvss40.values[abv]; ok {
		return v
	}
	return notDefined
}
