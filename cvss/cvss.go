package cvss

import (
	"strings"

	gocvss20 "github.com/pandatix/go-cvss/20"
	gocvss30 "github.com/pandatix/go-cvss/30"
	gocvss31 "github.com/pandatix/go-cvss/31"
	"golang.org/x/xerrors"

	"context-cvss/cvss40"
)

const (
	Version20 = "CVSS 2.0"
	Version30 = "CVSS 3.0"
	Version31 = "CVSS 3.1"
	Version40 = "CVSS 4.0"
)

// vector is what every supported CVSS version exposes to read,
// modify and serialize its metrics.
type vector interface {
	Get(abv string) (string, error)
	Set(abv, value string) error
	Vector() string
}

// GetCVSSVersion determines the CVSS version of a vector string and validates it.
// It could either be CVSS 2.0, 3.0, 3.1 or 4.0.
func GetCVSSVersion(vectorStr string) (string, error) {
	_, version, err := parseVector(vectorStr)
	return version, err
}

func parseVector(vectorStr string) (vector, string, error) {
	switch {
	case strings.HasPrefix(vectorStr, "CVSS:4.0"):
		vec, err := cvss40.ParseVector(vectorStr)
		if err != nil {
			return nil, "", xerrors.Errorf("invalid CVSS 4.0 vector: %w", err)
		}
		return vec, Version40, nil
	case strings.HasPrefix(vectorStr, "CVSS:3.1"):
		vec, err := gocvss31.ParseVector(vectorStr)
		if err != nil {
			return nil, "", xerrors.Errorf("invalid CVSS 3.1 vector: %w", err)
		}
		return vec, Version31, nil
	case strings.HasPrefix(vectorStr, "CVSS:3.0"):
		vec, err := gocvss30.ParseVector(vectorStr)
		if err != nil {
			return nil, "", xerrors.Errorf("invalid CVSS 3.0 vector: %w", err)
		}
		return vec, Version30, nil
	default:
		vec, err := gocvss20.ParseVector(vectorStr)
		if err != nil {
			return nil, "", xerrors.Errorf("unknown or invalid vector format: %w", err)
		}
		return vec, Version20, nil
	}
}

// CalculateScores returns the Base, Temporal and Environmental scores of a vector.
// CVSS 4.0 has a single score covering the metric groups the vector defines,
// so it is returned for all three.
func CalculateScores(vectorStr string) (float64, float64, float64, error) {
	vec, _, err := parseVector(vectorStr)
	if err != nil {
		return 0, 0, 0, err
	}

	switch v := vec.(type) {
	case *cvss40.CVSS40:
		score := v.Score()
		return score, score, score, nil
	case *gocvss31.CVSS31:
		return v.BaseScore(), v.TemporalScore(), v.EnvironmentalScore(), nil
	case *gocvss30.CVSS30:
		return v.BaseScore(), v.TemporalScore(), v.EnvironmentalScore(), nil
	case *gocvss20.CVSS20:
		return v.BaseScore(), v.TemporalScore(), v.EnvironmentalScore(), nil
	default:
		return 0, 0, 0, xerrors.Errorf("unsupported CVSS vector type %T", vec)
	}
}

// CalculateSeverityRating returns the severity rating of a CVSS score,
// or "UNKNOWN" when the score is out of [0, 10].
func CalculateSeverityRating(score float64) string {
	rating, err := cvss40.Rating(score)
	if err != nil {
		return "UNKNOWN"
	}
	return rating
}
