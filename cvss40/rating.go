package cvss40

import "math"

// Rating returns the qualitative severity rating of a CVSS v4.0 score.
func Rating(score float64) (string, error) {
	switch {
	case score < 0 || score > 10 || math.IsNaN(score):
		return "", ErrOutOfBoundsScore
	case score >= 9.0:
		return "CRITICAL", nil
	case score >= 7.0:
		return "HIGH", nil
	case score >= 4.0:
		return "MEDIUM", nil
	case score >= 0.1:
		return "LOW", nil
	}
	return "NONE", nil
}
