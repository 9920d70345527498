// Package epss maps EPSS probabilities onto CVSS exploitability metrics.
package epss

const (
	ThresholdUnproven   = 0.05
	ThresholdPoC        = 0.20
	ThresholdFunctional = 0.50
)

// EPSSToExploitMaturity maps an EPSS score (0-1) to CVSS v3 Exploit Code Maturity (U, P, F, H).
func EPSSToExploitMaturity(score float64) string {
	switch {
	case score < 0:
		return "X"
	case score < ThresholdUnproven:
		return "U"
	case score < ThresholdPoC:
		return "P"
	case score < ThresholdFunctional:
		return "F"
	default:
		return "H"
	}
}

// EPSSToExploitMaturity40 maps an EPSS score (0-1) to the CVSS v4.0 Exploit Maturity (U, P, A).
// v4.0 has no Functional level: anything likely to be exploited is considered Attacked.
func EPSSToExploitMaturity40(score float64) string {
	switch {
	case score < 0:
		return "X"
	case score < ThresholdUnproven:
		return "U"
	case score < ThresholdFunctional:
		return "P"
	default:
		return "A"
	}
}
