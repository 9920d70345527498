// In CVSS 3.0/3.1 and 4.0, Threat/Temporal and Environmental metrics can be applied to the base vector.
// By modifying the base vector with these contextual metrics, we can compute a contextual score.
// If you're not familiar with contextual metrics like Environmental Metrics
// refer to: https://www.first.org/cvss/v3-1/specification-document#Environmental-Metrics
// and https://www.first.org/cvss/v4.0/specification-document#Environmental-Metrics

package cvss

import (
	"strings"

	"github.com/aquasecurity/trivy/pkg/log"
	"golang.org/x/xerrors"
)

// MetricsOptions defines the values to apply to the vector.
// Empty values are left untouched. Options a CVSS version does not
// define (e.g. RL for 4.0, MVC for 3.1) are ignored for that version.
type MetricsOptions struct {
	E, RL, RC                         string
	CR, IR, AR                        string
	MAV, MAC, MPR, MUI, MC, MI, MA    string
	MAT, MVC, MVI, MVA, MSC, MSI, MSA string
	Smart                             bool
}

// versionMetrics lists the contextual metrics of each version, in vector order.
var versionMetrics = map[string][]string{
	Version30: {"E", "RL", "RC", "CR", "IR", "AR", "MAV", "MAC", "MPR", "MUI", "MC", "MI", "MA"},
	Version31: {"E", "RL", "RC", "CR", "IR", "AR", "MAV", "MAC", "MPR", "MUI", "MC", "MI", "MA"},
	Version40: {"E", "CR", "IR", "AR", "MAV", "MAC", "MAT", "MPR", "MUI", "MVC", "MVI", "MVA", "MSC", "MSI", "MSA"},
}

// severityWeights defines the hierarchy of severity for Smart Clamping,
// the higher the more severe.
var severityWeights = map[string]map[string]map[string]int{
	Version30: severityWeights3,
	Version31: severityWeights3,
	Version40: {
		"AV": {"N": 4, "A": 3, "L": 2, "P": 1},
		"AC": {"L": 2, "H": 1},
		"AT": {"N": 2, "P": 1},
		"PR": {"N": 3, "L": 2, "H": 1},
		"UI": {"N": 3, "P": 2, "A": 1},
		"VC": {"H": 3, "L": 2, "N": 1},
		"VI": {"H": 3, "L": 2, "N": 1},
		"VA": {"H": 3, "L": 2, "N": 1},
		"SC": {"H": 3, "L": 2, "N": 1},
		"SI": {"S": 4, "H": 3, "L": 2, "N": 1},
		"SA": {"S": 4, "H": 3, "L": 2, "N": 1},
	},
}

var severityWeights3 = map[string]map[string]int{
	"AV": {"N": 4, "A": 3, "L": 2, "P": 1},
	"AC": {"L": 2, "H": 1},
	"PR": {"N": 3, "L": 2, "H": 1},
	"UI": {"N": 2, "R": 1},
	"C":  {"H": 3, "L": 2, "N": 1},
	"I":  {"H": 3, "L": 2, "N": 1},
	"A":  {"H": 3, "L": 2, "N": 1},
}

var envToBaseMap = map[string]map[string]string{
	Version30: envToBaseMap3,
	Version31: envToBaseMap3,
	Version40: {
		"MAV": "AV", "MAC": "AC", "MAT": "AT", "MPR": "PR", "MUI": "UI",
		"MVC": "VC", "MVI": "VI", "MVA": "VA",
		"MSC": "SC", "MSI": "SI", "MSA": "SA",
	},
}

var envToBaseMap3 = map[string]string{
	"MAV": "AV", "MAC": "AC", "MPR": "PR", "MUI": "UI",
	"MC": "C", "MI": "I", "MA": "A",
}

func (o *MetricsOptions) field(abv string) *string {
	switch abv {
	case "E":
		return &o.E
	case "RL":
		return &o.RL
	case "RC":
		return &o.RC
	case "CR":
		return &o.CR
	case "IR":
		return &o.IR
	case "AR":
		return &o.AR
	case "MAV":
		return &o.MAV
	case "MAC":
		return &o.MAC
	case "MAT":
		return &o.MAT
	case "MPR":
		return &o.MPR
	case "MUI":
		return &o.MUI
	case "MC":
		return &o.MC
	case "MI":
		return &o.MI
	case "MA":
		return &o.MA
	case "MVC":
		return &o.MVC
	case "MVI":
		return &o.MVI
	case "MVA":
		return &o.MVA
	case "MSC":
		return &o.MSC
	case "MSI":
		return &o.MSI
	case "MSA":
		return &o.MSA
	}
	return nil
}

// Get returns the option value of a contextual metric abbreviation, or "" if it is not set or unknown.
func (o *MetricsOptions) Get(abv string) string {
	if f := o.field(abv); f != nil {
		return *f
	}
	return ""
}

// Set sets the option value of a contextual metric abbreviation (e.g. "MAV").
func (o *MetricsOptions) Set(abv, value string) error {
	f := o.field(strings.ToUpper(abv))
	if f == nil {
		return xerrors.Errorf("unknown contextual metric %q", abv)
	}
	*f = value
	return nil
}

// ApplyMetrics takes a base vector and applies the given options.
// CVSS 2.0 vectors are returned as is.
func ApplyMetrics(baseVectorStr string, opts MetricsOptions) (string, error) {
	vec, version, err := parseVector(baseVectorStr)
	if err != nil {
		return "", err
	}
	keys, ok := versionMetrics[version]
	if !ok {
		return baseVectorStr, nil
	}

	logger := log.WithPrefix("cvss")
	for _, key := range keys {
		val := opts.Get(key)
		if val == "" {
			continue
		}
		val = strings.ToUpper(val)
		if !shouldApplyMetric(vec, version, key, val, opts.Smart) {
			logger.Debug("Skipping modified metric more severe than its base metric",
				"vector", baseVectorStr, "metric", key, "value", val)
			continue
		}
		if err := vec.Set(key, val); err != nil {
			return "", xerrors.Errorf("unable to apply %s:%s to %s: %w", key, val, baseVectorStr, err)
		}
	}
	return vec.Vector(), nil
}

// shouldApplyMetric checks if we should apply the modified metric based on "Smart" mode.
// For example, we don't want to apply a Modified Availability of "Low" if the Base Availability is "None".
func shouldApplyMetric(vec vector, version, metricKey, metricVal string, smart bool) bool {
	if metricVal == "X" || !smart {
		return true
	}

	// Requirements and threat metrics reflect the context and are never
	// suppressed, only Modified Base metrics are.
	baseKey, hasBase := envToBaseMap[version][metricKey]
	if !hasBase {
		return true
	}
	weightMap := severityWeights[version][baseKey]
	baseVal, err := vec.Get(baseKey)
	if err != nil {
		return true
	}

	baseWeight, baseOk := weightMap[baseVal]
	modWeight, modOk := weightMap[metricVal]
	// A Modified metric more severe than the Base one makes the vulnerability
	// "worse" than the code allows. We skip it to clamp the score.
	return !(baseOk && modOk && modWeight > baseWeight)
}
