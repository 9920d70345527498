package cvss40

import "github.com/samber/lo"

// notDefined is the value of an optional metric that was not provided.
const notDefined = "X"

const prefix = "CVSS:4.0"

type metric struct {
	abv       string
	values    []string
	mandatory bool
}

// metrics is the catalog of CVSS v4.0 metrics, in the order of
// the FIRST CVSS v4.0 Table 23. Vectors are parsed and serialized
// in this order.
var metrics = []metric{
	// Base
	{abv: "AV", values: []string{"N", "A", "L", "P"}, mandatory: true},
	{abv: "AC", values: []string{"L", "H"}, mandatory: true},
	{abv: "AT", values: []string{"N", "P"}, mandatory: true},
	{abv: "PR", values: []string{"N", "L", "H"}, mandatory: true},
	{abv: "UI", values: []string{"N", "P", "A"}, mandatory: true},
	{abv: "VC", values: []string{"H", "L", "N"}, mandatory: true},
	{abv: "VI", values: []string{"H", "L", "N"}, mandatory: true},
	{abv: "VA", values: []string{"H", "L", "N"}, mandatory: true},
	{abv: "SC", values: []string{"H", "L", "N"}, mandatory: true},
	{abv: "SI", values: []string{"H", "L", "N"}, mandatory: true},
	{abv: "SA", values: []string{"H", "L", "N"}, mandatory: true},
	// Threat
	{abv: "E", values: []string{"X", "A", "P", "U"}},
	// Environmental
	{abv: "CR", values: []string{"X", "H", "M", "L"}},
	{abv: "IR", values: []string{"X", "H", "M", "L"}},
	{abv: "AR", values: []string{"X", "H", "M", "L"}},
	{abv: "MAV", values: []string{"X", "N", "A", "L", "P"}},
	{abv: "MAC", values: []string{"X", "L", "H"}},
	{abv: "MAT", values: []string{"X", "N", "P"}},
	{abv: "MPR", values: []string{"X", "N", "L", "H"}},
	{abv: "MUI", values: []string{"X", "N", "P", "A"}},
	{abv: "MVC", values: []string{"X", "H", "L", "N"}},
	{abv: "MVI", values: []string{"X", "H", "L", "N"}},
	{abv: "MVA", values: []string{"X", "H", "L", "N"}},
	{abv: "MSC", values: []string{"X", "H", "L", "N"}},
	{abv: "MSI", values: []string{"X", "S", "H", "L", "N"}},
	{abv: "MSA", values: []string{"X", "S", "H", "L", "N"}},
	// Supplemental
	{abv: "S", values: []string{"X", "N", "P"}},
	{abv: "AU", values: []string{"X", "N", "Y"}},
	{abv: "R", values: []string{"X", "A", "U", "I"}},
	{abv: "V", values: []string{"X", "D", "C"}},
	{abv: "RE", values: []string{"X", "L", "M", "H"}},
	{abv: "U", values: []string{"X", "Clear", "Green", "Amber", "Red"}},
}

// metricIndex maps an abbreviation to its position in metrics.
var metricIndex = func() map[string]int {
	idx := make(map[string]int, len(metrics))
	for i, m := range metrics {
		idx[m.abv] = i
	}
	return idx
}()

var threatMetrics = []string{"E"}

var environmentalMetrics = []string{
	"CR", "IR", "AR",
	"MAV", "MAC", "MAT", "MPR", "MUI",
	"MVC", "MVI", "MVA", "MSC", "MSI", "MSA",
}

func (m metric) accepts(value string) bool {
	return lo.Contains(m.values, value)
}
