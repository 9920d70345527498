package cvss40

import "github.com/samber/lo"

// Nomenclature returns which metric groups the vector defines on top
// of the Base ones: "CVSS-B", "CVSS-BT", "CVSS-BE" or "CVSS-BTE".
func (cvss40 *CVSS40) Nomenclature() string {
	isDefined := func(abv string) bool { return cvss40.get(abv) != notDefined }

	nomenclature := "CVSS-B"
	if lo.SomeBy(threatMetrics, isDefined) {
		nomenclature += "T"
	}
	if lo.SomeBy(environmentalMetrics, isDefined) {
		nomenclature += "E"
	}
	return nomenclature
}
