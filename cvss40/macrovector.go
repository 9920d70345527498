package cvss40

// effective returns the value used for scoring: the Modified metric
// when defined, otherwise the Base one. CR, IR and AR default to High
// and E defaults to Attacked.
func (cvss40 *CVSS40) effective(abv string) string {
	switch abv {
	case "AV", "AC", "AT", "PR", "UI", "VC", "VI", "VA", "SC", "SI", "SA":
		if v := cvss40.get("M" + abv); v != notDefined {
			return v
		}
		return cvss40.get(abv)
	}
	v := cvss40.get(abv)
	if v != notDefined {
		return v
	}
	switch abv {
	case "CR", "IR", "AR":
		return "H"
	case "E":
		return "A"
	}
	return v
}

// macroVector holds the six EQ levels, in EQ1..EQ6 order.
type macroVector [6]int

func (mv macroVector) String() string {
	b := make([]byte, len(mv))
	for i, eq := range mv {
		b[i] = byte('0' + eq)
	}
	return string(b)
}

// MacroVector returns the six digits equivalence classes the vector
// belongs to, e.g. "001100".
func (cvss40 *CVSS40) MacroVector() string {
	return cvss40.macroVector().String()
}

func (cvss40 *CVSS40) macroVector() macroVector {
	ev := cvss40.effective
	av, pr, ui := ev("AV"), ev("PR"), ev("UI")
	vc, vi, va := ev("VC"), ev("VI"), ev("VA")
	sc, si, sa := ev("SC"), ev("SI"), ev("SA")

	var mv macroVector

	// EQ1
	switch {
	case av == "N" && pr == "N" && ui == "N":
		mv[0] = 0
	case av == "P" || !(av == "N" || pr == "N" || ui == "N"):
		mv[0] = 2
	default:
		mv[0] = 1
	}

	// EQ2
	if !(ev("AC") == "L" && ev("AT") == "N") {
		mv[1] = 1
	}

	// EQ3
	switch {
	case vc == "H" && vi == "H":
		mv[2] = 0
	case vc == "H" || vi == "H" || va == "H":
		mv[2] = 1
	default:
		mv[2] = 2
	}

	// EQ4
	switch {
	case si == "S" || sa == "S":
		mv[3] = 0
	case sc == "H" || si == "H" || sa == "H":
		mv[3] = 1
	default:
		mv[3] = 2
	}

	// EQ5
	switch ev("E") {
	case "P":
		mv[4] = 1
	case "U":
		mv[4] = 2
	}

	// EQ6
	crh := ev("CR") == "H"
	irh := ev("IR") == "H"
	arh := ev("AR") == "H"
	if !((crh && vc == "H") || (irh && vi == "H") || (arh && va == "H")) {
		mv[5] = 1
	}

	return mv
}
