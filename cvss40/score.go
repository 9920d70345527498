package cvss40

import (
	"math"

	"github.com/samber/lo"
)

var impactMetrics = []string{"VC", "VI", "VA", "SC", "SI", "SA"}

// eq3eq6Next lists, for each reachable (EQ3, EQ6) pair, the pairs of
// the next lower MacroVectors. When there are several, the highest
// scoring one is used. (2, 1) has no lower pair.
var eq3eq6Next = map[[2]int][][2]int{
	{0, 0}: {{1, 0}, {0, 1}},
	{0, 1}: {{1, 1}},
	{1, 0}: {{1, 1}},
	{1, 1}: {{2, 1}},
}

// Maximum level of each EQ. EQ3 and EQ6 step together through
// eq3eq6Next and are left at 0.
var maxLevels = [6]int{2, 1, 0, 2, 2, 0}

// Score returns the CVSS v4.0 score, in [0.0, 10.0].
func (cvss40 *CVSS40) Score() float64 {
	// No impact on the vulnerable nor the subsequent system means no risk.
	if lo.EveryBy(impactMetrics, func(abv string) bool { return cvss40.effective(abv) == "N" }) {
		return 0.0
	}

	mv := cvss40.macroVector()
	eqsv := lookupMV(mv)

	// Compute the next lower MacroVectors. The lower the EQ level,
	// the more severe, so the next lower one is level+1.
	lower := 0
	msd := func(eq int) float64 {
		if mv[eq] >= maxLevels[eq] {
			return 0
		}
		lower++
		next := mv
		next[eq]++
		return math.Abs(lookupMV(next) - eqsv)
	}
	eq1msd := msd(0)
	eq2msd := msd(1)
	eq4msd := msd(3)
	eq5msd := msd(4)

	// EQ3 and EQ6 are linked: stepping them separately could yield an
	// unreachable MacroVector such as EQ3=2 and EQ6=0.
	eq3eq6msd := 0.0
	if nexts, ok := eq3eq6Next[[2]int{mv[2], mv[5]}]; ok {
		nlm := math.Inf(-1)
		for _, pair := range nexts {
			next := mv
			next[2], next[5] = pair[0], pair[1]
			nlm = math.Max(nlm, lookupMV(next))
		}
		eq3eq6msd = math.Abs(nlm - eqsv)
		lower++
	}

	dst := cvss40.severityDistances(mv)

	// Proportion of the distance to the highest severity vector,
	// applied to the maximal scoring difference.
	eq1msd *= dst.eq1 / (depthEQ1[mv[0]] + 1)
	eq2msd *= dst.eq2 / (depthEQ2[mv[1]] + 1)
	eq3eq6msd *= dst.eq3eq6 / (depthEQ3EQ6[mv[2]][mv[5]] + 1)
	eq4msd *= dst.eq4 / (depthEQ4[mv[3]] + 1)
	eq5msd *= dst.eq5 / (depthEQ5[mv[4]] + 1)

	mean := 0.0
	if lower != 0 {
		mean = (eq1msd + eq2msd + eq3eq6msd + eq4msd + eq5msd) / float64(lower)
	}
	return roundup(eqsv - mean)
}

type distances struct {
	eq1, eq2, eq3eq6, eq4, eq5 float64
}

// severityDistances finds the first highest severity vector of mv from
// which no metric of the vector is more severe, and returns the summed
// severity distances to it per EQ.
// EQ5 distance is always 0 as it involves a single metric.
func (cvss40 *CVSS40) severityDistances(mv macroVector) distances {
	ev := map[string]string{}
	for abv := range severityIndex {
		ev[abv] = cvss40.effective(abv)
	}
	d := func(abv string, mx partial) int {
		return severityDistance(abv, ev[abv], mx[abv])
	}

	for _, eq1mx := range maxEQ1[mv[0]] {
		for _, eq2mx := range maxEQ2[mv[1]] {
			for _, eq3eq6mx := range maxEQ3EQ6[mv[2]][mv[5]] {
				for _, eq4mx := range maxEQ4[mv[3]] {
					av, pr, ui := d("AV", eq1mx), d("PR", eq1mx), d("UI", eq1mx)
					ac, at := d("AC", eq2mx), d("AT", eq2mx)
					vc, vi, va := d("VC", eq3eq6mx), d("VI", eq3eq6mx), d("VA", eq3eq6mx)
					cr, ir, ar := d("CR", eq3eq6mx), d("IR", eq3eq6mx), d("AR", eq3eq6mx)
					sc, si, sa := d("SC", eq4mx), d("SI", eq4mx), d("SA", eq4mx)

					all := []int{av, pr, ui, ac, at, vc, vi, va, cr, ir, ar, sc, si, sa}
					if lo.SomeBy(all, func(dst int) bool { return dst < 0 }) {
						continue
					}
					return distances{
						eq1:    float64(av + pr + ui),
						eq2:    float64(ac + at),
						eq3eq6: float64(vc + vi + va + cr + ir + ar),
						eq4:    float64(sc + si + sa),
					}
				}
			}
		}
	}
	return distances{}
}

// severityDistance is how many severity levels value is below mx.
func severityDistance(abv, value, mx string) int {
	idx := severityIndex[abv]
	return lo.IndexOf(idx, value) - lo.IndexOf(idx, mx)
}

// lookupMV panics on an unreachable MacroVector, which would be a
// bug in the classification.
func lookupMV(mv macroVector) float64 {
	s, ok := macroVectors[mv.String()]
	if !ok {
		panic("cvss40: unreachable MacroVector " + mv.String())
	}
	return s
}

func roundup(score float64) float64 {
	return math.Round(score*10) / 10
}
