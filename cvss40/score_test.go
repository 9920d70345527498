package cvss40

import (
	"testing"

	gocvss40 "github.com/pandatix/go-cvss/40"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scoreTests = []struct {
	name         string
	vector       string
	score        float64
	nomenclature string
	// go-cvss decides the no-impact case from the Base values only.
	refDiffers bool
}{
	{"full-impact", "CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H", 10.0, "CVSS-B", false},
	{"no-impact", "CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:N/VI:N/VA:N/SC:N/SI:N/SA:N", 0.0, "CVSS-B", false},
	{"full-system-no-subsequent", "CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:N/SI:N/SA:N", 9.3, "CVSS-B", false},
	{"no-system-full-subsequent", "CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:N/VI:N/VA:N/SC:H/SI:H/SA:H", 7.9, "CVSS-B", false},
	{"with-threat", "CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H/E:U", 9.1, "CVSS-BT", false},
	{"with-environmental", "CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H/MVI:L/MSA:S", 9.8, "CVSS-BE", false},
	{"smallest", "CVSS:4.0/AV:P/AC:H/AT:P/PR:H/UI:A/VC:L/VI:N/VA:N/SC:N/SI:N/SA:N", 1.0, "CVSS-B", false},
	{"random-base", "CVSS:4.0/AV:L/AC:L/AT:N/PR:L/UI:P/VC:N/VI:H/VA:H/SC:N/SI:L/SA:L", 5.2, "CVSS-B", false},
	{"random-all-groups", "CVSS:4.0/AV:L/AC:L/AT:N/PR:L/UI:P/VC:N/VI:H/VA:H/SC:N/SI:L/SA:L/E:P/CR:H/IR:M/AR:H/MAV:A/MAT:P/MPR:N/MVI:H/MVA:N/MSI:H/MSA:N/S:N/V:C/U:Amber", 4.7, "CVSS-BTE", false},
	{"eq3eq6-depth", "CVSS:4.0/AV:N/AC:H/AT:N/PR:H/UI:N/VC:N/VI:N/VA:H/SC:H/SI:H/SA:H/CR:L/IR:L/AR:L", 5.8, "CVSS-BE", false},
	{"modified-to-no-impact", "CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H/MVC:N/MVI:N/MVA:N/MSC:N/MSI:N/MSA:N", 0.0, "CVSS-BE", true},
	{"modified-from-no-impact", "CVSS:4.0/AV:P/AC:L/AT:P/PR:N/UI:N/VC:N/VI:N/VA:N/SC:N/SI:N/SA:N/MAT:P/MSA:S/AU:Y", 4.1, "CVSS-BE", true},
}

func TestScore(t *testing.T) {
	for _, tt := range scoreTests {
		t.Run(tt.name, func(t *testing.T) {
			vec, err := ParseVector(tt.vector)
			require.NoError(t, err)

			assert.Equal(t, tt.score, vec.Score())
			assert.Equal(t, tt.nomenclature, vec.Nomenclature())

			// Pure: a second call gives the same results.
			assert.Equal(t, tt.score, vec.Score())
			assert.Equal(t, tt.nomenclature, vec.Nomenclature())
		})
	}
}

func TestScoreMatchesGoCVSS(t *testing.T) {
	vectors := []string{
		"CVSS:4.0/AV:N/AC:L/AT:N/PR:H/UI:N/VC:L/VI:L/VA:N/SC:N/SI:N/SA:N",
		"CVSS:4.0/AV:A/AC:H/AT:P/PR:L/UI:P/VC:H/VI:H/VA:H/SC:L/SI:L/SA:L/E:P",
		"CVSS:4.0/AV:L/AC:H/AT:N/PR:N/UI:A/VC:N/VI:N/VA:L/SC:H/SI:H/SA:H/CR:H/IR:H/AR:M/MAV:N/MAC:L/MAT:P/MPR:L/MUI:A/MVC:N/MVI:H/MVA:L/MSC:L/MSI:S/MSA:H",
		"CVSS:4.0/AV:P/AC:H/AT:P/PR:L/UI:P/VC:H/VI:H/VA:H/SC:L/SI:L/SA:L/E:A/S:P/AU:Y/R:A/V:D/RE:L/U:Red",
		"CVSS:4.0/AV:N/AC:L/AT:N/PR:H/UI:N/VC:L/VI:L/VA:N/SC:N/SI:N/SA:N/E:U/CR:L/IR:X/AR:L/MAV:A/MAC:H/MAT:N/MPR:N/MUI:P/MVC:X/MVI:N/MVA:H/MSC:N/MSI:L/MSA:S/S:N/AU:N/R:I/V:C/RE:H/U:Green",
	}
	for _, tt := range scoreTests {
		if !tt.refDiffers {
			vectors = append(vectors, tt.vector)
		}
	}

	for _, vector := range vectors {
		t.Run(vector, func(t *testing.T) {
			vec, err := ParseVector(vector)
			require.NoError(t, err)
			ref, err := gocvss40.ParseVector(vector)
			require.NoError(t, err)

			assert.Equal(t, ref.Score(), vec.Score())
			assert.Equal(t, ref.Nomenclature(), vec.Nomenclature())
		})
	}
}

func TestScoreNoImpactUsesEffectiveValues(t *testing.T) {
	vec, err := ParseVector("CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:N/VI:N/VA:N/SC:N/SI:N/SA:N")
	require.NoError(t, err)
	assert.Equal(t, 0.0, vec.Score())

	require.NoError(t, vec.Set("MVC", "H"))
	assert.Greater(t, vec.Score(), 0.0)

	require.NoError(t, vec.Set("MVC", "N"))
	assert.Equal(t, 0.0, vec.Score())

	require.NoError(t, vec.Set("VA", "H"))
	require.NoError(t, vec.Set("MVA", "N"))
	assert.Equal(t, 0.0, vec.Score())
}

func TestMaxLevels(t *testing.T) {
	var want [6]int
	for key := range macroVectors {
		for eq, c := range key {
			if eq == 2 || eq == 5 {
				continue
			}
			want[eq] = max(want[eq], int(c-'0'))
		}
	}
	assert.Equal(t, want, maxLevels)
}

func TestScoreMutation(t *testing.T) {
	vec := New()
	assert.Equal(t, 0.0, vec.Score())

	for abv, value := range map[string]string{
		"VC": "H", "VI": "H", "VA": "H", "SC": "H", "SI": "H", "SA": "H",
	} {
		require.NoError(t, vec.Set(abv, value))
	}
	assert.Equal(t, 10.0, vec.Score())

	require.NoError(t, vec.Set("E", "U"))
	assert.Equal(t, 9.1, vec.Score())
	assert.Equal(t, "CVSS-BT", vec.Nomenclature())
}

// Walks every Base metric combination, under each threat state, and
// checks the score is bounded and zero exactly when nothing is impacted.
func TestScoreBounds(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive walk")
	}

	base := metrics[:11]
	values := make([]string, len(base))
	var walk func(i int)
	walk = func(i int) {
		if i == len(base) {
			for _, e := range []string{"X", "P", "U"} {
				vec := &CVSS40{values: map[string]string{"E": e}}
				noImpact := true
				for j, m := range base {
					vec.values[m.abv] = values[j]
					if j >= 5 && values[j] != "N" {
						noImpact = false
					}
				}
				assert.Contains(t, macroVectors, vec.MacroVector())

				score := vec.Score()
				if score < 0 || score > 10 || (score == 0) != noImpact {
					t.Fatalf("unexpected score %v for %s", score, vec.Vector())
				}
			}
			return
		}
		for _, v := range base[i].values {
			values[i] = v
			walk(i + 1)
		}
	}
	walk(0)
}
