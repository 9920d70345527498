package cvss40

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacroVector(t *testing.T) {
	tests := []struct {
		vector string
		want   string
	}{
		{"CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H", "000100"},
		{"CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:N/SI:N/SA:N", "000200"},
		{"CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:N/VI:N/VA:N/SC:H/SI:H/SA:H", "002101"},
		{"CVSS:4.0/AV:P/AC:H/AT:P/PR:H/UI:A/VC:L/VI:N/VA:N/SC:N/SI:N/SA:N", "212201"},
		{"CVSS:4.0/AV:L/AC:L/AT:N/PR:L/UI:P/VC:N/VI:H/VA:H/SC:N/SI:L/SA:L", "201200"},
		// EQ1: physical access is always level 2, even without privileges nor interaction.
		{"CVSS:4.0/AV:P/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H", "200100"},
		{"CVSS:4.0/AV:A/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H", "100100"},
		{"CVSS:4.0/AV:L/AC:L/AT:N/PR:L/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H", "100100"},
		// EQ2
		{"CVSS:4.0/AV:N/AC:L/AT:P/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H", "010100"},
		// EQ3 and EQ6
		{"CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:L/VA:N/SC:H/SI:H/SA:H", "001100"},
		{"CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H/CR:L/IR:L/AR:L", "000101"},
		{"CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:L/VI:L/VA:H/SC:H/SI:H/SA:H/AR:M", "001101"},
		// EQ4: Safety on the subsequent system.
		{"CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:N/SI:N/SA:N/MSA:S", "000000"},
		{"CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:N/SI:N/SA:N/MSI:S", "000000"},
		// EQ5: not defined threat scores as Attacked.
		{"CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H/E:A", "000100"},
		{"CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H/E:P", "000110"},
		{"CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H/E:U", "000120"},
		// Modified metrics take precedence over Base ones.
		{"CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H/MAV:P/MAC:H/MVC:L/MVI:L/MVA:L/MSC:L/MSI:L/MSA:L", "212201"},
	}

	for _, tt := range tests {
		t.Run(tt.vector, func(t *testing.T) {
			vec, err := ParseVector(tt.vector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, vec.MacroVector())
		})
	}
}

func TestEffective(t *testing.T) {
	vec := New()
	assert.Equal(t, "H", vec.effective("CR"))
	assert.Equal(t, "H", vec.effective("IR"))
	assert.Equal(t, "H", vec.effective("AR"))
	assert.Equal(t, "A", vec.effective("E"))
	assert.Equal(t, "X", vec.effective("S"))
	assert.Equal(t, "N", vec.effective("AV"))

	require.NoError(t, vec.Set("MAV", "L"))
	require.NoError(t, vec.Set("CR", "M"))
	assert.Equal(t, "L", vec.effective("AV"))
	assert.Equal(t, "M", vec.effective("CR"))
}

func TestEQ3EQ6Transitions(t *testing.T) {
	// Every transition must land on a MacroVector of the table, for
	// every combination of the other EQs.
	for pair, nexts := range eq3eq6Next {
		for _, next := range nexts {
			for eq1 := 0; eq1 <= 2; eq1++ {
				for eq2 := 0; eq2 <= 1; eq2++ {
					for eq4 := 0; eq4 <= 2; eq4++ {
						for eq5 := 0; eq5 <= 2; eq5++ {
							from := macroVector{eq1, eq2, pair[0], eq4, eq5, pair[1]}
							to := macroVector{eq1, eq2, next[0], eq4, eq5, next[1]}
							assert.Contains(t, macroVectors, from.String())
							assert.Contains(t, macroVectors, to.String(), fmt.Sprintf("from %s", from))
						}
					}
				}
			}
		}
	}

	assert.Equal(t, [][2]int{{1, 0}, {0, 1}}, eq3eq6Next[[2]int{0, 0}])
	assert.Equal(t, [][2]int{{1, 1}}, eq3eq6Next[[2]int{0, 1}])
	assert.Equal(t, [][2]int{{1, 1}}, eq3eq6Next[[2]int{1, 0}])
	assert.Equal(t, [][2]int{{2, 1}}, eq3eq6Next[[2]int{1, 1}])
	assert.NotContains(t, eq3eq6Next, [2]int{2, 1})
}

func TestSeverityDistance(t *testing.T) {
	assert.Equal(t, 0, severityDistance("AV", "N", "N"))
	assert.Equal(t, 2, severityDistance("AV", "L", "N"))
	assert.Equal(t, -1, severityDistance("AV", "L", "P"))
	assert.Equal(t, 1, severityDistance("SI", "H", "S"))
	assert.Equal(t, 2, severityDistance("CR", "L", "H"))
}
