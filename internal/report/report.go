package report

import (
	"strings"

	dbTypes "github.com/aquasecurity/trivy-db/pkg/types"
	"github.com/aquasecurity/trivy/pkg/log"
	"golang.org/x/xerrors"

	"context-cvss/cvss"
	"context-cvss/cvss40"
	"context-cvss/internal/epss"
	"context-cvss/internal/flags"
)

// Result holds the scores of a vector before and after applying the contextual metrics.
type Result struct {
	Version             string       `json:"Version"`
	Input               string       `json:"Input"`
	Vector              string       `json:"Vector"`
	BaseScore           float64      `json:"BaseScore"`
	BaseRating          string       `json:"BaseRating,omitempty"`
	TemporalScore       float64      `json:"TemporalScore"`
	TemporalRating      string       `json:"TemporalRating,omitempty"`
	EnvironmentalScore  float64      `json:"EnvironmentalScore"`
	EnvironmentalRating string       `json:"EnvironmentalRating,omitempty"`
	Severity            string       `json:"Severity"`
	Nomenclature        string       `json:"Nomenclature,omitempty"`
	MacroVector         string       `json:"MacroVector,omitempty"`
	CVSS                dbTypes.CVSS `json:"CVSS"`
	EpssScore           *float64     `json:"EpssScore,omitempty"`
}

// Build resolves the CVSS version of vectorStr, applies the contextual metrics and scores the result.
func Build(vectorStr string, ro flags.RunOptions) (*Result, error) {
	logger := log.WithPrefix("report")

	vectorStr = strings.TrimSpace(vectorStr)
	version, err := cvss.GetCVSSVersion(vectorStr)
	if err != nil {
		return nil, err
	}
	baseScore, _, _, err := cvss.CalculateScores(vectorStr)
	if err != nil {
		return nil, xerrors.Errorf("unable to score %s: %w", vectorStr, err)
	}

	opts := ro.Opts
	if ro.EPSS != nil {
		switch version {
		case cvss.Version40:
			opts.E = epss.EPSSToExploitMaturity40(*ro.EPSS)
		case cvss.Version30, cvss.Version31:
			opts.E = epss.EPSSToExploitMaturity(*ro.EPSS)
		}
		logger.Debug("Exploit maturity derived from EPSS", "epss", *ro.EPSS, "E", opts.E)
	}

	newVectorStr, err := cvss.ApplyMetrics(vectorStr, opts)
	if err != nil {
		return nil, xerrors.Errorf("unable to apply contextual metrics: %w", err)
	}
	_, tempScore, envScore, err := cvss.CalculateScores(newVectorStr)
	if err != nil {
		return nil, xerrors.Errorf("unable to score %s: %w", newVectorStr, err)
	}
	logger.Debug("Scored vector", "version", version, "vector", newVectorStr, "score", envScore)

	envRating := cvss.CalculateSeverityRating(envScore)
	result := &Result{
		Version:             version,
		Input:               vectorStr,
		Vector:              newVectorStr,
		BaseScore:           baseScore,
		BaseRating:          cvss.CalculateSeverityRating(baseScore),
		TemporalScore:       tempScore,
		TemporalRating:      cvss.CalculateSeverityRating(tempScore),
		EnvironmentalScore:  envScore,
		EnvironmentalRating: envRating,
		Severity:            severity(envRating).String(),
		EpssScore:           ro.EPSS,
	}

	switch version {
	case cvss.Version40:
		vec, err := cvss40.ParseVector(newVectorStr)
		if err != nil {
			return nil, xerrors.Errorf("invalid CVSS 4.0 vector: %w", err)
		}
		result.Nomenclature = vec.Nomenclature()
		result.MacroVector = vec.MacroVector()
		result.CVSS = dbTypes.CVSS{V40Vector: newVectorStr, V40Score: envScore}
	case cvss.Version30, cvss.Version31:
		result.CVSS = dbTypes.CVSS{V3Vector: newVectorStr, V3Score: envScore}
	case cvss.Version20:
		result.CVSS = dbTypes.CVSS{V2Vector: newVectorStr, V2Score: envScore}
	}
	return result, nil
}

// severity maps a CVSS rating onto the Trivy severity scale, which has no NONE level.
func severity(rating string) dbTypes.Severity {
	s, err := dbTypes.NewSeverity(rating)
	if err != nil {
		return dbTypes.SeverityUnknown
	}
	return s
}
