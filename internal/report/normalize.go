package report

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/PeimanAtaei/greenbone-project/internal/gmp"
	"github.com/PeimanAtaei/greenbone-project/internal/model"
)

// ErrNoResults means the report's nested results section is structurally
// absent. A report with zero findings can legitimately come back this way,
// so callers treat it as a soft failure.
var ErrNoResults = errors.New("report has no results section")

// Normalize flattens a raw report into per-finding detail records and a
// CVSS summary table.
func Normalize(raw *gmp.ReportEnvelope) (*model.NormalizedReport, error) {
	scanName := "N/A"
	if raw != nil && raw.Task != nil && raw.Task.Name != "" {
		scanName = raw.Task.Name
	}

	if raw == nil || raw.Inner == nil || raw.Inner.Results == nil {
		logrus.Errorf("[normalize] results section missing from report")
		return nil, ErrNoResults
	}
	results := raw.Inner.Results.Result

	targets := lo.Uniq(lo.Map(results, func(r gmp.Result, _ int) string {
		return strings.TrimSpace(r.Host.Text)
	}))

	details := make([]model.DetailRecord, 0, len(results))
	summary := make([]model.SummaryRecord, 0, len(results))

	for _, r := range results {
		endpoint := strings.TrimSpace(r.Host.Text)

		details = append(details, model.DetailRecord{
			ID:               r.ID,
			Name:             r.Name,
			Score:            cvssBase(r.NVT),
			CreationTime:     r.CreationTime,
			ModificationTime: r.ModificationTime,
		})

		score := cvssBase(r.NVT)
		if score == "" {
			score = "N/A"
		}

		vec := DecomposeVector(severityVector(r.NVT))
		summary = append(summary, model.SummaryRecord{
			Endpoint: endpoint,
			CVE:      findCVE(r.NVT),
			Score:    score,
			AV:       vec.AV,
			AC:       vec.AC,
			PR:       vec.PR,
			UI:       vec.UI,
			S:        vec.S,
			C:        vec.C,
			I:        vec.I,
			A:        vec.A,
		})
	}

	return &model.NormalizedReport{
		ScanName:      scanName,
		Targets:       targets,
		ResultDetails: details,
		ResultSummary: summary,
	}, nil
}

func cvssBase(nvt *gmp.NVT) string {
	if nvt == nil {
		return ""
	}
	return nvt.CvssBase
}

// findCVE returns the id of the first cve-typed reference, or "N/A".
func findCVE(nvt *gmp.NVT) string {
	if nvt == nil || nvt.Refs == nil {
		return "N/A"
	}
	for _, ref := range nvt.Refs.Ref {
		if ref.Type == "cve" {
			if ref.ID == "" {
				return "N/A"
			}
			return ref.ID
		}
	}
	return "N/A"
}

// severityVector walks the nested severities path, defaulting to an empty
// string when any level is absent.
func severityVector(nvt *gmp.NVT) string {
	if nvt == nil || nvt.Severities == nil || nvt.Severities.Severity == nil {
		return ""
	}
	return nvt.Severities.Severity.Value
}
