package stats

import (
	"fmt"
	"strings"

	"techlympics-stats/models"
)

// Unknown is the bucket used whenever a relation cannot be resolved.
const Unknown = "Unknown"

// NormalizedRow is a participation row with its classification keys resolved.
type NormalizedRow struct {
	models.ParticipationRow

	Category         models.DisplayCategory
	SchoolLevelLabel string
	StateName        string
	ZoneName         string
	InstitutionName  string
	ContingentLabel  string
}

// Normalize drops rows without members and resolves display keys for the rest.
// It never rejects a row for missing relations; those resolve to Unknown.
func Normalize(rows []models.ParticipationRow) []NormalizedRow {
	out := make([]NormalizedRow, 0, len(rows))
	for _, r := range rows {
		if r.MemberCount <= 0 {
			continue
		}
		out = append(out, normalizeRow(r))
	}
	return out
}

func normalizeRow(r models.ParticipationRow) NormalizedRow {
	if !r.ContingentType.Valid() {
		r.ContingentType = models.ContingentUnknown
	}
	switch r.Gender {
	case models.GenderMale, models.GenderFemale:
	default:
		r.Gender = models.GenderUnknown
	}
	if strings.TrimSpace(r.ContestName) == "" {
		r.ContestName = fmt.Sprintf("Contest %d", r.ContestID)
	}

	n := NormalizedRow{
		ParticipationRow: r,
		Category:         Classify(r.SchoolLevel.String),
		SchoolLevelLabel: orUnknown(CanonicalSchoolLevel(r.SchoolLevel.String)),
		StateName:        Unknown,
		ZoneName:         Unknown,
		InstitutionName:  Unknown,
	}
	if e := linkedEntity(r); e != nil {
		n.StateName = orUnknown(e.State.String)
		n.ZoneName = orUnknown(e.Zone.String)
		n.InstitutionName = orUnknown(e.Name.String)
	}
	n.ContingentLabel = n.InstitutionName
	if name := strings.TrimSpace(r.ContingentName.String); r.ContingentName.Valid && name != "" {
		n.ContingentLabel = name
	}
	return n
}

// linkedEntity picks the relation named by the contingent type discriminator.
func linkedEntity(r models.ParticipationRow) *models.LinkedEntity {
	switch r.ContingentType {
	case models.ContingentSchool:
		return r.School
	case models.ContingentHigherInstitution:
		return r.HigherInstitution
	case models.ContingentIndependent, models.ContingentIndependentYouthGroup, models.ContingentIndependentParent:
		return r.Independent
	}
	return nil
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return Unknown
	}
	return s
}

// Restrict keeps the rows whose resolved state and zone match the filter.
func Restrict(rows []NormalizedRow, filter models.ReportFilter) []NormalizedRow {
	if filter.State == "" && filter.Zone == "" {
		return rows
	}
	out := make([]NormalizedRow, 0, len(rows))
	for _, r := range rows {
		if filter.State != "" && !strings.EqualFold(r.StateName, filter.State) {
			continue
		}
		if filter.Zone != "" && !strings.EqualFold(r.ZoneName, filter.Zone) {
			continue
		}
		out = append(out, r)
	}
	return out
}
