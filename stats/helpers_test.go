package stats

import (
	"database/sql"
	"fmt"

	"techlympics-stats/models"
)

func ns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func school(state, zone string) *models.LinkedEntity {
	return &models.LinkedEntity{Name: ns("SK " + state), State: ns(state), Zone: ns(zone)}
}

// teamRow builds a team-level row for a school contingent in Selangor.
func teamRow(team, contingent, contest int, level string, members int) models.ParticipationRow {
	return models.ParticipationRow{
		TeamID:         team,
		ContingentID:   contingent,
		ContestID:      contest,
		ContestName:    fmt.Sprintf("Contest %d", contest),
		ContingentType: models.ContingentSchool,
		ContingentName: ns(fmt.Sprintf("Contingent %d", contingent)),
		SchoolLevel:    ns(level),
		MemberCount:    members,
		School:         school("Selangor", "Central"),
	}
}

func memberRow(team, contingent, contest, member int, gender models.Gender, members int) models.ParticipationRow {
	r := teamRow(team, contingent, contest, "Secondary", members)
	r.MemberID = member
	r.Gender = gender
	return r
}

func inState(r models.ParticipationRow, state, zone string) models.ParticipationRow {
	r.School = school(state, zone)
	return r
}

func childKeys(n *models.HierarchyNode) []string {
	keys := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		keys = append(keys, c.Key)
	}
	return keys
}

// mixedRows covers several categories, states, contests and a contingent that
// enters more than one contest.
func mixedRows() []models.ParticipationRow {
	rows := []models.ParticipationRow{
		teamRow(1, 10, 100, "Primary", 3),
		teamRow(2, 10, 100, "Primary", 2),
		teamRow(3, 10, 200, "Sekolah Rendah", 4),
		inState(teamRow(4, 11, 200, "Primary", 1), "Johor", "South"),
		inState(teamRow(5, 12, 300, "Secondary", 5), "Johor", "South"),
		teamRow(6, 12, 300, "Secondary", 0),
		teamRow(7, 13, 400, "Universiti", 2),
		memberRow(8, 14, 300, 801, models.GenderMale, 2),
		memberRow(8, 14, 300, 802, models.GenderFemale, 2),
		memberRow(9, 14, 500, 901, models.GenderFemale, 1),
	}
	orphan := teamRow(10, 15, 400, "", 2)
	orphan.School = nil
	return append(rows, orphan)
}
