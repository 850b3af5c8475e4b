package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techlympics-stats/models"
)

func TestNormalize_DropsRowsWithoutMembers(t *testing.T) {
	rows := []models.ParticipationRow{
		teamRow(1, 10, 100, "Primary", 0),
		teamRow(2, 10, 100, "Primary", 2),
		teamRow(3, 10, 100, "Primary", -1),
	}

	got := Normalize(rows)

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].TeamID)
}

func TestNormalize_ResolvesStateByContingentType(t *testing.T) {
	r := teamRow(1, 10, 100, "Universiti", 1)
	r.ContingentType = models.ContingentIndependentYouthGroup
	r.Independent = &models.LinkedEntity{Name: ns("Kelab Belia"), State: ns("Sabah"), Zone: ns("Borneo")}

	got := Normalize([]models.ParticipationRow{r})

	require.Len(t, got, 1)
	assert.Equal(t, "Sabah", got[0].StateName)
	assert.Equal(t, "Borneo", got[0].ZoneName)
	assert.Equal(t, "Kelab Belia", got[0].InstitutionName)
	assert.Equal(t, models.CategoryYouth, got[0].Category)
}

func TestNormalize_UnknownFallbacks(t *testing.T) {
	missingLink := teamRow(1, 10, 100, "Primary", 1)
	missingLink.School = nil

	wrongLink := teamRow(2, 11, 100, "Primary", 1)
	wrongLink.ContingentType = models.ContingentHigherInstitution

	badType := teamRow(3, 12, 100, "Primary", 1)
	badType.ContingentType = "CLUB"

	blankState := teamRow(4, 13, 100, "Primary", 1)
	blankState.School.State = ns("   ")

	got := Normalize([]models.ParticipationRow{missingLink, wrongLink, badType, blankState})

	require.Len(t, got, 4)
	for _, r := range got {
		assert.Equal(t, Unknown, r.StateName, "team %d", r.TeamID)
	}
	assert.Equal(t, models.ContingentUnknown, got[2].ContingentType)
	assert.Equal(t, Unknown, got[0].InstitutionName)
	assert.Equal(t, "Contingent 10", got[0].ContingentLabel)
}

func TestNormalize_Defaults(t *testing.T) {
	r := teamRow(1, 10, 100, "", 1)
	r.ContestName = ""
	r.ContingentName.Valid = false
	r.Gender = "X"

	got := Normalize([]models.ParticipationRow{r})

	require.Len(t, got, 1)
	assert.Equal(t, "Contest 100", got[0].ContestName)
	assert.Equal(t, "SK Selangor", got[0].ContingentLabel)
	assert.Equal(t, Unknown, got[0].SchoolLevelLabel)
	assert.Equal(t, models.GenderUnknown, got[0].Gender)
	assert.Equal(t, models.CategoryYouth, got[0].Category)
}

func TestRestrict(t *testing.T) {
	rows := Normalize(mixedRows())

	johor := Restrict(rows, models.ReportFilter{State: "johor"})
	require.Len(t, johor, 2)
	for _, r := range johor {
		assert.Equal(t, "Johor", r.StateName)
	}

	central := Restrict(rows, models.ReportFilter{Zone: "Central"})
	for _, r := range central {
		assert.Equal(t, "Central", r.ZoneName)
	}
	assert.Len(t, Restrict(rows, models.ReportFilter{}), len(rows))
}
