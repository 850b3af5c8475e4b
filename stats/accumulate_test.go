package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techlympics-stats/models"
)

func TestAccumulate_SameContingentTwoTeams(t *testing.T) {
	rows := Normalize([]models.ParticipationRow{
		teamRow(1, 10, 100, "Primary", 3),
		teamRow(2, 10, 100, "Primary", 2),
	})

	root := Accumulate(rows)

	contingent := root.Child("Kids").Child("100").Child("Selangor").Child("10")
	require.NotNil(t, contingent)
	s := Summarize(contingent)
	assert.Equal(t, 1, s.ContingentCount)
	assert.Equal(t, 2, s.TeamCount)
	assert.Equal(t, 5, s.ContestantCount)
}

func TestAccumulate_CrossContestDedup(t *testing.T) {
	rows := Normalize([]models.ParticipationRow{
		teamRow(1, 10, 100, "Primary", 3),
		teamRow(2, 10, 100, "Primary", 2),
		teamRow(3, 10, 200, "Primary", 4),
	})

	root := Accumulate(rows)

	kids := Summarize(root.Child("Kids"))
	assert.Equal(t, 1, kids.ContingentCount)
	assert.Equal(t, 3, kids.TeamCount)
	assert.Equal(t, 9, kids.ContestantCount)
	assert.Equal(t, 2, root.Child("Kids").Len())
	assert.Equal(t, 1, Summarize(root.Child("Kids").Child("200")).ContingentCount)
}

func TestAccumulate_PerMemberRowsCountedOncePerTeam(t *testing.T) {
	rows := Normalize([]models.ParticipationRow{
		memberRow(8, 14, 300, 801, models.GenderMale, 2),
		memberRow(8, 14, 300, 802, models.GenderFemale, 2),
		memberRow(8, 14, 300, 801, models.GenderMale, 2),
	})

	s := Summarize(Accumulate(rows))

	assert.Equal(t, 1, s.TeamCount)
	assert.Equal(t, 2, s.ContestantCount)
	assert.Equal(t, models.GenderBreakdown{Male: 1, Female: 1}, s.Gender)
}

func TestAccumulate_UnseenMembersAreUnknownGender(t *testing.T) {
	rows := Normalize([]models.ParticipationRow{
		memberRow(1, 10, 100, 11, models.GenderMale, 4),
	})

	s := Summarize(Accumulate(rows))

	assert.Equal(t, 4, s.ContestantCount)
	assert.Equal(t, models.GenderBreakdown{Male: 1, Unknown: 3}, s.Gender)
}

func TestAccumulate_ZeroMemberRowsNotCounted(t *testing.T) {
	rows := Normalize([]models.ParticipationRow{
		teamRow(1, 10, 100, "Primary", 0),
		teamRow(2, 11, 100, "Primary", 1),
	})

	root := Accumulate(rows)

	s := Summarize(root)
	assert.Equal(t, 1, s.TeamCount)
	assert.Equal(t, 1, s.ContingentCount)
	assert.Nil(t, root.Child("Kids").Child("100").Child("Selangor").Child("10"))
}

func TestAccumulate_UnknownStateStillCounted(t *testing.T) {
	r := teamRow(1, 10, 100, "Primary", 2)
	r.School = nil

	root := Accumulate(Normalize([]models.ParticipationRow{r}))

	unknown := root.Child("Kids").Child("100").Child(Unknown)
	require.NotNil(t, unknown)
	assert.Equal(t, 2, Summarize(unknown).ContestantCount)
}

func TestSummarize_Nil(t *testing.T) {
	assert.Equal(t, models.Summary{}, Summarize(nil))
}
