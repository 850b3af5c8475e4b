package stats

import "techlympics-stats/models"

// tally keeps the id sets a summary is computed from, so that parents never
// double count a contingent or team that appears under several children.
type tally struct {
	contingents map[int]models.ContingentType
	teams       map[int]*teamTally
}

type teamTally struct {
	memberCount int
	members     map[int]models.Gender
}

func newTally() *tally {
	return &tally{
		contingents: make(map[int]models.ContingentType),
		teams:       make(map[int]*teamTally),
	}
}

func (t *tally) add(r NormalizedRow) {
	t.contingents[r.ContingentID] = r.ContingentType

	team, ok := t.teams[r.TeamID]
	if !ok {
		team = &teamTally{members: make(map[int]models.Gender)}
		t.teams[r.TeamID] = team
	}
	if r.MemberCount > team.memberCount {
		team.memberCount = r.MemberCount
	}
	if r.MemberID != 0 {
		team.members[r.MemberID] = r.Gender
	}
}

// summary derives counts from the id sets. A team contributes the larger of its
// reported member count and the distinct members seen; members without a known
// gender are counted as Unknown.
func (t *tally) summary() models.Summary {
	s := models.Summary{
		ContingentCount: len(t.contingents),
		TeamCount:       len(t.teams),
	}
	if len(t.contingents) > 0 {
		s.ContingentTypes = make(map[models.ContingentType]int)
		for _, ct := range t.contingents {
			s.ContingentTypes[ct]++
		}
	}
	for _, team := range t.teams {
		for _, g := range team.members {
			switch g {
			case models.GenderMale:
				s.Gender.Male++
			case models.GenderFemale:
				s.Gender.Female++
			default:
				s.Gender.Unknown++
			}
		}
		size := max(team.memberCount, len(team.members))
		s.Gender.Unknown += size - len(team.members)
		s.ContestantCount += size
	}
	return s
}
