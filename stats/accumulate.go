package stats

import (
	"strconv"

	"techlympics-stats/models"
)

// Selector extracts the grouping key of one hierarchy level from a row and
// says how siblings on that level are ordered once formatted.
type Selector struct {
	Level string
	Key   func(r NormalizedRow) (key, name string)
	Less  func(a, b *models.HierarchyNode) bool
}

var (
	ByCategory = Selector{
		Level: models.LevelCategory,
		Key: func(r NormalizedRow) (string, string) {
			return string(r.Category), string(r.Category)
		},
		Less: categoryLess,
	}
	ByContest = Selector{
		Level: models.LevelContest,
		Key: func(r NormalizedRow) (string, string) {
			return strconv.Itoa(r.ContestID), r.ContestName
		},
		Less: totalLess,
	}
	ByState = Selector{
		Level: models.LevelState,
		Key: func(r NormalizedRow) (string, string) {
			return r.StateName, r.StateName
		},
		Less: totalLess,
	}
	ByZone = Selector{
		Level: models.LevelZone,
		Key: func(r NormalizedRow) (string, string) {
			return r.ZoneName, r.ZoneName
		},
		Less: totalLess,
	}
	BySchoolLevel = Selector{
		Level: models.LevelSchoolLevel,
		Key: func(r NormalizedRow) (string, string) {
			return schoolLevelKey(r.SchoolLevelLabel), r.SchoolLevelLabel
		},
		Less: func(a, b *models.HierarchyNode) bool { return SchoolLevelLess(a.Name, b.Name) },
	}
	ByContingent = Selector{
		Level: models.LevelContingent,
		Key: func(r NormalizedRow) (string, string) {
			return strconv.Itoa(r.ContingentID), r.ContingentLabel
		},
		Less: totalLess,
	}
)

// Group is an accumulated, not yet ordered, hierarchy node.
type Group struct {
	Level string
	Key   string
	Name  string

	tally     *tally
	children  map[string]*Group
	selectors []Selector
}

func newGroup(level, key, name string, selectors []Selector) *Group {
	return &Group{
		Level:     level,
		Key:       key,
		Name:      name,
		tally:     newTally(),
		children:  make(map[string]*Group),
		selectors: selectors,
	}
}

// Accumulate folds rows into category, contest, state and contingent groups.
func Accumulate(rows []NormalizedRow) *Group {
	return AccumulateBy(rows, ByCategory, ByContest, ByState, ByContingent)
}

// AccumulateBy folds rows into a tree with one level per selector. Every row is
// recorded on each group along its path, so any group's counts come from the
// ids in its own subtree.
func AccumulateBy(rows []NormalizedRow, selectors ...Selector) *Group {
	root := newGroup(models.LevelRoot, "", "All", selectors)
	for _, r := range rows {
		g := root
		g.tally.add(r)
		for i, sel := range selectors {
			key, name := sel.Key(r)
			child, ok := g.children[key]
			if !ok {
				child = newGroup(sel.Level, key, name, selectors[i+1:])
				g.children[key] = child
			}
			child.tally.add(r)
			g = child
		}
	}
	return root
}

// Child returns the direct child group with the given key, or nil.
func (g *Group) Child(key string) *Group {
	if g == nil {
		return nil
	}
	return g.children[key]
}

// Len is the number of direct children.
func (g *Group) Len() int { return len(g.children) }

// Summarize returns the rolled-up counts of g's subtree.
func Summarize(g *Group) models.Summary {
	if g == nil {
		return newTally().summary()
	}
	return g.tally.summary()
}
