package stats

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"techlympics-stats/models"
)

// levelVocabulary is checked in order; the first matching substring wins.
var levelVocabulary = []struct {
	category models.DisplayCategory
	needles  []string
}{
	{models.CategoryKids, []string{"primary", "sekolah rendah", "rendah", "kids"}},
	{models.CategoryTeens, []string{"secondary", "sekolah menengah", "menengah", "teens"}},
	{models.CategoryYouth, []string{"university", "universiti", "college", "kolej", "higher", "tinggi", "youth", "belia"}},
}

// Classify maps a free-text school level to its display category.
// Levels matching nothing fall back to Youth.
func Classify(schoolLevel string) models.DisplayCategory {
	folded := cases.Fold().String(strings.TrimSpace(schoolLevel))
	if folded == "" {
		return models.CategoryYouth
	}
	for _, v := range levelVocabulary {
		for _, needle := range v.needles {
			if strings.Contains(folded, needle) {
				return v.category
			}
		}
	}
	return models.CategoryYouth
}

var schoolLevelVocabulary = []struct {
	label   string
	needles []string
}{
	{"Primary", []string{"primary", "rendah"}},
	{"Secondary", []string{"secondary", "menengah"}},
	{"Higher Education", []string{"higher", "university", "universiti", "college", "kolej", "tinggi"}},
}

var schoolLevelRank = map[string]int{
	"Primary":          0,
	"Secondary":        1,
	"Higher Education": 2,
}

// CanonicalSchoolLevel returns the standard level a free-text label names, so
// "PRIMARY" and "Sekolah Rendah" both read "Primary". Other labels come back trimmed.
func CanonicalSchoolLevel(label string) string {
	trimmed := strings.TrimSpace(label)
	folded := cases.Fold().String(trimmed)
	for _, v := range schoolLevelVocabulary {
		for _, needle := range v.needles {
			if strings.Contains(folded, needle) {
				return v.label
			}
		}
	}
	return trimmed
}

// schoolLevelKey groups labels that differ only in case.
func schoolLevelKey(label string) string {
	if _, ok := schoolLevelRank[label]; ok || label == Unknown {
		return label
	}
	return cases.Fold().String(label)
}

// SchoolLevelLess orders school level labels Primary, Secondary, Higher Education,
// then everything else alphabetically ignoring case.
func SchoolLevelLess(a, b string) bool {
	ra, rb := levelRank(a), levelRank(b)
	if ra != rb {
		return ra < rb
	}
	if fa, fb := cases.Fold().String(a), cases.Fold().String(b); fa != fb {
		return fa < fb
	}
	return a < b
}

func levelRank(label string) int {
	if r, ok := schoolLevelRank[CanonicalSchoolLevel(label)]; ok {
		return r
	}
	return len(schoolLevelRank)
}

// SortSchoolLevels sorts labels in place using SchoolLevelLess.
func SortSchoolLevels(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool { return SchoolLevelLess(labels[i], labels[j]) })
}
