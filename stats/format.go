package stats

import (
	"slices"
	"strings"

	"techlympics-stats/models"
)

// Format turns an accumulated tree into an ordered, display-ready hierarchy.
// A nil or empty tree formats to a root with zero counts.
func Format(g *Group) *models.HierarchyNode {
	if g == nil {
		return &models.HierarchyNode{Level: models.LevelRoot, Name: "All", Summary: Summarize(nil)}
	}
	node := &models.HierarchyNode{
		Level:   g.Level,
		Key:     g.Key,
		Name:    g.Name,
		Summary: g.tally.summary(),
	}
	if len(g.children) == 0 || len(g.selectors) == 0 {
		return node
	}

	node.Children = make([]*models.HierarchyNode, 0, len(g.children))
	for _, child := range g.children {
		node.Children = append(node.Children, Format(child))
	}
	less := g.selectors[0].Less
	if less == nil {
		less = totalLess
	}
	slices.SortFunc(node.Children, func(a, b *models.HierarchyNode) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return strings.Compare(a.Key, b.Key)
	})
	return node
}

// totalLess orders by contestant total descending, then name ascending.
func totalLess(a, b *models.HierarchyNode) bool {
	if a.Summary.ContestantCount != b.Summary.ContestantCount {
		return a.Summary.ContestantCount > b.Summary.ContestantCount
	}
	return a.Name < b.Name
}

func categoryLess(a, b *models.HierarchyNode) bool {
	return categoryRank(a.Key) < categoryRank(b.Key)
}

func categoryRank(key string) int {
	for i, c := range models.Categories {
		if string(c) == key {
			return i
		}
	}
	return len(models.Categories)
}
