package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"techlympics-stats/models"
)

func sampleReport() *models.Report {
	contingent := &models.HierarchyNode{Level: models.LevelContingent, Key: "10", Name: "SK Melati",
		Summary: models.Summary{ContingentCount: 1, TeamCount: 2, ContestantCount: 5}}
	contest := &models.HierarchyNode{Level: models.LevelContest, Key: "100", Name: "Robotics",
		Summary: contingent.Summary, Children: []*models.HierarchyNode{contingent}}
	kids := &models.HierarchyNode{Level: models.LevelCategory, Key: "Kids", Name: "Kids",
		Summary: contingent.Summary, Children: []*models.HierarchyNode{contest}}
	return &models.Report{
		ID:   "r1",
		Kind: models.ReportByCategory,
		Root: &models.HierarchyNode{Level: models.LevelRoot, Name: "All",
			Summary: models.Summary{ContingentCount: 1, TeamCount: 2, ContestantCount: 5, Gender: models.GenderBreakdown{Unknown: 5}},
			Children: []*models.HierarchyNode{kids}},
	}
}

func TestTable(t *testing.T) {
	out := Table(sampleReport(), 0)

	assert.Contains(t, out, "category report r1")
	assert.Contains(t, out, "Kids")
	assert.Contains(t, out, "  Robotics")
	assert.Contains(t, out, "    SK Melati")
	assert.Contains(t, strings.ToLower(out), "total")
}

func TestTable_MaxDepth(t *testing.T) {
	out := Table(sampleReport(), 2)

	assert.Contains(t, out, "Robotics")
	assert.NotContains(t, out, "SK Melati")
}

func TestTable_EmptyReport(t *testing.T) {
	out := Table(&models.Report{ID: "r2", Kind: models.ReportByZone}, 0)
	assert.Contains(t, out, "zone report r2")
}
