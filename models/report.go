package models

import "time"

// DisplayCategory buckets contests by age/education stage.
type DisplayCategory string

const (
	CategoryKids  DisplayCategory = "Kids"
	CategoryTeens DisplayCategory = "Teens"
	CategoryYouth DisplayCategory = "Youth"
)

// Categories lists display categories in presentation order.
var Categories = []DisplayCategory{CategoryKids, CategoryTeens, CategoryYouth}

type GenderBreakdown struct {
	Male    int `json:"male"`
	Female  int `json:"female"`
	Unknown int `json:"unknown"`
}

// Summary holds the rolled-up counts of one hierarchy node.
type Summary struct {
	ContingentCount int                    `json:"contingent_count"`
	TeamCount       int                    `json:"team_count"`
	ContestantCount int                    `json:"contestant_count"`
	Gender          GenderBreakdown        `json:"gender"`
	ContingentTypes map[ContingentType]int `json:"contingent_types,omitempty"`
}

// Hierarchy levels.
const (
	LevelRoot        = "root"
	LevelCategory    = "category"
	LevelContest     = "contest"
	LevelState       = "state"
	LevelZone        = "zone"
	LevelSchoolLevel = "school_level"
	LevelContingent  = "contingent"
)

// HierarchyNode is one node of a formatted report tree.
type HierarchyNode struct {
	Level    string           `json:"level"`
	Key      string           `json:"key"`
	Name     string           `json:"name"`
	Summary  Summary          `json:"summary"`
	Children []*HierarchyNode `json:"children,omitempty"`
}

// Child returns the direct child with the given key, or nil.
func (n *HierarchyNode) Child(key string) *HierarchyNode {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Key == key {
			return c
		}
	}
	return nil
}

type ReportKind string

const (
	ReportByCategory   ReportKind = "category"
	ReportByState      ReportKind = "state"
	ReportByZone       ReportKind = "zone"
	ReportByContingent ReportKind = "contingent"
)

// Report is the envelope handed to presentation layers.
type Report struct {
	ID          string         `json:"id"`
	Kind        ReportKind     `json:"kind"`
	GeneratedAt time.Time      `json:"generated_at"`
	Filter      ReportFilter   `json:"filter"`
	Rows        int            `json:"rows"`
	Root        *HierarchyNode `json:"root"`
}
