package models

import "time"

// ReportFilter narrows the rows a data source returns. Zero values mean "no restriction".
type ReportFilter struct {
	EventID        int            `json:"event_id,omitempty" validate:"gte=0"`
	ContestIDs     []int          `json:"contest_ids,omitempty" validate:"dive,gt=0"`
	TargetGroup    string         `json:"target_group,omitempty" validate:"max=100"`
	KnowledgeField string         `json:"knowledge_field,omitempty" validate:"max=100"`
	AnswerType     string         `json:"answer_type,omitempty" validate:"max=50"`
	ContingentType ContingentType `json:"contingent_type,omitempty" validate:"omitempty,oneof=SCHOOL HIGHER_INSTITUTION INDEPENDENT INDEPENDENT_YOUTH_GROUP INDEPENDENT_PARENT"`
	State          string         `json:"state,omitempty" validate:"max=100"`
	Zone           string         `json:"zone,omitempty" validate:"max=100"`
	From           *time.Time     `json:"from,omitempty"`
	To             *time.Time     `json:"to,omitempty"`
}
