package models

import "database/sql"

// ContingentType is the discriminator telling which linked entity a contingent belongs to.
type ContingentType string

const (
	ContingentSchool                ContingentType = "SCHOOL"
	ContingentHigherInstitution     ContingentType = "HIGHER_INSTITUTION"
	ContingentIndependent           ContingentType = "INDEPENDENT"
	ContingentIndependentYouthGroup ContingentType = "INDEPENDENT_YOUTH_GROUP"
	ContingentIndependentParent     ContingentType = "INDEPENDENT_PARENT"
	ContingentUnknown               ContingentType = "UNKNOWN"
)

// Valid reports whether t is one of the known contingent types.
func (t ContingentType) Valid() bool {
	switch t {
	case ContingentSchool, ContingentHigherInstitution, ContingentIndependent,
		ContingentIndependentYouthGroup, ContingentIndependentParent:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderUnknown Gender = "UNKNOWN"
)

// LinkedEntity is the school, higher institution or independent body a contingent points at.
type LinkedEntity struct {
	Name  sql.NullString `json:"name"`
	State sql.NullString `json:"state"`
	Zone  sql.NullString `json:"zone"`
}

// ParticipationRow is one team-contest registration as returned by a data source.
// Rows may repeat once per team member (MemberID set) or be pre-aggregated per team (MemberID 0).
type ParticipationRow struct {
	TeamID         int            `json:"team_id"`
	ContingentID   int            `json:"contingent_id"`
	ContestID      int            `json:"contest_id"`
	ContestName    string         `json:"contest_name"`
	ContestCode    string         `json:"contest_code"`
	ContingentType ContingentType `json:"contingent_type"`
	ContingentName sql.NullString `json:"contingent_name"`
	SchoolLevel    sql.NullString `json:"school_level"`
	MemberID       int            `json:"member_id"`
	Gender         Gender         `json:"gender"`
	MemberCount    int            `json:"member_count"`

	School            *LinkedEntity `json:"school,omitempty"`
	HigherInstitution *LinkedEntity `json:"higher_institution,omitempty"`
	Independent       *LinkedEntity `json:"independent,omitempty"`
}
