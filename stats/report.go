package stats

import (
	"github.com/pkg/errors"

	"techlympics-stats/models"
)

// ErrUnknownKind is returned for a report kind with no grouping defined.
var ErrUnknownKind = errors.New("unknown report kind")

var kindSelectors = map[models.ReportKind][]Selector{
	models.ReportByCategory:   {ByCategory, ByContest, ByState, ByContingent},
	models.ReportByState:      {ByState, BySchoolLevel, ByContest, ByContingent},
	models.ReportByZone:       {ByZone, ByState, ByContingent},
	models.ReportByContingent: {ByContingent, ByCategory, ByContest},
}

// Kinds lists the supported report kinds in a stable order.
func Kinds() []models.ReportKind {
	return []models.ReportKind{
		models.ReportByCategory,
		models.ReportByState,
		models.ReportByZone,
		models.ReportByContingent,
	}
}

// Selectors returns the grouping levels used by a report kind.
func Selectors(kind models.ReportKind) ([]Selector, error) {
	sel, ok := kindSelectors[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
	return sel, nil
}

// Build runs the whole pipeline: normalize, restrict by state and zone,
// accumulate by the kind's selectors and format.
func Build(rows []models.ParticipationRow, kind models.ReportKind, filter models.ReportFilter) (*models.HierarchyNode, error) {
	sel, err := Selectors(kind)
	if err != nil {
		return nil, err
	}
	normalized := Restrict(Normalize(rows), filter)
	return Format(AccumulateBy(normalized, sel...)), nil
}
