package utils

import (
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"techlympics-stats/models"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

// ParseReportFilter reads report filters from query parameters. contest_id may
// repeat or hold a comma separated list; from and to are YYYY-MM-DD days.
func ParseReportFilter(q url.Values) (models.ReportFilter, error) {
	var f models.ReportFilter

	if v := q.Get("event_id"); v != "" {
		id, err := StrToInt(v)
		if err != nil {
			return f, errors.Errorf("invalid event_id %q", v)
		}
		f.EventID = id
	}
	for _, raw := range q["contest_id"] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part == "" {
				continue
			}
			id, err := StrToInt(part)
			if err != nil {
				return f, errors.Errorf("invalid contest_id %q", part)
			}
			f.ContestIDs = append(f.ContestIDs, id)
		}
	}
	f.TargetGroup = strings.TrimSpace(q.Get("target_group"))
	f.KnowledgeField = strings.TrimSpace(q.Get("knowledge_field"))
	f.AnswerType = strings.TrimSpace(q.Get("answer_type"))
	f.ContingentType = models.ContingentType(strings.ToUpper(strings.TrimSpace(q.Get("contingent_type"))))
	f.State = strings.TrimSpace(q.Get("state"))
	f.Zone = strings.TrimSpace(q.Get("zone"))

	var err error
	if f.From, err = parseDay(q.Get("from")); err != nil {
		return f, errors.Wrap(err, "from")
	}
	if f.To, err = parseDay(q.Get("to")); err != nil {
		return f, errors.Wrap(err, "to")
	}
	if err := ValidateFilter(f); err != nil {
		return f, err
	}
	return f, nil
}

// ValidateFilter checks field constraints and that the date range is ordered.
func ValidateFilter(f models.ReportFilter) error {
	if err := validate.Struct(f); err != nil {
		return errors.Wrap(err, "invalid filter")
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return errors.New("invalid filter: to is before from")
	}
	return nil
}

func parseDay(v string) (*time.Time, error) {
	if v = strings.TrimSpace(v); v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, errors.Errorf("invalid date %q, expected YYYY-MM-DD", v)
	}
	return &t, nil
}
