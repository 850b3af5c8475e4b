package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"techlympics-stats/models"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks techlympics-stats/store ParticipationSource

// ParticipationSource returns flat participation rows for a filter.
type ParticipationSource interface {
	ParticipationRows(ctx context.Context, filter models.ReportFilter) ([]models.ParticipationRow, error)
}

// SQLStore reads participation rows from the registration schema. It emits one
// row per team member; teams without members yield a single row with a zero member count.
// dateTimeLayout matches how DATETIME columns compare on both MySQL and SQLite.
const dateTimeLayout = "2006-01-02 15:04:05"

type SQLStore struct {
	db          *sql.DB
	concurrency int
	batchSize   int
	log         logrus.FieldLogger
}

type Option func(*SQLStore)

// WithConcurrency bounds how many contingent lookup batches run at once.
func WithConcurrency(n int) Option {
	return func(s *SQLStore) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithBatchSize sets how many contingents one lookup query covers.
func WithBatchSize(n int) Option {
	return func(s *SQLStore) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *SQLStore) { s.log = log }
}

func NewSQLStore(db *sql.DB, opts ...Option) *SQLStore {
	s := &SQLStore{
		db:          db,
		concurrency: 8,
		batchSize:   200,
		log:         logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const rowsQuery = `
	SELECT t.id, t.contingent_id, c.id, c.name, c.code, tg.school_level,
		COALESCE(tm.contestant_id, 0), ct.gender,
		(SELECT COUNT(*) FROM team_member x WHERE x.team_id = t.id) AS member_count
	FROM team t
	JOIN contest c ON c.id = t.contest_id
	JOIN contingent cg ON cg.id = t.contingent_id
	LEFT JOIN target_group tg ON tg.id = c.target_group_id
	LEFT JOIN team_member tm ON tm.team_id = t.id
	LEFT JOIN contestant ct ON ct.id = tm.contestant_id
	WHERE 1 = 1`

// ParticipationRows runs the registration query and then resolves each
// contingent's linked school, institution or independent body.
func (s *SQLStore) ParticipationRows(ctx context.Context, filter models.ReportFilter) ([]models.ParticipationRow, error) {
	query, args := buildRowsQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query participation rows")
	}
	defer rows.Close()

	var out []models.ParticipationRow
	for rows.Next() {
		var (
			r      models.ParticipationRow
			gender sql.NullString
		)
		if err := rows.Scan(&r.TeamID, &r.ContingentID, &r.ContestID, &r.ContestName, &r.ContestCode,
			&r.SchoolLevel, &r.MemberID, &gender, &r.MemberCount); err != nil {
			return nil, errors.Wrap(err, "scan participation row")
		}
		r.Gender = models.Gender(strings.ToUpper(strings.TrimSpace(gender.String)))
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate participation rows")
	}
	rows.Close()

	details, err := s.contingentDetails(ctx, contingentIDs(out))
	if err != nil {
		return nil, err
	}
	for i := range out {
		d, ok := details[out[i].ContingentID]
		if !ok {
			continue
		}
		out[i].ContingentName = d.name
		out[i].ContingentType = d.contingentType
		out[i].School = d.school
		out[i].HigherInstitution = d.higherInstitution
		out[i].Independent = d.independent
	}

	s.log.WithFields(logrus.Fields{
		"rows":        len(out),
		"contingents": len(details),
	}).Debug("participation rows loaded")
	return out, nil
}

func buildRowsQuery(f models.ReportFilter) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString(rowsQuery)
	if f.EventID > 0 {
		b.WriteString(" AND t.event_id = ?")
		args = append(args, f.EventID)
	}
	if len(f.ContestIDs) > 0 {
		b.WriteString(" AND t.contest_id IN (" + placeholders(len(f.ContestIDs)) + ")")
		for _, id := range f.ContestIDs {
			args = append(args, id)
		}
	}
	if f.TargetGroup != "" {
		b.WriteString(" AND tg.code = ?")
		args = append(args, f.TargetGroup)
	}
	if f.KnowledgeField != "" {
		b.WriteString(" AND c.knowledge_field = ?")
		args = append(args, f.KnowledgeField)
	}
	if f.AnswerType != "" {
		b.WriteString(" AND c.answer_type = ?")
		args = append(args, f.AnswerType)
	}
	if f.ContingentType != "" {
		b.WriteString(" AND cg.contingent_type = ?")
		args = append(args, string(f.ContingentType))
	}
	if f.From != nil {
		b.WriteString(" AND t.created_at >= ?")
		args = append(args, f.From.Format(dateTimeLayout))
	}
	if f.To != nil {
		// To is an inclusive day.
		b.WriteString(" AND t.created_at < ?")
		args = append(args, f.To.Add(24*time.Hour).Format(dateTimeLayout))
	}
	b.WriteString(" ORDER BY t.id, tm.contestant_id")
	return b.String(), args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func contingentIDs(rows []models.ParticipationRow) []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, r := range rows {
		if _, ok := seen[r.ContingentID]; ok {
			continue
		}
		seen[r.ContingentID] = struct{}{}
		ids = append(ids, r.ContingentID)
	}
	return ids
}
