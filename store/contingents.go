package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"techlympics-stats/models"
)

type contingentDetail struct {
	name              sql.NullString
	contingentType    models.ContingentType
	school            *models.LinkedEntity
	higherInstitution *models.LinkedEntity
	independent       *models.LinkedEntity
}

const contingentQuery = `
	SELECT cg.id, cg.name, cg.contingent_type,
		s.id, s.name, ss.name, sz.name,
		h.id, h.name, hs.name, hz.name,
		i.id, i.name, ins.name, iz.name
	FROM contingent cg
	LEFT JOIN school s ON s.id = cg.school_id
	LEFT JOIN state ss ON ss.id = s.state_id
	LEFT JOIN zone sz ON sz.id = ss.zone_id
	LEFT JOIN higher_institution h ON h.id = cg.higher_institution_id
	LEFT JOIN state hs ON hs.id = h.state_id
	LEFT JOIN zone hz ON hz.id = hs.zone_id
	LEFT JOIN independent i ON i.id = cg.independent_id
	LEFT JOIN state ins ON ins.id = i.state_id
	LEFT JOIN zone iz ON iz.id = ins.zone_id
	WHERE cg.id IN (`

// contingentDetails looks contingents up in batches, running at most
// s.concurrency batch queries at a time.
func (s *SQLStore) contingentDetails(ctx context.Context, ids []int) (map[int]contingentDetail, error) {
	var batches [][]int
	for start := 0; start < len(ids); start += s.batchSize {
		end := min(start+s.batchSize, len(ids))
		batches = append(batches, ids[start:end])
	}

	results := make([]map[int]contingentDetail, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, batch := range batches {
		i, batch := i, batch
		g.Go(func() error {
			res, err := s.lookupBatch(gctx, batch)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	details := make(map[int]contingentDetail, len(ids))
	for _, res := range results {
		for id, d := range res {
			details[id] = d
		}
	}
	return details, nil
}

func (s *SQLStore) lookupBatch(ctx context.Context, ids []int) (map[int]contingentDetail, error) {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := s.db.QueryContext(ctx, contingentQuery+placeholders(len(ids))+")", args...)
	if err != nil {
		return nil, errors.Wrap(err, "query contingents")
	}
	defer rows.Close()

	out := make(map[int]contingentDetail, len(ids))
	for rows.Next() {
		var (
			id                          int
			ctype                       string
			d                           contingentDetail
			school, higher, independent linkedColumns
		)
		if err := rows.Scan(&id, &d.name, &ctype,
			&school.id, &school.Name, &school.State, &school.Zone,
			&higher.id, &higher.Name, &higher.State, &higher.Zone,
			&independent.id, &independent.Name, &independent.State, &independent.Zone); err != nil {
			return nil, errors.Wrap(err, "scan contingent")
		}
		d.contingentType = models.ContingentType(ctype)
		d.school = school.entity()
		d.higherInstitution = higher.entity()
		d.independent = independent.entity()
		out[id] = d
	}
	return out, errors.Wrap(rows.Err(), "iterate contingents")
}

type linkedColumns struct {
	id sql.NullInt64
	models.LinkedEntity
}

// entity is nil when the contingent has no link of this kind.
func (c linkedColumns) entity() *models.LinkedEntity {
	if !c.id.Valid {
		return nil
	}
	e := c.LinkedEntity
	return &e
}
