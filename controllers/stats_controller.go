package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"techlympics-stats/metrics"
	"techlympics-stats/models"
	"techlympics-stats/stats"
	"techlympics-stats/storage"
	"techlympics-stats/store"
	"techlympics-stats/utils"
)

// StatsController serves participation statistics reports.
type StatsController struct {
	Log     logrus.FieldLogger
	Metrics *metrics.Recorder
	Now     func() time.Time
}

// BuildReport loads rows for filter from src and aggregates them into a report of the given kind.
func (sc StatsController) BuildReport(ctx context.Context, src store.ParticipationSource, kind models.ReportKind, filter models.ReportFilter) (*models.Report, error) {
	if _, err := stats.Selectors(kind); err != nil {
		return nil, err
	}
	started := sc.now()

	rows, err := src.ParticipationRows(ctx, filter)
	if err != nil {
		sc.failure(kind, "load")
		return nil, errors.Wrap(err, "load participation rows")
	}
	root, err := stats.Build(rows, kind, filter)
	if err != nil {
		sc.failure(kind, "aggregate")
		return nil, err
	}

	report := &models.Report{
		ID:          uuid.NewString(),
		Kind:        kind,
		GeneratedAt: started.UTC(),
		Filter:      filter,
		Rows:        len(rows),
		Root:        root,
	}
	if sc.Metrics != nil {
		sc.Metrics.Observe(string(kind), len(rows), sc.now().Sub(started))
	}
	sc.log().WithFields(logrus.Fields{
		"report_id": report.ID,
		"kind":      kind,
		"rows":      len(rows),
	}).Info("report built")
	return report, nil
}

// GetReport handles GET /stats/{kind}.
func (sc StatsController) GetReport(src store.ParticipationSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, ok := sc.reportFromRequest(w, r, src)
		if !ok {
			return
		}
		utils.ResponseJSON(w, report)
	}
}

// ArchiveReport handles POST /stats/{kind}/archive.
func (sc StatsController) ArchiveReport(src store.ParticipationSource, archiver storage.Archiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if archiver == nil {
			utils.RespondWithError(w, http.StatusServiceUnavailable, models.Error{Message: "Report archiving is not configured"})
			return
		}
		report, ok := sc.reportFromRequest(w, r, src)
		if !ok {
			return
		}
		location, err := archiver.Archive(r.Context(), report)
		if err != nil {
			sc.failure(report.Kind, "archive")
			sc.log().WithError(err).WithField("report_id", report.ID).Error("archive report")
			utils.RespondWithError(w, http.StatusBadGateway, models.Error{Message: "Failed to archive report"})
			return
		}
		utils.ResponseJSONStatus(w, http.StatusCreated, map[string]string{"id": report.ID, "location": location})
	}
}

// ListKinds handles GET /stats.
func (sc StatsController) ListKinds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, map[string]interface{}{"kinds": stats.Kinds()})
	}
}

func (sc StatsController) reportFromRequest(w http.ResponseWriter, r *http.Request, src store.ParticipationSource) (*models.Report, bool) {
	kind := models.ReportKind(mux.Vars(r)["kind"])
	filter, err := utils.ParseReportFilter(r.URL.Query())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
		return nil, false
	}

	report, err := sc.BuildReport(r.Context(), src, kind, filter)
	switch {
	case errors.Is(err, stats.ErrUnknownKind):
		utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: err.Error()})
		return nil, false
	case err != nil:
		sc.log().WithError(err).WithField("kind", kind).Error("build report")
		utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to build report"})
		return nil, false
	}
	return report, true
}

func (sc StatsController) failure(kind models.ReportKind, stage string) {
	if sc.Metrics != nil {
		sc.Metrics.Failure(string(kind), stage)
	}
}

func (sc StatsController) log() logrus.FieldLogger {
	if sc.Log == nil {
		return logrus.StandardLogger()
	}
	return sc.Log
}

func (sc StatsController) now() time.Time {
	if sc.Now == nil {
		return time.Now()
	}
	return sc.Now()
}
