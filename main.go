package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"techlympics-stats/config"
	"techlympics-stats/controllers"
	"techlympics-stats/driver"
	"techlympics-stats/metrics"
	"techlympics-stats/models"
	"techlympics-stats/render"
	"techlympics-stats/storage"
	"techlympics-stats/store"
	"techlympics-stats/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is what every command needs once configuration is loaded.
type app struct {
	cfg *config.Config
	log *logrus.Logger
	db  *sql.DB
}

func setup(ctx context.Context, envFile string) (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger()
	db, err := driver.ConnectDB(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, db: db}, nil
}

func (a *app) store() *store.SQLStore {
	return store.NewSQLStore(a.db,
		store.WithConcurrency(a.cfg.LookupConcurrency),
		store.WithBatchSize(a.cfg.LookupBatchSize),
		store.WithLogger(a.log),
	)
}

// archiver returns nil when no bucket is configured.
func (a *app) archiver() (storage.Archiver, error) {
	if !a.cfg.Archive.Enabled() {
		return nil, nil
	}
	s3, err := storage.NewS3Archiver(a.cfg.Archive)
	if err != nil {
		return nil, err
	}
	return s3, nil
}

func newRootCmd() *cobra.Command {
	var envFile string
	root := &cobra.Command{
		Use:          "techlympics-stats",
		Short:        "Participation statistics for Techlympics events",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(newServeCmd(&envFile), newReportCmd(&envFile), newMigrateCmd(&envFile))
	return root
}

func newServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve statistics reports over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := setup(ctx, *envFile)
			if err != nil {
				return err
			}
			defer a.db.Close()

			archiver, err := a.archiver()
			if err != nil {
				return err
			}
			sc := controllers.StatsController{Log: a.log, Metrics: metrics.NewRecorder()}
			srv := &http.Server{
				Addr:              a.cfg.HTTPAddr,
				Handler:           controllers.NewRouter(sc, a.store(), archiver),
				ReadHeaderTimeout: 10 * time.Second,
				WriteTimeout:      2 * time.Minute,
			}

			errc := make(chan error, 1)
			go func() {
				a.log.WithField("addr", a.cfg.HTTPAddr).Info("server started")
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if !errors.Is(err, http.ErrServerClosed) {
					return errors.Wrap(err, "listen")
				}
				return nil
			case <-ctx.Done():
			}

			a.log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

type reportOptions struct {
	kind           string
	eventID        int
	contestIDs     []int
	state          string
	zone           string
	contingentType string
	format         string
	depth          int
	archive        bool
}

func newReportCmd(envFile *string) *cobra.Command {
	var opts reportOptions
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build one report and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.format != "table" && opts.format != "json" {
				return errors.Errorf("unknown format %q", opts.format)
			}
			filter, err := opts.filter()
			if err != nil {
				return err
			}

			a, err := setup(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			defer a.db.Close()

			sc := controllers.StatsController{Log: a.log}
			report, err := sc.BuildReport(cmd.Context(), a.store(), models.ReportKind(opts.kind), filter)
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), report, opts.format, opts.depth); err != nil {
				return err
			}

			if !opts.archive {
				return nil
			}
			archiver, err := a.archiver()
			if err != nil {
				return err
			}
			if archiver == nil {
				return errors.New("--archive needs ARCHIVE_BUCKET to be set")
			}
			location, err := archiver.Archive(cmd.Context(), report)
			if err != nil {
				return err
			}
			a.log.WithField("location", location).Info("report archived")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.kind, "kind", string(models.ReportByCategory), "report kind: category, state, zone or contingent")
	f.IntVar(&opts.eventID, "event", 0, "restrict to one event")
	f.IntSliceVar(&opts.contestIDs, "contest", nil, "restrict to contest ids")
	f.StringVar(&opts.state, "state", "", "restrict to one state")
	f.StringVar(&opts.zone, "zone", "", "restrict to one zone")
	f.StringVar(&opts.contingentType, "contingent-type", "", "restrict to one contingent type")
	f.StringVar(&opts.format, "format", "table", "output format: table or json")
	f.IntVar(&opts.depth, "depth", 0, "table depth to print, 0 for all levels")
	f.BoolVar(&opts.archive, "archive", false, "also archive the report to S3")
	return cmd
}

func (o reportOptions) filter() (models.ReportFilter, error) {
	f := models.ReportFilter{
		EventID:        o.eventID,
		ContestIDs:     o.contestIDs,
		State:          o.state,
		Zone:           o.zone,
		ContingentType: models.ContingentType(o.contingentType),
	}
	return f, utils.ValidateFilter(f)
}

func writeReport(w io.Writer, report *models.Report, format string, depth int) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	_, err := fmt.Fprintln(w, render.Table(report, depth))
	return err
}

func newMigrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			defer a.db.Close()

			if err := driver.Migrate(a.db, driver.MySQL); err != nil {
				return err
			}
			a.log.Info("migrations applied")
			return nil
		},
	}
}
