package main

import (
	"context"
	"flag"
	"os"

	"github.com/omniport/acadsync/internal/app/models"
	"github.com/omniport/acadsync/internal/bootstrap"
	"github.com/omniport/acadsync/internal/pkg/logger"
)

// One-shot ACAD pull for cron use, without the HTTP server.
func main() {
	kind := flag.String("kind", models.SyncKindStudents, "record set to pull: students or faculty")
	flag.Parse()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	defer dbPool.Close()

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup dependencies")
		os.Exit(1)
	}

	ctx := context.Background()

	var runErr error
	switch *kind {
	case models.SyncKindStudents:
		_, runErr = deps.SyncService.RunStudentSync(ctx)
	case models.SyncKindFaculty:
		_, runErr = deps.SyncService.RunFacultySync(ctx)
	default:
		lgr.Error().Str("kind", *kind).Msg("Unknown sync kind")
		os.Exit(2)
	}

	if runErr != nil {
		lgr.Error().Err(runErr).Str("kind", *kind).Msg("Sync run failed")
		os.Exit(1)
	}

	lgr.Info().Str("kind", *kind).Msg("Sync run complete")
}
