package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/application/alerts"
	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database"
	alertsdb "github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database/alerts"
	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database/casereports"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const serviceName string = "alerts-check"

// alerts-check runs a single detection pass and exits, so that the
// passes can be driven by an external cron or a k8s CronJob instead of
// the long running service.
func main() {
	runCleanup := flag.Bool("cleanup", false, "run the cleanup pass instead of the detection pass")
	seedFile := flag.String("seed", "", "a csv file of case reports to seed before the pass")
	flag.Parse()

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	err := run(ctx, *runCleanup, *seedFile)
	if err != nil {
		logger.Error("pass failed", "err", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, runCleanup bool, seedFile string) error {
	logger := logging.GetFromContext(ctx)

	connect := database.NewPostgreSQLConnector(ctx, database.LoadConfigFromEnv(ctx))

	caseRepo, err := casereports.NewCaseReportRepository(connect)
	if err != nil {
		return err
	}

	alertRepo, err := alertsdb.NewAlertRepository(connect)
	if err != nil {
		return err
	}

	if seedFile != "" {
		reports, err := os.Open(seedFile)
		if err != nil {
			return err
		}

		err = caseRepo.Seed(ctx, reports)
		reports.Close()
		if err != nil {
			return err
		}
	}

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	if err != nil {
		return err
	}

	messenger.Start()
	defer messenger.Close()

	actorID := env.GetVariableOrDefault(ctx, "SYSTEM_ACTOR_ID", "1")

	svc := alerts.New(alertRepo, caseRepo, alerts.DefaultContentConfig(), messenger, parseConfig(actorID))

	if runCleanup {
		retired, err := svc.CleanupInvalidAlerts(ctx)
		if err != nil {
			return err
		}

		logger.Info("cleanup pass done", "retired", retired)
		return nil
	}

	touched, err := svc.CheckAndCreateAutomaticAlerts(ctx)
	if err != nil {
		return err
	}

	logger.Info("detection pass done", "alerts", touched)
	return nil
}

func parseConfig(actorID string) alerts.Config {
	cfg := alerts.DefaultConfig()

	id, err := strconv.Atoi(actorID)
	if err == nil && id > 0 {
		cfg.SystemActorID = uint(id)
	}

	return cfg
}
