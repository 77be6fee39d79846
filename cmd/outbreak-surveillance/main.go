package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"strconv"
	"time"

	"log/slog"

	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/application/alerts"
	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/application/notifications"
	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database"
	alertsdb "github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database/alerts"
	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database/casereports"
	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/router"
	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/presentation/api"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "outbreak-surveillance"

type flagType int
type flagMap map[flagType]string

const (
	servicePort flagType = iota

	policiesFile
	contentFile
	reportsFile
	notificationsFile

	checkSchedule
	cleanupSchedule

	systemActorID
)

func defaultFlags() flagMap {
	return flagMap{
		servicePort: "8080",

		policiesFile:      "/opt/pesu/config/authz.rego",
		contentFile:       "/opt/pesu/config/content.yaml",
		reportsFile:       "",
		notificationsFile: "",

		checkSchedule:   "@hourly",
		cleanupSchedule: "@daily",

		systemActorID: "1",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion)
	defer cleanup()

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")

	content, err := openContentConfig(flags[contentFile])
	exitIf(err, logger, "could not load alert content configuration")

	connect := database.NewPostgreSQLConnector(ctx, database.LoadConfigFromEnv(ctx))

	caseRepo, err := casereports.NewCaseReportRepository(connect)
	exitIf(err, logger, "could not connect to case report repository")

	alertRepo, err := alertsdb.NewAlertRepository(connect)
	exitIf(err, logger, "could not connect to alert repository")

	if flags[reportsFile] != "" {
		reports, err := os.Open(flags[reportsFile])
		exitIf(err, logger, "could not open case reports file")

		err = caseRepo.Seed(ctx, reports)
		reports.Close()
		exitIf(err, logger, "could not seed case reports")
	}

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	notifier, err := openNotificationsConfig(flags[notificationsFile])
	exitIf(err, logger, "could not load notifications configuration")

	for _, topic := range []string{"alerts.alertCreated", "alerts.alertPublished", "alerts.alertResolved"} {
		err = messenger.RegisterTopicMessageHandler(topic, notifications.NewTopicMessageHandler(notifier))
		exitIf(err, logger, "failed to register notification handler", "topic", topic)
	}

	messenger.Start()
	defer messenger.Close()

	actorID, err := strconv.Atoi(flags[systemActorID])
	if err != nil || actorID <= 0 {
		logger.Error("system actor id must be a positive integer", "value", flags[systemActorID])
		os.Exit(1)
	}

	svc := alerts.New(alertRepo, caseRepo, content, messenger, alerts.Config{SystemActorID: uint(actorID)})

	scheduler, err := alerts.NewScheduler(svc, flags[checkSchedule], flags[cleanupSchedule])
	exitIf(err, logger, "could not create scheduler")

	scheduler.Start(ctx)
	defer scheduler.Stop()

	r, err := api.RegisterHandlers(ctx, router.New(serviceName), policies, svc)
	policies.Close()
	exitIf(err, logger, "failed to register handlers")

	apiPort := flags[servicePort]
	logger.Info("starting to listen for incoming connections", "port", apiPort)

	err = http.ListenAndServe(":"+apiPort, r)
	exitIf(err, logger, "failed to listen for incoming connections")
}

func openNotificationsConfig(path string) (notifications.Sender, error) {
	if path == "" {
		return notifications.New(nil), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := notifications.LoadConfiguration(f)
	if err != nil {
		return nil, err
	}

	return notifications.New(cfg), nil
}

func openContentConfig(path string) (*alerts.ContentConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return alerts.DefaultContentConfig(), nil
		}
		return nil, err
	}

	return alerts.NewContentConfig(f)
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])
	flags[contentFile] = envOrDef(ctx, "CONTENT_CONFIG_PATH", flags[contentFile])
	flags[reportsFile] = envOrDef(ctx, "CASE_REPORTS_SEED_PATH", flags[reportsFile])
	flags[notificationsFile] = envOrDef(ctx, "NOTIFICATIONS_CONFIG_PATH", flags[notificationsFile])

	flags[checkSchedule] = envOrDef(ctx, "ALERTS_CHECK_SCHEDULE", flags[checkSchedule])
	flags[cleanupSchedule] = envOrDef(ctx, "ALERTS_CLEANUP_SCHEDULE", flags[cleanupSchedule])

	flags[systemActorID] = envOrDef(ctx, "SYSTEM_ACTOR_ID", flags[systemActorID])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("content", "an alert content configuration file", apply(contentFile))
	flag.Func("reports", "a csv file of case reports to seed", apply(reportsFile))
	flag.Func("notifications", "a notification subscriber configuration file", apply(notificationsFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
