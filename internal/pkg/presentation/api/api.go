package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/application/alerts"
	db "github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database/alerts"
	"github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/presentation/api/auth"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("outbreak-surveillance/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, svc alerts.AlertService) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, log, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/alerts", func(r chi.Router) {
				r.Get("/", queryAlertsHandler(log, svc))
				r.Get("/all", getAllAlertsHandler(log, svc))
				r.Get("/stats", getAlertStatsHandler(log, svc))
				r.Get("/{alertID}", getAlertDetailsHandler(log, svc))
				r.Post("/check", checkAlertsHandler(log, svc))
				r.Post("/{alertID}/publish", publishAlertHandler(log, svc))
				r.Post("/{alertID}/archive", archiveAlertHandler(log, svc))
				r.Post("/{alertID}/resolve", resolveAlertHandler(log, svc))
			})
		})

		r.Route("/public/alerts", func(r chi.Router) {
			r.Get("/", getPublicAlertsHandler(log, svc))
			r.Get("/{alertID}", getPublicAlertDetailsHandler(log, svc))
		})
	})

	return router, nil
}

func queryAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		status := r.URL.Query().Get("status")
		level := r.URL.Query().Get("level")

		var result []db.OutbreakAlert

		if status == "" && level == "" {
			result, err = svc.GetCurrentAutomaticAlerts(ctx)
		} else {
			result, err = svc.GetAlerts(ctx, status, level)
		}
		if err != nil {
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func getAllAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-all-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		result, err := svc.GetAlerts(ctx, r.URL.Query().Get("status"), r.URL.Query().Get("level"))
		if err != nil {
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func getAlertStatsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-alert-stats")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		stats, err := svc.Stats(ctx)
		if err != nil {
			requestLogger.Error("unable to fetch alert stats", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

func getAlertDetailsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID, ok := alertIDFromRequest(r, requestLogger, w)
		if !ok {
			return
		}

		alert, err := svc.GetByID(ctx, alertID)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			requestLogger.Debug("alert not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, alert)
	}
}

func checkAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "check-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		touched, err := svc.CheckAndCreateAutomaticAlerts(ctx)
		if err != nil {
			requestLogger.Error("detection pass failed", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]int{"alerts": touched})
	}
}

func publishAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		actor := auth.GetActorFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "publish-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID, ok := alertIDFromRequest(r, requestLogger, w)
		if !ok {
			return
		}

		err = svc.PublishAlert(ctx, alertID, actor.ID)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to publish alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func archiveAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "archive-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID, ok := alertIDFromRequest(r, requestLogger, w)
		if !ok {
			return
		}

		err = svc.ArchiveAlert(ctx, alertID)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to archive alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func resolveAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		actor := auth.GetActorFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "resolve-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID, ok := alertIDFromRequest(r, requestLogger, w)
		if !ok {
			return
		}

		err = svc.ResolveAlert(ctx, alertID, actor.ID)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to resolve alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getPublicAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-public-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		published, err := svc.GetPublishedAutomaticAlerts(ctx)
		if err != nil {
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		municipality := r.URL.Query().Get("municipality_id")
		level := r.URL.Query().Get("alert_level")

		active := lo.Filter(published, func(a db.OutbreakAlert, _ int) bool {
			if !a.IsActive {
				return false
			}
			if municipality != "" && strconv.FormatUint(uint64(a.MunicipalityID), 10) != municipality {
				return false
			}
			if level != "" && a.AlertLevel != level {
				return false
			}
			return true
		})

		writeJSON(w, http.StatusOK, active)
	}
}

func getPublicAlertDetailsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-public-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID, ok := alertIDFromRequest(r, requestLogger, w)
		if !ok {
			return
		}

		alert, err := svc.GetByID(ctx, alertID)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// residents only ever see published, still active alerts
		if alert.Status != db.AlertStatusPublished || !alert.IsActive {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, alert)
	}
}

func alertIDFromRequest(r *http.Request, log *slog.Logger, w http.ResponseWriter) (uint, bool) {
	id := chi.URLParam(r, "alertID")

	alertID, err := strconv.Atoi(id)
	if err != nil || alertID <= 0 {
		log.Error("alert id is invalid", "alert_id", id)
		w.WriteHeader(http.StatusBadRequest)
		return 0, false
	}

	return uint(alertID), true
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}
