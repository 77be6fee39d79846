package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"log/slog"

	"github.com/open-policy-agent/opa/v1/rego"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

type actorContextKey struct{ name string }

var actorCtxKey = &actorContextKey{"actor"}

var tracer = otel.Tracer("outbreak-surveillance/authz")

// Actor is the authenticated portal user as resolved by the
// authorization policy.
type Actor struct {
	ID    uint
	Roles []string
}

func (a Actor) HasRole(role string) bool {
	return lo.Contains(a.Roles, role)
}

// NewAuthenticator returns a middleware that validates the bearer token
// on incoming requests against the provided rego policy and stores the
// resolved actor in the request context.
func NewAuthenticator(ctx context.Context, logger *slog.Logger, policies io.Reader) (func(http.Handler) http.Handler, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	query, err := rego.New(
		rego.Query("x = data.pesu.authz.allow"),
		rego.Module("authz.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			_, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			token := r.Header.Get("Authorization")

			if token == "" || !strings.HasPrefix(token, "Bearer ") {
				err = errors.New("authorization header missing")
				logger.Info(err.Error())
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			input := map[string]any{
				"token": token[7:],
			}

			results, err := query.Eval(r.Context(), rego.EvalInput(input))
			if err != nil {
				logger.Error("opa eval failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			if len(results) == 0 {
				err = errors.New("opa query could not be satisfied")
				logger.Error("auth failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			binding := results[0].Bindings["x"]

			// a denied request comes back as a single bool
			allowed, ok := binding.(bool)
			if ok && !allowed {
				err = errors.New("authorization failed")
				logger.Warn(err.Error())
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			result, ok := binding.(map[string]any)
			if !ok {
				err = errors.New("unexpected result type")
				logger.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			actor, err := actorFromBinding(result)
			if err != nil {
				logger.Error("bad response from authz policy engine", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			r = r.WithContext(WithActor(r.Context(), actor))

			next.ServeHTTP(w, r)
		})
	}, nil
}

func actorFromBinding(binding map[string]any) (Actor, error) {
	actor := Actor{}

	userID, ok := binding["user_id"].(json.Number)
	if !ok {
		return Actor{}, errors.New("user_id missing from policy response")
	}

	id, err := userID.Int64()
	if err != nil || id <= 0 {
		return Actor{}, errors.New("user_id is not a valid identifier")
	}

	actor.ID = uint(id)

	anyRoles, ok := binding["roles"].([]any)
	if !ok {
		return Actor{}, errors.New("roles missing from policy response")
	}

	for _, r := range anyRoles {
		role, ok := r.(string)
		if !ok {
			return Actor{}, errors.New("roles must be strings")
		}
		actor.Roles = append(actor.Roles, role)
	}

	return actor, nil
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}

// GetActorFromContext returns the authenticated actor, or a zero valued
// actor when the request did not pass through the authenticator.
func GetActorFromContext(ctx context.Context) Actor {
	actor, ok := ctx.Value(actorCtxKey).(Actor)
	if !ok {
		return Actor{}
	}

	return actor
}
