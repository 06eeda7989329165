package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type contextKey struct{}

var actorKey = contextKey{}

// Middleware разбирает Bearer-токен и кладёт Actor в контекст запроса.
// Дальше сессия передаётся сервисам явно, из глобального состояния она
// не читается.
func Middleware(log middlewareLogger, parser TokenParser) mux.MiddlewareFunc {
	authLog := log.With()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			actor, err := parser.Parse(token)
			if err != nil {
				authLog.Warn("rejected token",
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err.Error()),
				)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(entities.Actor)
	return actor, ok
}
