package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/simka-id/simka-backend/api/controllers"
	"github.com/simka-id/simka-backend/api/middleware"
	authsvc "github.com/simka-id/simka-backend/internal/auth"
	"github.com/simka-id/simka-backend/internal/members"
	"github.com/simka-id/simka-backend/internal/stats"
	"github.com/simka-id/simka-backend/pkg/auth/session"
	"github.com/simka-id/simka-backend/pkg/config"
	"github.com/simka-id/simka-backend/pkg/enums"
	"github.com/simka-id/simka-backend/pkg/logger"
	"github.com/simka-id/simka-backend/pkg/redis"
)

// Params carries everything the router needs. Redis may be nil in
// tests; the rate limiter and readiness check then skip it.
type Params struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       controllers.Pinger
	Redis    *redis.Client
	Sessions session.AccessSessionChecker

	Auth    authsvc.Service
	Members members.Service
	Stats   stats.Service
}

func NewRouter(p Params) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.CORS(p.Config.App.CORSOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		p.Config.AuthRateLimit.LoginWindow,
		p.Config.AuthRateLimit.LoginIPLimit,
		p.Config.AuthRateLimit.LoginUsernameLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.DB, redisPinger(p.Redis), p.Logger))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, rateStore(p.Redis), p.Logger)).
			Post("/login", controllers.Login(p.Auth, p.Logger))
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(p.Config.JWT, p.Sessions, p.Logger))
			r.Post("/logout", controllers.Logout(p.Auth, p.Logger))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(p.Config.JWT, p.Sessions, p.Logger))

		r.Get("/branches", controllers.ListBranches())

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.UserRoleBranchAdmin, p.Logger))

			r.Get("/dashboard", controllers.Dashboard(p.Stats, p.Logger))

			r.Route("/members", func(r chi.Router) {
				r.Get("/", controllers.ListMembers(p.Members, p.Logger))
				r.Post("/", controllers.CreateMember(p.Members, p.Logger))
				r.Get("/{id}", controllers.GetMember(p.Members, p.Logger))
				r.Put("/{id}", controllers.UpdateMember(p.Members, p.Logger))
				r.Delete("/{id}", controllers.DeleteMember(p.Members, p.Logger))
			})
		})
	})

	return r
}

// rateStore keeps a nil *redis.Client from turning into a non-nil interface.
func rateStore(client *redis.Client) middleware.RateLimiterStore {
	if client == nil {
		return nil
	}
	return client
}

func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
