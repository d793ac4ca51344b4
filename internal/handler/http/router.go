package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/restoops/staff-backend-go/internal/domain/user"
	"github.com/restoops/staff-backend-go/internal/handler/http/middleware"
	"github.com/restoops/staff-backend-go/internal/pkg/jwt"
)

// RouterConfig carries the settings NewRouter needs from the app config.
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth         AuthHandler
	Shift        ShiftHandler
	Fine         FineHandler
	Quest        QuestHandler
	Salary       SalaryHandler
	Employee     EmployeeHandler
	Organization OrganizationHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(middleware.Metrics)
	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.With(middleware.RequirePermission(user.PermissionShiftViewAll)).
				Get("/shifts", h.Shift.GetShiftSummary)

			r.Route("/waiter/{waiterId}", func(r chi.Router) {
				r.Get("/shift/status", h.Shift.GetShiftStatus)
				r.With(middleware.RequirePermission(user.PermissionQuestView)).
					Get("/quests", h.Quest.ListEmployeeQuests)
				r.With(middleware.RequirePermission(user.PermissionSalaryView)).
					Get("/salary", h.Salary.GetSalary)
				r.With(middleware.RequirePermission(user.PermissionShiftEdit)).
					Put("/shift/time", h.Shift.UpdateShiftTime)
			})

			r.Route("/quests", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionQuestViewAll)).
					Get("/{questId}", h.Quest.GetQuestDetail)
				r.With(middleware.RequirePermission(user.PermissionQuestCreate)).
					Post("/", h.Quest.CreateQuest)
			})

			r.With(middleware.RequirePermission(user.PermissionFineCreate)).
				Post("/fines", h.Fine.CreateFine)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionMasterDataView))
				r.Get("/employees", h.Employee.ListEmployees)
				r.Get("/organizations", h.Organization.ListOrganizations)
			})
		})
	})
	return r
}
