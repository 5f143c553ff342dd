package handlers

import (
	"FarmKeeper/internal/config"
	"FarmKeeper/internal/middleware"
	"FarmKeeper/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler wires middleware, routes and the per-resource handlers.
func NewHandler(
	userService *service.UserService,
	farmService *service.FarmService,
	animalService *service.AnimalService,
	farmTypeService *service.FarmTypeService,
	productionTypeService *service.ProductionTypeService,
	statsService *service.StatsService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithMetrics)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	requireAuth := middleware.RequireAuth(cfg.AuthSecret)

	userHandler := NewUserHandler(userService, logger)
	farmHandler := NewFarmHandler(farmService, logger)
	animalHandler := NewAnimalHandler(animalService, logger)
	farmTypeHandler := NewFarmTypeHandler(farmTypeService, logger)
	productionTypeHandler := NewProductionTypeHandler(productionTypeService, logger)
	dashboardHandler := NewDashboardHandler(statsService, logger)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", userHandler.List)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})
	})

	r.Route("/farms", func(r chi.Router) {
		r.Get("/", farmHandler.List)
		r.Get("/{id}", farmHandler.GetByID)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", farmHandler.Create)
			r.Put("/{id}", farmHandler.Update)
			r.Delete("/{id}", farmHandler.Delete)
		})
	})

	r.Route("/animals", func(r chi.Router) {
		r.Get("/farm/{farmId}", animalHandler.ListByFarm)
		r.Get("/{id}", animalHandler.GetByID)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", animalHandler.Create)
			r.Put("/{id}", animalHandler.Update)
			r.Delete("/{id}", animalHandler.Delete)
		})
	})

	r.Route("/farm-types", func(r chi.Router) {
		r.Get("/", farmTypeHandler.List)
		r.Get("/{id}", farmTypeHandler.GetByID)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", farmTypeHandler.Create)
			r.Put("/{id}", farmTypeHandler.Update)
			r.Delete("/{id}", farmTypeHandler.Delete)
		})
	})

	r.Route("/production-types", func(r chi.Router) {
		r.Get("/", productionTypeHandler.List)
		r.Get("/{id}", productionTypeHandler.GetByID)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", productionTypeHandler.Create)
			r.Put("/{id}", productionTypeHandler.Update)
			r.Delete("/{id}", productionTypeHandler.Delete)
		})
	})

	r.Get("/dashboard/stats", dashboardHandler.GetStats)

	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(cfg.UploadDir))))
	r.Handle("/metrics", middleware.MetricsHandler())

	return &Handler{Router: r}
}
