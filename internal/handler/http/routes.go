package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGzipBody, middleware.Compress(5, "application/json"))

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/logout", h.logout)

		r.Get("/api/subscriptions/plans", h.plans)
		r.Post("/api/calculator", h.calculate)

		r.Get("/api/data/export", h.exportData)
		r.Post("/api/data/import", h.importData)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes acting on the session user
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/api/user/current", h.current)
		r.Patch("/api/user/profile", h.updateProfile)
		r.Put("/api/user/survey", h.submitSurvey)
		r.Post("/api/user/meals", h.addMeal)
		r.Put("/api/user/steps", h.recordSteps)

		r.Get("/api/tasks/today", h.todayTasks)
		r.Put("/api/tasks/today", h.replaceTasks)
		r.Post("/api/tasks/today/{taskID}/toggle", h.toggleTask)

		r.Get("/api/subscriptions/{kind}", h.subscriptionStatus)
		r.Post("/api/subscriptions", h.activateSubscription)
	})

	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
