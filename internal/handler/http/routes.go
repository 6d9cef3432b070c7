package http

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRecovery)
	router.Use(h.withRequestLogger)
	router.Use(h.withLogging)
	router.Use(h.withNegotiation)
	router.Use(h.withIdentity)

	router.Get("/", h.home)

	// credential lifecycle, open to everyone
	router.Route("/auth", func(r chi.Router) {
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
	})

	// in-memory user collection; browsers authenticate for reads,
	// API clients authenticate for writes
	router.Route("/users", func(r chi.Router) {
		r.With(h.requireHTMLAuth).Get("/", h.listUsers)
		r.With(h.requireAPIAuth).Post("/", h.createUser)
		r.Route("/{id}", func(r chi.Router) {
			r.With(h.requireHTMLAuth).Get("/", h.showUser)
			r.With(h.requireAPIAuth).Put("/", h.replaceUser)
			r.With(h.requireAPIAuth).Delete("/", h.deleteUser)
		})
	})

	// article surfaces: document store for HTML, in-memory for text
	router.Route("/articles", func(r chi.Router) {
		r.With(h.requireHTMLAuth).Get("/", h.listArticles)
		r.With(h.requireAPIAuth).Post("/", h.createArticle)
		r.Route("/{id}", func(r chi.Router) {
			r.With(h.requireHTMLAuth).Get("/", h.showArticle)
			r.With(h.requireAPIAuth).Put("/", h.replaceArticle)
			r.With(h.requireAPIAuth).Delete("/", h.deleteArticle)
		})
	})

	router.With(h.requireAuth).Get("/protected", h.protected)

	router.Post("/preferences/theme", h.saveTheme)

	router.Get("/mongo-demo/articles", h.mongoDemo)

	return router
}
