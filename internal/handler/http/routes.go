package http

import (
	"net/http"

	"github.com/MKhiriev/student-portal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Unknown paths and unsupported methods answer with
// an error envelope instead of chi's plain-text defaults.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/version", h.getVersion)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, r, http.StatusNotFound, models.Envelope[any]{Message: http.StatusText(http.StatusNotFound)})
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, r, http.StatusMethodNotAllowed, models.Envelope[any]{Message: http.StatusText(http.StatusMethodNotAllowed)})
	})

	return router
}
