package rest

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/isbleu/concept/config"
	"github.com/isbleu/concept/internal/transport/rest/middleware"
	"github.com/rs/cors"
)

// NewRouter wires every route. Static paths must be registered before /concepts/{id}.
func NewRouter(cfg *config.Config, ctrl *Controller) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logger, middleware.Recover)

	auth := middleware.BasicAuth(cfg.Auth)
	guarded := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", ctrl.Health).Methods(http.MethodGet)

	api.HandleFunc("/concepts", ctrl.ListConcepts).Methods(http.MethodGet)
	api.Handle("/concepts", guarded(ctrl.CreateConcept)).Methods(http.MethodPost)
	api.HandleFunc("/concepts/export", ctrl.ExportConcepts).Methods(http.MethodGet)
	api.HandleFunc("/concepts/trash", ctrl.ListTrash).Methods(http.MethodGet)
	api.Handle("/concepts/trash/restore/{id}", guarded(ctrl.RestoreConcept)).Methods(http.MethodPost)
	api.Handle("/concepts/trash/{id}", guarded(ctrl.PurgeConcept)).Methods(http.MethodDelete)
	api.HandleFunc("/concepts/{id}", ctrl.GetConcept).Methods(http.MethodGet)
	api.Handle("/concepts/{id}", guarded(ctrl.UpdateConcept)).Methods(http.MethodPut)
	api.Handle("/concepts/{id}", guarded(ctrl.DeleteConcept)).Methods(http.MethodDelete)
	api.HandleFunc("/concepts/{id}/stocks", ctrl.GetConceptQuotes).Methods(http.MethodGet)

	api.HandleFunc("/quotes/{code}", ctrl.GetStockQuote).Methods(http.MethodGet)

	api.HandleFunc("/charts/minute/{code}", ctrl.MinuteChart).Methods(http.MethodGet)
	api.HandleFunc("/charts/daily/{code}", ctrl.DailyChart).Methods(http.MethodGet)

	api.PathPrefix("/").HandlerFunc(ctrl.NotFound)

	if cfg.HTTP.StaticDir != "" {
		r.PathPrefix("/").Handler(spaHandler{dir: cfg.HTTP.StaticDir})
	}

	return cors.New(cors.Options{
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}).Handler(r)
}

// spaHandler serves files from dir and falls back to index.html for unknown paths.
type spaHandler struct {
	dir string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() || !strings.HasPrefix(path, filepath.Clean(h.dir)) {
		http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
		return
	}

	http.FileServer(http.Dir(h.dir)).ServeHTTP(w, r)
}
