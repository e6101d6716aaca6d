package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kasuboski/vodz/pkg/manager"
	"go.uber.org/zap"
)

const shutdownTimeout = 3 * time.Second

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response,omitempty"`
}

// Server exposes the catalog over http
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    *manager.CatalogManager
}

// New creates a new catalog server
func New(logger *zap.SugaredLogger, manager *manager.CatalogManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	return writeBytes(w, status, b)
}

func writeBytes(w http.ResponseWriter, status int, b []byte) error {
	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	_, err := w.Write(b)
	return err
}

// Router builds the routes of the server
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/titles", s.ListTitles()).Methods(http.MethodGet)
	v1.HandleFunc("/titles/{id}", s.GetTitle()).Methods(http.MethodGet)
	v1.HandleFunc("/categories", s.ListCategories()).Methods(http.MethodGet)
	v1.HandleFunc("/playlist", s.Playlist()).Methods(http.MethodGet)
	v1.HandleFunc("/stats", s.Stats()).Methods(http.MethodGet)

	v1.HandleFunc("/sync/runs", s.ListSyncRuns()).Methods(http.MethodGet)
	v1.HandleFunc("/sync/status", s.SyncStatus()).Methods(http.MethodGet)

	admin := v1.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/sync", s.TriggerFullSync()).Methods(http.MethodPost)
	admin.HandleFunc("/ambiguous", s.TriggerAmbiguityPass()).Methods(http.MethodPost)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.ExposedHeaders([]string{"ETag"}),
	)(rtr)
}

// Serve serves until ctx is done and then shuts the server down
func (s Server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Infow("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.baseLogger.Info("shutting down server")
	return srv.Shutdown(shutdownCtx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
