package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/kasuboski/vodz/pkg/manager"
	"go.uber.org/zap"
)

const defaultRunsLimit = 20

type TriggerResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

type SyncStatusResponse struct {
	Busy bool `json:"busy"`
}

// TriggerFullSync starts a full sync in the background
func (s Server) TriggerFullSync() http.HandlerFunc {
	return s.trigger(s.manager.TriggerFullSync)
}

// TriggerAmbiguityPass starts re-resolving ambiguous titles in the background
func (s Server) TriggerAmbiguityPass() http.HandlerFunc {
	return s.trigger(s.manager.TriggerAmbiguityPass)
}

func (s Server) trigger(start func(context.Context) (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := start(r.Context())
		if errors.Is(err, manager.ErrSyncInProgress) {
			writeErrorResponse(w, http.StatusConflict, err)
			return
		}
		if errors.Is(err, manager.ErrShuttingDown) {
			writeErrorResponse(w, http.StatusServiceUnavailable, err)
			return
		}
		if err != nil {
			log.Errorw("failed to start run", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, TriggerResponse{
			Status: "started",
			ID:     id,
		})
	}
}

// ListSyncRuns lists the most recent catalog sync runs
func (s Server) ListSyncRuns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		limit, err := intParam(r.URL.Query(), defaultRunsLimit, 1, "limit")
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		runs, err := s.manager.ListSyncRuns(r.Context(), limit)
		if err != nil {
			log.Errorw("failed to list sync runs", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: runs,
		})
	}
}

// SyncStatus reports whether a sync is currently running
func (s Server) SyncStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, GenericResponse{
			Response: SyncStatusResponse{Busy: s.manager.SyncBusy()},
		})
	}
}
