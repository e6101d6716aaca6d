package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/kasuboski/vodz/pkg/manager"
	"github.com/kasuboski/vodz/pkg/pagination"
	"github.com/kasuboski/vodz/pkg/playlist"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/oapi-codegen/nullable"
	"go.uber.org/zap"
)

// TitleResponse is a title as served over the api. Candidates are only present for ambiguous titles.
type TitleResponse struct {
	manager.TitleDetail
	Candidates nullable.Nullable[[]storage.Candidate] `json:"candidates,omitempty"`
}

type TitlePageResponse struct {
	Titles []TitleResponse `json:"titles"`
	Meta   pagination.Meta `json:"meta"`
}

func toTitleResponse(d manager.TitleDetail) TitleResponse {
	resp := TitleResponse{TitleDetail: d}
	if !d.Ambiguous {
		return resp
	}

	if d.Candidates == nil {
		resp.Candidates = nullable.NewNullNullable[[]storage.Candidate]()
		return resp
	}

	resp.Candidates = nullable.NewNullableWithValue(d.Candidates)
	return resp
}

func parseTitleQuery(r *http.Request) (manager.TitleQuery, error) {
	qp := r.URL.Query()

	params, err := ParsePaginationParams(r)
	if err != nil {
		return manager.TitleQuery{}, err
	}

	q := manager.TitleQuery{
		Query:       strings.TrimSpace(qp.Get("q")),
		CategoryKey: qp.Get("categoryKey"),
		Page:        params.Page,
		PageSize:    params.PageSize,
	}

	if q.Year, err = optionalParam(qp, "year", strconv.Atoi); err != nil {
		return q, err
	}
	if q.MinRating, err = optionalParam(qp, "minRating", parseFloat); err != nil {
		return q, err
	}
	if q.Ambiguous, err = optionalParam(qp, "ambiguous", strconv.ParseBool); err != nil {
		return q, err
	}

	return q, nil
}

// etag is a strong validator over the response body
func etag(b []byte) string {
	sum := sha256.Sum256(b)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func matchesETag(header, tag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || candidate == tag || strings.TrimPrefix(candidate, "W/") == tag {
			return true
		}
	}
	return false
}

// ListTitles lists titles with optional filters
func (s Server) ListTitles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		q, err := parseTitleQuery(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		page, err := s.manager.ListTitles(r.Context(), q)
		if err != nil {
			log.Errorw("failed to list titles", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		titles := make([]TitleResponse, 0, len(page.Titles))
		for _, t := range page.Titles {
			titles = append(titles, toTitleResponse(t))
		}

		b, err := json.Marshal(GenericResponse{
			Response: TitlePageResponse{
				Titles: titles,
				Meta:   page.Meta,
			},
		})
		if err != nil {
			log.Errorw("failed to encode titles", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		tag := etag(b)
		w.Header().Set("ETag", tag)
		if matchesETag(r.Header.Get("If-None-Match"), tag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		if err := writeBytes(w, http.StatusOK, b); err != nil {
			log.Errorw("failed to write response", zap.Error(err))
		}
	}
}

// GetTitle returns a single title with its metadata
func (s Server) GetTitle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		vars := mux.Vars(r)
		id, err := strconv.ParseInt(vars["id"], 10, 64)
		if err != nil || id < 1 {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid title id: %q", vars["id"]))
			return
		}

		detail, err := s.manager.GetTitle(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, fmt.Errorf("title %d not found", id))
			return
		}
		if err != nil {
			log.Errorw("failed to get title", zap.Int64("id", id), zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: toTitleResponse(*detail),
		})
	}
}

// ListCategories lists the provider categories
func (s Server) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		categories, err := s.manager.ListCategories(r.Context())
		if err != nil {
			log.Errorw("failed to list categories", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: categories,
		})
	}
}

// Playlist renders matched titles as an m3u playlist
func (s Server) Playlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		qp := r.URL.Query()
		limit, err := intParam(qp, playlist.DefaultLimit, 1, "limit")
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		var buf bytes.Buffer
		if err := s.manager.WritePlaylist(r.Context(), &buf, qp.Get("genre"), limit); err != nil {
			log.Errorw("failed to build playlist", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		w.Header().Set("content-type", playlist.ContentType)
		if _, err := w.Write(buf.Bytes()); err != nil {
			log.Errorw("failed to write playlist", zap.Error(err))
		}
	}
}

// Stats summarizes how much of the catalog is matched
func (s Server) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		stats, err := s.manager.Stats(r.Context())
		if err != nil {
			log.Errorw("failed to get catalog stats", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: stats,
		})
	}
}
