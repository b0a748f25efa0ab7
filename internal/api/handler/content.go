package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/oookbaaa/Bridge-front-sub000/internal/api/middleware"
	"github.com/oookbaaa/Bridge-front-sub000/internal/api/response"
	"github.com/oookbaaa/Bridge-front-sub000/internal/backend"
	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
)

// ContentHandler proxies the tournament and news endpoints
type ContentHandler struct {
	backend *backend.Client
}

// NewContentHandler creates a new content handler
func NewContentHandler(client *backend.Client) *ContentHandler {
	return &ContentHandler{backend: client}
}

// contentID parses the numeric {id} path variable
func contentID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, NewInvalidRequestError("invalid id")
	}
	return id, nil
}

// Tournaments handles GET /api/v1/tournaments
func (h *ContentHandler) Tournaments(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())

	tournaments, err := h.backend.Tournaments(r.Context(), store.Token())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, tournaments)
}

// CreateTournament handles POST /api/v1/tournaments
func (h *ContentHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var t model.Tournament
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	store := middleware.GetStore(r.Context())
	created, err := h.backend.CreateTournament(r.Context(), store.Token(), &t)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, created)
}

// UpdateTournament handles PUT /api/v1/tournaments/{id}
func (h *ContentHandler) UpdateTournament(w http.ResponseWriter, r *http.Request) {
	id, err := contentID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var t model.Tournament
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	store := middleware.GetStore(r.Context())
	updated, err := h.backend.UpdateTournament(r.Context(), store.Token(), id, &t)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, updated)
}

// DeleteTournament handles DELETE /api/v1/tournaments/{id}
func (h *ContentHandler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	id, err := contentID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	store := middleware.GetStore(r.Context())
	if err := h.backend.DeleteTournament(r.Context(), store.Token(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// News handles GET /api/v1/news
func (h *ContentHandler) News(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())

	news, err := h.backend.News(r.Context(), store.Token())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, news)
}

// CreateNews handles POST /api/v1/news
func (h *ContentHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var n model.News
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	store := middleware.GetStore(r.Context())
	created, err := h.backend.CreateNews(r.Context(), store.Token(), &n)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, created)
}

// UpdateNews handles PUT /api/v1/news/{id}
func (h *ContentHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := contentID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var n model.News
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	store := middleware.GetStore(r.Context())
	updated, err := h.backend.UpdateNews(r.Context(), store.Token(), id, &n)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, updated)
}

// DeleteNews handles DELETE /api/v1/news/{id}
func (h *ContentHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := contentID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	store := middleware.GetStore(r.Context())
	if err := h.backend.DeleteNews(r.Context(), store.Token(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
