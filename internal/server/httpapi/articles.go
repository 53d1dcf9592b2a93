package httpapi

import (
	"net/http"
	"net/url"
	"time"

	"github.com/avolkovs/clippings/internal/server/models"
)

type articleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SourceURL   string `json:"source_url"`
}

type articleResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SourceURL   string    `json:"source_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func toArticleResponse(a *models.Article) articleResponse {
	return articleResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Title:       a.Title,
		Description: a.Description,
		SourceURL:   a.SourceURL,
		CreatedAt:   a.CreatedAt,
	}
}

func (req *articleRequest) validate() (string, bool) {
	if req.Title == "" {
		return "title is required", false
	}
	u, err := url.Parse(req.SourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "source_url must be an absolute http(s) URL", false
	}
	return "", true
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.articles.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		resp = append(resp, toArticleResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid article id")
		return
	}

	article, err := s.articles.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(article))
}

func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		writeBadRequest(w, msg)
		return
	}

	article := &models.Article{
		Title:       req.Title,
		Description: req.Description,
		SourceURL:   req.SourceURL,
	}

	created, err := s.articles.Create(r.Context(), callerFrom(r), article)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArticleResponse(created))
}

func (s *Server) handleUpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid article id")
		return
	}

	var req articleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		writeBadRequest(w, msg)
		return
	}

	article := &models.Article{
		Title:       req.Title,
		Description: req.Description,
		SourceURL:   req.SourceURL,
	}

	updated, err := s.articles.Update(r.Context(), callerFrom(r), id, article)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(updated))
}

func (s *Server) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid article id")
		return
	}

	if err := s.articles.Delete(r.Context(), callerFrom(r), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
