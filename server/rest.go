package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/newscurator/pkg/domain"
	"github.com/umputun/newscurator/pkg/recommender"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// recommendedHandler returns the personalized recommendation list
func (s *Server) recommendedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := recommender.DefaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	articles, err := s.engine.Recommendations(ctx, limit)
	if err != nil {
		log.Printf("[ERROR] failed to get recommendations: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"articles": articles,
		"count":    len(articles),
	})
}

// reactionHandler records a like/dislike reaction for an article
func (s *Server) reactionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	articleID := r.PathValue("id")
	if articleID == "" {
		renderError(w, r, fmt.Errorf("article ID is required"), http.StatusBadRequest)
		return
	}

	var body struct {
		Reaction string `json:"reaction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	err := s.engine.ProcessFeedback(ctx, articleID, domain.ReactionKind(body.Reaction))
	if errors.Is(err, recommender.ErrInvalidReaction) {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to process feedback: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"message": "reaction recorded"})
}

// preferencesHandler returns the preference profile summary
func (s *Server) preferencesHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := s.engine.Profile(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get profile: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, profile)
}

// resetHandler clears all user preferences and reactions
func (s *Server) resetHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.ResetUserData(r.Context()); err != nil {
		log.Printf("[ERROR] failed to reset user data: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"message": "user preferences reset"})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
