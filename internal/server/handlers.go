package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jmoreau/formadvisor/internal/assistant"
	"github.com/jmoreau/formadvisor/internal/matching"
)

type recommendRequest struct {
	Profile matching.Profile `json:"profile"`
}

type courseDetails struct {
	Objectifs []string `json:"objectifs"`
	Prerequis []string `json:"prerequis"`
	Programme []string `json:"programme"`
	Lien      string   `json:"lien"`
}

type recommendResponse struct {
	Type              string         `json:"type"`
	RecommendedCourse string         `json:"recommended_course"`
	Reply             string         `json:"reply"`
	Details           *courseDetails `json:"details,omitempty"`
	Score             *float64       `json:"score,omitempty"`
	BestScore         *float64       `json:"best_score,omitempty"`
}

type queryRequest struct {
	Profile  matching.Profile     `json:"profile"`
	History  []assistant.Exchange `json:"history"`
	Question string               `json:"question"`
}

type queryResponse struct {
	Reply string `json:"reply"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result := s.strategy.Recommend(s.courses, &req.Profile)

	resp := recommendResponse{
		Type:              result.Type,
		RecommendedCourse: matching.MsgNoCourse,
		Reply:             result.Message,
	}

	if best := result.Best(); result.Matched() {
		resp.RecommendedCourse = best.Course.Title
		resp.Score = &best.Score
		resp.Details = &courseDetails{
			Objectifs: best.Course.Objectives,
			Prerequis: best.Course.Prerequisites,
			Programme: best.Course.Programme,
			Lien:      best.Course.Link,
		}
	}

	if result.Type == matching.ResultSuggestion {
		resp.BestScore = &result.BestScore
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	reply, err := s.responder.Reply(r.Context(), &req.Profile, req.History, req.Question)
	if err != nil {
		s.logger.Warn("responder failed, falling back to canned reply", zap.Error(err))
		reply, _ = assistant.Canned{}.Reply(r.Context(), &req.Profile, req.History, req.Question)
	}

	writeJSON(w, http.StatusOK, queryResponse{Reply: reply})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"courses": s.courses.Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
