package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/tbxark/lessonflow/agent"
)

func (s *Server) Turn(w http.ResponseWriter, r *http.Request) {
	logger := s.logger(r, "turn")

	var req agent.Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		logger.Error("failed to decode request body", slog.Any("error", err))
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		logger.Debug("invalid turn request", slog.Any("error", err))
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	resp, err := s.advance(r.Context(), &req)
	if err != nil {
		logger.Error("advance turn", slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Turn failed")
		return
	}
	logger.Debug("turn", slog.String("step", string(resp.State.CurrentStep)))
	render.JSON(w, r, resp)
}

func (s *Server) advance(ctx context.Context, req *agent.Request) (*agent.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.options.GenerationTimeout)
	defer cancel()
	return s.flow.Advance(ctx, req)
}
