package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/tbxark/lessonflow/agent"
	"github.com/tbxark/lessonflow/command"
)

type SessionTurnRequest struct {
	Message string `json:"message" validate:"max=20000"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	*agent.Response
}

func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := s.logger(r, "sessions.create")

	id := uuid.NewString()
	ctx := agent.WithStateKey(r.Context(), id)
	resp, err := s.advance(ctx, &agent.Request{
		Message: command.SignalShowStep,
		State:   s.sessions.InitState(ctx),
	})
	if err != nil {
		logger.Error("advance turn", slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Session creation failed")
		return
	}
	if err = s.sessions.Write(ctx, resp.State); err != nil {
		logger.Error("write session", slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Session creation failed")
		return
	}
	logger.Debug("session created", slog.String("session_id", id))

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, SessionResponse{SessionID: id, Response: resp})
}

func (s *Server) SessionTurn(w http.ResponseWriter, r *http.Request) {
	logger := s.logger(r, "sessions.turn")

	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_id", id))
	ctx := agent.WithStateKey(r.Context(), id)

	var req SessionTurnRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		logger.Error("failed to decode request body", slog.Any("error", err))
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	exists, err := s.sessions.Exists(ctx)
	if err != nil {
		logger.Error("check session", slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Session lookup failed")
		return
	}
	if !exists {
		renderError(w, r, http.StatusNotFound, "Session not found")
		return
	}
	state, err := s.sessions.Read(ctx)
	if err != nil {
		logger.Error("read session", slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Session lookup failed")
		return
	}

	resp, err := s.advance(ctx, &agent.Request{Message: req.Message, State: state})
	if err != nil {
		logger.Error("advance turn", slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Turn failed")
		return
	}
	if err = s.sessions.Write(ctx, resp.State); err != nil {
		logger.Error("write session", slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Turn failed")
		return
	}
	render.JSON(w, r, SessionResponse{SessionID: id, Response: resp})
}

func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := s.logger(r, "sessions.delete")

	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	if err := s.sessions.Remove(agent.WithStateKey(r.Context(), id)); err != nil {
		logger.Error("remove session", slog.String("session_id", id), slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Session removal failed")
		return
	}
	render.JSON(w, r, Ok("Session removed"))
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid session id")
		return "", false
	}
	return id.String(), true
}
