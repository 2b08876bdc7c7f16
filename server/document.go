package server

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/tbxark/lessonflow/document"
	"github.com/tbxark/lessonflow/types"
)

type DocumentRequest struct {
	Text  string             `json:"text" validate:"max=200000"`
	State types.SessionState `json:"state"`
}

func (s *Server) RenderDocument(w http.ResponseWriter, r *http.Request) {
	logger := s.logger(r, "documents")

	var req DocumentRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		logger.Error("failed to decode request body", slog.Any("error", err))
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	docReq, err := document.RequestFor(req.State, req.Text)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "Nothing to render")
		return
	}
	if s.renderer == nil {
		renderError(w, r, http.StatusBadGateway, document.ErrRendererUnavailable.Error())
		return
	}

	content, err := s.renderer.Render(r.Context(), docReq)
	if err != nil {
		logger.Error("render document",
			slog.String("document_type", string(docReq.DocumentType)),
			slog.Bool("unavailable", errors.Is(err, document.ErrRendererUnavailable)),
			slog.Any("error", err),
		)
		renderError(w, r, http.StatusBadGateway, "Document rendering failed")
		return
	}

	name := document.DownloadName(req.State, docReq)
	w.Header().Set("Content-Type", docReq.OutputFormat.ContentType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(content); err != nil {
		logger.Warn("write document", slog.Any("error", err))
	}
}
