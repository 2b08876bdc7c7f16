package server

import (
	"net/http"

	"github.com/go-chi/render"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func Ok(message string) Response {
	return Response{Status: StatusOK, Message: message}
}

func Error(message string) Response {
	return Response{Status: StatusError, Message: message}
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, Error(message))
}
