package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/tbxark/lessonflow/agent"
	"github.com/tbxark/lessonflow/document"
)

// Flow advances one conversational turn.
type Flow interface {
	Advance(ctx context.Context, req *agent.Request) (*agent.Response, error)
}

type Options struct {
	GenerationTimeout time.Duration
}

type Server struct {
	log      *slog.Logger
	flow     Flow
	sessions agent.StateReadWriter
	renderer document.Renderer
	validate *validator.Validate
	options  Options
}

func New(log *slog.Logger, flow Flow, sessions agent.StateReadWriter, renderer document.Renderer, options Options) *Server {
	if options.GenerationTimeout <= 0 {
		options.GenerationTimeout = 300 * time.Second
	}
	return &Server{
		log:      log.With(slog.String("module", "http.server")),
		flow:     flow,
		sessions: sessions,
		renderer: renderer,
		validate: validator.New(),
		options:  options,
	}
}

func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, Error("Requested resource not found"))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, Error("Method not allowed"))
	})

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Post("/turn", s.Turn)
		v1.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.CreateSession)
			r.Post("/{sessionID}/turn", s.SessionTurn)
			r.Delete("/{sessionID}", s.DeleteSession)
		})
		v1.Post("/documents", s.RenderDocument)
	})
	return router
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, address string, shutdownTimeout time.Duration) error {
	httpServer := &http.Server{
		Handler:  s.Router(),
		ErrorLog: slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	s.log.Info("starting api server", slog.String("address", address))

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(listener)
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func (s *Server) logger(r *http.Request, handler string) *slog.Logger {
	return s.log.With(
		slog.String("handler", handler),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}
