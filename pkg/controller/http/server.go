package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/domain/model"
)

// MemoUseCase is the subset of the memo use case the HTTP surface calls
type MemoUseCase interface {
	List(ctx context.Context) ([]*model.MemoView, error)
	Create(ctx context.Context, text, dateInput string) (*model.Memo, error)
	DeleteByPositions(ctx context.Context, positions []int) error
}

type Server struct {
	router    *chi.Mux
	memoUC    MemoUseCase
	pages     *pages
	accessLog bool
}

type Options func(*Server)

// WithAccessLog toggles the per-request access log (enabled by default)
func WithAccessLog(enabled bool) Options {
	return func(s *Server) {
		s.accessLog = enabled
	}
}

func New(memoUC MemoUseCase, opts ...Options) (*Server, error) {
	if memoUC == nil {
		return nil, goerr.New("memo use case is required")
	}

	pages, err := loadPages()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load page templates")
	}

	r := chi.NewRouter()

	s := &Server{
		router:    r,
		memoUC:    memoUC,
		pages:     pages,
		accessLog: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	if s.accessLog {
		r.Use(accessLogger)
	}
	r.Use(middleware.Recoverer)

	r.Get("/", s.indexHandler)
	r.Get("/index", s.indexHandler)
	r.Get("/create", s.createHandler)
	r.Post("/store_data", s.storeDataHandler)
	r.Get("/delete_data", s.deleteDataHandler)

	r.NotFound(s.notFoundHandler)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
