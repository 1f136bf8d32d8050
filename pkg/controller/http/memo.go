package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/domain/model"
	"github.com/secmon-lab/datedmemo/pkg/usecase"
	"github.com/secmon-lab/datedmemo/pkg/utils/errutil"
	"github.com/secmon-lab/datedmemo/pkg/utils/logging"
	"github.com/secmon-lab/datedmemo/pkg/utils/safe"
)

type indexPage struct {
	Memos []*model.MemoView
}

type notFoundPage struct {
	BadURL   string
	LinkBack string
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	memos, err := s.memoUC.List(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to list memos"), http.StatusInternalServerError)
		return
	}

	for _, m := range memos {
		logging.From(r.Context()).Debug("memo", "id", m.ID, "date", m.Date, "label", m.Label)
	}

	s.pages.render(w, r, pageIndex, &indexPage{Memos: memos}, http.StatusOK)
}

func (s *Server) createHandler(w http.ResponseWriter, r *http.Request) {
	s.pages.render(w, r, pageCreate, nil, http.StatusOK)
}

func (s *Server) storeDataHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to parse form"), http.StatusBadRequest)
		return
	}

	for _, field := range []string{"text", "date"} {
		if _, ok := r.PostForm[field]; !ok {
			errutil.HandleHTTP(r.Context(), w, goerr.New("missing form field", goerr.V("field", field)), http.StatusBadRequest)
			return
		}
	}

	if _, err := s.memoUC.Create(r.Context(), r.PostForm.Get("text"), r.PostForm.Get("date")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, usecase.ErrInvalidDate) {
			status = http.StatusBadRequest
		}
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to store memo"), status)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) deleteDataHandler(w http.ResponseWriter, r *http.Request) {
	positions := parsePositions(r, r.URL.Query().Get("allChecked"))

	if err := s.memoUC.DeleteByPositions(r.Context(), positions); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to delete memos"), http.StatusInternalServerError)
		return
	}

	data, err := json.Marshal(map[string]bool{"result": true})
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal delete response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, data)
}

// parsePositions reads a comma-separated list of row positions. Entries that are not
// integers cannot name a row and are skipped.
func parsePositions(r *http.Request, raw string) []int {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var positions []int
	for _, item := range strings.Split(raw, ",") {
		p, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil {
			logging.From(r.Context()).Debug("ignoring non-numeric position", "value", item)
			continue
		}
		positions = append(positions, p)
	}
	return positions
}

func (s *Server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	logging.From(r.Context()).Debug("page not found", "path", r.URL.Path)

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	s.pages.render(w, r, pageNotFound, &notFoundPage{
		BadURL:   scheme + "://" + r.Host + r.URL.Path,
		LinkBack: "/",
	}, http.StatusNotFound)
}
