// Package server exposes a todo list over JSON RPC and hosts the web UI.
//
// The server owns the only copy of the list for the lifetime of the
// process. Every request holds the server's lock until it finishes, so
// mutations never interleave.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/todo"
	"github.com/amonks/tasklist/web"
)

// Options configures a server.
type Options struct {
	// Seed is the initial list, copied on start.
	Seed []todo.Todo

	// Language selects labels and text collation. Defaults to Japanese.
	Language string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// NewID generates todo IDs. Defaults to uuid.NewString.
	NewID func() string

	Logger *log.Logger
}

// Server handles todo RPCs.
type Server struct {
	labels   todo.Labels
	language string
	now      func() time.Time
	logger   *log.Logger

	mu   sync.Mutex
	list *todo.List
}

const shutdownTimeout = 5 * time.Second

// New creates a server holding a copy of opts.Seed.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "tasklist: ", log.LstdFlags)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	labels := todo.LabelsFor(opts.Language)
	list := todo.NewList(opts.Seed, todo.ListOptions{
		NewID:    opts.NewID,
		Language: labels.Language,
	})
	return &Server{
		labels:   labels,
		language: labels.Language.String(),
		now:      now,
		logger:   logger,
		list:     list,
	}
}

// Handler returns the HTTP handler for todo RPCs and the web UI.
func (s *Server) Handler() http.Handler {
	return s.handler("")
}

func (s *Server) handler(baseURL string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/view", s.handleView)
	mux.HandleFunc("/tasks/create", s.handleCreate)
	mux.HandleFunc("/tasks/update", s.handleUpdate)
	mux.HandleFunc("/tasks/delete", s.handleDelete)
	mux.HandleFunc("/tasks/show", s.handleShow)
	mux.HandleFunc("/info", s.handleInfo)
	webHandler := web.NewHandler(web.Options{BaseURL: baseURL, Labels: s.labels, Now: s.now})
	mux.Handle("/web/", webHandler)
	mux.Handle("/web", http.RedirectHandler("/web/tasks", http.StatusFound))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/web/tasks", http.StatusFound)
	})
	return s.recoverHandler(mux)
}

// Serve runs the server on the given address until it fails or the process
// receives an interrupt.
func (s *Server) Serve(addr string) error {
	server := &http.Server{
		Addr:     addr,
		Handler:  s.handler(resolveWebBaseURL(addr)),
		ErrorLog: s.logger,
	}

	listenErrs := make(chan error, 1)
	go func() {
		listenErrs <- server.ListenAndServe()
	}()
	s.logf("listening on %s with %d todos", addr, s.count())

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	select {
	case err := <-listenErrs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logf("server stopped: %v", err)
			return err
		}
		return nil
	case <-interrupts:
		s.logf("interrupt received, shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		shutdownErr := server.Shutdown(shutdownCtx)
		cancel()
		listenErr := <-listenErrs
		if errors.Is(listenErr, http.ErrServerClosed) {
			listenErr = nil
		}
		return errors.Join(shutdownErr, listenErr)
	}
}

func (s *Server) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Len()
}

func resolveWebBaseURL(addr string) string {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	host := trimmed
	if strings.HasPrefix(host, ":") {
		host = "127.0.0.1" + host
	}
	if strings.HasPrefix(host, "0.0.0.0:") {
		host = "127.0.0.1:" + strings.TrimPrefix(host, "0.0.0.0:")
	}
	return "http://" + host
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload ViewRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	mode, err := todo.ParseDisplayMode(string(payload.Mode))
	if err != nil {
		s.writeTodoError(w, r, err)
		return
	}
	now := s.requestNow(payload.Now)

	s.mu.Lock()
	todos := s.list.View(mode, payload.Search)
	s.mu.Unlock()

	items := make([]ViewItem, 0, len(todos))
	for _, item := range todos {
		label := todo.ClassifyDueDate(item.DueDate, now)
		items = append(items, ViewItem{
			Todo:  item,
			Text:  s.labels.TodoText(item),
			Label: label,
			Due:   s.labels.DueText(label),
		})
	}
	writeJSON(w, http.StatusOK, ViewResponse{
		Mode:         mode,
		Todos:        items,
		Heading:      s.labels.Heading(mode),
		ToggleLabel:  s.labels.ToggleLabel(mode),
		EmptyMessage: s.labels.EmptyMessage(mode),
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload CreateRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	now := s.requestNow(payload.Now)
	draft := todo.NewDraft(now)
	draft.Text = payload.Text
	if !internalstrings.IsBlank(payload.Priority) {
		priority, err := todo.ParsePriority(payload.Priority)
		if err != nil {
			s.writeTodoError(w, r, err)
			return
		}
		draft.Priority = priority
	}
	if !internalstrings.IsBlank(payload.Due) {
		due, err := todo.ParseDueDate(payload.Due, now.Location())
		if err != nil {
			s.writeTodoError(w, r, err)
			return
		}
		draft.Due = due
	}

	s.mu.Lock()
	created, err := draft.Submit(s.list, now)
	s.mu.Unlock()
	if err != nil {
		s.writeTodoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TodoResponse{Todo: created})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload UpdateRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	updated, found, err := s.list.Update(strings.TrimSpace(payload.ID), todo.UpdateOptions{Completed: payload.Completed, Text: payload.Text})
	if err != nil {
		s.writeTodoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, UpdateResponse{Todo: updated, Found: found})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload DeleteRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	found := s.list.Delete(strings.TrimSpace(payload.ID))
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, DeleteResponse{Found: found})
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload ShowRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	item, err := s.list.Resolve(strings.TrimSpace(payload.ID))
	s.mu.Unlock()
	if err != nil {
		s.writeTodoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TodoResponse{Todo: item})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload emptyRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, InfoResponse{Language: s.language, Count: s.count()})
}

func (s *Server) requestNow(override *time.Time) time.Time {
	if override != nil && !override.IsZero() {
		return *override
	}
	return s.now()
}

func (s *Server) recoverHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &responseTracker{ResponseWriter: w}
		defer func() {
			if recovered := recover(); recovered != nil {
				s.logf("panic handling request %s %s: %v\n%s", r.Method, r.URL.Path, recovered, debug.Stack())
				if writer.wroteHeader {
					return
				}
				writeJSON(writer, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
			}
		}()
		next.ServeHTTP(writer, r)
	})
}

func (s *Server) requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	s.writeError(w, r, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
	return false
}

func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("unexpected extra JSON data")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeTodoError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	s.logRequestError(r, status, err)
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logRequestError(r, status, err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) logRequestError(r *http.Request, status int, err error) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Printf("request %s %s failed (%d): %v", r.Method, r.URL.Path, status, err)
}

func (s *Server) logf(format string, args ...any) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Printf(format, args...)
}

type responseTracker struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseTracker) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseTracker) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(data)
}
