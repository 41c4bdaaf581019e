package web

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/todo"
	"github.com/google/uuid"
)

// sessionCookie names the browser session that owns a create draft.
const sessionCookie = "tasklist_session"

// Options configures the web handler.
type Options struct {
	// BaseURL is the RPC server URL. Empty means the request's own host.
	BaseURL string

	// Labels are the user-visible strings. Defaults to Japanese.
	Labels todo.Labels

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Handler serves the todo web client.
type Handler struct {
	baseURL   string
	client    *http.Client
	mux       *http.ServeMux
	templates *templateWrapper
	labels    todo.Labels
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionState
}

// sessionState is one browser's pending create draft and error message.
type sessionState struct {
	draft *formValues
	err   string
}

// NewHandler creates a new web handler.
func NewHandler(opts Options) *Handler {
	labels := opts.Labels
	if labels.PriorityNames == nil {
		labels = todo.DefaultLabels()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	handler := &Handler{
		baseURL:   internalstrings.TrimTrailingSlash(opts.BaseURL),
		client:    &http.Client{},
		templates: newTemplateWrapper(),
		labels:    labels,
		now:       now,
		sessions:  make(map[string]*sessionState),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/web/tasks", handler.handleTasks)
	mux.HandleFunc("/web/tasks/create", handler.handleCreate)
	mux.HandleFunc("/web/tasks/toggle", handler.handleToggle)
	mux.HandleFunc("/web/tasks/delete", handler.handleDelete)
	handler.mux = mux
	return handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type templateWrapper struct {
	tmpl *template.Template
}

func newTemplateWrapper() *templateWrapper {
	return &templateWrapper{tmpl: newTemplates()}
}

func (tw *templateWrapper) Render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = tw.tmpl.ExecuteTemplate(w, "page", data)
}

type selectOption struct {
	Value string
	Label string
}

type pageData struct {
	Lang            string
	Labels          todo.Labels
	Mode            string
	ToggleMode      string
	ToggleLabel     string
	Heading         string
	Search          string
	Items           []itemView
	EmptyMessage    string
	Error           string
	Form            formValues
	CanSubmit       bool
	PriorityOptions []selectOption
}

type itemView struct {
	ID          string
	Text        string
	Due         string
	DueKind     string
	Completed   bool
	ActionLabel string
	// NextCompleted is the completed value the toggle button submits.
	NextCompleted string
}

// formValues are the create form's fields as the browser sends them.
type formValues struct {
	Text     string
	Priority string
	Due      string
}

func (h *Handler) handleTasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	state := viewStateFromQuery(r.URL.Query())
	mode, modeErr := todo.ParseDisplayMode(state.mode)
	if modeErr != nil {
		mode = todo.ModeActive
	}

	var response viewResponse
	request := viewRequest{Mode: string(mode), Search: state.search}
	fetchErr := postJSON(r.Context(), h.client, h.requestBaseURL(r), "/tasks/view", request, &response)

	form, pendingErr := h.consumeDraft(h.session(w, r))
	pageErr := pendingErr
	switch {
	case fetchErr != nil:
		pageErr = fetchErr.Error()
	case modeErr != nil:
		pageErr = modeErr.Error()
	}

	data := pageData{
		Lang:            h.labels.Language.String(),
		Labels:          h.labels,
		Mode:            string(mode),
		ToggleMode:      string(mode.Toggle()),
		ToggleLabel:     h.labels.ToggleLabel(mode),
		Heading:         h.labels.Heading(mode),
		Search:          state.search,
		Items:           h.itemViews(response.Todos),
		EmptyMessage:    h.labels.EmptyMessage(mode),
		Error:           pageErr,
		Form:            form,
		CanSubmit:       todo.Draft{Text: form.Text}.CanSubmit(),
		PriorityOptions: h.priorityOptions(),
	}
	h.templates.Render(w, data)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	session := h.session(w, r)
	if err := r.ParseForm(); err != nil {
		h.setError(session, "invalid form input")
		http.Redirect(w, r, "/web/tasks", http.StatusSeeOther)
		return
	}
	state := viewStateFromForm(r)
	values := formValues{
		Text:     r.FormValue("text"),
		Priority: trimmedFormValue(r, "priority"),
		Due:      trimmedFormValue(r, "due"),
	}

	var response todoResponse
	request := createRequest{Text: values.Text, Priority: values.Priority, Due: values.Due}
	if err := postJSON(r.Context(), h.client, h.requestBaseURL(r), "/tasks/create", request, &response); err != nil {
		h.setDraft(session, values, err.Error())
		http.Redirect(w, r, state.path(), http.StatusSeeOther)
		return
	}
	h.resetDraft(session)
	http.Redirect(w, r, state.path(), http.StatusSeeOther)
}

func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	session := h.session(w, r)
	id := trimmedQueryValue(r, "id")
	if err := r.ParseForm(); err != nil {
		h.setError(session, "invalid form input")
		http.Redirect(w, r, "/web/tasks", http.StatusSeeOther)
		return
	}
	state := viewStateFromForm(r)
	if id == "" {
		h.setError(session, "todo id is required")
		http.Redirect(w, r, state.path(), http.StatusSeeOther)
		return
	}
	completed, err := strconv.ParseBool(trimmedFormValue(r, "completed"))
	if err != nil {
		h.setError(session, fmt.Sprintf("invalid completed value %q", r.FormValue("completed")))
		http.Redirect(w, r, state.path(), http.StatusSeeOther)
		return
	}

	var response updateResponse
	request := updateRequest{ID: id, Completed: &completed}
	if err := postJSON(r.Context(), h.client, h.requestBaseURL(r), "/tasks/update", request, &response); err != nil {
		h.setError(session, err.Error())
	} else if !response.Found {
		h.setError(session, fmt.Sprintf("todo not found: %s", id))
	}
	http.Redirect(w, r, state.path(), http.StatusSeeOther)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	session := h.session(w, r)
	id := trimmedQueryValue(r, "id")
	if err := r.ParseForm(); err != nil {
		h.setError(session, "invalid form input")
		http.Redirect(w, r, "/web/tasks", http.StatusSeeOther)
		return
	}
	state := viewStateFromForm(r)
	if id == "" {
		h.setError(session, "todo id is required")
		http.Redirect(w, r, state.path(), http.StatusSeeOther)
		return
	}

	var response deleteResponse
	if err := postJSON(r.Context(), h.client, h.requestBaseURL(r), "/tasks/delete", deleteRequest{ID: id}, &response); err != nil {
		h.setError(session, err.Error())
	}
	http.Redirect(w, r, state.path(), http.StatusSeeOther)
}

func (h *Handler) requestBaseURL(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func (h *Handler) itemViews(items []viewItem) []itemView {
	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView{
			ID:            item.Todo.ID,
			Text:          item.Text,
			Due:           item.Due,
			DueKind:       string(item.Label.Kind),
			Completed:     item.Todo.Completed,
			ActionLabel:   h.labels.ActionLabel(item.Todo),
			NextCompleted: strconv.FormatBool(!item.Todo.Completed),
		})
	}
	return views
}

func (h *Handler) priorityOptions() []selectOption {
	priorities := todo.ValidPriorities()
	options := make([]selectOption, 0, len(priorities))
	for _, priority := range priorities {
		options = append(options, selectOption{
			Value: strconv.Itoa(priority.Level()),
			Label: h.labels.PriorityName(priority),
		})
	}
	return options
}

func (h *Handler) defaultFormValues() formValues {
	draft := todo.NewDraft(h.now())
	return formValues{
		Priority: strconv.Itoa(draft.Priority.Level()),
		Due:      draft.Due.Format(todo.DateLayout),
	}
}

// session returns the caller's session ID, issuing a cookie on first visit.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/web",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// consumeDraft returns the session's create form values and any pending
// error. A failed submission keeps its values until the next successful
// create.
func (h *Handler) consumeDraft(session string) (formValues, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	state, ok := h.sessions[session]
	if !ok {
		return h.defaultFormValues(), ""
	}
	message := state.err
	state.err = ""
	if state.draft == nil {
		delete(h.sessions, session)
		return h.defaultFormValues(), message
	}
	return *state.draft, message
}

func (h *Handler) setDraft(session string, values formValues, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[session] = &sessionState{draft: &values, err: message}
}

func (h *Handler) resetDraft(session string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, session)
}

func (h *Handler) setError(session string, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	state, ok := h.sessions[session]
	if !ok {
		state = &sessionState{}
		h.sessions[session] = state
	}
	state.err = message
}

type viewState struct {
	mode   string
	search string
}

func viewStateFromQuery(query url.Values) viewState {
	return viewState{
		mode:   internalstrings.TrimSpace(query.Get("mode")),
		search: query.Get("q"),
	}
}

func viewStateFromForm(r *http.Request) viewState {
	return viewState{
		mode:   trimmedFormValue(r, "mode"),
		search: r.FormValue("q"),
	}
}

func (s viewState) path() string {
	query := url.Values{}
	if s.mode != "" && s.mode != string(todo.ModeActive) {
		query.Set("mode", s.mode)
	}
	if s.search != "" {
		query.Set("q", s.search)
	}
	if len(query) == 0 {
		return "/web/tasks"
	}
	return "/web/tasks?" + query.Encode()
}

func trimmedQueryValue(r *http.Request, key string) string {
	return internalstrings.TrimSpace(r.URL.Query().Get(key))
}

func trimmedFormValue(r *http.Request, key string) string {
	return internalstrings.TrimSpace(r.FormValue(key))
}

func writeMethodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
