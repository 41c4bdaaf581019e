package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amonks/tasklist/todo"
)

var testNow = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestServer(t *testing.T, seed []todo.Todo, logs io.Writer) *Server {
	t.Helper()
	if logs == nil {
		logs = io.Discard
	}
	return New(Options{
		Seed:   seed,
		Now:    func() time.Time { return testNow },
		NewID:  sequentialIDs(),
		Logger: log.New(logs, "", 0),
	})
}

func doRequest(t *testing.T, server *Server, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	response := httptest.NewRecorder()
	server.Handler().ServeHTTP(response, request)
	return response
}

func decodeResponse[T any](t *testing.T, response *httptest.ResponseRecorder) T {
	t.Helper()
	var payload T
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func TestViewReturnsLabelsAndOrder(t *testing.T) {
	server := newTestServer(t, todo.DefaultSeed(testNow, sequentialIDs()), nil)

	response := doRequest(t, server, "/tasks/view", ViewRequest{Mode: todo.ModeActive})
	if response.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", response.Code, response.Body.String())
	}
	payload := decodeResponse[ViewResponse](t, response)

	var texts []string
	for _, item := range payload.Todos {
		texts = append(texts, item.Text)
	}
	want := []string{"[高] todo4", "[中] todo1", "[低] todo2"}
	if strings.Join(texts, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, texts)
	}
	if payload.Todos[1].Due != "🟡 明日" {
		t.Fatalf("expected tomorrow label for todo1, got %q", payload.Todos[1].Due)
	}
	if payload.Heading != "未完了のTodo" || payload.ToggleLabel != "完了したTodoを表示" {
		t.Fatalf("unexpected heading %q / toggle %q", payload.Heading, payload.ToggleLabel)
	}
}

func TestViewUsesRequestNow(t *testing.T) {
	server := newTestServer(t, []todo.Todo{{
		ID:       "a",
		Text:     "x",
		Priority: todo.PriorityLow,
		DueDate:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}}, nil)

	later := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC)
	response := doRequest(t, server, "/tasks/view", ViewRequest{Now: &later})
	payload := decodeResponse[ViewResponse](t, response)
	if payload.Todos[0].Label.Kind != todo.DueOverdue {
		t.Fatalf("expected overdue, got %s", payload.Todos[0].Label.Kind)
	}
}

func TestViewRejectsInvalidMode(t *testing.T) {
	server := newTestServer(t, nil, nil)

	response := doRequest(t, server, "/tasks/view", ViewRequest{Mode: "all"})
	if response.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.Code)
	}
	payload := decodeResponse[errorResponse](t, response)
	if payload.Code != "invalid_mode" {
		t.Fatalf("expected invalid_mode code, got %q", payload.Code)
	}
}

func TestCreateDefaultsAndEmptyText(t *testing.T) {
	var logs bytes.Buffer
	server := newTestServer(t, nil, &logs)

	response := doRequest(t, server, "/tasks/create", CreateRequest{Text: "  牛乳を買う　"})
	if response.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", response.Code, response.Body.String())
	}
	created := decodeResponse[TodoResponse](t, response).Todo
	if created.Text != "牛乳を買う" || created.Priority != todo.PriorityMedium {
		t.Fatalf("unexpected created todo %+v", created)
	}
	if !created.DueDate.Equal(todo.Today(testNow)) {
		t.Fatalf("expected due today, got %s", created.DueDate)
	}

	response = doRequest(t, server, "/tasks/create", CreateRequest{Text: "　 "})
	if response.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.Code)
	}
	if payload := decodeResponse[errorResponse](t, response); payload.Code != "empty_text" {
		t.Fatalf("expected empty_text code, got %q", payload.Code)
	}
	if !strings.Contains(logs.String(), "/tasks/create failed (400)") {
		t.Fatalf("expected request failure to be logged, got %q", logs.String())
	}
	if got := server.count(); got != 1 {
		t.Fatalf("expected one todo, got %d", got)
	}
}

func TestCreateAcceptsLongJapaneseText(t *testing.T) {
	server := newTestServer(t, nil, nil)

	text := strings.Repeat("買", 170)
	response := doRequest(t, server, "/tasks/create", CreateRequest{Text: text})
	if response.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", response.Code, response.Body.String())
	}
	if created := decodeResponse[TodoResponse](t, response).Todo; created.Text != text {
		t.Fatalf("expected text kept, got %d bytes", len(created.Text))
	}

	longer := strings.Repeat("a", 2000)
	response = doRequest(t, server, "/tasks/update", UpdateRequest{ID: "id-1", Text: &longer})
	if payload := decodeResponse[UpdateResponse](t, response); !payload.Found || payload.Todo.Text != longer {
		t.Fatalf("expected long edit to succeed, got status %d", response.Code)
	}
}

func TestCreateParsesPriorityAndDue(t *testing.T) {
	server := newTestServer(t, nil, nil)

	response := doRequest(t, server, "/tasks/create", CreateRequest{Text: "x", Priority: "2", Due: "2025-06-02"})
	created := decodeResponse[TodoResponse](t, response).Todo
	if created.Priority != todo.PriorityHigh {
		t.Fatalf("expected high priority, got %s", created.Priority)
	}
	if created.DueDate.Format(todo.DateLayout) != "2025-06-02" {
		t.Fatalf("expected due 2025-06-02, got %s", created.DueDate)
	}

	response = doRequest(t, server, "/tasks/create", CreateRequest{Text: "x", Due: "06/02"})
	if response.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad due date, got %d", response.Code)
	}
	response = doRequest(t, server, "/tasks/create", CreateRequest{Text: "x", Priority: "urgent"})
	if response.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad priority, got %d", response.Code)
	}
}

func TestUpdateMatchesExactID(t *testing.T) {
	server := newTestServer(t, []todo.Todo{
		{ID: "abc-1", Text: "a", Priority: todo.PriorityLow},
		{ID: "abd-2", Text: "b", Priority: todo.PriorityLow},
	}, nil)

	completed := true
	response := doRequest(t, server, "/tasks/update", UpdateRequest{ID: "abc-1", Completed: &completed})
	payload := decodeResponse[UpdateResponse](t, response)
	if !payload.Found || !payload.Todo.Completed || payload.Todo.ID != "abc-1" {
		t.Fatalf("unexpected update response %+v", payload)
	}

	for _, id := range []string{"zzz", "abd", "ab", ""} {
		response = doRequest(t, server, "/tasks/update", UpdateRequest{ID: id, Completed: &completed})
		if response.Code != http.StatusOK {
			t.Fatalf("expected status 200 for id %q, got %d", id, response.Code)
		}
		if payload := decodeResponse[UpdateResponse](t, response); payload.Found {
			t.Fatalf("expected found=false for id %q", id)
		}
	}

	response = doRequest(t, server, "/tasks/view", ViewRequest{})
	if got := len(decodeResponse[ViewResponse](t, response).Todos); got != 1 {
		t.Fatalf("expected abd-2 still active, got %d active todos", got)
	}
}

func TestDeleteIgnoresPrefixes(t *testing.T) {
	server := newTestServer(t, []todo.Todo{
		{ID: "ab12", Text: "first", Priority: todo.PriorityLow},
		{ID: "cd99", Text: "second", Priority: todo.PriorityLow},
	}, nil)

	for _, id := range []string{"c", "ab", "a"} {
		response := doRequest(t, server, "/tasks/delete", DeleteRequest{ID: id})
		if response.Code != http.StatusOK {
			t.Fatalf("expected status 200 for id %q, got %d", id, response.Code)
		}
		if decodeResponse[DeleteResponse](t, response).Found {
			t.Fatalf("expected delete of %q to be a no-op", id)
		}
	}

	response := doRequest(t, server, "/tasks/view", ViewRequest{})
	if got := len(decodeResponse[ViewResponse](t, response).Todos); got != 2 {
		t.Fatalf("expected both todos kept, got %d", got)
	}
}

func TestUpdateRejectsBlankText(t *testing.T) {
	server := newTestServer(t, []todo.Todo{{ID: "a", Text: "keep", Priority: todo.PriorityLow}}, nil)

	blank := "  "
	response := doRequest(t, server, "/tasks/update", UpdateRequest{ID: "a", Text: &blank})
	if response.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.Code)
	}

	response = doRequest(t, server, "/tasks/show", ShowRequest{ID: "a"})
	if got := decodeResponse[TodoResponse](t, response).Todo.Text; got != "keep" {
		t.Fatalf("expected text unchanged, got %q", got)
	}
}

func TestDeleteEmptiesView(t *testing.T) {
	server := newTestServer(t, []todo.Todo{{ID: "a", Text: "only", Priority: todo.PriorityLow}}, nil)

	response := doRequest(t, server, "/tasks/delete", DeleteRequest{ID: "a"})
	if !decodeResponse[DeleteResponse](t, response).Found {
		t.Fatalf("expected delete to find todo")
	}
	response = doRequest(t, server, "/tasks/delete", DeleteRequest{ID: "a"})
	if decodeResponse[DeleteResponse](t, response).Found {
		t.Fatalf("expected second delete to report not found")
	}

	response = doRequest(t, server, "/tasks/view", ViewRequest{})
	payload := decodeResponse[ViewResponse](t, response)
	if len(payload.Todos) != 0 {
		t.Fatalf("expected empty view, got %d", len(payload.Todos))
	}
	if payload.EmptyMessage != "Todoがありません。新しいTodoを追加してください。" {
		t.Fatalf("unexpected empty message %q", payload.EmptyMessage)
	}
}

func TestShowNotFound(t *testing.T) {
	server := newTestServer(t, nil, nil)

	response := doRequest(t, server, "/tasks/show", ShowRequest{ID: "missing"})
	if response.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.Code)
	}
}

func TestRejectsWrongMethodAndUnknownFields(t *testing.T) {
	server := newTestServer(t, nil, nil)

	request := httptest.NewRequest(http.MethodGet, "/tasks/view", nil)
	response := httptest.NewRecorder()
	server.Handler().ServeHTTP(response, request)
	if response.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", response.Code)
	}
	if allow := response.Header().Get("Allow"); allow != http.MethodPost {
		t.Fatalf("expected Allow POST, got %q", allow)
	}

	request = httptest.NewRequest(http.MethodPost, "/tasks/view", strings.NewReader(`{"mode":"active","extra":1}`))
	response = httptest.NewRecorder()
	server.Handler().ServeHTTP(response, request)
	if response.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown field, got %d", response.Code)
	}
}

func TestRootRedirectsToWeb(t *testing.T) {
	server := newTestServer(t, nil, nil)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	response := httptest.NewRecorder()
	server.Handler().ServeHTTP(response, request)
	if response.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", response.Code)
	}
	if location := response.Header().Get("Location"); location != "/web/tasks" {
		t.Fatalf("expected redirect to /web/tasks, got %q", location)
	}
}

func TestRecoverHandlerReturnsJSON(t *testing.T) {
	var logs bytes.Buffer
	server := newTestServer(t, nil, &logs)

	handler := server.recoverHandler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	request := httptest.NewRequest(http.MethodPost, "/tasks/view", nil)
	response := httptest.NewRecorder()
	handler.ServeHTTP(response, request)

	if response.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", response.Code)
	}
	if !strings.Contains(logs.String(), "panic handling request POST /tasks/view: boom") {
		t.Fatalf("expected panic to be logged, got %q", logs.String())
	}
}

func TestResolveWebBaseURL(t *testing.T) {
	tests := map[string]string{
		"":                    "",
		":8089":               "http://127.0.0.1:8089",
		"0.0.0.0:8089":        "http://127.0.0.1:8089",
		"localhost:9000":      "http://localhost:9000",
		"http://example.com/": "http://example.com",
	}
	for input, want := range tests {
		if got := resolveWebBaseURL(input); got != want {
			t.Fatalf("resolveWebBaseURL(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestEnglishLanguage(t *testing.T) {
	server := New(Options{
		Language: "en",
		Seed:     []todo.Todo{{ID: "a", Text: "x", Priority: todo.PriorityHigh, DueDate: testNow}},
		Now:      func() time.Time { return testNow },
		Logger:   log.New(io.Discard, "", 0),
	})

	response := doRequest(t, server, "/tasks/view", ViewRequest{})
	payload := decodeResponse[ViewResponse](t, response)
	if payload.Todos[0].Text != "[high] x" || payload.Todos[0].Due != "🟠 today" {
		t.Fatalf("unexpected English labels %+v", payload.Todos[0])
	}
}
