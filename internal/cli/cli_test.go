package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todosync/internal/api"
	"github.com/idilsaglam/todosync/internal/todo"
)

// todoServer is a minimal remote backend for command tests.
type todoServer struct {
	mu     sync.Mutex
	items  []todo.Item
	nextID int
}

func (s *todoServer) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/todos", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		json.NewEncoder(w).Encode(s.items)
	})
	mux.HandleFunc("POST /api/todos", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title string `json:"title"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		s.mu.Lock()
		s.nextID++
		it := todo.Item{ID: fmt.Sprintf("t%d", s.nextID), Title: body.Title}
		s.items = append(s.items, it)
		s.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(it)
	})
	mux.HandleFunc("PATCH /api/todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		var patch api.Patch
		json.NewDecoder(r.Body).Decode(&patch)
		id := r.PathValue("id")
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.items {
			if s.items[i].ID == id {
				if patch.Completed != nil {
					s.items[i].Completed = *patch.Completed
				}
				if patch.Title != nil {
					s.items[i].Title = *patch.Title
				}
				return
			}
		}
		http.NotFound(w, r)
	})
	mux.HandleFunc("DELETE /api/todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.items {
			if s.items[i].ID == id {
				s.items = append(s.items[:i], s.items[i+1:]...)
				return
			}
		}
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, srv *httptest.Server, args ...string) error {
	t.Helper()
	t.Setenv("TODOSYNC_API_URL", srv.URL)
	root := NewRootCmd()
	root.SetArgs(append(args, "--plain"))
	return root.Execute()
}

func TestAddDoneRmAgainstServer(t *testing.T) {
	backend := &todoServer{}
	srv := backend.start(t)

	require.NoError(t, execute(t, srv, "add", "buy", "milk"))
	require.Len(t, backend.items, 1)
	assert.Equal(t, "buy milk", backend.items[0].Title)

	require.NoError(t, execute(t, srv, "done", "1"))
	assert.True(t, backend.items[0].Completed)

	require.NoError(t, execute(t, srv, "done", backend.items[0].ID))
	assert.False(t, backend.items[0].Completed, "done toggles back")

	require.NoError(t, execute(t, srv, "rm", "1"))
	assert.Empty(t, backend.items)
}

func TestClearDeletesOnlyCompleted(t *testing.T) {
	backend := &todoServer{items: []todo.Item{
		{ID: "a", Title: "done 1", Completed: true},
		{ID: "b", Title: "open"},
		{ID: "c", Title: "done 2", Completed: true},
	}}
	srv := backend.start(t)

	require.NoError(t, execute(t, srv, "clear"))
	require.Len(t, backend.items, 1)
	assert.Equal(t, "b", backend.items[0].ID)

	// Nothing completed left: clear is a no-op, not an error.
	require.NoError(t, execute(t, srv, "clear"))
	assert.Len(t, backend.items, 1)
}

func TestLsAndStatusSucceed(t *testing.T) {
	backend := &todoServer{items: []todo.Item{{ID: "a", Title: "x"}}}
	srv := backend.start(t)

	assert.NoError(t, execute(t, srv, "ls"))
	assert.NoError(t, execute(t, srv, "ls", "--active"))
	assert.NoError(t, execute(t, srv, "status"))

	err := execute(t, srv, "ls", "--active", "--completed")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestResolveItem(t *testing.T) {
	backend := &todoServer{items: []todo.Item{
		{ID: "abc", Title: "first"},
		{ID: "def", Title: "second"},
	}}
	srv := backend.start(t)
	app := &App{client: api.NewClient(srv.URL)}
	ctx := context.Background()

	it, err := app.resolveItem(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "def", it.ID)

	it, err = app.resolveItem(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "first", it.Title)

	_, err = app.resolveItem(ctx, "9")
	assert.ErrorIs(t, err, ErrUsage)

	_, err = app.resolveItem(ctx, "nope")
	assert.ErrorIs(t, err, ErrUsage)
}
