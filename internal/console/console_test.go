package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eddiman/mariposa/internal/mariposa"
	"github.com/eddiman/mariposa/internal/model"
)

func newTestClient(t *testing.T) *mariposa.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		notes := []model.Note{{Slug: "note-1", Title: "First", Category: "work"}}
		if r.URL.Query().Get("search") == "nothing" {
			notes = nil
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"notes": notes})
	})
	mux.HandleFunc("/api/notes/note-1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_ = json.NewEncoder(w).Encode(model.Note{Slug: "note-1", Title: "First", Content: "body"})
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return mariposa.NewClient(ts.URL)
}

func TestResolveCommands(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	cases := []struct {
		input string
		want  string
	}{
		{"notes", "Your Notes (1 total)"},
		{"read note-1", "First"},
		{`search "nothing"`, "No notes found matching 'nothing'"},
		{"delete note-1", "Deleted `note-1`"},
		{"help", "Commands:"},
		{"what is this", "Unrecognized input"},
	}
	for _, tc := range cases {
		got := resolve(ctx, client, tc.input)
		if !strings.Contains(got, tc.want) {
			t.Errorf("resolve(%q) missing %q:\n%s", tc.input, tc.want, got)
		}
	}
}

func TestResolveConnectionError(t *testing.T) {
	client := mariposa.NewClient("http://127.0.0.1:1")
	got := resolve(context.Background(), client, "notes")
	if !strings.Contains(got, "Connection Error") {
		t.Fatalf("expected connection error, got: %s", got)
	}
}
