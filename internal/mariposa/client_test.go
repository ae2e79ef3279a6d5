package mariposa

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eddiman/mariposa/internal/model"
)

func TestGetNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/notes/note-5" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"slug":"note-5","title":"Plan","category":"work","tags":["q1"],"content":"Draft plan","updatedAt":"2026-01-05"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	note, err := c.GetNote(context.Background(), "note-5")
	if err != nil {
		t.Fatalf("GetNote: %v", err)
	}
	if note.Title != "Plan" || note.Category != "work" || len(note.Tags) != 1 {
		t.Fatalf("unexpected note: %+v", note)
	}

	if _, err := c.GetNote(context.Background(), "note-404"); err == nil {
		t.Fatal("expected error for missing note")
	}
}

func TestGetNoteRejectsInvalidSlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request for %s", r.URL.Path)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetNote(context.Background(), "shopping-list")
	if err == nil {
		t.Fatal("expected error for invalid slug")
	}
	var se *model.ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServiceError, got %T", err)
	}
}

func TestListNotesSearchParam(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"notes":[{"slug":"note-1","title":"Budget"},{"slug":"note-2","title":"Budget 2"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	notes, err := c.ListNotes(context.Background(), "budget plans")
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if gotQuery != "budget plans" {
		t.Fatalf("search param = %q", gotQuery)
	}
	if len(notes) != 2 {
		t.Fatalf("got %d notes", len(notes))
	}
}

func TestListNotesMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.ListNotes(context.Background(), ""); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestCategoriesAndTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/categories":
			_, _ = w.Write([]byte(`{"categories":["work","personal"]}`))
		case "/api/tags":
			_, _ = w.Write([]byte(`{"tags":["q1"]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	cats, err := c.Categories(context.Background())
	if err != nil || len(cats) != 2 {
		t.Fatalf("Categories = %v, %v", cats, err)
	}
	tags, err := c.Tags(context.Background())
	if err != nil || len(tags) != 1 {
		t.Fatalf("Tags = %v, %v", tags, err)
	}
}

func TestDeleteNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		switch r.URL.Path {
		case "/api/notes/note-7":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("note not found"))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.DeleteNote(context.Background(), "note-7"); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}

	err := c.DeleteNote(context.Background(), "note-8")
	if err == nil {
		t.Fatal("expected error for missing note")
	}
	var se *model.ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServiceError, got %T", err)
	}
	if se.StatusCode != http.StatusNotFound || se.Message != "note not found" {
		t.Fatalf("unexpected error: %+v", se)
	}
}

func TestTransportFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1") // nothing listens here
	if _, err := c.ListNotes(context.Background(), ""); err == nil {
		t.Fatal("expected transport error")
	}
	if _, err := c.GetNote(context.Background(), "note-1"); err == nil {
		t.Fatal("expected transport error")
	}
}
