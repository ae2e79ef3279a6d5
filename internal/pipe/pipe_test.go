package pipe

import (
	"context"
	"strings"
	"testing"

	"github.com/eddiman/mariposa/internal/model"
)

type fakeService struct {
	notes      map[string]model.Note
	all        []model.Note
	search     map[string][]model.Note
	categories []string
	tags       []string
	listErr    error
	deleteErr  error
	deleted    []string
}

func (f *fakeService) GetNote(_ context.Context, slug string) (*model.Note, error) {
	if n, ok := f.notes[slug]; ok {
		return &n, nil
	}
	return nil, &model.ServiceError{Op: "get_note", StatusCode: 404, Message: "note not found"}
}

func (f *fakeService) ListNotes(_ context.Context, search string) ([]model.Note, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if search == "" {
		return f.all, nil
	}
	return f.search[search], nil
}

func (f *fakeService) Categories(_ context.Context) ([]string, error) { return f.categories, nil }
func (f *fakeService) Tags(_ context.Context) ([]string, error)       { return f.tags, nil }

func (f *fakeService) DeleteNote(_ context.Context, slug string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, slug)
	return nil
}

func body(content string) *model.ChatBody {
	return &model.ChatBody{Messages: []model.ChatMessage{{Role: "user", Content: content}}}
}

func TestRunReadNote(t *testing.T) {
	svc := &fakeService{notes: map[string]model.Note{
		"note-5": {Slug: "note-5", Title: "Plan", Category: "work", Tags: []string{"q1"}, Content: "Draft plan"},
	}}
	p := New(svc, Options{})

	got := p.Run(context.Background(), body("read note-5"))
	if !strings.HasPrefix(got, "```html\n") || !strings.HasSuffix(got, "\n```") {
		t.Fatalf("response must be a fenced html artifact: %q", got)
	}
	for _, want := range []string{">Plan</h3>", ">work</span>", "q1", "Draft plan"} {
		if !strings.Contains(got, want) {
			t.Errorf("card missing %q", want)
		}
	}
}

func TestRunReadNoteMissing(t *testing.T) {
	p := New(&fakeService{}, Options{})
	got := p.Run(context.Background(), body("open note-9"))
	if !strings.Contains(got, "Note not found") || !strings.Contains(got, "note-9") {
		t.Fatalf("unexpected response: %s", got)
	}
}

func TestRunListNotes(t *testing.T) {
	svc := &fakeService{all: []model.Note{{Slug: "note-1", Title: "First"}}}
	p := New(svc, Options{})
	got := p.Run(context.Background(), body("notes"))
	if !strings.Contains(got, "Your Notes (1)") || !strings.Contains(got, "First") {
		t.Fatalf("unexpected list: %s", got)
	}
}

func TestRunListNotesConnectionError(t *testing.T) {
	svc := &fakeService{listErr: &model.ServiceError{Op: "list_notes", Message: "request failed"}}
	p := New(svc, Options{})
	got := p.Run(context.Background(), body("list notes"))
	if !strings.Contains(got, "Connection Error") || !strings.Contains(got, "request failed") {
		t.Fatalf("unexpected error card: %s", got)
	}
}

func TestRunSearch(t *testing.T) {
	svc := &fakeService{search: map[string][]model.Note{
		"plan": {{Slug: "note-5", Title: "Plan"}},
	}}
	p := New(svc, Options{})

	got := p.Run(context.Background(), body(`search "plan"`))
	if !strings.Contains(got, `Search results for "plan"`) || !strings.Contains(got, "Plan") {
		t.Fatalf("unexpected search response: %s", got)
	}

	got = p.Run(context.Background(), body("search budget"))
	if !strings.Contains(got, "No results") || !strings.Contains(got, "budget") {
		t.Fatalf("empty search must name the query: %s", got)
	}
}

func TestRunDelete(t *testing.T) {
	svc := &fakeService{}
	p := New(svc, Options{})

	got := p.Run(context.Background(), body("delete note-7"))
	if !strings.Contains(got, "Note Deleted") || !strings.Contains(got, "note-7") {
		t.Fatalf("unexpected delete response: %s", got)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "note-7" {
		t.Fatalf("delete not forwarded: %v", svc.deleted)
	}

	svc.deleteErr = &model.ServiceError{Op: "delete_note", StatusCode: 404, Message: "note not found"}
	got = p.Run(context.Background(), body("delete note-8"))
	if !strings.Contains(got, "Delete Failed") || !strings.Contains(got, "note-8") {
		t.Fatalf("unexpected delete failure response: %s", got)
	}
}

func TestRunCategoriesAndTags(t *testing.T) {
	svc := &fakeService{categories: []string{"work"}, tags: []string{"q1"}}
	p := New(svc, Options{})

	if got := p.Run(context.Background(), body("categories")); !strings.Contains(got, ">work</span>") {
		t.Errorf("categories missing chip: %s", got)
	}
	if got := p.Run(context.Background(), body("tags")); !strings.Contains(got, ">q1</span>") {
		t.Errorf("tags missing chip: %s", got)
	}
}

func TestRunHelp(t *testing.T) {
	p := New(&fakeService{}, Options{})
	got := p.Run(context.Background(), body("help"))
	if !strings.Contains(got, "Mariposa Notes - Help") {
		t.Fatalf("unexpected help response: %s", got)
	}
}

func TestRunFallback(t *testing.T) {
	p := New(&fakeService{}, Options{PassthroughModel: "gpt-4o-mini"})
	got := p.Run(context.Background(), body("foo bar"))
	if !strings.Contains(got, `"foo bar"`) || !strings.Contains(got, "Available commands") {
		t.Fatalf("unexpected fallback: %s", got)
	}
	if strings.Contains(got, "```html") {
		t.Fatal("fallback must be plain text, not an artifact")
	}
}

func TestRunEmptyBody(t *testing.T) {
	p := New(&fakeService{}, Options{})
	if got := p.Run(context.Background(), &model.ChatBody{}); got != "No messages received." {
		t.Fatalf("unexpected empty-body response: %q", got)
	}
}
