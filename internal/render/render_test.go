package render

import (
	"strings"
	"testing"

	"github.com/eddiman/mariposa/internal/model"
)

func TestNoteMDPlaceholders(t *testing.T) {
	md := NoteMD(model.Note{Slug: "note-1"}, false)
	for _, want := range []string{"Untitled", "uncategorized", "_no tags_", "_No content_"} {
		if !strings.Contains(md, want) {
			t.Errorf("NoteMD missing placeholder %q:\n%s", want, md)
		}
	}
}

func TestNoteMDCompact(t *testing.T) {
	md := NoteMD(model.Note{Slug: "note-5", Title: "Plan", Category: "work", Tags: []string{"q1", "q2"}}, true)
	if !strings.Contains(md, "**Plan**") || !strings.Contains(md, "2 tags") {
		t.Fatalf("unexpected compact line: %s", md)
	}
	if strings.Contains(md, "\n") {
		t.Fatalf("compact view must be a single line: %q", md)
	}
}

func TestNoteMDEscapesStructuralFields(t *testing.T) {
	md := NoteMD(model.Note{Slug: "note-2", Title: "a*b_c", Category: "x[y]"}, false)
	if !strings.Contains(md, `a\*b\_c`) {
		t.Errorf("title not escaped: %s", md)
	}
	if !strings.Contains(md, `x\[y\]`) {
		t.Errorf("category not escaped: %s", md)
	}
}

func TestNoteListMDEmpty(t *testing.T) {
	md := NoteListMD(nil)
	if !strings.Contains(md, "No notes found") {
		t.Fatalf("empty list must render a no-notes message: %s", md)
	}
}

func TestNoteListMD(t *testing.T) {
	md := NoteListMD([]model.Note{
		{Slug: "note-1", Title: "First", Category: "work", Tags: []string{"a"}},
		{Slug: "note-2"},
	})
	if !strings.Contains(md, "Your Notes (2 total)") {
		t.Errorf("missing header: %s", md)
	}
	if !strings.Contains(md, "`note-1`") || !strings.Contains(md, "Untitled") {
		t.Errorf("missing entries: %s", md)
	}
}

func TestCreationFormMD(t *testing.T) {
	md := CreationFormMD([]string{"work"}, nil)
	if !strings.Contains(md, "`work`") || !strings.Contains(md, "_none yet_") {
		t.Fatalf("unexpected form: %s", md)
	}
	md = CreationFormMD(nil, nil)
	if !strings.Contains(md, "`uncategorized`") {
		t.Fatalf("missing category fallback: %s", md)
	}
}

func TestNoteCardHTML(t *testing.T) {
	html := NoteCardHTML(model.Note{Slug: "note-5", Title: "Plan", Category: "work", Tags: []string{"q1"}, Content: "Draft plan"})
	for _, want := range []string{">Plan</h3>", ">work</span>", `<span class="note-tag">q1</span>`, ">Draft plan</div>"} {
		if !strings.Contains(html, want) {
			t.Errorf("NoteCardHTML missing %q:\n%s", want, html)
		}
	}
}

func TestNoteCardHTMLPlaceholdersAndEscaping(t *testing.T) {
	html := NoteCardHTML(model.Note{Slug: "note-1", Title: `<script>alert("x")</script>`})
	if strings.Contains(html, "<script>") {
		t.Fatal("title was not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped title: %s", html)
	}
	for _, want := range []string{"no tags", "(empty)", "uncategorized"} {
		if !strings.Contains(html, want) {
			t.Errorf("missing placeholder %q", want)
		}
	}
}

func TestNoteListHTMLEmpty(t *testing.T) {
	html := NoteListHTML(nil)
	if !strings.Contains(html, "No notes found") {
		t.Fatalf("empty list must render an error card: %s", html)
	}
}

func TestErrorHTMLEscapes(t *testing.T) {
	html := ErrorHTML("Bad <input>", "details & more")
	if !strings.Contains(html, "Bad &lt;input&gt;") || !strings.Contains(html, "details &amp; more") {
		t.Fatalf("error card not escaped: %s", html)
	}
}

func TestArtifact(t *testing.T) {
	got := Artifact("<div>x</div>")
	if !strings.HasPrefix(got, "```html\n") || !strings.HasSuffix(got, "\n```") {
		t.Fatalf("not a fenced html block: %q", got)
	}
	if !strings.Contains(got, "<style>") || !strings.Contains(got, "<div>x</div>") {
		t.Fatal("artifact must carry stylesheet and fragment")
	}
}

func TestChipLists(t *testing.T) {
	if html := CategoriesHTML([]string{"work", "home"}); !strings.Contains(html, ">work</span>") {
		t.Errorf("categories chips missing: %s", html)
	}
	if html := TagsHTML(nil); !strings.Contains(html, "No tags") {
		t.Errorf("empty tags must render error card: %s", html)
	}
}

func TestDeletedHTML(t *testing.T) {
	html := DeletedHTML("note-7")
	if !strings.Contains(html, "note-7") || !strings.Contains(html, "Note Deleted") {
		t.Fatalf("unexpected deleted card: %s", html)
	}
}
