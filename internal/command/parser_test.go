package command

import (
	"reflect"
	"testing"
)

func TestParseFilter(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Command
	}{
		{"slash notes", "/notes", Command{Kind: ListNotes}},
		{"bare notes", "notes", Command{Kind: ListNotes}},
		{"notes with trailing args", "/notes work", Command{Kind: ListNotes}},
		{"upper case keyword", "NOTES", Command{Kind: ListNotes}},
		{"padded slash keyword", "  /Notes  ", Command{Kind: ListNotes}},
		{"read", "read note-5", Command{Kind: ReadNote, Slug: "note-5"}},
		{"slash read", "/read note-12", Command{Kind: ReadNote, Slug: "note-12"}},
		{"read bad slug", "read shopping", Command{Kind: Unrecognized}},
		{"new", "new", Command{Kind: CreateNote}},
		{"slash new", "/new", Command{Kind: CreateNote}},
		{"search", "search budget plans", Command{Kind: SearchNotes, Query: "budget plans"}},
		{"slash search", "/search groceries", Command{Kind: SearchNotes, Query: "groceries"}},
		{"free text", "what's the weather like", Command{Kind: Unrecognized}},
		{"empty", "", Command{Kind: Unrecognized}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseFilter(Normalize(tc.input))
			if got != tc.want {
				t.Fatalf("ParseFilter(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParsePipe(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Command
	}{
		{"bare notes", "notes", Command{Kind: ListNotes}},
		{"list notes", "list notes", Command{Kind: ListNotes}},
		{"my notes", "My Notes", Command{Kind: ListNotes}},
		{"read", "read note-5", Command{Kind: ReadNote, Slug: "note-5"}},
		{"view", "view note-3", Command{Kind: ReadNote, Slug: "note-3"}},
		{"open with slash", "/open note-9", Command{Kind: ReadNote, Slug: "note-9"}},
		{"read trailing junk", "read note-5 please", Command{Kind: Unrecognized}},
		{"read bad slug", "delete everything", Command{Kind: Unrecognized}},
		{"search quoted", `search "project alpha"`, Command{Kind: SearchNotes, Query: "project alpha"}},
		{"search bare", "search budget", Command{Kind: SearchNotes, Query: "budget"}},
		{"categories", "categories", Command{Kind: ListCategories}},
		{"slash tags", "/tags", Command{Kind: ListTags}},
		{"all tags", "all tags", Command{Kind: ListTags}},
		{"delete", "delete note-7", Command{Kind: DeleteNote, Slug: "note-7"}},
		{"delete bad slug", "delete my-note", Command{Kind: Unrecognized}},
		{"help", "help", Command{Kind: Help}},
		{"question mark", "?", Command{Kind: Help}},
		{"notes help", "notes help", Command{Kind: Help}},
		{"free text", "foo bar", Command{Kind: Unrecognized}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParsePipe(Normalize(tc.input))
			if got != tc.want {
				t.Fatalf("ParsePipe(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}

func TestKeywordBeatsCaptureRules(t *testing.T) {
	// A message equal to a static keyword must classify via the keyword set,
	// never fall through to a capture rule.
	if got := ParsePipe(Normalize("notes")); got.Kind != ListNotes {
		t.Fatalf("got %+v", got)
	}
	if got := ParseFilter(Normalize("new")); got.Kind != CreateNote {
		t.Fatalf("got %+v", got)
	}
}

func TestMentions(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"none", "no references here", nil},
		{"single", "please summarize note-4", []string{"note-4"}},
		{"repeated and mixed case", "compare note-4 with NOTE-4 and Note-12", []string{"note-4", "note-12"}},
		{"embedded", "see mynote-33x and note-33", []string{"note-33"}},
		{"order preserved", "note-9 then note-2 then note-9", []string{"note-9", "note-2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Mentions(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Mentions(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
