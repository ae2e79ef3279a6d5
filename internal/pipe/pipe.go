// Package pipe implements the direct-responder adapter: recognized commands
// are answered with fully rendered HTML artifacts, bypassing the model
// entirely. Unrecognized input gets a static command list — this path never
// dispatches to a model, even though Options carries a PassthroughModel
// field for it.
package pipe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eddiman/mariposa/internal/command"
	"github.com/eddiman/mariposa/internal/model"
	"github.com/eddiman/mariposa/internal/render"
)

// Service is the subset of the notes client the pipe needs.
type Service interface {
	GetNote(ctx context.Context, slug string) (*model.Note, error)
	ListNotes(ctx context.Context, search string) ([]model.Note, error)
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
	DeleteNote(ctx context.Context, slug string) error
}

// Options are the operator settings for the pipe adapter.
type Options struct {
	// PassthroughModel names the model that would handle non-command
	// messages. No code path dispatches to it; unrecognized input is
	// answered with the static fallback instead. Kept for configuration
	// compatibility with the original deployment.
	PassthroughModel string
}

type Pipe struct {
	svc  Service
	opts Options
}

func New(svc Service, opts Options) *Pipe {
	return &Pipe{svc: svc, opts: opts}
}

// Run handles one chat turn and returns the complete response string.
func (p *Pipe) Run(ctx context.Context, body *model.ChatBody) string {
	userMsg := body.LastContent()
	if userMsg == "" {
		return "No messages received."
	}

	cmd := command.ParsePipe(command.Normalize(userMsg))
	switch cmd.Kind {
	case command.ListNotes:
		notes, err := p.svc.ListNotes(ctx, "")
		if err != nil {
			return render.Artifact(render.ErrorHTML("Connection Error", "Could not reach Mariposa: "+serviceMessage(err)))
		}
		return render.Artifact(render.NoteListHTML(notes))

	case command.ReadNote:
		note, err := p.svc.GetNote(ctx, cmd.Slug)
		if err != nil {
			return render.Artifact(render.ErrorHTML("Note not found", "Could not find "+cmd.Slug))
		}
		return render.Artifact(render.NoteCardHTML(*note))

	case command.SearchNotes:
		notes, err := p.svc.ListNotes(ctx, cmd.Query)
		if err != nil {
			return render.Artifact(render.ErrorHTML("Search Error", serviceMessage(err)))
		}
		if len(notes) == 0 {
			return render.Artifact(render.ErrorHTML("No results", fmt.Sprintf("No notes found matching %q", cmd.Query)))
		}
		return render.Artifact(render.SearchHeaderHTML(cmd.Query) + render.NoteListHTML(notes))

	case command.ListCategories:
		categories, _ := p.svc.Categories(ctx)
		return render.Artifact(render.CategoriesHTML(categories))

	case command.ListTags:
		tags, _ := p.svc.Tags(ctx)
		return render.Artifact(render.TagsHTML(tags))

	case command.DeleteNote:
		if err := p.svc.DeleteNote(ctx, cmd.Slug); err != nil {
			return render.Artifact(render.ErrorHTML("Delete Failed",
				fmt.Sprintf("Could not delete %s: %s", cmd.Slug, serviceMessage(err))))
		}
		return render.Artifact(render.DeletedHTML(cmd.Slug))

	case command.Help:
		return render.Artifact(render.HelpHTML())
	}

	return fallback(userMsg)
}

// fallback is the static response for anything outside the command grammar.
func fallback(userMsg string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I received: %q\n\n", userMsg)
	b.WriteString("This doesn't match a notes command. Available commands:\n")
	b.WriteString("- `notes` — List all notes\n")
	b.WriteString("- `read note-X` — View a note\n")
	b.WriteString("- `search \"query\"` — Find notes\n")
	b.WriteString("- `help` — Show all commands\n\n")
	b.WriteString("Or ask me naturally about your notes and I'll use the Mariposa tools to help!")
	return b.String()
}

// serviceMessage extracts the short service message when the error is a
// ServiceError, falling back to the full error text.
func serviceMessage(err error) string {
	var se *model.ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
