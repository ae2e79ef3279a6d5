// Package filter implements the message-augmentation adapter: it rewrites
// the last chat message before the model sees it. Recognized slash commands
// replace the message with pre-rendered Markdown annotated as "already the
// answer"; otherwise bare note-N mentions are expanded into an injected
// context block ahead of the verbatim user message.
package filter

import (
	"context"
	"fmt"
	"strings"

	"github.com/eddiman/mariposa/internal/command"
	"github.com/eddiman/mariposa/internal/model"
	"github.com/eddiman/mariposa/internal/render"
)

// Service is the subset of the notes client the filter needs.
type Service interface {
	GetNote(ctx context.Context, slug string) (*model.Note, error)
	ListNotes(ctx context.Context, search string) ([]model.Note, error)
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
}

// Emitter receives best-effort progress notifications. Implementations must
// tolerate being called from a request path; failures are the emitter's
// problem, never the filter's.
type Emitter interface {
	EmitStatus(ctx context.Context, description string, done bool)
}

// Options are the operator toggles for the filter adapter.
type Options struct {
	EnableSlashCommands bool
	EnableAutoFetch     bool
}

type Filter struct {
	svc  Service
	opts Options
}

func New(svc Service, opts Options) *Filter {
	return &Filter{svc: svc, opts: opts}
}

// Inlet processes one inbound chat turn and returns the (possibly mutated)
// body. It never fails: every service error degrades to an inline error
// block or a silent passthrough. A nil emitter is tolerated.
func (f *Filter) Inlet(ctx context.Context, body *model.ChatBody, emit Emitter) *model.ChatBody {
	original := body.LastContent()
	if original == "" {
		return body
	}

	if f.opts.EnableSlashCommands {
		if handled := f.runCommand(ctx, body, original, emit); handled {
			return body
		}
	}

	if f.opts.EnableAutoFetch {
		f.autoFetch(ctx, body, original)
	}
	return body
}

// runCommand dispatches a recognized slash command and reports whether the
// message path was consumed.
func (f *Filter) runCommand(ctx context.Context, body *model.ChatBody, original string, emit Emitter) bool {
	cmd := command.ParseFilter(command.Normalize(original))
	switch cmd.Kind {
	case command.ListNotes:
		emitStatus(ctx, emit, "Fetching notes...", false)
		notes, _ := f.svc.ListNotes(ctx, "")
		md := render.NoteListMD(notes)
		emitStatus(ctx, emit, "Notes loaded", true)
		body.SetLastContent("[User requested note list. Display this to them:]\n\n" + md)
		return true

	case command.ReadNote:
		emitStatus(ctx, emit, fmt.Sprintf("Fetching %s...", cmd.Slug), false)
		note, err := f.svc.GetNote(ctx, cmd.Slug)
		if err != nil {
			md := render.ErrorMD("Note not found", fmt.Sprintf("Could not find %s.", cmd.Slug))
			emitStatus(ctx, emit, "Not found", true)
			body.SetLastContent("[Error: note not found]\n\n" + md)
			return true
		}
		md := render.NoteMD(*note, false)
		emitStatus(ctx, emit, "Note loaded", true)
		body.SetLastContent(fmt.Sprintf("[User requested to read %s. Display this:]\n\n%s", cmd.Slug, md))
		return true

	case command.CreateNote:
		// No direct create call exists; the rendered form asks the model to
		// collect the fields conversationally, hinting live categories/tags.
		categories, _ := f.svc.Categories(ctx)
		tags, _ := f.svc.Tags(ctx)
		body.SetLastContent(render.CreationFormMD(categories, tags))
		return true

	case command.SearchNotes:
		emitStatus(ctx, emit, fmt.Sprintf("Searching for '%s'...", cmd.Query), false)
		notes, _ := f.svc.ListNotes(ctx, cmd.Query)
		var md string
		if len(notes) > 0 {
			md = render.NoteListMD(notes)
			emitStatus(ctx, emit, fmt.Sprintf("Found %d notes", len(notes)), true)
		} else {
			md = render.ErrorMD("No results", fmt.Sprintf("No notes found matching '%s'.", cmd.Query))
			emitStatus(ctx, emit, "No results", true)
		}
		body.SetLastContent(fmt.Sprintf("[Search results for '%s':]\n\n%s", cmd.Query, md))
		return true
	}
	return false
}

// autoFetch expands note-N mentions anywhere in the message into a context
// block. The original message is preserved verbatim after the injection; if
// no mention resolves to a real note the message is left untouched.
func (f *Filter) autoFetch(ctx context.Context, body *model.ChatBody, original string) {
	slugs := command.Mentions(original)
	if len(slugs) == 0 {
		return
	}
	parts := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		note, err := f.svc.GetNote(ctx, slug)
		if err != nil {
			continue
		}
		parts = append(parts, render.NoteContextMD(*note))
	}
	if len(parts) == 0 {
		return
	}
	context := strings.Join(parts, "\n---\n")
	body.SetLastContent(fmt.Sprintf("[Context: Referenced notes]\n\n%s\n\n[User message:] %s", context, original))
}

func emitStatus(ctx context.Context, emit Emitter, description string, done bool) {
	if emit == nil {
		return
	}
	emit.EmitStatus(ctx, description, done)
}
