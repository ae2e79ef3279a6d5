// Package console is an interactive terminal chat for a Mariposa service.
// It runs the same command grammar as the chat adapters, renders results as
// Markdown, and records each turn in the transcript store.
package console

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eddiman/mariposa/internal/command"
	"github.com/eddiman/mariposa/internal/mariposa"
	"github.com/eddiman/mariposa/internal/render"
	"github.com/eddiman/mariposa/internal/store"
	"github.com/eddiman/mariposa/internal/ui"
)

type Options struct {
	ServiceURL string
	Session    string
	Verbose    bool
}

// Run starts the interactive console and blocks until the user quits.
func Run(ctx context.Context, client *mariposa.Client, st *store.SQLiteStore, opts Options) error {
	if opts.Session == "" {
		opts.Session = "default"
	}
	p := tea.NewProgram(initialModel(ctx, client, st, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// resolve maps one line of input to a rendered Markdown response.
func resolve(ctx context.Context, client *mariposa.Client, input string) string {
	cmd := command.ParsePipe(command.Normalize(input))
	switch cmd.Kind {
	case command.ListNotes:
		notes, err := client.ListNotes(ctx, "")
		if err != nil {
			return render.ErrorMD("Connection Error", "Could not reach Mariposa: "+err.Error())
		}
		return render.NoteListMD(notes)

	case command.ReadNote:
		note, err := client.GetNote(ctx, cmd.Slug)
		if err != nil {
			return render.ErrorMD("Note not found", fmt.Sprintf("Could not find %s.", cmd.Slug))
		}
		return render.NoteMD(*note, false)

	case command.SearchNotes:
		notes, err := client.ListNotes(ctx, cmd.Query)
		if err != nil {
			return render.ErrorMD("Search Error", err.Error())
		}
		if len(notes) == 0 {
			return render.ErrorMD("No results", fmt.Sprintf("No notes found matching '%s'.", cmd.Query))
		}
		return render.NoteListMD(notes)

	case command.ListCategories:
		categories, err := client.Categories(ctx)
		if err != nil || len(categories) == 0 {
			return render.ErrorMD("No categories", "No categories found.")
		}
		return "**Categories:** " + strings.Join(categories, ", ")

	case command.ListTags:
		tags, err := client.Tags(ctx)
		if err != nil || len(tags) == 0 {
			return render.ErrorMD("No tags", "No tags found.")
		}
		return "**Tags:** " + strings.Join(tags, ", ")

	case command.DeleteNote:
		if err := client.DeleteNote(ctx, cmd.Slug); err != nil {
			return render.ErrorMD("Delete Failed", fmt.Sprintf("Could not delete %s.", cmd.Slug))
		}
		return fmt.Sprintf("✓ Deleted `%s`.", cmd.Slug)

	case command.Help:
		return helpText()
	}

	return fmt.Sprintf("Unrecognized input. %s", helpText())
}

func helpText() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	b.WriteString("  notes               List all notes\n")
	b.WriteString("  read note-X         View a note\n")
	b.WriteString("  search \"query\"      Find notes\n")
	b.WriteString("  categories / tags   List metadata\n")
	b.WriteString("  delete note-X       Delete a note\n")
	b.WriteString("  help                Show this help")
	return b.String()
}

// banner is the greeting shown when the console starts.
func banner(opts Options) []string {
	return []string{
		ui.Info("mariposa console", opts.ServiceURL),
		ui.Dim("Type a command, or ? for help. Esc quits."),
	}
}
