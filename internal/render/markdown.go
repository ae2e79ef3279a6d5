// Package render turns notes into display strings. Two independent families
// share it: compact Markdown for the message-augmentation adapter and styled
// HTML fragments for the direct responder. Both are pure functions over
// their inputs; escaping of dynamic text is part of the contract, not an
// afterthought. Missing fields render as placeholders, never as empty markup.
package render

import (
	"fmt"
	"strings"

	"github.com/eddiman/mariposa/internal/model"
)

const (
	placeholderTitle    = "Untitled"
	placeholderCategory = "uncategorized"
)

func noteTitle(n model.Note) string {
	if strings.TrimSpace(n.Title) == "" {
		return placeholderTitle
	}
	return n.Title
}

func noteCategory(n model.Note) string {
	if strings.TrimSpace(n.Category) == "" {
		return placeholderCategory
	}
	return n.Category
}

// NoteMD renders one note as Markdown. The compact form is a single summary
// line for list-like contexts. Structural fields are escaped; the note body
// is passed through so the host renders the user's own Markdown formatting.
func NoteMD(n model.Note, compact bool) string {
	title := EscapeMD(noteTitle(n))
	category := EscapeMD(noteCategory(n))

	if compact {
		return fmt.Sprintf("**%s** (%s) — _%s_ · %d tags", title, EscapeMD(n.Slug), category, len(n.Tags))
	}

	tagsStr := "_no tags_"
	if len(n.Tags) > 0 {
		quoted := make([]string, len(n.Tags))
		for i, t := range n.Tags {
			quoted[i] = "`" + EscapeMD(t) + "`"
		}
		tagsStr = strings.Join(quoted, ", ")
	}
	content := n.Content
	if strings.TrimSpace(content) == "" {
		content = "_No content_"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", title)
	fmt.Fprintf(&b, "**Category:** %s | **Tags:** %s  \n", category, tagsStr)
	fmt.Fprintf(&b, "**Slug:** `%s` | **Updated:** %s\n\n", EscapeMD(n.Slug), EscapeMD(n.UpdatedAt))
	b.WriteString("---\n\n")
	b.WriteString(content)
	b.WriteString("\n\n---\n\n")
	fmt.Fprintf(&b, "**Actions:** `read %s` · `edit %s` · `delete %s`\n", n.Slug, n.Slug, n.Slug)
	return b.String()
}

// NoteListMD renders a multi-note list, or a "no notes" hint when empty.
func NoteListMD(notes []model.Note) string {
	if len(notes) == 0 {
		return "⚠️ **No notes found.** Use `/new` to create one."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "### Your Notes (%d total)\n\n", len(notes))
	for _, n := range notes {
		line := fmt.Sprintf("- **%s** `%s` — _%s_", EscapeMD(noteTitle(n)), EscapeMD(n.Slug), EscapeMD(noteCategory(n)))
		if len(n.Tags) > 0 {
			escaped := make([]string, len(n.Tags))
			for i, t := range n.Tags {
				escaped[i] = EscapeMD(t)
			}
			line += " [" + strings.Join(escaped, ", ") + "]"
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\n_Say `read <slug>` to view a note._")
	return b.String()
}

// ErrorMD renders an inline error block. Both arguments are treated as
// dynamic text and escaped.
func ErrorMD(title, message string) string {
	return fmt.Sprintf("⚠️ **%s**\n\n%s", EscapeMD(title), EscapeMD(message))
}

// CreationFormMD renders the guided note-creation prompt. The live category
// and tag lists hint valid values; the assistant collects the fields
// conversationally — no direct create call exists.
func CreationFormMD(categories, tags []string) string {
	catsStr := "`" + placeholderCategory + "`"
	if len(categories) > 0 {
		quoted := make([]string, len(categories))
		for i, c := range categories {
			quoted[i] = "`" + EscapeMD(c) + "`"
		}
		catsStr = strings.Join(quoted, ", ")
	}
	tagsStr := "_none yet_"
	if len(tags) > 0 {
		quoted := make([]string, len(tags))
		for i, t := range tags {
			quoted[i] = "`" + EscapeMD(t) + "`"
		}
		tagsStr = strings.Join(quoted, ", ")
	}

	var b strings.Builder
	b.WriteString("I'd like to create a new note. Please help me fill in:\n\n")
	b.WriteString("📝 **Title:** [required]  \n")
	fmt.Fprintf(&b, "📁 **Category:** %s  \n", catsStr)
	fmt.Fprintf(&b, "🏷️ **Tags:** %s  \n", tagsStr)
	b.WriteString("📄 **Content:** [what should the note contain?]\n\n")
	b.WriteString("_Guide me through each field one at a time._")
	return b.String()
}

// NoteContextMD renders a note as a context block for auto-fetch injection
// before the original user message.
func NoteContextMD(n model.Note) string {
	content := n.Content
	if strings.TrimSpace(content) == "" {
		content = "(empty)"
	}
	tags := make([]string, len(n.Tags))
	for i, t := range n.Tags {
		tags[i] = EscapeMD(t)
	}
	return fmt.Sprintf("**%s** (`%s`)\nCategory: %s | Tags: %s\nContent: %s\n",
		EscapeMD(noteTitle(n)), EscapeMD(n.Slug), EscapeMD(noteCategory(n)), strings.Join(tags, ", "), content)
}
