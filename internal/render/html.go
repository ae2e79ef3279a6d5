package render

import (
	"fmt"
	"strings"

	"github.com/eddiman/mariposa/internal/model"
)

// cssStyles is the shared stylesheet shipped with every HTML artifact. The
// host platform renders fenced html blocks as live widgets, so the styles
// ride along with each response.
const cssStyles = `
<style>
.note-card {
    border: 1px solid #444;
    border-radius: 8px;
    padding: 16px;
    margin: 8px 0;
    background: #1e1e1e;
    font-family: system-ui, -apple-system, sans-serif;
}
.note-card-light {
    background: #f8f8f8;
    border-color: #ddd;
}
.note-header {
    display: flex;
    justify-content: space-between;
    align-items: center;
    margin-bottom: 12px;
}
.note-title {
    font-size: 18px;
    font-weight: 600;
    color: #e0e0e0;
    margin: 0;
}
.note-card-light .note-title {
    color: #222;
}
.note-category {
    background: #333;
    color: #aaa;
    padding: 4px 10px;
    border-radius: 4px;
    font-size: 12px;
}
.note-card-light .note-category {
    background: #e0e0e0;
    color: #555;
}
.note-tags {
    margin-bottom: 12px;
}
.note-tag {
    background: #2a4a2a;
    color: #8f8;
    padding: 3px 8px;
    border-radius: 4px;
    font-size: 11px;
    margin-right: 6px;
    display: inline-block;
}
.note-card-light .note-tag {
    background: #d4edda;
    color: #155724;
}
.note-meta {
    color: #888;
    font-size: 12px;
    margin-bottom: 12px;
}
.note-content {
    background: #252525;
    padding: 12px;
    border-radius: 6px;
    color: #ccc;
    font-size: 14px;
    white-space: pre-wrap;
    line-height: 1.5;
}
.note-card-light .note-content {
    background: #fff;
    color: #333;
    border: 1px solid #e0e0e0;
}
.note-list-item {
    border: 1px solid #333;
    border-radius: 6px;
    padding: 12px 16px;
    margin: 6px 0;
    background: #1a1a1a;
    display: flex;
    justify-content: space-between;
    align-items: center;
}
.note-card-light .note-list-item {
    background: #fff;
    border-color: #ddd;
}
.note-list-title {
    font-weight: 500;
    color: #e0e0e0;
}
.note-card-light .note-list-title {
    color: #222;
}
.note-list-meta {
    color: #666;
    font-size: 12px;
}
.note-error {
    border: 1px solid #a33;
    border-radius: 8px;
    padding: 16px;
    margin: 8px 0;
    background: #2a1a1a;
}
.note-error-title {
    color: #f66;
    font-weight: 600;
    margin-bottom: 6px;
}
.note-error-msg {
    color: #a88;
    font-size: 14px;
}
.note-help {
    color: #888;
    font-size: 13px;
    margin-top: 12px;
    padding: 10px;
    background: #252525;
    border-radius: 6px;
}
.note-card-light .note-help {
    background: #f0f0f0;
}
</style>
`

// CSSStyles returns the stylesheet shared by all HTML fragments.
func CSSStyles() string {
	return cssStyles
}

// Artifact wraps an HTML fragment together with the stylesheet in a fenced
// code block the host renders as a live widget.
func Artifact(html string) string {
	return "```html\n" + cssStyles + "\n" + html + "\n```"
}

// NoteCardHTML renders a full note card with action hints. All dynamic text
// is entity-escaped before interpolation.
func NoteCardHTML(n model.Note) string {
	tagsHTML := `<span style="color:#666;font-size:12px;">no tags</span>`
	if len(n.Tags) > 0 {
		var tb strings.Builder
		for _, t := range n.Tags {
			fmt.Fprintf(&tb, `<span class="note-tag">%s</span>`, EscapeHTML(t))
		}
		tagsHTML = tb.String()
	}
	content := n.Content
	if strings.TrimSpace(content) == "" {
		content = "(empty)"
	}

	var b strings.Builder
	b.WriteString("\n<div class=\"note-card\">\n")
	b.WriteString("    <div class=\"note-header\">\n")
	fmt.Fprintf(&b, "        <h3 class=\"note-title\">%s</h3>\n", EscapeHTML(noteTitle(n)))
	fmt.Fprintf(&b, "        <span class=\"note-category\">%s</span>\n", EscapeHTML(noteCategory(n)))
	b.WriteString("    </div>\n")
	fmt.Fprintf(&b, "    <div class=\"note-tags\">%s</div>\n", tagsHTML)
	b.WriteString("    <div class=\"note-meta\">\n")
	fmt.Fprintf(&b, "        <strong>Slug:</strong> %s &nbsp;|&nbsp; <strong>Updated:</strong> %s\n", EscapeHTML(n.Slug), EscapeHTML(n.UpdatedAt))
	b.WriteString("    </div>\n")
	fmt.Fprintf(&b, "    <div class=\"note-content\">%s</div>\n", EscapeHTML(content))
	b.WriteString("    <div class=\"note-help\">\n")
	b.WriteString("        💡 To modify: <code>change title to \"...\"</code> · <code>add tag \"...\"</code> · <code>update content to \"...\"</code>\n")
	b.WriteString("    </div>\n")
	b.WriteString("</div>\n")
	return b.String()
}

// NoteListHTML renders the list view, or an error card when no notes exist.
func NoteListHTML(notes []model.Note) string {
	if len(notes) == 0 {
		return ErrorHTML("No notes found", `You don't have any notes yet. Say: create note titled "..."`)
	}

	var items strings.Builder
	for _, n := range notes {
		items.WriteString("\n<div class=\"note-list-item\">\n")
		fmt.Fprintf(&items, "    <span class=\"note-list-title\">%s</span>\n", EscapeHTML(noteTitle(n)))
		fmt.Fprintf(&items, "    <span class=\"note-list-meta\">%s · %d tags · <code>%s</code></span>\n",
			EscapeHTML(noteCategory(n)), len(n.Tags), EscapeHTML(n.Slug))
		items.WriteString("</div>\n")
	}

	var b strings.Builder
	b.WriteString("\n<div class=\"note-card\">\n")
	fmt.Fprintf(&b, "    <h3 class=\"note-title\">Your Notes (%d)</h3>\n", len(notes))
	fmt.Fprintf(&b, "    <div style=\"margin-top:12px;\">\n        %s\n    </div>\n", items.String())
	b.WriteString("    <div class=\"note-help\">\n")
	b.WriteString("        💡 Say <code>read note-X</code> to view a note · <code>search \"...\"</code> to filter\n")
	b.WriteString("    </div>\n")
	b.WriteString("</div>\n")
	return b.String()
}

// ErrorHTML renders a styled error card. Title and message are escaped.
func ErrorHTML(title, message string) string {
	return fmt.Sprintf(`
<div class="note-error">
    <div class="note-error-title">⚠️ %s</div>
    <div class="note-error-msg">%s</div>
</div>
`, EscapeHTML(title), EscapeHTML(message))
}

// HelpHTML renders the static command reference card.
func HelpHTML() string {
	return `
<div class="note-card">
    <h3 class="note-title">Mariposa Notes - Help</h3>
    <div class="note-content">
<strong>Commands:</strong>
• <code>notes</code> or <code>/notes</code> — List all notes
• <code>read note-X</code> — View a specific note
• <code>search "query"</code> — Find notes by title/content
• <code>categories</code> — List all categories
• <code>tags</code> — List all tags

<strong>Creating &amp; Editing:</strong>
• <code>create note titled "..."</code> — Create new note
• <code>delete note-X</code> — Delete a note

After viewing a note, you can ask me to:
• Change the title, content, category, or tags
• Summarize or expand the content
• Move it to a different category
    </div>
</div>
`
}

// CategoriesHTML renders category chips, or an error card when none exist.
func CategoriesHTML(categories []string) string {
	if len(categories) == 0 {
		return ErrorHTML("No categories", "No categories found.")
	}
	return chipCard("Categories", categories)
}

// TagsHTML renders tag chips, or an error card when none exist.
func TagsHTML(tags []string) string {
	if len(tags) == 0 {
		return ErrorHTML("No tags", "No tags found.")
	}
	return chipCard("All Tags", tags)
}

func chipCard(title string, values []string) string {
	var chips strings.Builder
	for _, v := range values {
		fmt.Fprintf(&chips, `<span class="note-tag" style="margin:4px;">%s</span>`, EscapeHTML(v))
	}
	return fmt.Sprintf(`
<div class="note-card">
    <h3 class="note-title">%s</h3>
    <div style="margin-top:12px;">%s</div>
</div>
`, title, chips.String())
}

// DeletedHTML renders the delete-confirmation card.
func DeletedHTML(slug string) string {
	return fmt.Sprintf(`
<div class="note-card" style="border-color:#4a4;">
    <h3 class="note-title" style="color:#8f8;">✓ Note Deleted</h3>
    <div class="note-meta">Successfully deleted <code>%s</code></div>
</div>
`, EscapeHTML(slug))
}

// SearchHeaderHTML renders the "results for" banner shown above a filtered
// list. The query is user text and gets escaped.
func SearchHeaderHTML(query string) string {
	return fmt.Sprintf(`<div style="color:#888;margin-bottom:8px;">Search results for "%s":</div>`, EscapeHTML(query))
}
