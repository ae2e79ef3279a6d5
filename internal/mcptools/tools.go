// Package mcptools exposes the Mariposa notes service as MCP tools over
// stdio, so assistants that speak MCP can browse and manage notes directly.
package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/eddiman/mariposa/internal/model"
	"github.com/eddiman/mariposa/internal/render"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Service is the notes client surface the tools need.
type Service interface {
	GetNote(ctx context.Context, slug string) (*model.Note, error)
	ListNotes(ctx context.Context, search string) ([]model.Note, error)
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
	DeleteNote(ctx context.Context, slug string) error
}

// New wires every notes tool into a stdio-ready MCP server.
func New(svc Service) *server.MCPServer {
	s := server.NewMCPServer(
		"mariposa",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Tools for browsing and managing notes in a Mariposa service. "+
			"Notes are addressed by slug (note-1, note-2, ...)."),
	)

	list := &ListTool{svc: svc}
	s.AddTool(list.Definition(), list.Handle)

	read := &ReadTool{svc: svc}
	s.AddTool(read.Definition(), read.Handle)

	search := &SearchTool{svc: svc}
	s.AddTool(search.Definition(), search.Handle)

	categories := &CategoriesTool{svc: svc}
	s.AddTool(categories.Definition(), categories.Handle)

	tags := &TagsTool{svc: svc}
	s.AddTool(tags.Definition(), tags.Handle)

	del := &DeleteTool{svc: svc}
	s.AddTool(del.Definition(), del.Handle)

	return s
}

// ServeStdio runs the server on stdin/stdout until the transport closes.
func ServeStdio(svc Service) error {
	return server.ServeStdio(New(svc))
}

// ListTool handles the notes_list MCP tool.
type ListTool struct {
	svc Service
}

func (t *ListTool) Definition() mcp.Tool {
	return mcp.NewTool("notes_list",
		mcp.WithDescription("List all notes with title, category, tag count and slug."),
	)
}

func (t *ListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes, err := t.svc.ListNotes(ctx, "")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing notes: %v", err)), nil
	}
	return mcp.NewToolResultText(render.NoteListMD(notes)), nil
}

// ReadTool handles the notes_read MCP tool.
type ReadTool struct {
	svc Service
}

func (t *ReadTool) Definition() mcp.Tool {
	return mcp.NewTool("notes_read",
		mcp.WithDescription("Read one note in full by its slug."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Note slug, e.g. note-5"),
		),
	)
}

func (t *ReadTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug := strings.TrimSpace(req.GetString("slug", ""))
	if slug == "" {
		return mcp.NewToolResultError("'slug' is required"), nil
	}
	note, err := t.svc.GetNote(ctx, slug)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reading %s: %v", slug, err)), nil
	}
	return mcp.NewToolResultText(render.NoteMD(*note, false)), nil
}

// SearchTool handles the notes_search MCP tool.
type SearchTool struct {
	svc Service
}

func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("notes_search",
		mcp.WithDescription("Search notes by title and content."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query"),
		),
	)
}

func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := strings.TrimSpace(req.GetString("query", ""))
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}
	notes, err := t.svc.ListNotes(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if len(notes) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No notes found matching %q.", query)), nil
	}
	return mcp.NewToolResultText(render.NoteListMD(notes)), nil
}

// CategoriesTool handles the notes_categories MCP tool.
type CategoriesTool struct {
	svc Service
}

func (t *CategoriesTool) Definition() mcp.Tool {
	return mcp.NewTool("notes_categories",
		mcp.WithDescription("List all note categories."),
	)
}

func (t *CategoriesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories, err := t.svc.Categories(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing categories: %v", err)), nil
	}
	if len(categories) == 0 {
		return mcp.NewToolResultText("No categories found."), nil
	}
	return mcp.NewToolResultText("Categories: " + strings.Join(categories, ", ")), nil
}

// TagsTool handles the notes_tags MCP tool.
type TagsTool struct {
	svc Service
}

func (t *TagsTool) Definition() mcp.Tool {
	return mcp.NewTool("notes_tags",
		mcp.WithDescription("List all note tags."),
	)
}

func (t *TagsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tags, err := t.svc.Tags(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing tags: %v", err)), nil
	}
	if len(tags) == 0 {
		return mcp.NewToolResultText("No tags found."), nil
	}
	return mcp.NewToolResultText("Tags: " + strings.Join(tags, ", ")), nil
}

// DeleteTool handles the notes_delete MCP tool.
type DeleteTool struct {
	svc Service
}

func (t *DeleteTool) Definition() mcp.Tool {
	return mcp.NewTool("notes_delete",
		mcp.WithDescription("Delete a note by its slug. This cannot be undone."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Note slug, e.g. note-5"),
		),
	)
}

func (t *DeleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug := strings.TrimSpace(req.GetString("slug", ""))
	if slug == "" {
		return mcp.NewToolResultError("'slug' is required"), nil
	}
	if err := t.svc.DeleteNote(ctx, slug); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("deleting %s: %v", slug, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted %s.", slug)), nil
}
