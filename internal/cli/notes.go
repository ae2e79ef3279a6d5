package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eddiman/mariposa/internal/mariposa"
	"github.com/eddiman/mariposa/internal/model"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "One-shot note commands",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	RunE:  runNotesList,
}

var notesReadCmd = &cobra.Command{
	Use:   "read <slug>",
	Short: "Read one note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesRead,
}

var notesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes by title and content",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNotesSearch,
}

var notesCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all categories",
	RunE:  runNotesCategories,
}

var notesTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags",
	RunE:  runNotesTags,
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesDelete,
}

func init() {
	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesReadCmd)
	notesCmd.AddCommand(notesSearchCmd)
	notesCmd.AddCommand(notesCategoriesCmd)
	notesCmd.AddCommand(notesTagsCmd)
	notesCmd.AddCommand(notesDeleteCmd)
}

func notesClient() (*mariposa.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return mariposa.NewClient(cfg.Mariposa.URL), nil
}

func printNoteLine(s styles, n model.Note) {
	title := n.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled"
	}
	category := n.Category
	if strings.TrimSpace(category) == "" {
		category = "uncategorized"
	}
	fmt.Printf("  %s  %s %s\n",
		s.slug(fmt.Sprintf("%-10s", n.Slug)),
		title,
		s.dim(fmt.Sprintf("(%s, %d tags)", category, len(n.Tags))),
	)
}

func runNotesList(cmd *cobra.Command, _ []string) error {
	client, err := notesClient()
	if err != nil {
		return err
	}
	notes, err := client.ListNotes(cmd.Context(), "")
	if err != nil {
		return err
	}

	s := newStyles(os.Stdout)
	if len(notes) == 0 {
		fmt.Println(s.dim("No notes found."))
		return nil
	}
	fmt.Println(s.sectionHeader(fmt.Sprintf("Notes (%d)", len(notes))))
	for _, n := range notes {
		printNoteLine(s, n)
	}
	return nil
}

func runNotesRead(cmd *cobra.Command, args []string) error {
	client, err := notesClient()
	if err != nil {
		return err
	}
	note, err := client.GetNote(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	s := newStyles(os.Stdout)
	title := note.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled"
	}
	fmt.Println(s.sectionHeader(title))
	fmt.Println(s.kv("Slug", note.Slug))
	if note.Category != "" {
		fmt.Println(s.kv("Category", note.Category))
	}
	if len(note.Tags) > 0 {
		fmt.Println(s.kv("Tags", strings.Join(note.Tags, ", ")))
	}
	if note.UpdatedAt != "" {
		fmt.Println(s.kv("Updated", note.UpdatedAt))
	}
	fmt.Println(s.separator(40))
	if strings.TrimSpace(note.Content) == "" {
		fmt.Println(s.dim("(empty)"))
	} else {
		fmt.Println(note.Content)
	}
	return nil
}

func runNotesSearch(cmd *cobra.Command, args []string) error {
	client, err := notesClient()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	notes, err := client.ListNotes(cmd.Context(), query)
	if err != nil {
		return err
	}

	s := newStyles(os.Stdout)
	if len(notes) == 0 {
		fmt.Printf("%s\n", s.dim(fmt.Sprintf("No notes found matching %q.", query)))
		return nil
	}
	fmt.Println(s.sectionHeader(fmt.Sprintf("Results for %q (%d)", query, len(notes))))
	for _, n := range notes {
		printNoteLine(s, n)
	}
	return nil
}

func runNotesCategories(cmd *cobra.Command, _ []string) error {
	client, err := notesClient()
	if err != nil {
		return err
	}
	categories, err := client.Categories(cmd.Context())
	if err != nil {
		return err
	}
	s := newStyles(os.Stdout)
	if len(categories) == 0 {
		fmt.Println(s.dim("No categories found."))
		return nil
	}
	fmt.Println(strings.Join(categories, "\n"))
	return nil
}

func runNotesTags(cmd *cobra.Command, _ []string) error {
	client, err := notesClient()
	if err != nil {
		return err
	}
	tags, err := client.Tags(cmd.Context())
	if err != nil {
		return err
	}
	s := newStyles(os.Stdout)
	if len(tags) == 0 {
		fmt.Println(s.dim("No tags found."))
		return nil
	}
	fmt.Println(strings.Join(tags, "\n"))
	return nil
}

func runNotesDelete(cmd *cobra.Command, args []string) error {
	client, err := notesClient()
	if err != nil {
		return err
	}
	if err := client.DeleteNote(cmd.Context(), args[0]); err != nil {
		s := newStyles(os.Stderr)
		fmt.Fprintf(os.Stderr, "%s could not delete %s: %v\n", s.errPrefix(), args[0], err)
		return err
	}
	s := newStyles(os.Stdout)
	fmt.Printf("%s %s\n", s.Success.Render("Deleted"), s.slug(args[0]))
	return nil
}
