package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eddiman/mariposa/internal/config"
	"github.com/eddiman/mariposa/internal/console"
	"github.com/eddiman/mariposa/internal/mariposa"
	"github.com/eddiman/mariposa/internal/store"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive notes console",
	RunE:  runChat,
}

var chatSession string

func init() {
	chatCmd.Flags().StringVar(&chatSession, "session", "default", "transcript session name")
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := mariposa.NewClient(cfg.Mariposa.URL)

	stateDir, err := config.StateDir()
	if err != nil {
		return fmt.Errorf("resolving state dir: %w", err)
	}
	st := store.NewSQLiteStore(filepath.Join(stateDir, "transcript.sqlite"))
	defer func() { _ = st.Close() }()
	if err := st.Init(cmd.Context()); err != nil {
		return fmt.Errorf("opening transcript store: %w", err)
	}

	return console.Run(cmd.Context(), client, st, console.Options{
		ServiceURL: cfg.Mariposa.URL,
		Session:    chatSession,
		Verbose:    cfg.Verbose || globalFlags.Verbose,
	})
}
