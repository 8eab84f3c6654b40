package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/cols/internal/app"
	"github.com/kk-code-lab/cols/internal/config"
	"github.com/kk-code-lab/cols/internal/logging"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	cfg.ApplyEnv(os.Getenv)

	cmd := &cobra.Command{
		Use:   "cols",
		Short: "Two-pane Miller-column file browser",
		Long: `cols browses the filesystem in two Miller columns starting at the
current directory. Arrows or hjkl move, PgUp/PgDn page, y copies the
selected path and q quits.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	cfg.BindFlags(cmd.Flags())
	return cmd
}

func run(cfg config.Config) error {
	logger, closer, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	app, err := apppkg.NewApplication(logger)
	if err != nil {
		return fmt.Errorf("error initializing application: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return nil
}

func main() {
	// UTF-8 fallback keeps non-ASCII names readable on terminals with an
	// unknown charset.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
