package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zam-dot/articleparams/internal/logger"
	"github.com/zam-dot/articleparams/internal/presentation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	source     string
	logLevel   string
	logFile    string
	noMouse    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "articleparams [source]",
		Short:         "Read an article in the terminal and tune how it looks",
		Long:          "Read an article in the terminal. Press p to open the article parameters panel,\nchange font, size, colors and width, then apply or reset them.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.source = args[0]
			}
			return runReader(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flags.source, "source", "", "Article to read: a markdown/HTML file or an http(s) URL")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Write logs to this rotating file")
	cmd.Flags().BoolVar(&flags.noMouse, "no-mouse", false, "Disable mouse support")

	cmd.AddCommand(newOptionsCmd())
	cmd.AddCommand(newVarsCmd())
	cmd.AddCommand(newRenderCmd(flags))

	return cmd
}

// resolveConfig layers file, environment and flags, in that order.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (Config, error) {
	config, err := LoadConfig(flags.configPath)
	if err != nil {
		return Config{}, err
	}
	config = applyEnvOverrides(config)

	if flags.source != "" {
		config.Source = flags.source
	}
	if flags.logLevel != "" {
		config.Log.Level = strings.ToLower(flags.logLevel)
	}
	if flags.logFile != "" {
		config.Log.File = flags.logFile
	}
	if flags.noMouse {
		config.UI.Mouse = false
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func newLogger(config Config) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         config.Log.Level,
		HumanReadable: config.Log.Human,
		File:          config.Log.File,
		MaxSizeMB:     config.Log.MaxSizeMB,
		MaxBackups:    config.Log.MaxBackups,
	})
}

func runReader(cmd *cobra.Command, flags *rootFlags) error {
	config, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	log, err := newLogger(config)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Close()

	// Piped output gets a single static rendering instead of the TUI
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Info("stdout is not a terminal, rendering once")
		store := presentation.NewStore()
		return renderOnce(cmd.Context(), cmd.OutOrStdout(), config.Source, store, 0)
	}

	options := []tea.ProgramOption{}
	if config.UI.AltScreen {
		options = append(options, tea.WithAltScreen())
	}
	if config.UI.Mouse {
		options = append(options, tea.WithMouseCellMotion())
	}

	m := newModel(presentation.NewStore(), config.Source, log)
	defer m.unsubscribe()

	log.WithFields(map[string]any{"source": config.Source}).Info("reader started")
	if _, err := tea.NewProgram(m, options...).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// renderOnce writes the article rendered with the store's committed settings.
func renderOnce(ctx context.Context, w io.Writer, source string, store *presentation.Store, width int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	article, err := loadArticle(ctx, &http.Client{Timeout: fetchTimeout}, source)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, renderArticle(article.Markdown, store.Current(), width))
	return err
}
