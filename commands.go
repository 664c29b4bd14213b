package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zam-dot/articleparams/internal/appearance"
	"github.com/zam-dot/articleparams/internal/presentation"
)

// settingsFlags holds one optional value or label per category.
type settingsFlags struct {
	values map[appearance.Category]*string
}

func addSettingsFlags(cmd *cobra.Command) *settingsFlags {
	sf := &settingsFlags{values: make(map[appearance.Category]*string)}
	for _, c := range appearance.Categories() {
		sf.values[c] = cmd.Flags().String(c.Key(), "", fmt.Sprintf("%s (value or label, default %q)", c.Title(), c.Default().Label))
	}
	return sf
}

// settings builds a value from the defaults and whatever flags were given.
func (sf *settingsFlags) settings() (appearance.Settings, error) {
	values := make(map[string]string)
	for c, v := range sf.values {
		if v != nil && *v != "" {
			values[c.Key()] = *v
		}
	}
	return appearance.FromValues(values)
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the available options per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(cmd)
		},
	}
}

func runOptions(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tVALUE\tLABEL\tDEFAULT")
	for _, c := range appearance.Categories() {
		def := c.Default()
		for _, o := range c.Options() {
			mark := ""
			if o == def {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Key(), o.Value, o.Label, mark)
		}
	}
	return w.Flush()
}

func newVarsCmd() *cobra.Command {
	var sf *settingsFlags

	cmd := &cobra.Command{
		Use:   "vars",
		Short: "Print the presentation variables as CSS custom properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sf.settings()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), presentation.CSS(s))
			return err
		},
	}
	sf = addSettingsFlags(cmd)

	return cmd
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	var (
		sf    *settingsFlags
		width int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the article once to stdout with the given settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sf.settings()
			if err != nil {
				return err
			}
			config, err := resolveConfig(cmd, root)
			if err != nil {
				return err
			}

			if width == 0 && term.IsTerminal(int(os.Stdout.Fd())) {
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
					width = w
				}
			}

			store := presentation.NewStore()
			store.Commit(s)
			return renderOnce(cmd.Context(), cmd.OutOrStdout(), config.Source, store, width)
		},
	}
	sf = addSettingsFlags(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "Terminal columns to lay the article out in (0 = no limit)")

	return cmd
}
