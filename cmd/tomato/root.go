package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LuizRaizen/tomato"
	"github.com/LuizRaizen/tomato/internal/config"
	"github.com/LuizRaizen/tomato/internal/logger"
	"github.com/LuizRaizen/tomato/internal/plugin"
	"github.com/LuizRaizen/tomato/internal/style"
	"github.com/LuizRaizen/tomato/internal/terminal"
)

type rootFlags struct {
	verbose    bool
	configPath string
	style      string
	color      string
	markup     string
	align      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tomato [text...]",
		Short:         "Tomato styles terminal text with ANSI escape sequences",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runFormat(cmd, flags, args)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a plugin configuration file")
	cmd.Flags().StringVar(&flags.style, "style", "", "Text style name (bold, underline, negative, ...)")
	cmd.Flags().StringVar(&flags.color, "color", "", "Foreground color name")
	cmd.Flags().StringVar(&flags.markup, "markup", "", "Background color name")
	cmd.Flags().StringVar(&flags.align, "align", "", "Alignment mode (left, center, right)")

	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true})
}

// newFormatter builds the style registry, loads configured plugins into
// it, and returns a formatter ready for use.
func newFormatter(flags *rootFlags, log *logger.Logger) (*tomato.Formatter, error) {
	registry := style.NewRegistry()

	if flags.configPath != "" {
		cfg, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		loaded := plugin.Load(cfg, registry, log)
		log.Debug(fmt.Sprintf("loaded %d plugin(s)", len(loaded)))
	}

	return tomato.New(tomato.FormatterOptions{Styles: registry}), nil
}

func runFormat(cmd *cobra.Command, flags *rootFlags, args []string) error {
	log, err := newLogger(flags)
	if err != nil {
		return err
	}

	formatter, err := newFormatter(flags, log)
	if err != nil {
		return err
	}

	if flags.align != "" && !terminal.IsTerminal() {
		log.Warn("stdout is not a terminal, alignment needs one to measure width")
	}

	out, err := formatter.Format(strings.Join(args, " "), tomato.Options{
		Style:  flags.style,
		Color:  flags.color,
		Markup: flags.markup,
		Align:  tomato.Alignment(flags.align),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
