package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/LuizRaizen/tomato"
	"github.com/LuizRaizen/tomato/internal/style"
)

func newPaletteCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Render every available color, markup and style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, rootFlags)
		},
	}

	return cmd
}

func runPalette(cmd *cobra.Command, flags *rootFlags) error {
	log, err := newLogger(flags)
	if err != nil {
		return err
	}

	formatter, err := newFormatter(flags, log)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "COLORS")
	for _, name := range style.ColorNames() {
		sample, err := formatter.Format("sample", tomato.Options{Color: name})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\t%s\n", name, sample)
	}

	fmt.Fprintln(w, "MARKUPS")
	for _, name := range style.MarkupNames() {
		sample, err := formatter.Format("sample", tomato.Options{Markup: name})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\t%s\n", name, sample)
	}

	fmt.Fprintln(w, "STYLES")
	for _, name := range formatter.Styles().Names() {
		sample, err := formatter.Format("sample", tomato.Options{Style: name})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\t%s\n", name, sample)
	}

	return w.Flush()
}
