package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheetfill/internal/orchestrators/conversion"
)

var (
	fillOutput   string
	fillTemplate string
	fillLayout   string
)

var fillCmd = &cobra.Command{
	Use:   "fill [input]",
	Short: "Fill the PDF character sheet",
	Long: `Overlay the resolved character values onto the sheet template.
Without a template the values are drawn on blank pages.

  charsheet fill simone.xml -o simone.pdf --template sheet.pdf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFill,
}

func init() {
	fillCmd.Flags().StringVarP(&fillOutput, "output", "o", "", "PDF to write")
	fillCmd.Flags().StringVar(&fillTemplate, "template", "", "blank sheet PDF to overlay")
	fillCmd.Flags().StringVar(&fillLayout, "layout", "", "YAML field layout (default: built in)")
}

func runFill(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = fillOutput
	}
	if flags.Changed("template") {
		cfg.Template = fillTemplate
	}
	if flags.Changed("layout") {
		cfg.Layout = fillLayout
	}

	svc, err := newService(cfg, logger)
	if err != nil {
		return err
	}

	out, err := svc.Fill(cmd.Context(), &conversion.FillInput{Path: cfg.Input, Output: cfg.Output})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d values", out.Output, out.Values)
	if len(out.Warnings) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), ", %d formulas kept as text", len(out.Warnings))
	}
	fmt.Fprintln(cmd.OutOrStdout(), ")")
	return nil
}
