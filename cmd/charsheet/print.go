package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheetfill/internal/orchestrators/conversion"
)

var printCmd = &cobra.Command{
	Use:   "print [input]",
	Short: "Print an indented character report",
	Long: `Print the extracted character as an indented plain-text report.

  charsheet print simone.xml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	svc, err := newService(cfg, logger)
	if err != nil {
		return err
	}

	_, err = svc.Print(cmd.Context(), &conversion.PrintInput{
		Path:   cfg.Input,
		Writer: cmd.OutOrStdout(),
	})
	return err
}
