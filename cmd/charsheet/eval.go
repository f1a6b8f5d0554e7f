package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheetfill/internal/orchestrators/conversion"
)

var evalLevel int

var evalCmd = &cobra.Command{
	Use:   "eval [formula]",
	Short: "Evaluate a spell duration or range formula",
	Long: `Resolve a duration or range formula for a caster level. Examples:

  eval "1 round/level" --level 5
  eval "Medium (100 ft. + 10 ft./level)" --level 7`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().IntVarP(&evalLevel, "level", "l", 1, "caster level")
}

func runEval(cmd *cobra.Command, args []string) error {
	svc, err := newEvalService(logger)
	if err != nil {
		return err
	}

	out, err := svc.Evaluate(cmd.Context(), &conversion.EvaluateInput{Formula: args[0], Level: evalLevel})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.Text)
	return nil
}
