package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the operations the evaluator supports",
	RunE: func(cmd *cobra.Command, args []string) error {
		evaluator, err := newEvaluator()
		if err != nil {
			return err
		}

		for _, name := range evaluator.SupportedOperations() {
			op, err := evaluator.Catalog().Resolve(name)
			if err != nil {
				return err
			}
			info := op.OperationInfo()
			if info.Symbol != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-3s %s\n", info.Name, info.Symbol, info.Description)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s     %s\n", info.Name, info.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(opsCmd)
}
