package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leofalp/calcgo/core/engine"
)

var evalJSON string

var evalCmd = &cobra.Command{
	Use:   "eval [a] [b] [operation]",
	Short: "Evaluate one operation over two operands",
	Long: `Evaluate a named operation over two float operands.

The operation may be given by canonical name (suma, resta, multiplicacion,
division, potencia, modulo) or by its symbol (+, -, *, /, ^, %).
Alternatively pass a JSON request with --json; loose JSON is repaired before
parsing.`,
	Example: `  calcgo eval 10 5 suma
  calcgo eval 2 3 ^
  calcgo eval --json '{a: 10, b: 5, operation: "division"}'`,
	Args: func(cmd *cobra.Command, args []string) error {
		if evalJSON != "" {
			return cobra.ExactArgs(0)(cmd, args)
		}
		return cobra.ExactArgs(3)(cmd, args)
	},
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVar(&evalJSON, "json", "", "JSON-encoded request, e.g. '{\"a\":10,\"b\":5,\"operation\":\"suma\"}'")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	evaluator, err := newEvaluator()
	if err != nil {
		return err
	}

	var result engine.Result
	if evalJSON != "" {
		result, err = evaluator.EvaluateJSON(cmd.Context(), evalJSON)
	} else {
		result, err = evaluateArgs(cmd, evaluator, args)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", result.Value)
	return nil
}

func evaluateArgs(cmd *cobra.Command, evaluator *engine.Evaluator, args []string) (engine.Result, error) {
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return engine.Result{}, fmt.Errorf("invalid first operand %q: %w", args[0], err)
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return engine.Result{}, fmt.Errorf("invalid second operand %q: %w", args[1], err)
	}

	name := args[2]
	if !evaluator.Supports(name) {
		// Symbols like "+" are resolved to their canonical name so the
		// engine still sees a single lookup path.
		if op, symErr := evaluator.Catalog().ResolveSymbol(name); symErr == nil {
			name = op.OperationInfo().Name
		}
	}

	return evaluator.EvaluateRequest(cmd.Context(), engine.Request{A: a, B: b, Operation: name})
}
