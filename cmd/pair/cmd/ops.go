package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/pair/internal/pair"
	"github.com/pengelbrecht/pair/internal/scenario"
)

// newOpCmd builds a command that prints one operation on a pair.
func (a *app) newOpCmd(name, short string, op scenario.Op) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a> <b>",
		Short: short,
		Long: short + `.

Inputs may be integers or numeric strings. Put negative inputs after --.

Examples:
  pair ` + name + ` 1 2
  pair ` + name + ` -- -2 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPair(args[0], args[1])
			if err != nil {
				return err
			}
			got, err := scenario.Apply(p, op)
			if err != nil {
				return NewExitError(ExitUsage, "%w", err)
			}
			a.logger.Debug("computed", "pair", p, "op", op, "result", got)
			fmt.Fprintln(a.stdout, got)
			return nil
		},
	}
}

func (a *app) newGetCmd() *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "get <a> <b>",
		Short: "Print the first value of a pair",
		Long: `Print the first value of a pair after coercion.

With --set, print the first value of a copy of the pair with a replaced.

Examples:
  pair get " 7" 2            # 7
  pair get 1 2 --set 10      # 10`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPair(args[0], args[1])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("set") {
				p, err = p.WithA(set)
				if err != nil {
					return NewExitError(ExitCoercion, "invalid --set: %w", err)
				}
			}
			fmt.Fprintln(a.stdout, p.A())
			return nil
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "replace a before printing")

	return cmd
}

func newPair(a, b string) (pair.Pair, error) {
	p, err := pair.New(a, b)
	if err != nil {
		return pair.Pair{}, NewExitError(ExitCoercion, "invalid input: %w", err)
	}
	return p, nil
}
