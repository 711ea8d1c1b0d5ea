package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func newDescribeCmd(a *app) *cobra.Command {
	var fallback, exact bool

	cmd := &cobra.Command{
		Use:   "describe <name>",
		Short: "Print the long name of a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			desc := a.eng.QuantityInfo(name, exact)
			longName := desc.LongName
			if !desc.Valid() {
				if !fallback {
					return errors.Newf("no long name for %q", name)
				}
				longName = name
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), longName)
			return err
		},
	}
	cmd.Flags().BoolVar(&fallback, "fallback", false, "print the name itself when no long name is found")
	cmd.Flags().BoolVar(&exact, "exact", false, "only accept names listed in the dictionary")
	return cmd
}
