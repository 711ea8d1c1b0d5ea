package commands

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/crimson-sun/vecname/internal/address"
)

// addressRecord adds the derived vector properties to a parsed address.
type addressRecord struct {
	address.Address `yaml:",inline"`
	Text            string `json:"text" yaml:"text"`
	History         bool   `json:"history" yaml:"history"`
	Accumulated     bool   `json:"accumulated" yaml:"accumulated"`
}

func newAddressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "address <text>...",
		Short: "Parse summary addresses such as WOPR:OP_1 or BPR:10,12,3",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := address.NewParser(a.eng)
			enc, err := a.encoder(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var errs []error
			for _, text := range args {
				addr, err := parser.Parse(text)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				rec := addressRecord{
					Address:     addr,
					Text:        addr.String(),
					History:     addr.IsHistoryVector(),
					Accumulated: addr.HasAccumulatedData(),
				}
				if err := enc.Encode(rec, rec.Text, addr.Category.String(),
					strconv.FormatBool(rec.History), strconv.FormatBool(rec.Accumulated)); err != nil {
					return err
				}
			}
			if err := enc.Close(); err != nil {
				return err
			}
			return errors.Join(errs...)
		},
	}
}
