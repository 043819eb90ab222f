package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/lydio/pkg/definition"
	"github.com/arthur-debert/lydio/pkg/output"
)

func newTreeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tree <definition-file>",
		Short: MsgTreeShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			collection, err := definition.BuildFile(args[0])
			if err != nil {
				return err
			}

			resolved, err := resolveFormat(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if resolved != output.FormatTerminal {
				pterm.DisableStyling()
				defer pterm.EnableStyling()
			}

			tree, err := output.Tree(collection)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tree)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", MsgFlagFormat)
	return cmd
}
