package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/lydio/pkg/config"
	"github.com/arthur-debert/lydio/pkg/definition"
	"github.com/arthur-debert/lydio/pkg/logging"
	"github.com/arthur-debert/lydio/pkg/output"
)

func newBuildCmd() *cobra.Command {
	var outPath, format string

	cmd := &cobra.Command{
		Use:     "build <definition-file>",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.build")
			cfg := config.Get()

			collection, err := definition.BuildFile(args[0])
			if err != nil {
				return err
			}
			text := collection.CSS()
			rules := output.CountRules(collection)

			if outPath != "" {
				if cfg.Output.Newline {
					text += "\n"
				}
				if err := output.WriteFile(cmd.Context(), outPath, text, cfg.Output.Overwrite); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), output.Summary(rules, outPath))
				return nil
			}

			resolved, err := resolveFormat(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			logger.Debug().
				Str("source", args[0]).
				Str("format", resolved.String()).
				Int("rules", rules).
				Msg("Rendering stylesheet")

			return output.Render(cmd.OutOrStdout(), text, resolved, output.Options{
				Newline: cfg.Output.Newline,
				Style:   cfg.Preview.Style,
				Width:   cfg.Preview.Width,
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVar(&format, "format", "", MsgFlagFormat)
	return cmd
}
