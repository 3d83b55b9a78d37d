package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/tempo/internal/config"
	"github.com/mrz1836/tempo/internal/errors"
	"github.com/mrz1836/tempo/internal/report"
)

// formatted pairs an input seconds value with its rendered display string.
type formatted struct {
	Seconds int64  `json:"seconds"`
	Display string `json:"display"`
}

// AddFormatCommand adds the format command to the root command.
func AddFormatCommand(rootCmd *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "format <seconds>...",
		Short: "Format a count of seconds as HH:MM:SS",
		Long: `Format renders each integer argument as a zero-padded HH:MM:SS string.

Negative values are rendered with a leading minus sign; values of 100 hours
or more widen the hours field.`,
		Example: `  tempo format 2
  tempo format 600 3661
  tempo format 90000 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]formatted, 0, len(args))
			for _, arg := range args {
				secs, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return errors.Wrapf(errors.ErrInvalidSeconds, "cannot parse %q", arg)
				}
				results = append(results, formatted{Seconds: secs, Display: report.DisplayTime(secs)})
			}

			out := NewOutput(flags.Output, cmd.OutOrStdout())
			if flags.Output == config.OutputJSON {
				return out.JSON(results)
			}
			for _, r := range results {
				out.Info(r.Display)
			}
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}
