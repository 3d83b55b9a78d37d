package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/tempo/internal/clock"
	"github.com/mrz1836/tempo/internal/config"
	"github.com/mrz1836/tempo/internal/errors"
	"github.com/mrz1836/tempo/internal/report"
	"github.com/mrz1836/tempo/internal/session"
	"github.com/mrz1836/tempo/internal/signal"
)

// waitResult pairs a requested wait with the summary of the session that
// timed it.
type waitResult struct {
	// Requested is the duration that was asked for.
	Requested string `json:"requested"`
	// Summary describes the elapsed time actually observed.
	Summary *report.Summary `json:"summary"`
	// Interrupted is true when the wait was cut short by a signal.
	Interrupted bool `json:"interrupted,omitempty"`
}

// AddWaitCommand adds the wait command to the root command.
func AddWaitCommand(rootCmd *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "wait <duration>...",
		Short: "Wait for one or more durations and report elapsed time",
		Long: `Wait blocks for each given duration, timing the wait with a session backed
by the system clock, then reports the observed elapsed time as HH:MM:SS.

Durations use Go syntax ("2s", "1m30s"); a bare integer is read as seconds.
Multiple durations run concurrently. Ctrl+C stops the in-flight sessions
and reports the partial elapsed time before exiting non-zero.`,
		Example: `  tempo wait 2
  tempo wait 2s 10s
  tempo wait 1m30s --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			durations, err := parseWaitArgs(args)
			if err != nil {
				return err
			}

			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(flags.Output, cmd.OutOrStdout())
			return runWait(cmd.Context(), out, GetLogger(), flags.Output, cfg.Timer.Tick, durations)
		},
	}

	rootCmd.AddCommand(cmd)
}

// parseWaitArgs parses wait arguments into durations.
// A bare integer is read as a count of seconds; anything else must be valid
// Go duration syntax. Durations must be positive.
func parseWaitArgs(args []string) ([]time.Duration, error) {
	durations := make([]time.Duration, 0, len(args))
	for _, arg := range args {
		d, err := parseWaitArg(arg)
		if err != nil {
			return nil, err
		}
		durations = append(durations, d)
	}
	return durations, nil
}

func parseWaitArg(arg string) (time.Duration, error) {
	var d time.Duration
	if secs, err := strconv.ParseInt(arg, 10, 64); err == nil {
		d = time.Duration(secs) * time.Second
	} else {
		parsed, err := time.ParseDuration(arg)
		if err != nil {
			return 0, errors.Wrapf(errors.ErrInvalidDuration, "cannot parse %q", arg)
		}
		d = parsed
	}

	if d <= 0 {
		return 0, errors.Wrapf(errors.ErrInvalidDuration, "%q must be positive", arg)
	}
	return d, nil
}

// runWait times one session per duration, concurrently, and renders the
// results. It returns ErrInterrupted when a signal cut the waits short.
func runWait(ctx context.Context, out Output, logger zerolog.Logger, format string, tick time.Duration, durations []time.Duration) error {
	h := signal.NewHandler(ctx)
	defer h.Stop()

	results := make([]*waitResult, len(durations))
	g, gctx := errgroup.WithContext(h.Context())
	for i, d := range durations {
		i, d := i, d
		g.Go(func() error {
			r, err := waitOne(gctx, logger, tick, d)
			results[i] = r
			return err
		})
	}
	waitErr := g.Wait()

	rendered := make([]*waitResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			rendered = append(rendered, r)
		}
	}

	if format == config.OutputJSON {
		if err := out.JSON(rendered); err != nil {
			return err
		}
	} else {
		for _, r := range rendered {
			if r.Interrupted {
				out.Warning(fmt.Sprintf("interrupted after %s (requested %s)", r.Summary.Display, r.Requested))
			} else {
				out.Success(fmt.Sprintf("waited %s", r.Summary.Display))
			}
		}
	}

	return waitErr
}

// waitOne blocks for d, timing the wait with a system-clock session.
// On cancellation the session is stopped where it stands and the partial
// result is returned along with ErrInterrupted.
func waitOne(ctx context.Context, logger zerolog.Logger, tick, d time.Duration) (*waitResult, error) {
	s := session.New(clock.SystemClock{})
	logger.Debug().Str("duration", d.String()).Msg("wait started")

	timer := time.NewTimer(d)
	defer timer.Stop()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Stop()
			summary, err := report.NewSummary(s)
			if err != nil {
				return nil, err
			}
			logger.Warn().Str("duration", d.String()).Str("elapsed", summary.Display).Msg("wait interrupted")
			return &waitResult{Requested: d.String(), Summary: summary, Interrupted: true}, errors.ErrInterrupted
		case <-ticker.C:
			logger.Debug().Str("duration", d.String()).Msg("wait in progress")
		case <-timer.C:
			s.Stop()
			summary, err := report.NewSummary(s)
			if err != nil {
				return nil, err
			}
			logger.Debug().Str("duration", d.String()).Str("elapsed", summary.Display).Msg("wait finished")
			return &waitResult{Requested: d.String(), Summary: summary}, nil
		}
	}
}
