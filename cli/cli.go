package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ringdial/config"
	"ringdial/dial"
	"ringdial/logging"
	"ringdial/tui"
)

// RootCommand wires the cobra command tree around the loaded
// configuration.
type RootCommand struct {
	cmd *cobra.Command
}

// NewRootCommand creates the root command. Running it without a
// subcommand launches the interactive dial; the subcommands exercise
// the engine headlessly.
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "ringdial",
		Short: "An interactive circular time-range selector",
		Long: `ringdial presents a clock ring with two handles. Drag a handle to move
one end of the interval, or drag the arc between them to slide the
whole window around the clock while keeping its length.

EXAMPLES:
  ringdial                               # open the interactive dial
  ringdial show --start 23:00 --end 08:00
  ringdial ticks --start 23:00 --end 08:00

CONFIGURATION:
  Reads ~/.config/ringdial/config.yaml when present (see --config).
  RINGDIAL_DEBUG=1 writes a gesture debug log alongside --debug.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(cmd)
			if err != nil {
				return err
			}
			debug, _ := cmd.Flags().GetBool("debug")
			logger, err := logging.New(debug || logging.Enabled(), cfg.DebugLog)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return tui.Launch(cfg, logger)
		},
	}

	flags := root.cmd.PersistentFlags()
	flags.String("config", "", "Path to a config file (default ~/.config/ringdial/config.yaml)")
	flags.Bool("debug", false, "Write a gesture debug log (also RINGDIAL_DEBUG)")
	flags.String("start", "", "Override the interval start (HH:MM)")
	flags.String("end", "", "Override the interval end (HH:MM)")

	root.cmd.AddCommand(root.newShowCommand(), root.newTicksCommand())
	return root
}

// Execute runs the root command.
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// loadConfig loads the config file and applies flag overrides.
func (r *RootCommand) loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if start, _ := cmd.Flags().GetString("start"); start != "" {
		cfg.Start = start
	}
	if end, _ := cmd.Flags().GetString("end"); end != "" {
		cfg.End = end
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// controllerFor builds a controller for the configured interval.
func (r *RootCommand) controllerFor(cmd *cobra.Command) (*dial.Controller, error) {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	start, end, err := cfg.Interval()
	if err != nil {
		return nil, err
	}
	return dial.NewController(start, end, cfg.Options()), nil
}

func (r *RootCommand) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the interval and its derived geometry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := r.controllerFor(cmd)
			if err != nil {
				return err
			}

			snap := c.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start:    %s\n", snap.Start.Clock())
			fmt.Fprintf(out, "end:      %s\n", snap.End.Clock())
			fmt.Fprintf(out, "duration: %dm\n", snap.Duration)
			fmt.Fprintf(out, "large arc: %v\n", snap.LargeArc)
			fmt.Fprintf(out, "start pos: (%.1f, %.1f)\n", snap.StartPos.X, snap.StartPos.Y)
			fmt.Fprintf(out, "end pos:   (%.1f, %.1f)\n", snap.EndPos.X, snap.EndPos.Y)
			fmt.Fprintf(out, "ticks:    %d\n", len(c.Ticks()))
			return nil
		},
	}
}

func (r *RootCommand) newTicksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ticks",
		Short: "Print the interior tick marks for the interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := r.controllerFor(cmd)
			if err != nil {
				return err
			}

			ticks := c.Ticks()
			out := cmd.OutOrStdout()
			if len(ticks) == 0 {
				fmt.Fprintln(out, "no ticks: interval too short")
				return nil
			}
			for _, t := range ticks {
				fmt.Fprintf(out, "%s  inner (%6.1f, %6.1f)  outer (%6.1f, %6.1f)\n",
					t.Minute.Clock(), t.Inner.X, t.Inner.Y, t.Outer.X, t.Outer.Y)
			}
			return nil
		},
	}
}
