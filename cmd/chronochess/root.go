package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/plus3/chronochess/app"
	"github.com/plus3/chronochess/config"
)

// App carries what every subcommand needs once flags are parsed.
type App struct {
	ConfigPath string

	viper  *viper.Viper
	cfg    *config.Config
	logger *zap.Logger
}

func NewRootCmd() *cobra.Command {
	a := &App{viper: config.New()}

	cmd := &cobra.Command{
		Use:          "chronochess",
		Short:        "Chess board with a branching, scrubbable move timeline",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the board window
  chronochess run

  # Replay a scripted session and print the final frame
  echo "e2e4 e7e5 prev d7d5" | chronochess replay -

  # Measure frame times on random sessions
  chronochess stress --duration 5s
`),
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.ConfigPath, "config", "", "config file (yaml, toml or json)")
	flags.String("log-level", "info", "log level")
	flags.Bool("animate", true, "animate jumps along the timeline")
	flags.String("scrub-mode", "snap", "what dragging on the track does: snap or animate")
	flags.String("stacking", "siblings", "timeline branch stacking: siblings or branches")
	flags.String("fen", "", "start position in FEN")
	for key, flag := range map[string]string{
		"log.level":         "log-level",
		"scrubber.animate":  "animate",
		"scrubber.mode":     "scrub-mode",
		"timeline.stacking": "stacking",
		"start_fen":         "fen",
	} {
		if err := a.viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if a.logger != nil {
			_ = a.logger.Sync()
		}
		return nil
	}

	cmd.AddCommand(newRunCmd(a))
	cmd.AddCommand(newReplayCmd(a))
	cmd.AddCommand(newStressCmd(a))
	return cmd
}

func (a *App) setup() error {
	cfg, err := config.Load(a.viper, a.ConfigPath)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// newState builds a fresh session from the loaded configuration.
func (a *App) newState() (*app.State, error) {
	initial, err := a.cfg.InitialBoard()
	if err != nil {
		return nil, fmt.Errorf("initial board: %w", err)
	}
	return app.NewState(initial, a.cfg.AppOptions(), a.logger.Sugar()), nil
}
