package main

import (
	"github.com/spf13/cobra"

	"github.com/plus3/chronochess/app"
	"github.com/plus3/chronochess/debugui"
	"github.com/plus3/chronochess/render/ebiten"
)

func newRunCmd(a *App) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the board window",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := a.newState()
			if err != nil {
				return err
			}
			loop := app.NewLoop(state)
			log := a.logger.Sugar()

			var overlay *debugui.Backend
			if debug || a.cfg.DebugUI {
				geom := state.Geometry()
				overlay = debugui.NewBackend(a.cfg.Window.Title, int(geom.Width), int(geom.Height))
				debugui.Install(loop)
			}

			log.Infow("opening window", "session", state.Session().String(), "debug_ui", overlay != nil)
			return ebiten.Run(ebiten.New(loop, a.cfg.Window.TPS, overlay, log), a.cfg.Window.Title)
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "show the Dear ImGui inspector")
	return cmd
}
