package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/plus3/chronochess/app"
	"github.com/plus3/chronochess/render/text"
)

func newReplayCmd(a *App) *cobra.Command {
	var (
		each bool
		dump bool
	)

	cmd := &cobra.Command{
		Use:   "replay <script|->",
		Short: "Apply a scripted session and print the result",
		Long: `Reads whitespace separated steps from a file, or stdin for "-":

  e2e4        move the piece on e2 to e4
  prev, next  step through the timeline
  sibling     switch to the next branch
  home, end   jump to the start or the tip of the active branch
  jump:N      jump to timestamp N
  tick:N      advance animations by N frames
  animate:on  enable or disable animated jumps (on|off)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := readScript(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			steps, err := app.ParseScript(script)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			state, err := a.newState()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := text.New(out)
			show := func() {
				if dump {
					fmt.Fprint(out, state.Describe())
				} else {
					fmt.Fprintln(out, r.Frame(state.Render(), state.Tree()))
				}
			}

			for _, step := range steps {
				state.Apply(step)
				if each {
					fmt.Fprintf(out, "> %s\n", step)
					show()
				}
			}
			if !each {
				show()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&each, "each", false, "print after every step")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the timeline as plain text instead of drawing the board")
	return cmd
}

func readScript(stdin io.Reader, name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return string(data), nil
}
