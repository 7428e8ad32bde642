package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/autopong/internal/loop"
	"github.com/vovakirdan/autopong/internal/platform/tui"
	"github.com/vovakirdan/autopong/internal/pong"
	"github.com/vovakirdan/autopong/internal/registry"
)

var (
	flagPlayLeft  string
	flagPlayRight string
	flagPlayFPS   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the table in the terminal",
	Long: `Runs the table full-screen until you quit.

The simulation always advances in fixed 16ms ticks; --fps only sets how often
the terminal is redrawn.

Controls (keyboard controller):
  Up/W     - Paddle up
  Down/S   - Paddle down
  Q/Esc    - Quit

Examples:
  autopong play
  autopong play --right keyboard
  autopong play --left idle --log-file autopong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayLeft, "left", "", "Controller for the left paddle (see 'autopong controllers')")
	playCmd.Flags().StringVar(&flagPlayRight, "right", "", "Controller for the right paddle")
	playCmd.Flags().IntVar(&flagPlayFPS, "fps", 0, "Redraw rate (0 = display.frame_rate from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Logs would corrupt the alternate screen, so they are dropped unless a file is given.
	st, err := loadSettings(flagPlayLeft, flagPlayRight, io.Discard)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close of the log file
	defer st.close()

	if flagPlayFPS > 0 {
		st.cfg.Display.FrameRate = flagPlayFPS
	}
	palette, err := st.cfg.Palette()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	clock := loop.SystemClock{}
	keys := tui.NewKeyState(clock, st.cfg.Display.KeyHold())
	left, right, err := registry.Pair(st.cfg.Controllers.Left, st.cfg.Controllers.Right, keys)
	if err != nil {
		return err
	}

	game := pong.New(
		pong.WithControllers(left, right),
		pong.WithLogger(st.logger),
	)

	st.logger.Info("session starting",
		"left", st.cfg.Controllers.Left,
		"right", st.cfg.Controllers.Right,
		"fps", st.cfg.Display.FrameRate,
		"size", fmt.Sprintf("%dx%d", width, height),
	)

	err = tui.Run(game, keys, tui.Options{
		Palette:       palette,
		FrameInterval: st.cfg.Display.FrameInterval(),
		ShowScore:     st.cfg.Display.ShowScore,
		Width:         width,
		Height:        height,
		Clock:         clock,
		Logger:        st.logger,
	})

	snap := game.Snapshot()
	st.logger.Info("session ended", "ticks", snap.Tick, "left", snap.LeftScore, "right", snap.RightScore)
	if err != nil {
		return fmt.Errorf("running table: %w", err)
	}
	return nil
}
