package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/autopong/internal/platform/headless"
	"github.com/vovakirdan/autopong/internal/pong"
	"github.com/vovakirdan/autopong/internal/registry"
)

var (
	flagSimLeft   string
	flagSimRight  string
	flagSimFrames int
	flagSimFPS    int
	flagSimShow   bool
	flagSimWidth  int
	flagSimHeight int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the table headless and print a summary",
	Long: `Runs the fixed-timestep loop on simulated time, as fast as possible.

Each frame advances the simulated clock by 1/fps seconds; the simulation
drains whole 16ms ticks from it exactly as 'play' does. Two runs with the same
flags always end in the same state.

Examples:
  autopong sim
  autopong sim --frames 3600 --fps 30
  autopong sim --left idle --show`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimLeft, "left", "", "Controller for the left paddle")
	simCmd.Flags().StringVar(&flagSimRight, "right", "", "Controller for the right paddle")
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 600, "Number of frames to run")
	simCmd.Flags().IntVar(&flagSimFPS, "fps", 0, "Simulated frame rate (0 = display.frame_rate from config)")
	simCmd.Flags().BoolVar(&flagSimShow, "show", false, "Print the final frame as text")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 64, "Width of the printed frame")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Height of the printed frame")
}

func runSim(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(flagSimLeft, flagSimRight, os.Stderr)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close of the log file
	defer st.close()

	if flagSimFPS > 0 {
		st.cfg.Display.FrameRate = flagSimFPS
	}
	palette, err := st.cfg.Palette()
	if err != nil {
		return err
	}

	in := &headless.ScriptedInput{}
	left, right, err := registry.Pair(st.cfg.Controllers.Left, st.cfg.Controllers.Right, in)
	if err != nil {
		return err
	}
	game := pong.New(
		pong.WithControllers(left, right),
		pong.WithLogger(st.logger),
	)

	opts := headless.Options{
		Frames:        flagSimFrames,
		FrameInterval: st.cfg.Display.FrameInterval(),
		Start:         time.Now(),
		Palette:       palette,
		Input:         in,
		Logger:        st.logger,
	}
	if flagSimShow {
		opts.Width, opts.Height = flagSimWidth, flagSimHeight
	}

	res, err := headless.Run(cmd.Context(), game, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	snap := res.Snapshot
	fmt.Fprintf(out, "run      %s\n", st.runID)
	fmt.Fprintf(out, "frames   %d\n", res.Frames)
	fmt.Fprintf(out, "ticks    %d x %v (lag %v)\n", res.Ticks, res.Tick, res.Lag)
	fmt.Fprintf(out, "points   %d\n", snap.Resets)
	fmt.Fprintf(out, "score    left %d : %d right\n", snap.LeftScore, snap.RightScore)
	fmt.Fprintf(out, "ball     (%d, %d) v=(%d, %d)\n", snap.BallX, snap.BallY, snap.BallVX, snap.BallVY)
	fmt.Fprintf(out, "paddles  (%d, %d) (%d, %d)\n", snap.LeftX, snap.LeftY, snap.RightX, snap.RightY)
	fmt.Fprintf(out, "state    %016x\n", snap.Hash())
	if res.Screen != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, res.Screen.String())
	}
	return nil
}
