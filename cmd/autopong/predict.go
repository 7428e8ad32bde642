package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/autopong/internal/core"
	"github.com/vovakirdan/autopong/internal/pong"
)

var predictCmd = &cobra.Command{
	Use:   "predict <x> <y> <vx> <vy>",
	Short: "Show where the autopilot expects the ball to cross a goal line",
	Long: `Evaluates the autopilot's bounce prediction for a ball at (x, y) moving
(vx, vy) pixels per tick. The prediction folds at most one wall bounce and
ignores paddles.

Examples:
  autopong predict 512 384 -10 -10
  autopong predict 500 700 10 1`,
	Args: cobra.ExactArgs(4),
	RunE: runPredict,
}

func init() {
	// Negative velocities such as -10 are arguments, not shorthand flags.
	predictCmd.Flags().SetInterspersed(false)
}

func runPredict(cmd *cobra.Command, args []string) error {
	var n [4]int
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("argument %d (%q) is not an integer", i+1, a)
		}
		n[i] = v
	}

	pos, vel := core.V(n[0], n[1]), core.V(n[2], n[3])
	target := pong.PredictBounce(pos, vel)

	side := pong.SideLeft
	if vel.X > 0 {
		side = pong.SideRight
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s paddle target: (%d, %d)\n", side, target.X, target.Y)
	return nil
}
