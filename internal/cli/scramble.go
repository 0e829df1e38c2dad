package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube"
	"github.com/SeamusWaldron/piececube/internal/render"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble a cube and print the result",
	Long:  `Scramble a solved cube with random turns and print the turns, the cube net and the state vector.`,
	RunE:  runScramble,
}

var (
	scrambleSeed   uint64
	scrambleLength int
	scramblePlain  bool
)

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (0 = random)")
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", piececube.DefaultScrambleLength, "Number of random turns")
	scrambleCmd.Flags().BoolVar(&scramblePlain, "plain", false, "Print facelets as letters")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleLength < 1 {
		return fmt.Errorf("length must be positive, got %d", scrambleLength)
	}

	opts := []piececube.Option{piececube.WithScrambleLength(scrambleLength)}
	if scrambleSeed != 0 {
		opts = append(opts, piececube.WithSeed(scrambleSeed))
	}

	cube := piececube.NewCube(opts...)
	turns := cube.Scramble()
	log.Debug().Int("turns", len(turns)).Bool("solved", cube.IsSolved()).Msg("scrambled")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble: %s\n\n", piececube.FormatTurns(turns))
	if scramblePlain {
		fmt.Fprint(out, render.Plain(cube))
		fmt.Fprintf(out, "\nLegend: %s\n", colorLegend())
	} else {
		fmt.Fprint(out, render.Net(cube))
	}
	fmt.Fprintf(out, "\nState: %v\n", cube.State())

	return nil
}

// colorLegend lists the letter used for each color in plain output.
func colorLegend() string {
	parts := make([]string, 0, piececube.NumColors)
	for c := piececube.Color(0); c < piececube.NumColors; c++ {
		parts = append(parts, c.String()+"="+c.Name())
	}
	return strings.Join(parts, " ")
}
