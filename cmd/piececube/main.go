// piececube - terminal cube simulator and training environment runner.
package main

import (
	"github.com/SeamusWaldron/piececube/internal/cli"
)

func main() {
	cli.Execute()
}
