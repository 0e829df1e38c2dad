// Package piececube models a 3x3x3 Rubik's cube as a set of pieces that
// are moved and reoriented by face turns.
//
// # Overview
//
// A Cube holds 27 pieces in three layers of nine slots: 8 corners,
// 12 edges, 6 centers and the hidden core. Each Piece maps the six
// directions (Front, Back, Right, Left, Top, Down) to the color of the
// facelet facing that way. A face turn moves the nine pieces of a face
// between slots and rotates each of them, so colors always stay attached
// to their piece.
//
// # Quick Start
//
//	cube := piececube.NewCube()
//
//	// Apply turns by value or by method
//	cube.Apply(piececube.R)
//	cube.Ud()
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println("State:", cube.State()) // 54 integers in [0, 5]
//
// # Turns
//
// There are twelve turns: U, D, R, L, F, B and their counter-clockwise
// counterparts Ud, Dd, Rd, Ld, Fd, Bd. Turn.Inverse pairs them.
//
// # Scrambling
//
// Scramble applies 25 uniformly random turns. Use WithSeed for repeatable
// scrambles and WithScrambleLength to change the count:
//
//	cube := piececube.NewCube(piececube.WithSeed(42))
//	turns := cube.Scramble()
//	fmt.Println(piececube.FormatTurns(turns))
//
// # Concurrency
//
// A Cube is not safe for concurrent use. Give each goroutine its own cube.
package piececube
