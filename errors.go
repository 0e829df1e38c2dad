package piececube

import "errors"

// Sentinel errors for the piececube package.
var (
	// Construction errors
	ErrInvalidPiece = errors.New("piececube: invalid piece")

	// Turn errors
	ErrInvalidTurn = errors.New("piececube: invalid turn")
)
