// Package spacegroup: sentinel error set.

package spacegroup

import "errors"

var (
	// ErrBadHallNumber rejects Hall numbers outside [1, 530] before any
	// table access.
	ErrBadHallNumber = errors.New("spacegroup: hall number out of range [1, 530]")

	// ErrClassification signals that no reference-table entry matches
	// the found operation set. This should not occur for operations
	// produced by the finder on a valid 3-D lattice; it indicates a
	// tolerance artifact — retry with a different symprec.
	ErrClassification = errors.New("spacegroup: no space-group type matches the operation set")

	// ErrBadHallSymbol signals a malformed Hall symbol in the reference
	// table — a programmer error surfaced instead of panicking.
	ErrBadHallSymbol = errors.New("spacegroup: malformed hall symbol")
)
