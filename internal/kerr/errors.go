// Package kerr provides the kernel's closed error taxonomy. Exactly four
// kinds are surfaced at the public API (spec.md §7 names three; the fourth,
// LatticeMismatch, resolves the Open Question in §9 about a cell written
// with a value from the wrong lattice).
package kerr

import "fmt"

// Code identifies a specific error condition.
type Code int

const (
	// CellNotFound means an operation referenced an unknown cell id.
	CellNotFound Code = iota + 1
	// InformantRequired means add_content was called with an empty
	// informant; every belief must be traceable to a source.
	InformantRequired
	// NoSolution means the solver's constraints are unsatisfiable, or a
	// domain was pruned to empty during arc consistency.
	NoSolution
	// LatticeMismatch means add_content was called with a value whose
	// kind doesn't match the cell's configured lattice.
	LatticeMismatch
)

func (c Code) String() string {
	switch c {
	case CellNotFound:
		return "cell_not_found"
	case InformantRequired:
		return "informant_required"
	case NoSolution:
		return "no_solution"
	case LatticeMismatch:
		return "lattice_mismatch"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by the kernel's public API.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is supports errors.Is(err, kerr.CellNotFound) style checks by comparing
// codes, so callers can match on Code without type-asserting to *Error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// CellNotFoundErr builds a CellNotFound error for a single cell id.
func CellNotFoundErr(id fmt.Stringer) *Error {
	return &Error{Code: CellNotFound, Message: fmt.Sprintf("cell not found: %s", id)}
}

// CellsNotFoundErr builds a CellNotFound error naming every missing id.
func CellsNotFoundErr(ids []fmt.Stringer) *Error {
	msg := "cells not found:"
	for _, id := range ids {
		msg += " " + id.String()
	}
	return &Error{Code: CellNotFound, Message: msg}
}

// InformantRequiredErr builds the InformantRequired error.
func InformantRequiredErr() *Error {
	return &Error{Code: InformantRequired, Message: "informant_required: add_content requires a non-empty informant"}
}

// NoSolutionErr builds the NoSolution error, optionally naming the variable
// whose domain was pruned to empty.
func NoSolutionErr(reason string) *Error {
	msg := "no_solution"
	if reason != "" {
		msg += ": " + reason
	}
	return &Error{Code: NoSolution, Message: msg}
}

// LatticeMismatchErr builds a LatticeMismatch error for a cell/value kind
// pairing.
func LatticeMismatchErr(cell fmt.Stringer, wantKind, gotKind string) *Error {
	return &Error{
		Code:    LatticeMismatch,
		Message: fmt.Sprintf("lattice mismatch on %s: expected %s, got %s", cell, wantKind, gotKind),
	}
}

// CodeOf returns the Code carried by err, or 0 if err is nil or not a
// *Error.
func CodeOf(err error) Code {
	e, ok := err.(*Error)
	if !ok {
		return 0
	}
	return e.Code
}
