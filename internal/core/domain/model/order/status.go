package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
// Use errors.Is against it to detect rejected lifecycle changes.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a lifecycle change that is not present in
// the allowed-transition table. It carries both statuses for diagnostics.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order. It implements a state
// machine whose edges are held in an explicit transition table, so the set
// of legal lifecycle paths can be tested exhaustively.
//
// State transitions:
//
//	Draft ──> Pending ──> Confirmed ──> Shipped ──> Delivered
//	  │          │            │
//	  └──────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; no transitions leave them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of a newly created order.
	// Items can only be edited while the order is in this status.
	Draft

	// Pending indicates the order has been submitted and awaits confirmation.
	Pending

	// Confirmed indicates the order has been accepted for fulfillment.
	Confirmed

	// Shipped indicates the order has left the warehouse.
	// The only transition out of Shipped is to Delivered.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before shipping. Terminal.
	Cancelled
)

// getStatusStrings returns the string representation of every Status value,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// transition is one directed edge of the lifecycle graph.
type transition struct {
	from Status
	to   Status
}

// getAllowedTransitions returns the complete set of legal lifecycle edges.
// Any (from, to) pair absent from this table is rejected, including
// same-state transitions.
func getAllowedTransitions() map[transition]bool {
	return map[transition]bool{
		{Draft, Pending}:       true,
		{Draft, Cancelled}:     true,
		{Pending, Confirmed}:   true,
		{Pending, Cancelled}:   true,
		{Confirmed, Shipped}:   true,
		{Confirmed, Cancelled}: true,
		{Shipped, Delivered}:   true,
	}
}

// StatusFromString parses a status name, ignoring case.
// Unknown is not accepted.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the values an order may hold.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the (s, target) edge is in the
// allowed-transition table.
func (s Status) CanTransitionTo(target Status) bool {
	return getAllowedTransitions()[transition{from: s, to: target}]
}

// TransitionTo returns the target status when the (s, target) edge is legal.
// Returns an InvalidTransitionError identifying both statuses otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}
