package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrExpireStaleDraftsCommandIsNotConstructed = errors.New(
	"ExpireStaleDraftsCommand must be created via NewExpireStaleDraftsCommand constructor",
)

// ExpireStaleDraftsCommand requests cancellation of draft orders that
// have not been touched since the cutoff. The cutoff is explicit so the
// caller (the scheduled job) controls the clock.
type ExpireStaleDraftsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireStaleDraftsCommand creates a command to expire abandoned drafts.
func NewExpireStaleDraftsCommand(cutoff time.Time) (ExpireStaleDraftsCommand, error) {
	if cutoff.IsZero() {
		return ExpireStaleDraftsCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return ExpireStaleDraftsCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleDraftsCommandIsNotConstructed)
}

// Cutoff returns the staleness threshold. Drafts last updated before
// this instant are cancelled.
func (c ExpireStaleDraftsCommand) Cutoff() time.Time {
	return c.cutoff
}
