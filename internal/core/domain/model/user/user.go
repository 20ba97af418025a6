package user

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/validation"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrUserAlreadyInactive is returned when deactivating a user twice.
	ErrUserAlreadyInactive = errors.New("user is already inactive")
)

const minNameLength = 2

// User is a registered customer. Orders reference users by ID; the
// aggregate itself only carries contact and profile data. Credentials are
// validated at registration but never stored here.
type User struct {
	id        kernel.UUID
	email     string
	firstName string
	lastName  string
	phone     string
	active    bool
	createdAt time.Time

	isConstructed bool
}

// NewUser creates an active user with validated contact fields.
// Phone is optional; when present it must be a valid phone number.
func NewUser(id kernel.UUID, email, firstName, lastName, phone string) (*User, error) {
	user := &User{
		active:        true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setFirstName(firstName),
		user.setLastName(lastName),
		user.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, email, firstName, lastName, phone string, active bool, createdAt time.Time) (*User, error) {
	user := &User{
		active:        active,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setFirstName(firstName),
		user.setLastName(lastName),
		user.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the registered email address.
func (u *User) Email() string {
	return u.email
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// Phone returns the registered phone number, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// IsActive reports whether the account is active.
func (u *User) IsActive() bool {
	return u.active
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Deactivate marks the account inactive. Deactivating twice is an error.
func (u *User) Deactivate() error {
	if !u.active {
		return ErrUserAlreadyInactive
	}
	u.active = false
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if !validation.IsValidEmail(email) {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email", email))
	}
	u.email = email
	return nil
}

func (u *User) setFirstName(firstName string) error {
	if len(firstName) < minNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"firstName",
			fmt.Errorf("must be at least %d characters", minNameLength),
		)
	}
	u.firstName = firstName
	return nil
}

func (u *User) setLastName(lastName string) error {
	if len(lastName) < minNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"lastName",
			fmt.Errorf("must be at least %d characters", minNameLength),
		)
	}
	u.lastName = lastName
	return nil
}

func (u *User) setPhone(phone string) error {
	if phone != "" && !validation.IsValidPhone(phone) {
		return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q is not a valid phone number", phone))
	}
	u.phone = phone
	return nil
}
