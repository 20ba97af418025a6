// Package userrepo provides data transfer objects and mapping functions
// for user persistence. It implements the repository pattern for the user
// aggregate, handling the conversion between domain entities and database
// representations.
package userrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// Email carries a unique index to back the duplicate-registration check.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32)"`
	Active    bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:        aggregate.ID().Bytes(),
		Email:     aggregate.Email(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Phone:     aggregate.Phone(),
		Active:    aggregate.IsActive(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back into a user aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Email,
		dto.FirstName,
		dto.LastName,
		dto.Phone,
		dto.Active,
		dto.CreatedAt,
	)
}
