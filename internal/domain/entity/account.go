// Package entity contains the core business objects of the directory,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Account is a person registered in the directory.
// Its Registry is assigned once at creation and never rewritten.
type Account struct {
	ID           uuid.UUID  // Internal storage identifier, bound to session tokens.
	Registry     string     // Year-scoped academic registry number with a Damm check digit.
	PasswordHash string     // Salted one-way password hash; never rendered.
	ProfileID    *uuid.UUID // Profile granting permissions, nil once the profile is deleted.
	Profile      *Profile   // Loaded alongside the account when the caller needs permissions.
	Name         string
	Gender       string
	Email        string
	Phones       []string
	Addresses    []Address
	BirthDate    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Address is a postal address attached to an account.
type Address struct {
	State        string `json:"state" validate:"required"`
	City         string `json:"city" validate:"required"`
	ZipCode      string `json:"zipCode" validate:"required"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Street       string `json:"street" validate:"required"`
	Number       string `json:"number" validate:"required"`
	Complement   string `json:"complement,omitempty"`
}

// Can reports whether the account's profile grants permission.
// Membership is exact string equality; there are no wildcards or hierarchies.
func (a *Account) Can(permission string) bool {
	if a == nil || a.Profile == nil {
		return false
	}

	return slices.Contains(a.Profile.Permissions, permission)
}
