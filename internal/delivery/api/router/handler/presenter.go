package handler

import (
	"time"

	"github.com/dac-os/auth/internal/domain/entity"
)

// AccountResponse is the public view of an account. The password hash is never rendered.
type AccountResponse struct {
	AcademicRegistry string           `json:"academicRegistry"`
	Profile          *ProfileResponse `json:"profile,omitempty"`
	Name             string           `json:"name,omitempty"`
	Gender           string           `json:"gender,omitempty"`
	Email            string           `json:"email,omitempty"`
	Phones           []string         `json:"phones"`
	Addresses        []entity.Address `json:"addresses"`
	BirthDate        *time.Time       `json:"birthDate,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// ProfileResponse is the public view of a profile.
type ProfileResponse struct {
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toAccountResponse(account *entity.Account) *AccountResponse {
	phones := account.Phones
	if phones == nil {
		phones = []string{}
	}
	addresses := account.Addresses
	if addresses == nil {
		addresses = []entity.Address{}
	}

	return &AccountResponse{
		AcademicRegistry: account.Registry,
		Profile:          toProfileResponse(account.Profile),
		Name:             account.Name,
		Gender:           account.Gender,
		Email:            account.Email,
		Phones:           phones,
		Addresses:        addresses,
		BirthDate:        account.BirthDate,
		CreatedAt:        account.CreatedAt,
		UpdatedAt:        account.UpdatedAt,
	}
}

func toAccountResponses(accounts []*entity.Account) []*AccountResponse {
	out := make([]*AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toAccountResponse(account))
	}

	return out
}

func toProfileResponse(profile *entity.Profile) *ProfileResponse {
	if profile == nil {
		return nil
	}
	permissions := profile.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return &ProfileResponse{
		Name:        profile.Name,
		Slug:        profile.Slug,
		Permissions: permissions,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}

func toProfileResponses(profiles []*entity.Profile) []*ProfileResponse {
	out := make([]*ProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		out = append(out, toProfileResponse(profile))
	}

	return out
}
