package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	City string `json:"city" validate:"required"`
}

type signup struct {
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Addresses []address `json:"addresses" validate:"dive"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&signup{Email: "not-an-email", Addresses: []address{{}}})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "required", fields["addresses[0].city"])
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signup{Name: "Ada", Email: "ada@example.com"}))
	assert.Nil(t, FieldErrors(nil))
}
