package utils_test

import (
	"testing"

	"bus-reservation/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `validate:"required,max=5"`
	Email string `validate:"required,email"`
	Count int    `validate:"gt=0"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := utils.ValidateStruct(&sampleRequest{
		Name:  "alice",
		Email: "alice@example.com",
		Count: 3,
	})
	assert.Nil(t, errs)
}

func TestValidateStruct_Messages(t *testing.T) {
	errs := utils.ValidateStruct(&sampleRequest{
		Name:  "",
		Email: "not-an-email",
		Count: 0,
	})

	require.Len(t, errs, 3)
	assert.Equal(t, "This field is required", errs["Name"])
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Must be greater than 0", errs["Count"])
}

func TestFormatValidationErrors(t *testing.T) {
	out := utils.FormatValidationErrors(map[string]string{
		"Email": "Invalid email format",
	})
	assert.Equal(t, "Email: Invalid email format", out)
}
