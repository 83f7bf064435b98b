package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_CustomTags(t *testing.T) {
	type input struct {
		Name   string `validate:"required,notblank"`
		Rating int    `validate:"rating"`
	}

	tests := []struct {
		name      string
		input     input
		wantField string
	}{
		{name: "valid", input: input{Name: "Favorites", Rating: 3}},
		{name: "blank name", input: input{Name: "   ", Rating: 3}, wantField: "name"},
		{name: "rating too high", input: input{Name: "Favorites", Rating: 6}, wantField: "rating"},
		{name: "rating zero", input: input{Name: "Favorites"}, wantField: "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.input)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}

func TestValidateStruct_EmailAndMin(t *testing.T) {
	type input struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	errs := ValidateStruct(input{Email: "not-an-email", Password: "short"})
	require.Len(t, errs, 2)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "Email must be a valid email address", errs[0].Message)
	assert.Equal(t, "password", errs[1].Field)
	assert.Equal(t, "Password must be at least 8 characters", errs[1].Message)
}
