package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Year  string `validate:"omitempty,numeric"`
	Level string `validate:"required,oneof=debug info"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sample{Level: "info"}))
	assert.NoError(t, ValidateStruct(sample{Year: "1999", Level: "debug"}))

	err := ValidateStruct(sample{Year: "nineteen", Level: "info"})
	assert.EqualError(t, err, `year must be numeric, got "nineteen"`)

	err = ValidateStruct(sample{Year: "abc"})
	assert.EqualError(t, err, `year must be numeric, got "abc"; level is required`)

	err = ValidateStruct(sample{Level: "trace"})
	assert.EqualError(t, err, "level must be one of: debug info")
}
