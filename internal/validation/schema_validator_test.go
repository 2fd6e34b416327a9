package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsValidator_ValidateBytes(t *testing.T) {
	validator, err := NewSettingsValidator()
	require.NoError(t, err)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "empty object", data: `{}`},
		{name: "typical settings", data: `{"format_version": 1, "gap": -2.2, "thickness": 4.1, "length": 33, "color_preset": 5, "red": 50, "green": 250, "blue": 84, "alpha": 200, "center_dot_enabled": true}`},
		{name: "half outline", data: `{"outline_enabled": true, "outline_thickness": 1.5}`},
		{name: "length too long", data: `{"length": 200}`, errorMsg: "/length: maximum"},
		{name: "gap below range", data: `{"gap": -13}`, errorMsg: "/gap: minimum"},
		{name: "off step thickness", data: `{"thickness": 1.25}`, errorMsg: "/thickness: multipleOf"},
		{name: "off step outline", data: `{"outline_thickness": 0.7}`, errorMsg: "/outline_thickness: multipleOf"},
		{name: "channel overflow", data: `{"red": 256}`, errorMsg: "/red"},
		{name: "fractional style", data: `{"style": 1.5}`, errorMsg: "/style: type"},
		{name: "wrong version", data: `{"format_version": 2}`, errorMsg: "/format_version: const"},
		{name: "misspelled field", data: `{"lenght": 3}`, errorMsg: "additionalProperties"},
		{name: "wrong type", data: `{"center_dot_enabled": "yes"}`, errorMsg: "/center_dot_enabled: type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data))
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaViolation)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSettingsValidator_InvalidJSON(t *testing.T) {
	validator, err := NewSettingsValidator()
	require.NoError(t, err)

	err = validator.ValidateBytes([]byte(`{"gap": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON data")
	assert.NotErrorIs(t, err, ErrSchemaViolation)
}
