package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/pkg/errors"
)

func TestToggle(t *testing.T) {
	assert.Equal(t, Light, Dark.Toggle())
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Dark, Dark.Toggle().Toggle())
}

func TestToggle_LeavesPalettesUntouched(t *testing.T) {
	before := Dark.Palette
	_ = Dark.Toggle()
	assert.Equal(t, before, Dark.Palette)
	assert.Equal(t, "#151521", Dark.Palette.Background)
	assert.Equal(t, "#F5F7FA", Light.Palette.Background)
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Theme
		wantErr bool
	}{
		{name: "dark", input: "dark", want: Dark},
		{name: "light", input: "light", want: Light},
		{name: "mixed case", input: " Light ", want: Light},
		{name: "unknown", input: "solarized", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDark(t *testing.T) {
	assert.True(t, Dark.IsDark())
	assert.False(t, Light.IsDark())
}
