package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncludeSet_Covering(t *testing.T) {
	set, err := NewIncludeSet([]string{"icon.dds", "modDesc.xml", "src/**/*.lua"})
	require.NoError(t, err)

	tests := []struct {
		name string
		want string
	}{
		{"icon.dds", "icon.dds"},
		{"modDesc.xml", "modDesc.xml"},
		{"src/a.lua", "src/**/*.lua"},
		{"src/sub/deep/b.lua", "src/**/*.lua"},
		{"src/a.py", ""},
		{"other/a.lua", ""},
		{"sub/icon.dds", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, set.Covering(tc.name), tc.name)
	}
}

func TestNewIncludeSet_Invalid(t *testing.T) {
	_, err := NewIncludeSet([]string{" "})
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = NewIncludeSet([]string{"src/[a.lua"})
	assert.Error(t, err)
}
