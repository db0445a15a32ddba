package manifest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCompatibility_Caret(t *testing.T) {
	tests := []struct {
		hostRange string
		version   string
		want      bool
	}{
		{"^1.0.0", "1.2.3", true},
		{"^2.0.0", "1.2.3", false},
		{"^1.0.0", "1.0.0", true},
		{"^1.2.0", "1.1.9", false},
		{"^1.0.0", "2.0.0", false},
		// 0.x ranges stay narrow
		{"^0.2.0", "0.2.5", true},
		{"^0.2.0", "0.3.0", false},
		{"^0.0.3", "0.0.3", true},
		{"^0.0.3", "0.0.4", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.hostRange, tt.version), func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCompatibility(tt.hostRange, tt.version))
		})
	}
}

func TestResolveCompatibility_Operators(t *testing.T) {
	tests := []struct {
		hostRange string
		version   string
		want      bool
	}{
		{"~1.2.0", "1.2.9", true},
		{"~1.2.0", "1.3.0", false},
		{">=1.2.0", "1.2.0", true},
		{">=1.2.0", "1.1.9", false},
		{">1.2.0", "1.2.0", false},
		{">1.2.0", "1.2.1", true},
		{"<2.0.0", "1.9.9", true},
		{"<=2.0.0", "2.0.0", true},
		{"=1.2.3", "1.2.3", true},
		{"1.2.3", "1.2.3", true},
		{"1.2.3", "1.2.4", false},
		{"*", "0.0.1", true},
		{">=1.2.0 <2.0.0", "1.5.0", true},
		{">=1.2.0 <2.0.0", "2.1.0", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.hostRange, tt.version), func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCompatibility(tt.hostRange, tt.version))
		})
	}
}

func TestResolveCompatibility_ParseFailures(t *testing.T) {
	assert.False(t, ResolveCompatibility("not-a-range", "1.2.3"))
	assert.False(t, ResolveCompatibility("^1.0.0", "not-a-version"))
	assert.False(t, ResolveCompatibility("", "1.2.3"))
	assert.False(t, ResolveCompatibility("^1.0.0", ""))
	assert.False(t, ResolveCompatibility("≥1.0.0", "1.2.3"))
}

func TestResolveCompatibility_Coercion(t *testing.T) {
	assert.True(t, ResolveCompatibility("^1.0.0", "v1.4.0"))
	assert.True(t, ResolveCompatibility("^1.0", "1.2"))
	assert.True(t, ResolveCompatibility("^1", "1.9.9"))
	assert.True(t, ResolveCompatibility("^1.0.0", "1.2.3-beta.1"))
}
