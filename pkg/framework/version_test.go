package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
		ok   bool
	}{
		{"6.0", V(6, 0), true},
		{"4.7.2", V(4, 7, 2), true},
		{"v3.1", V(3, 1), true},
		{"10.0.19041.0", V(10, 0, 19041), true},
		{"5", V(5), true},
		{"", EmptyVersion, false},
		{"1.2.3.4.5", EmptyVersion, false},
		{"5.", EmptyVersion, false},
		{"a.b", EmptyVersion, false},
		{"-1.0", EmptyVersion, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseVersion(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCompactVersion(t *testing.T) {
	v, ok := parseCompactVersion("472")
	assert.True(t, ok)
	assert.Equal(t, V(4, 7, 2), v)

	_, ok = parseCompactVersion("12345")
	assert.False(t, ok)
}

func TestVersionCompare(t *testing.T) {
	assert.Equal(t, 0, V(6, 0).Compare(V(6)))
	assert.Equal(t, -1, V(4, 6).Compare(V(4, 6, 1)))
	assert.Equal(t, 1, V(10, 0).Compare(V(9, 9, 9, 9)))
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "6.0", V(6).String())
	assert.Equal(t, "4.7.2", V(4, 7, 2).String())
	assert.Equal(t, "1.0.0.1", V(1, 0, 0, 1).String())
	assert.Equal(t, "472", V(4, 7, 2).compact())
	assert.Equal(t, "40", V(4).compact())
	assert.Equal(t, "10.0", V(10).compact())
}
