package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGPDBArgs(t *testing.T) {
	testCases := []struct {
		name       string
		withGPORCA bool
		expected   []string
	}{
		{
			name:       "with gporca",
			withGPORCA: true,
			expected: []string{
				"--enable-debug", "--with-python", "--with-perl", "--with-libxml",
				"LD_LIBRARY_PATH=/usr/local/lib:$LD_LIBRARY_PATH",
			},
		},
		{
			name:       "without gporca",
			withGPORCA: false,
			expected: []string{
				"--enable-debug", "--with-python", "--with-perl", "--with-libxml",
				"--disable-orca",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GPDBArgs(tc.withGPORCA))
		})
	}
}

func TestDefaultGPDBArgs(t *testing.T) {
	assert.Equal(t, GPDBArgs(true), DefaultGPDBArgs())
}

func TestGPDBArgs_ReturnsFreshSlice(t *testing.T) {
	first := GPDBArgs(false)
	first[0] = "--mutated"
	first = append(first, "--extra")

	second := GPDBArgs(false)
	assert.Equal(t, "--enable-debug", second[0])
	assert.Len(t, second, 5)
	assert.NotContains(t, second, "--extra")
}
