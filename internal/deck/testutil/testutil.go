// Package testutil provides shared test helpers for the deck packages.
package testutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ContainsSubstring checks if haystack contains needle (case-insensitive).
func ContainsSubstring(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Error represents any error type reporting a message and a byte offset.
type Error interface {
	GetError() string
	GetOffset() int
}

// RequireErrorAt fails the test unless err carries exactly message at offset.
func RequireErrorAt(t *testing.T, err error, message string, offset int) {
	t.Helper()
	require.Error(t, err)

	var positioned Error
	require.True(t, errors.As(err, &positioned), "error %v carries no offset", err)
	assert.Equal(t, message, positioned.GetError())
	assert.Equal(t, offset, positioned.GetOffset())
}

// AssertErrorContains fails if err is nil or its message lacks expected.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	if err == nil {
		t.Errorf("Expected error containing %q, got <nil>", expected)
		return
	}

	if !ContainsSubstring(err.Error(), expected) {
		t.Errorf("Expected error containing %q, got: %v", expected, err)
	}
}
