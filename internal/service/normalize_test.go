package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"  ada lovelace ": "Ada Lovelace",
		"ADA LOVELACE":    "Ada Lovelace",
		"ada-lovelace":    "Ada-Lovelace",
		"data structures": "Data Structures",
		"go 101":          "Go 101",
	}
	for input, want := range cases {
		require.Equal(t, want, normalizeName(input), "input %q", input)
	}
}

func TestValidCourseName(t *testing.T) {
	for _, name := range []string{"Go 101", "Intro: Databases", "data-science_2", "a"} {
		require.True(t, validCourseName(name), "name %q", name)
	}
	for _, name := range []string{"", "   ", "12345", "C++", "math!", "a,b"} {
		require.False(t, validCourseName(name), "name %q", name)
	}
}

func TestValidPersonName(t *testing.T) {
	require.True(t, validPersonName("Ada Lovelace"))
	require.False(t, validPersonName("Ada2"))
	require.False(t, validPersonName(""))
}

func TestValidMobile(t *testing.T) {
	require.True(t, validMobile("1234567890"))
	require.False(t, validMobile("123456789"))
	require.False(t, validMobile("12345678901"))
	require.False(t, validMobile("12345abc90"))
}
