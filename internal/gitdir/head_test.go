package gitdir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents string
		expected string
		ok       bool
	}{
		{
			name:     "local branch",
			contents: "ref: refs/heads/main",
			expected: "main",
			ok:       true,
		},
		{
			name:     "branch name containing slashes",
			contents: "ref: refs/heads/feature/new-feature",
			expected: "feature/new-feature",
			ok:       true,
		},
		{
			name:     "trailing newline ignored",
			contents: "ref: refs/heads/main\n",
			expected: "main",
			ok:       true,
		},
		{
			name:     "surrounding whitespace ignored",
			contents: "  ref: refs/heads/develop\t\n",
			expected: "develop",
			ok:       true,
		},
		{
			name:     "remote-tracking ref keeps remote qualifier",
			contents: "ref: refs/remotes/origin/main",
			expected: "origin/main",
			ok:       true,
		},
		{
			name:     "tag ref returned verbatim",
			contents: "ref: refs/tags/v1.2.3",
			expected: "refs/tags/v1.2.3",
			ok:       true,
		},
		{
			name:     "detached head shortened to seven chars",
			contents: "abc1234567890abcdef",
			expected: "abc1234...",
			ok:       true,
		},
		{
			name:     "detached head with trailing newline",
			contents: "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef\n",
			expected: "deadbee...",
			ok:       true,
		},
		{
			name:     "uppercase hex accepted",
			contents: "ABC1234567890",
			expected: "ABC1234...",
			ok:       true,
		},
		{
			name:     "exactly seven hex chars",
			contents: "a1b2c3d",
			expected: "a1b2c3d...",
			ok:       true,
		},
		{
			name:     "too short to be a hash",
			contents: "a1b2c3",
			expected: "",
			ok:       false,
		},
		{
			name:     "not a ref and not hex",
			contents: "not-a-valid-ref",
			expected: "",
			ok:       false,
		},
		{
			name:     "empty contents",
			contents: "",
			expected: "",
			ok:       false,
		},
		{
			name:     "whitespace only",
			contents: "   \n",
			expected: "",
			ok:       false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, ok := ParseHead(tt.contents)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestParseHeadIsPure(t *testing.T) {
	t.Parallel()

	first, ok1 := ParseHead("ref: refs/heads/main")
	second, ok2 := ParseHead("ref: refs/heads/main")
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, first, second)
}
