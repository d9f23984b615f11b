// Package gitdir reads git branch information directly from on-disk
// repository state, without invoking git or resolving object storage.
package gitdir

import (
	"strings"
)

// shortHashLen is the number of hash characters kept for detached HEADs.
const shortHashLen = 7

// ParseHead extracts a branch name from the raw contents of a HEAD file.
//
// A symbolic ref under refs/heads/ yields the bare branch name, one under
// refs/remotes/ yields the remote-qualified name (e.g. "origin/main"), and
// any other ref path is returned verbatim. Detached HEADs (a raw commit
// hash) yield the first seven characters followed by "...". The second
// return value is false when the contents are unrecognized.
func ParseHead(contents string) (string, bool) {
	contents = strings.TrimSpace(contents)

	if refPath, ok := strings.CutPrefix(contents, "ref: "); ok {
		if branch, ok := strings.CutPrefix(refPath, "refs/heads/"); ok {
			return branch, true
		}
		if remoteBranch, ok := strings.CutPrefix(refPath, "refs/remotes/"); ok {
			return remoteBranch, true
		}
		return refPath, true
	}

	if len(contents) >= shortHashLen && isHex(contents) {
		return contents[:shortHashLen] + "...", true
	}

	return "", false
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
