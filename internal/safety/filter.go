// Package safety provides device filtering, confirmation, and audit
// logging for the load-switch operations nutctl exposes over MCP.
package safety

import "path/filepath"

// Filter controls which UPS device names the MCP tools may act on, using
// an allowlist and a denylist of glob patterns (as understood by
// filepath.Match).
//
// Rules:
//   - If both lists are empty (or nil), every device is allowed.
//   - Denylist always takes priority over the allowlist.
//   - If a non-empty allowlist is present, a device must match at least
//     one allowlist pattern to be permitted (after the denylist check).
type Filter struct {
	allowlist []string
	denylist  []string
}

// NewFilter constructs a Filter from the provided allowlist and denylist
// pattern slices. Either or both may be nil or empty.
func NewFilter(allowlist, denylist []string) *Filter {
	return &Filter{
		allowlist: allowlist,
		denylist:  denylist,
	}
}

// IsAllowed reports whether the named UPS is permitted by this filter.
func (f *Filter) IsAllowed(name string) bool {
	// Denylist wins first.
	for _, pattern := range f.denylist {
		if matchGlob(pattern, name) {
			return false
		}
	}

	if len(f.allowlist) == 0 {
		return true
	}

	for _, pattern := range f.allowlist {
		if matchGlob(pattern, name) {
			return true
		}
	}

	return false
}

// matchGlob returns true when name matches the given glob pattern.
// filepath.Match errors (malformed patterns) are treated as non-matching.
func matchGlob(pattern, name string) bool {
	matched, err := filepath.Match(pattern, name)
	if err != nil {
		return false
	}
	return matched
}
