package permissions

import "strings"

const (
	// Wildcard matches exactly one non-empty segment at its position.
	Wildcard = "*"

	// DeepWildcard matches all remaining segments and ends the comparison.
	// It is terminal: segments after it in the pattern are never inspected.
	DeepWildcard = "**"

	// ColonDelimiter separates segments in colon-style permissions (e.g., "post:edit").
	ColonDelimiter = ":"

	// DotDelimiter separates segments in dot-style permissions (e.g., "post.edit").
	DotDelimiter = "."
)

// Delimiter returns the segment delimiter a pattern uses.
// Colon takes precedence; a pattern without either delimiter
// is treated as a single dot-style segment.
func Delimiter(pattern string) string {
	if strings.Contains(pattern, ColonDelimiter) {
		return ColonDelimiter
	}
	return DotDelimiter
}

// Segments splits a permission or pattern string on the given delimiter.
// An empty trailing segment (string ending in the delimiter) is preserved
// and compared like any other segment.
func Segments(s, delimiter string) []string {
	return strings.Split(s, delimiter)
}

// Match reports whether a concrete permission is covered by a pattern.
//
// Both strings are split into segments on the delimiter the pattern uses
// (":" or "."; the permission is expected to use the same scheme).
// Comparison is case-sensitive and proceeds segment by segment:
//
//   - "**" succeeds unconditionally, consuming all remaining segments
//   - "*" consumes exactly one non-empty segment
//   - a literal segment must equal the permission segment at the same index
//   - without "**", the segment counts must match exactly
//
// Example:
//
//	permissions.Match("user:*", "user:read")      // true
//	permissions.Match("user:*", "user:read:all")  // false
//	permissions.Match("user:**", "user:read:all") // true
//	permissions.Match("**", "anything:at:all")    // true
func Match(pattern, permission string) bool {
	if pattern == permission {
		return true
	}

	delimiter := Delimiter(pattern)
	patSegs := Segments(pattern, delimiter)
	permSegs := Segments(permission, delimiter)

	for i, seg := range patSegs {
		if seg == DeepWildcard {
			return true
		}
		if i >= len(permSegs) {
			return false
		}
		if seg == Wildcard {
			if permSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != permSegs[i] {
			return false
		}
	}

	// No deep wildcard was hit: extra trailing segments in the permission
	// mean it is more specific than the pattern grants.
	return len(permSegs) == len(patSegs)
}

// MatchAny reports whether any of the patterns covers the permission.
//
// Example:
//
//	granted := permissions.MatchAny([]string{"post:*", "user:read"}, "post:edit")
//	// Returns: true (because "post:*" matches "post:edit")
func MatchAny(patterns []string, permission string) bool {
	for _, p := range patterns {
		if Match(p, permission) {
			return true
		}
	}
	return false
}
