// Package permissions implements segment-wildcard matching of concrete
// permission strings against permission patterns.
//
// A permission is a fully-qualified capability string such as "post:edit"
// or "admin.users.read". A pattern is the same kind of string, possibly
// containing wildcards, granted to a role or subject. Patterns and
// permissions are sequences of segments separated by a delimiter; the
// package understands both colon-style ("post:edit") and dot-style
// ("post.edit") schemes and picks the delimiter from the pattern, so both
// strings of one comparison must use the same scheme.
//
// # Grammar
//
// Matching walks the two segment sequences left to right:
//
//   - "*" matches any single non-empty segment at its position
//   - "**" matches everything from its position onward and ends the
//     comparison, so "admin:**" covers "admin" as well as "admin:x:y"
//   - any other segment is a literal compared case-sensitively
//   - when the pattern contains no "**", the permission must have exactly
//     as many segments as the pattern
//
// # Usage
//
//	import "github.com/dmitrymomot/authzkit/pkg/permissions"
//
//	permissions.Match("user:*", "user:read")       // true
//	permissions.Match("user:*", "user:read:all")   // false, "*" is one segment
//	permissions.Match("user:**", "user:read:all")  // true
//	permissions.Match("User:Read", "user:read")    // false, case-sensitive
//
//	// Test a permission against a whole grant set
//	granted := permissions.MatchAny(effectiveSet, "post:edit")
//
// All functions are pure and allocation-light; the package holds no state
// and is safe for unrestricted concurrent use.
package permissions
