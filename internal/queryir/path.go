package queryir

import "strings"

// DefaultSeparator joins path segments into a single column token.
const DefaultSeparator = "__"

// Path is an ordered, non-empty sequence of attribute names leading from a
// root record type to a field or relation.
//
// Path is immutable: constructors copy their input and Segments returns a
// copy, so two paths never share backing storage.
type Path struct {
	segments []string
}

// NewPath creates a path from the given segments.
func NewPath(segments ...string) Path {
	cp := make([]string, len(segments))
	copy(cp, segments)
	return Path{segments: cp}
}

// Join returns a new path with other's segments appended to p's.
func (p Path) Join(other Path) Path {
	joined := make([]string, 0, len(p.segments)+len(other.segments))
	joined = append(joined, p.segments...)
	joined = append(joined, other.segments...)
	return Path{segments: joined}
}

// Segments returns a copy of the path's names.
func (p Path) Segments() []string {
	cp := make([]string, len(p.segments))
	copy(cp, p.segments)
	return cp
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool { return len(p.segments) == 0 }

// Last returns the final segment, or "" for an empty path.
func (p Path) Last() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Column renders the path as a single column token.
// No quoting or escaping is applied to individual segments.
func (p Path) Column(sep string) string {
	return strings.Join(p.segments, sep)
}

// Equal reports whether both paths have the same segments.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// String renders the path in dotted attribute notation ("team.league.name").
func (p Path) String() string {
	return strings.Join(p.segments, ".")
}
