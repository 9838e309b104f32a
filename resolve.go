package uri

import "slices"

// Resolve resolves a URI reference against the base URI u, following
// the algorithm of RFC 3986 section 5.2.2. Neither the base nor the
// reference is mutated. The fragment is always taken from the
// reference. Resolution never fails.
func (u *URI) Resolve(ref *URI) *URI {
	target := &URI{
		fragment:    ref.fragment,
		hasFragment: ref.hasFragment,
	}
	switch {
	case ref.scheme != "":
		target.scheme = ref.scheme
		target.authority = ref.authority.Clone()
		target.path = normalizePath(ref.path)
		target.query, target.hasQuery = ref.query, ref.hasQuery
	case ref.authority != nil:
		target.scheme = u.scheme
		target.authority = ref.authority.Clone()
		target.path = normalizePath(ref.path)
		target.query, target.hasQuery = ref.query, ref.hasQuery
	case len(ref.path) == 0:
		target.scheme = u.scheme
		target.authority = u.authority.Clone()
		target.path = slices.Clone(u.path)
		if ref.hasQuery {
			target.query, target.hasQuery = ref.query, true
		} else {
			target.query, target.hasQuery = u.query, u.hasQuery
		}
	case isPathAbsolute(ref.path):
		target.scheme = u.scheme
		target.authority = u.authority.Clone()
		target.path = slices.Clone(ref.path)
		target.query, target.hasQuery = ref.query, ref.hasQuery
	default:
		target.scheme = u.scheme
		target.authority = u.authority.Clone()
		target.path = normalizePath(mergePaths(u.path, ref.path))
		target.query, target.hasQuery = ref.query, ref.hasQuery
	}
	return target
}

// mergePaths merges a relative reference path into the base path, per
// RFC 3986 section 5.2.3: the last base segment is dropped unless the
// base path has at most one segment.
func mergePaths(base, ref []string) []string {
	merged := slices.Clone(base)
	if len(merged) > 1 {
		merged = merged[:len(merged)-1]
	}
	return append(merged, ref...)
}
