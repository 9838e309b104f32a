// Package uri parses, normalizes, resolves and regenerates RFC 3986
// URIs.
//
// Parsing decodes every component down to its decoded value and
// validates it against the component's grammar, including strict
// checking of IPv4, IPv6 and IPvFuture host literals. A parsed [URI]
// exposes its components through accessor and mutator methods;
// optional components use the comma-ok idiom so an empty query stays
// distinct from an absent one. [URI.NormalizePath] removes dot
// segments and [URI.Resolve] resolves a reference against a base URI,
// both per RFC 3986 section 5.2. Rendering percent-encodes each
// component against its own character class and is canonical: two
// equal URIs render identically.
//
// The package does no networking and performs no scheme-specific
// handling beyond the generic grammar.
package uri
