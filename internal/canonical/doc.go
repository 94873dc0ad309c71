// Package canonical provides deterministic encodings and content-addressed
// identities for compiled statements.
//
// Compiling the same expression tree twice yields the same text and the same
// parameters. The functions here turn that pair into bytes and hashes that
// are equally stable, so callers can compare, log or key compiled
// statements without caring about map order or Unicode normalization.
//
// Key design constraints:
//   - Object keys sorted by UTF-16 code units (RFC 8785)
//   - Strings NFC normalized, no HTML escaping
//   - SHA-256 with domain separation for fingerprints
//   - Name-based (SHA-1) UUIDs for statement IDs
package canonical
