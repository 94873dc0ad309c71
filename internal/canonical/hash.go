package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainStatement = "relq/statement/v1"
)

// StatementNamespace is the UUID namespace for statement IDs.
var StatementNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/roach88/relq/statement"))

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// statementBytes is the canonical encoding of a compiled statement.
func statementBytes(sql string, params []any) ([]byte, error) {
	if params == nil {
		params = []any{}
	}
	data, err := Marshal(map[string]any{
		"sql":    sql,
		"params": params,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal statement: %w", err)
	}
	return data, nil
}

// Fingerprint computes the content-addressed hash of a compiled statement.
// Identical text and parameters always produce the identical fingerprint;
// a nil and an empty parameter list are treated alike.
func Fingerprint(sql string, params []any) (string, error) {
	data, err := statementBytes(sql, params)
	if err != nil {
		return "", fmt.Errorf("Fingerprint: %w", err)
	}
	return hashWithDomain(DomainStatement, data), nil
}

// StatementID derives a name-based UUID (version 5) for a compiled
// statement. It is stable across processes, unlike random identifiers.
func StatementID(sql string, params []any) (uuid.UUID, error) {
	data, err := statementBytes(sql, params)
	if err != nil {
		return uuid.Nil, fmt.Errorf("StatementID: %w", err)
	}
	return uuid.NewSHA1(StatementNamespace, data), nil
}

// MustFingerprint is like Fingerprint but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustFingerprint(sql string, params []any) string {
	fp, err := Fingerprint(sql, params)
	if err != nil {
		panic(err)
	}
	return fp
}
