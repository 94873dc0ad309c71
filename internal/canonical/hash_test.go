package canonical

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintDeterminism(t *testing.T) {
	sql := "SELECT * FROM Team WHERE (name = ?) AND (id > ?)"
	params := []any{"X", 5}

	fp1, err := Fingerprint(sql, params)
	require.NoError(t, err)
	fp2, err := Fingerprint(sql, []any{"X", 5})
	require.NoError(t, err)

	assert.Equal(t, fp1, fp2, "Fingerprint must be deterministic")
	assert.Len(t, fp1, 64, "SHA-256 hex is 64 characters")
}

func TestFingerprintChangesWithInput(t *testing.T) {
	base := MustFingerprint("SELECT * FROM Team WHERE (id > ?)", []any{5})

	assert.NotEqual(t, base, MustFingerprint("SELECT * FROM Team WHERE (id >= ?)", []any{5}))
	assert.NotEqual(t, base, MustFingerprint("SELECT * FROM Team WHERE (id > ?)", []any{6}))
	assert.NotEqual(t, base, MustFingerprint("SELECT * FROM Team WHERE (id > ?)", []any{"5"}))
}

func TestFingerprintParamOrderMatters(t *testing.T) {
	sql := "SELECT * FROM Team WHERE (a = ?) AND (b = ?)"

	assert.NotEqual(t,
		MustFingerprint(sql, []any{1, 2}),
		MustFingerprint(sql, []any{2, 1}))
}

func TestFingerprintNilParamsEqualEmpty(t *testing.T) {
	assert.Equal(t,
		MustFingerprint("SELECT * FROM Team", nil),
		MustFingerprint("SELECT * FROM Team", []any{}))
}

func TestFingerprintError(t *testing.T) {
	_, err := Fingerprint("SELECT 1", []any{math.NaN()})
	assert.Error(t, err)
	assert.Panics(t, func() { MustFingerprint("SELECT 1", []any{math.Inf(-1)}) })
}

func TestHashWithDomainSeparation(t *testing.T) {
	data := []byte(`{"params":[],"sql":"x"}`)

	assert.NotEqual(t,
		hashWithDomain("relq/statement/v1", data),
		hashWithDomain("relq/statement/v2", data))
}

func TestStatementID(t *testing.T) {
	id1, err := StatementID("SELECT * FROM Team", nil)
	require.NoError(t, err)
	id2, err := StatementID("SELECT * FROM Team", []any{})
	require.NoError(t, err)
	id3, err := StatementID("SELECT * FROM League", nil)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.NotEqual(t, id1, id3)
	assert.Equal(t, uuid.Version(5), id1.Version())
	assert.Equal(t, uuid.RFC4122, id1.Variant())
}

func TestStatementIDError(t *testing.T) {
	id, err := StatementID("SELECT 1", []any{math.NaN()})
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, id)
}
