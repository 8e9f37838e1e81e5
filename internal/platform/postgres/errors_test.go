package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime-api/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "no_rows_maps_to_not_found",
			err:      sql.ErrNoRows,
			expected: store.ErrNotFound,
		},
		{
			name:     "unique_violation_maps_to_duplicate",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "companies_pkey"},
			expected: store.ErrDuplicate,
		},
		{
			name:     "foreign_key_violation_maps_to_invalid_reference",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "invoices_comp_code_fkey"},
			expected: store.ErrInvalidReference,
		},
		{
			name: "wrapped_pg_error_is_still_classified",
			err: fmt.Errorf("insert: %w",
				&pgconn.PgError{Code: "23505"}),
			expected: store.ErrDuplicate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError(tc.err)
			assert.ErrorIs(t, mapped, tc.expected)
		})
	}
}

func TestMapError_NilAndUnclassified(t *testing.T) {
	assert.NoError(t, MapError(nil))

	// Errors without a specific mapping pass through unmodified.
	unclassified := errors.New("connection reset by peer")
	assert.Equal(t, unclassified, MapError(unclassified))

	// Not-null violations stay unclassified and surface as 500s.
	notNull := &pgconn.PgError{Code: "23502", ColumnName: "amt"}
	assert.Equal(t, error(notNull), MapError(notNull))
}

func TestViolationPredicates(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("plain")))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.False(t, IsForeignKeyViolation(nil))
}

// fakeResult implements sql.Result for CheckRowsAffected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (f fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (f fakeResult) RowsAffected() (int64, error) { return f.rows, f.err }

func TestCheckRowsAffected(t *testing.T) {
	require.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrCompanyNotFound))

	err := CheckRowsAffected(fakeResult{rows: 0}, store.ErrCompanyNotFound)
	assert.ErrorIs(t, err, store.ErrCompanyNotFound)

	err = CheckRowsAffected(fakeResult{err: errors.New("driver does not support RowsAffected")},
		store.ErrCompanyNotFound)
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrCompanyNotFound)

	require.Error(t, CheckRowsAffected(nil, store.ErrCompanyNotFound))
}
