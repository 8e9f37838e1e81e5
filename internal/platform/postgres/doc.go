// Package postgres provides PostgreSQL implementations of the store
// interfaces. All statements are parameterized; database constraint
// violations are translated into store sentinel errors by MapError so the
// HTTP layer can classify them without importing driver types.
package postgres
