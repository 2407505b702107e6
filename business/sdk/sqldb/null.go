package sqldb

import (
	"database/sql"
	"time"
)

// Row models in the stores carry nullable columns as sql.Null* values. The
// helpers below are the only place those cells turn into domain values: a
// NULL cell becomes a nil pointer, never "" or 0, and a nil pointer is
// written back as NULL.

// ToNullString converts an optional string into a nullable column value.
func ToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

// FromNullString converts a nullable column value into an optional string.
func FromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}

	s := ns.String
	return &s
}

// ToNullFloat64 converts an optional decimal into a nullable column value.
func ToNullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *f, Valid: true}
}

// FromNullFloat64 converts a nullable column value into an optional decimal.
func FromNullFloat64(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}

	f := nf.Float64
	return &f
}

// FromNullTime converts a nullable timestamp column into an optional time.
func FromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}

	t := nt.Time
	return &t
}
