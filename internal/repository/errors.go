// Package repository contains the data access layer. Each repository
// owns the SQL for one table and exposes typed sentinel errors so the
// service layer can classify failures without parsing driver messages.
package repository

import (
	"errors"
	"strings"
)

// ErrUserNotFound is returned when a user row is absent.
var ErrUserNotFound = errors.New("user not found")

// ErrCompanyNotFound is returned when a company row is absent.
var ErrCompanyNotFound = errors.New("company not found")

// ErrJobNotFound is returned when a job row is absent.
var ErrJobNotFound = errors.New("job not found")

// ErrApplicationNotFound is returned when an application row is absent.
var ErrApplicationNotFound = errors.New("application not found")

// ErrLocationNotFound is returned when a location row is absent.
var ErrLocationNotFound = errors.New("location not found")

// ErrEmailExists is returned when an insert or update collides with the
// unique index on users.email.
var ErrEmailExists = errors.New("email already exists")

// ErrLocationExists is returned when an insert collides with the unique
// index on locations(entity_type, entity_id).
var ErrLocationExists = errors.New("location already exists for entity")

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062). The driver does not expose a typed error for it, so the
// code is matched in the message the same way everywhere.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
