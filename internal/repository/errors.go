// Package repository contains the data access layer for the bookshop
// tables.  This file defines sentinel errors shared across the
// repositories so handlers can translate failure scenarios into HTTP
// statuses without string matching.
package repository

import "errors"

// ErrBookNotFound indicates that no book row matches the given id.
// Handlers translate this into a 404 with a "return to catalog" body.
var ErrBookNotFound = errors.New("book not found")

// ErrRequestNotFound indicates that no book request row matches the
// given id.
var ErrRequestNotFound = errors.New("request not found")

// ErrEmailExists is returned when creating a user with an email that is
// already taken.
var ErrEmailExists = errors.New("email already exists")
