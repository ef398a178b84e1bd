// File: internal/service/errors.go
package service

import "errors"

// Sentinel errors for the two outcomes that are the caller's fault.
// Anything else coming out of a service call is an infrastructure
// failure and surfaces as a generic 500.
var (
	// ErrNotFound covers missing equipment, users and active loans.
	ErrNotFound = errors.New("no encontrado")

	// ErrNotAvailable means the equipment state does not permit a new
	// loan. The message is part of the API contract.
	ErrNotAvailable = errors.New("El equipo no está disponible")
)
