package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Mission errors
var (
	ErrMissionNotFound   = errors.New("mission not found")
	ErrInvalidStage      = errors.New("invalid mission stage")
	ErrInvalidService    = errors.New("invalid service line")
	ErrInvalidCurrency   = errors.New("invalid currency")
	ErrPartnerRequired   = errors.New("a responsible partner is required for billable missions")
	ErrClientRequired    = errors.New("a client is required")
	ErrDossierRequired   = errors.New("dossier number is required")
	ErrTitleRequired     = errors.New("mission title is required")
	ErrUnknownPrestation = errors.New("prestation does not belong to the selected category")
)

// Collaborator errors
var (
	ErrCollaboratorNotFound = errors.New("collaborator not found")
	ErrInvalidGrade         = errors.New("invalid grade")
	ErrEmailTaken           = errors.New("email already in use")
)

// Timesheet errors
var (
	ErrTimesheetNotFound = errors.New("timesheet entry not found")
	ErrInvalidHours      = errors.New("hours worked must be positive")
)
