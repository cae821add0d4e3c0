package service

import "errors"

// Sentinel errors returned by the services. Handlers map these to HTTP
// statuses with errors.Is.
var (
	ErrNotFound            = errors.New("record not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInsufficientTickets = errors.New("not enough tickets available")
	ErrInvalidTransition   = errors.New("invalid ticket status transition")
	ErrEventHasTickets     = errors.New("event still has booked tickets")
	ErrImageRequired       = errors.New("banner image is required")
	ErrInvalidDate         = errors.New("invalid event date")
	ErrCaptchaFailed       = errors.New("captcha verification failed")
)
