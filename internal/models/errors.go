package models

import "errors"

// Application-wide standard errors
var (
	// Session Errors
	ErrInvalidSession = errors.New("session token is invalid")
	ErrEmptySecret    = errors.New("session secret cannot be empty")

	// Video Generation Errors
	ErrMissingTaskID  = errors.New("video service response does not contain task_id")
	ErrUpstreamStatus = errors.New("unexpected status from video service")
)
