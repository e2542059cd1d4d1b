package services

import "errors"

// Validation failures surfaced to the initiating caller as transient
// notifications. None change any state and none are retried automatically.
var (
	ErrCodeMismatch          = errors.New("entered code is incorrect")
	ErrSabotageAlreadyActive = errors.New("another sabotage is already active")
	ErrSabotageOnCooldown    = errors.New("sabotage is on cooldown")
	ErrMeetingOnCooldown     = errors.New("meeting is on cooldown")
	ErrSabotageActive        = errors.New("a sabotage is currently active")
	ErrAlreadyReported       = errors.New("this death has already been reported")
	ErrKillOnCooldown        = errors.New("kill is on cooldown")
	ErrAssignmentExhausted   = errors.New("task catalogue is too small for the player count")
)
