package models

import "time"

// FieldState is the tri-state validity indicator for a single form field.
// An untouched field shows neither a check nor a cross until the user has
// typed something.
type FieldState string

const (
	FieldUntouched FieldState = "untouched"
	FieldValid     FieldState = "valid"
	FieldInvalid   FieldState = "invalid"
)

// PasswordStrength breaks the registration password policy into the
// indicators the screen renders individually.
type PasswordStrength struct {
	HasUpper     bool `json:"hasUpper"`
	HasLower     bool `json:"hasLower"`
	HasNumber    bool `json:"hasNumber"`
	HasMinLength bool `json:"hasMinLength"`
}

// Satisfied reports whether every structural requirement holds.
func (p PasswordStrength) Satisfied() bool {
	return p.HasUpper && p.HasLower && p.HasNumber && p.HasMinLength
}

// FormSnapshot is the full state of one in-flight screen form: current
// values, per-field tri-state flags, inline errors and the aggregate
// validity recomputed on every field change.
type FormSnapshot struct {
	SessionID     string                `json:"sessionId"`
	Screen        string                `json:"screen"`
	Values        map[string]string     `json:"values"`
	Fields        map[string]FieldState `json:"fields"`
	Errors        map[string]string     `json:"errors,omitempty"`
	Strength      *PasswordStrength     `json:"passwordStrength,omitempty"`
	IsValid       bool                  `json:"isFormValid"`
	CreatedAt     time.Time             `json:"createdAt"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
}
