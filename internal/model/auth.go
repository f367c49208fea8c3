package model

import "github.com/google/uuid"

// AuthContext carries the already-authenticated caller identity.
// Authentication happens upstream; this service only authorizes the
// caller against a session's host and participant set. Every operation
// receives it explicitly.
type AuthContext struct {
	UserID uuid.UUID
}
