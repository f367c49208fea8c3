package model

import (
	"time"

	"github.com/google/uuid"
)

type Status = string

const (
	StatusPending  Status = "pending"
	StatusVoting   Status = "voting"
	StatusComplete Status = "complete"
)

// Filters constrain the eligible item universe for a spin. Nil fields
// mean "no constraint".
type Filters struct {
	PriceMin   *float64
	PriceMax   *float64
	RatingMin  *float64
	Categories []string
}

type Session struct {
	ID           uuid.UUID
	HostID       uuid.UUID
	JoinCode     string
	Region       string
	Filters      Filters
	Status       Status
	WinnerItemID *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Participant struct {
	ID          uuid.UUID
	DisplayName string
	JoinedAt    time.Time
}

// Candidate rows are replaced wholesale on every spin. Ord is the
// shuffle position, 0..k-1, and doubles as the tie-break rank.
type Candidate struct {
	SessionID uuid.UUID
	ItemID    uuid.UUID
	Ord       int
}

// CandidateTally is the per-candidate aggregate exposed by the session
// view. UserVote is the viewer's own vote, nil if they haven't voted.
type CandidateTally struct {
	ItemID    uuid.UUID
	Ord       int
	Upvotes   int
	Downvotes int
	UserVote  *bool
}

// Score is the resolution metric: upvotes minus downvotes.
func (t CandidateTally) Score() int {
	return t.Upvotes - t.Downvotes
}

type SessionView struct {
	Session      Session
	Participants []Participant
	Candidates   []CandidateTally
}
