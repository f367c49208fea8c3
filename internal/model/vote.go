package model

import (
	"time"

	"github.com/google/uuid"
)

type Vote struct {
	SessionID uuid.UUID
	ItemID    uuid.UUID
	UserID    uuid.UUID
	Upvote    bool
	CreatedAt time.Time
}

// VoteCounts is the snapshot taken in the same transaction as a vote
// upsert, so racing final votes agree on when the session is done.
type VoteCounts struct {
	TotalVotes   int
	Participants int
	Candidates   int
}

// AllVotesIn reports the completion condition: every participant has
// voted on every candidate.
func (c VoteCounts) AllVotesIn() bool {
	return c.Candidates > 0 && c.TotalVotes >= c.Participants*c.Candidates
}
