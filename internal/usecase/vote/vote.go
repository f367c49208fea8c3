package usecase_vote

import (
	"context"
	"errors"
	"time"

	"github.com/ampeli/wineroulette/internal/model"
	"github.com/google/uuid"
)

var (
	ErrNotHost          = errors.New("caller is not the session host")
	ErrNotParticipant   = errors.New("caller is not a session participant")
	ErrInvalidState     = errors.New("operation not allowed in current session state")
	ErrUnknownCandidate = errors.New("item is not a candidate of this session")
	ErrResourceNotFound = errors.New("no such resource")
	ErrInternal         = errors.New("internal error")
)

//go:generate mockery --name=VoteRepository --output=./mocks/repository --filename=repository.go
type VoteRepository interface {
	SessionByID(ctx context.Context, id uuid.UUID) (model.Session, error)
	IsParticipant(ctx context.Context, sessionID, userID uuid.UUID) (bool, error)
	// Cast upserts the vote (a user may change their mind, only the
	// latest vote per candidate counts) and returns the count snapshot
	// taken inside the same transaction.
	Cast(ctx context.Context, v model.Vote) (model.VoteCounts, error)
	Tallies(ctx context.Context, sessionID uuid.UUID) ([]model.CandidateTally, error)
	// CompleteIfVoting is the conditional transition voting -> complete.
	// Reports false when the session already left voting, so concurrent
	// finalize attempts collapse to exactly one committed winner.
	CompleteIfVoting(ctx context.Context, sessionID, winnerItemID uuid.UUID) (bool, error)
}

//go:generate mockery --name=CodeSet --output=./mocks/codeset --filename=codeset.go
type CodeSet interface {
	Remove(ctx context.Context, code string) error
}

type Usecase struct {
	votes VoteRepository
	codes CodeSet
}

func New(
	votes VoteRepository,
	codes CodeSet,
) *Usecase {
	return &Usecase{
		votes: votes,
		codes: codes,
	}
}

// Cast records the caller's vote and runs the completion check. When the
// vote closes the expected-vote-count it also resolves the winner; the
// conditional status update keeps that at-most-once even when two final
// votes race. Reports whether the session completed.
func (u *Usecase) Cast(ctx context.Context, auth model.AuthContext, sessionID, itemID uuid.UUID, upvote bool) (bool, error) {
	s, err := u.votes.SessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return false, ErrResourceNotFound
		}
		return false, errors.Join(ErrInternal, err)
	}

	isParticipant, err := u.votes.IsParticipant(ctx, sessionID, auth.UserID)
	if err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	if !isParticipant {
		return false, ErrNotParticipant
	}

	if s.Status != model.StatusVoting {
		return false, ErrInvalidState
	}

	counts, err := u.votes.Cast(ctx, model.Vote{
		SessionID: sessionID,
		ItemID:    itemID,
		UserID:    auth.UserID,
		Upvote:    upvote,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, ErrUnknownCandidate) {
			return false, ErrUnknownCandidate
		}
		// The store re-checks status under its session lock; the
		// pre-flight read above may have lost a finalize race.
		if errors.Is(err, ErrInvalidState) {
			return false, ErrInvalidState
		}
		return false, errors.Join(ErrInternal, err)
	}

	if !counts.AllVotesIn() {
		return false, nil
	}

	// Auto-finalize is system-triggered; no host check here.
	if _, err := u.resolveAndComplete(ctx, s); err != nil {
		return false, err
	}
	return true, nil
}

// Finalize is the explicit host-triggered resolution. Calling it on an
// already-complete session is a success returning the stored winner: a
// caller losing the finalize race did not fail, somebody just got there
// first.
func (u *Usecase) Finalize(ctx context.Context, auth model.AuthContext, sessionID uuid.UUID) (uuid.UUID, error) {
	s, err := u.votes.SessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return uuid.Nil, ErrResourceNotFound
		}
		return uuid.Nil, errors.Join(ErrInternal, err)
	}

	if s.Status == model.StatusComplete {
		if s.WinnerItemID == nil {
			return uuid.Nil, errors.Join(ErrInternal, errors.New("complete session without winner"))
		}
		return *s.WinnerItemID, nil
	}

	if s.HostID != auth.UserID {
		return uuid.Nil, ErrNotHost
	}
	if s.Status != model.StatusVoting {
		return uuid.Nil, ErrInvalidState
	}

	return u.resolveAndComplete(ctx, s)
}

func (u *Usecase) resolveAndComplete(ctx context.Context, s model.Session) (uuid.UUID, error) {
	tallies, err := u.votes.Tallies(ctx, s.ID)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}
	if len(tallies) == 0 {
		return uuid.Nil, errors.Join(ErrInternal, errors.New("voting session without candidates"))
	}

	winner := resolveWinner(tallies)

	committed, err := u.votes.CompleteIfVoting(ctx, s.ID, winner)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}
	if !committed {
		// Lost the race. The committed winner is authoritative.
		cur, err := u.votes.SessionByID(ctx, s.ID)
		if err != nil {
			return uuid.Nil, errors.Join(ErrInternal, err)
		}
		if cur.WinnerItemID == nil {
			return uuid.Nil, errors.Join(ErrInternal, errors.New("complete session without winner"))
		}
		return *cur.WinnerItemID, nil
	}

	// Completed sessions free their join code for reuse. Best effort,
	// the store no longer considers the code active either way.
	_ = u.codes.Remove(ctx, s.JoinCode)

	return winner, nil
}

// resolveWinner picks the candidate with the highest net score (upvotes
// minus downvotes). Ties break to the lowest shuffle rank, which also
// covers the zero-votes case: every score is 0 and rank 0 wins. The
// result only depends on the tallies, never on slice order.
func resolveWinner(tallies []model.CandidateTally) uuid.UUID {
	best := tallies[0]
	for _, t := range tallies[1:] {
		if t.Score() > best.Score() || (t.Score() == best.Score() && t.Ord < best.Ord) {
			best = t
		}
	}
	return best.ItemID
}
