package usecase_session

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/ampeli/wineroulette/internal/model"
	"github.com/google/uuid"
)

var (
	ErrCodeConflict     = errors.New("join code conflict")
	ErrNoFreeCode       = errors.New("no free join code")
	ErrResourceNotFound = errors.New("no such resource")
	ErrSessionClosed    = errors.New("session no longer accepts participants")
	ErrInternal         = errors.New("internal error")
)

//go:generate mockery --name=SessionRepository --output=./mocks/repository --filename=repository.go
type SessionRepository interface {
	// Create inserts the session together with its host participant.
	// Returns ErrCodeConflict when another non-complete session holds
	// the same join code.
	Create(ctx context.Context, s model.Session, hostName string) error
	ByID(ctx context.Context, id uuid.UUID) (model.Session, error)
	// ByActiveCode resolves a join code against non-complete sessions only.
	ByActiveCode(ctx context.Context, code string) (model.Session, error)
	// AddParticipant reports false when the user was already a member.
	AddParticipant(ctx context.Context, sessionID, userID uuid.UUID, displayName string) (bool, error)
	Participants(ctx context.Context, sessionID uuid.UUID) ([]model.Participant, error)
	CandidateTallies(ctx context.Context, sessionID, viewerID uuid.UUID) ([]model.CandidateTally, error)
}

//go:generate mockery --name=CodeSet --output=./mocks/codeset --filename=codeset.go
type CodeSet interface {
	Add(ctx context.Context, code string) error
	Contains(ctx context.Context, code string) (bool, error)
	Remove(ctx context.Context, code string) error
}

type Usecase struct {
	sessions SessionRepository
	codes    CodeSet
}

func New(
	sessions SessionRepository,
	codes CodeSet,
) *Usecase {
	return &Usecase{
		sessions: sessions,
		codes:    codes,
	}
}

// Create books a fresh session with the caller as host. Codes can
// conflict with other active sessions; retrying with a new code until
// the insert sticks. The code set is only a cheap pre-check, the
// partial unique index in the store stays authoritative.
func (u *Usecase) Create(ctx context.Context, auth model.AuthContext, region string, filters model.Filters, displayName string) (model.Session, error) {
	var retries = 5
	for retries > 0 {
		code := u.buildJoinCode()
		if taken, err := u.codes.Contains(ctx, code); err == nil && taken {
			retries--
			continue
		}

		now := time.Now().UTC()
		s := model.Session{
			ID:        uuid.New(),
			HostID:    auth.UserID,
			JoinCode:  code,
			Region:    region,
			Filters:   filters,
			Status:    model.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := u.sessions.Create(ctx, s, displayName); err != nil {
			if errors.Is(err, ErrCodeConflict) {
				retries--
				continue
			}
			return model.Session{}, errors.Join(ErrInternal, err)
		}

		// Best effort. A stale entry only costs one extra retry later.
		_ = u.codes.Add(ctx, code)
		return s, nil
	}
	return model.Session{}, ErrNoFreeCode
}

// Join adds the caller to the session behind the code. Joining twice is
// a no-op reported through alreadyJoined. Sessions stop accepting
// participants once voting starts.
func (u *Usecase) Join(ctx context.Context, auth model.AuthContext, joinCode string, displayName string) (model.Session, bool, error) {
	s, err := u.sessions.ByActiveCode(ctx, joinCode)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Session{}, false, ErrResourceNotFound
		}
		return model.Session{}, false, errors.Join(ErrInternal, err)
	}

	if s.Status != model.StatusPending {
		return model.Session{}, false, ErrSessionClosed
	}

	added, err := u.sessions.AddParticipant(ctx, s.ID, auth.UserID, displayName)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Session{}, false, ErrResourceNotFound
		}
		return model.Session{}, false, errors.Join(ErrInternal, err)
	}

	return s, !added, nil
}

// View assembles the read projection the client polls: session fields,
// participants in join order and candidates with tallies plus the
// viewer's own vote.
func (u *Usecase) View(ctx context.Context, auth model.AuthContext, sessionID uuid.UUID) (model.SessionView, error) {
	s, err := u.sessions.ByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.SessionView{}, ErrResourceNotFound
		}
		return model.SessionView{}, errors.Join(ErrInternal, err)
	}

	participants, err := u.sessions.Participants(ctx, sessionID)
	if err != nil {
		return model.SessionView{}, errors.Join(ErrInternal, err)
	}

	candidates, err := u.sessions.CandidateTallies(ctx, sessionID, auth.UserID)
	if err != nil {
		return model.SessionView{}, errors.Join(ErrInternal, err)
	}

	return model.SessionView{
		Session:      s,
		Participants: participants,
		Candidates:   candidates,
	}, nil
}

func (u *Usecase) Participants(ctx context.Context, sessionID uuid.UUID) ([]model.Participant, error) {
	participants, err := u.sessions.Participants(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errors.Join(ErrInternal, err)
	}
	return participants, nil
}

// 6 digits is a fixed client contract.
func (u *Usecase) buildJoinCode() string {
	const codeLen = 6
	var builder strings.Builder
	builder.Grow(codeLen)

	for i := 0; i < codeLen; i++ {
		builder.WriteByte(byte(rand.Intn(10)) + '0')
	}

	return builder.String()
}
