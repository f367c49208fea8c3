package usecase_spin

import (
	"context"
	"errors"
	"math/rand"

	"github.com/ampeli/wineroulette/internal/model"
	"github.com/google/uuid"
)

var (
	ErrNotHost          = errors.New("caller is not the session host")
	ErrInvalidState     = errors.New("operation not allowed in current session state")
	ErrNoEligibleItems  = errors.New("no items match the session filters")
	ErrResourceNotFound = errors.New("no such resource")
	ErrInternal         = errors.New("internal error")
)

const DefaultCandidateCount = 4

//go:generate mockery --name=RouletteRepository --output=./mocks/repository --filename=repository.go
type RouletteRepository interface {
	SessionByID(ctx context.Context, id uuid.UUID) (model.Session, error)
	// ReplaceCandidates wipes all prior candidate and vote rows of the
	// session, inserts the new candidate rows and flips the session from
	// pending to voting in one transaction. Returns ErrInvalidState when
	// the session already left pending.
	ReplaceCandidates(ctx context.Context, sessionID uuid.UUID, candidates []model.Candidate) error
}

//go:generate mockery --name=Catalog --output=./mocks/catalog --filename=catalog.go
type Catalog interface {
	EligibleItems(ctx context.Context, region string, filters model.Filters) ([]model.Item, error)
}

type Usecase struct {
	roulette RouletteRepository
	catalog  Catalog
}

func New(
	roulette RouletteRepository,
	catalog Catalog,
) *Usecase {
	return &Usecase{
		roulette: roulette,
		catalog:  catalog,
	}
}

// Spin draws the voting candidates for a pending session. A Fisher-Yates
// shuffle over the whole eligible universe followed by a prefix take
// gives every item the same selection probability and no duplicates.
// Only the host may spin, and only once per session.
func (u *Usecase) Spin(ctx context.Context, auth model.AuthContext, sessionID uuid.UUID, requestedCount int) (int, error) {
	if requestedCount <= 0 {
		requestedCount = DefaultCandidateCount
	}

	s, err := u.roulette.SessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return 0, ErrResourceNotFound
		}
		return 0, errors.Join(ErrInternal, err)
	}

	if s.HostID != auth.UserID {
		return 0, ErrNotHost
	}
	if s.Status != model.StatusPending {
		return 0, ErrInvalidState
	}

	items, err := u.catalog.EligibleItems(ctx, s.Region, s.Filters)
	if err != nil {
		return 0, errors.Join(ErrInternal, err)
	}
	if len(items) == 0 {
		return 0, ErrNoEligibleItems
	}

	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	k := min(requestedCount, len(items))
	candidates := make([]model.Candidate, k)
	for i := 0; i < k; i++ {
		candidates[i] = model.Candidate{
			SessionID: sessionID,
			ItemID:    items[i].ID,
			Ord:       i,
		}
	}

	if err := u.roulette.ReplaceCandidates(ctx, sessionID, candidates); err != nil {
		if errors.Is(err, ErrInvalidState) {
			return 0, ErrInvalidState
		}
		return 0, errors.Join(ErrInternal, err)
	}

	return k, nil
}
