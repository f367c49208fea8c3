package usecase_vote

import (
	"context"
	"sync"
	"testing"

	"github.com/ampeli/wineroulette/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type voteKey struct {
	itemID uuid.UUID
	userID uuid.UUID
}

// raceRepo is a minimal in-memory VoteRepository with the same locking
// semantics as the real store: casts serialize on the session lock and
// snapshot counts inside it, transitions out of voting are a
// compare-and-swap. Good enough to hammer the cast and finalize paths
// from many goroutines under -race.
type raceRepo struct {
	mu           sync.Mutex
	session      model.Session
	tallies      []model.CandidateTally
	votes        map[voteKey]bool
	participants int
	commits      int
}

func (r *raceRepo) SessionByID(_ context.Context, _ uuid.UUID) (model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session, nil
}

func (r *raceRepo) IsParticipant(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return true, nil
}

func (r *raceRepo) Cast(_ context.Context, v model.Vote) (model.VoteCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session.Status != model.StatusVoting {
		return model.VoteCounts{}, ErrInvalidState
	}
	if r.votes == nil {
		r.votes = make(map[voteKey]bool)
	}
	r.votes[voteKey{itemID: v.ItemID, userID: v.UserID}] = v.Upvote

	return model.VoteCounts{
		TotalVotes:   len(r.votes),
		Participants: r.participants,
		Candidates:   len(r.tallies),
	}, nil
}

func (r *raceRepo) Tallies(_ context.Context, _ uuid.UUID) ([]model.CandidateTally, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tallies, nil
}

func (r *raceRepo) CompleteIfVoting(_ context.Context, _, winnerItemID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session.Status != model.StatusVoting {
		return false, nil
	}
	w := winnerItemID
	r.session.Status = model.StatusComplete
	r.session.WinnerItemID = &w
	r.commits++
	return true, nil
}

type raceCodeSet struct {
	mu      sync.Mutex
	removed int
}

func (c *raceCodeSet) Remove(_ context.Context, _ string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removed++
	return nil
}

// Two final votes landing at once must still complete the session:
// casts serialize on the session lock, so exactly one of them observes
// the full count and runs the auto-finalize.
func TestCastConcurrentFinalVotes(t *testing.T) {
	t.Parallel()

	hostID := uuid.New()
	voterID := uuid.New()
	itemA := uuid.New()
	itemB := uuid.New()

	repo := &raceRepo{
		session: model.Session{
			ID:       uuid.New(),
			HostID:   hostID,
			JoinCode: "111222",
			Status:   model.StatusVoting,
		},
		tallies: []model.CandidateTally{
			{ItemID: itemA, Ord: 0, Upvotes: 2},
			{ItemID: itemB, Ord: 1, Upvotes: 1},
		},
		votes: map[voteKey]bool{
			{itemID: itemA, userID: hostID}:  true,
			{itemID: itemA, userID: voterID}: true,
		},
		participants: 2,
	}
	codes := &raceCodeSet{}
	uc := New(repo, codes)
	sessionID := repo.session.ID

	var wg sync.WaitGroup
	completions := make([]bool, 2)
	errs := make([]error, 2)
	finalVotes := []struct {
		userID uuid.UUID
		itemID uuid.UUID
	}{
		{userID: hostID, itemID: itemB},
		{userID: voterID, itemID: itemB},
	}

	for i, fv := range finalVotes {
		i, fv := i, fv
		wg.Add(1)
		go func() {
			defer wg.Done()
			completions[i], errs[i] = uc.Cast(context.Background(), model.AuthContext{UserID: fv.userID}, sessionID, fv.itemID, true)
		}()
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	// Whichever cast landed second saw all votes in and finalized.
	assert.NotEqual(t, completions[0], completions[1])
	assert.Equal(t, 1, repo.commits)
	assert.Equal(t, model.StatusComplete, repo.session.Status)
	require.NotNil(t, repo.session.WinnerItemID)
	assert.Equal(t, itemA, *repo.session.WinnerItemID)
}

func TestFinalizeConcurrent(t *testing.T) {
	t.Parallel()

	hostID := uuid.New()
	winnerID := uuid.New()

	repo := &raceRepo{
		session: model.Session{
			ID:       uuid.New(),
			HostID:   hostID,
			JoinCode: "654321",
			Status:   model.StatusVoting,
		},
		tallies: []model.CandidateTally{
			{ItemID: winnerID, Ord: 0, Upvotes: 2},
			{ItemID: uuid.New(), Ord: 1, Upvotes: 1},
			{ItemID: uuid.New(), Ord: 2},
		},
	}
	codes := &raceCodeSet{}
	uc := New(repo, codes)
	sessionID := repo.session.ID

	const workers = 64
	winners := make([]uuid.UUID, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			winners[i], errs[i] = uc.Finalize(context.Background(), model.AuthContext{UserID: hostID}, sessionID)
		}()
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, winnerID, winners[i])
	}

	assert.Equal(t, 1, repo.commits)
	assert.Equal(t, 1, codes.removed)
	assert.Equal(t, model.StatusComplete, repo.session.Status)
	require.NotNil(t, repo.session.WinnerItemID)
	assert.Equal(t, winnerID, *repo.session.WinnerItemID)
}
