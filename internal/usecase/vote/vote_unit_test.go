package usecase_vote

import (
	"context"
	"testing"

	"github.com/ampeli/wineroulette/internal/model"
	codeset_mocks "github.com/ampeli/wineroulette/internal/usecase/vote/mocks/codeset"
	repo_mocks "github.com/ampeli/wineroulette/internal/usecase/vote/mocks/repository"
	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseVoteUnitSuite struct {
	suite.Suite

	mockRepo  *repo_mocks.VoteRepository
	mockCodes *codeset_mocks.CodeSet
	usecase   *Usecase
	ctx       context.Context
}

func (s *UsecaseVoteUnitSuite) BeforeEach(t provider.T) {
	s.mockRepo = repo_mocks.NewVoteRepository(t)
	s.mockCodes = codeset_mocks.NewCodeSet(t)
	s.usecase = New(s.mockRepo, s.mockCodes)
	s.ctx = context.Background()
}

func votingSession(hostID uuid.UUID) model.Session {
	return model.Session{
		ID:       uuid.New(),
		HostID:   hostID,
		JoinCode: "123456",
		Status:   model.StatusVoting,
	}
}

func validTallies(winnerOrd int) []model.CandidateTally {
	tallies := make([]model.CandidateTally, 4)
	for i := range tallies {
		tallies[i] = model.CandidateTally{ItemID: uuid.New(), Ord: i}
	}
	tallies[winnerOrd].Upvotes = 3
	return tallies
}

func (s *UsecaseVoteUnitSuite) TestCast(t provider.T) {
	t.Run("Should record a vote without completing the session", func(t provider.T) {
		sess := votingSession(uuid.New())
		voter := uuid.New()
		itemID := uuid.New()

		s.mockRepo.On("SessionByID", s.ctx, sess.ID).Return(sess, nil).Once()
		s.mockRepo.On("IsParticipant", s.ctx, sess.ID, voter).Return(true, nil).Once()
		s.mockRepo.On("Cast", s.ctx, mock.AnythingOfType("model.Vote")).
			Return(model.VoteCounts{TotalVotes: 3, Participants: 2, Candidates: 4}, nil).Once()

		completed, err := s.usecase.Cast(s.ctx, model.AuthContext{UserID: voter}, sess.ID, itemID, true)

		assert.NoError(t, err)
		assert.False(t, completed)
		s.mockRepo.AssertExpectations(t)
	})

	t.Run("Should auto-finalize on the last expected vote", func(t provider.T) {
		sess := votingSession(uuid.New())
		voter := uuid.New()
		tallies := validTallies(1)

		s.mockRepo.On("SessionByID", s.ctx, sess.ID).Return(sess, nil).Once()
		s.mockRepo.On("IsParticipant", s.ctx, sess.ID, voter).Return(true, nil).Once()
		s.mockRepo.On("Cast", s.ctx, mock.AnythingOfType("model.Vote")).
			Return(model.VoteCounts{TotalVotes: 8, Participants: 2, Candidates: 4}, nil).Once()
		s.mockRepo.On("Tallies", s.ctx, sess.ID).Return(tallies, nil).Once()
		s.mockRepo.On("CompleteIfVoting", s.ctx, sess.ID, tallies[1].ItemID).Return(true, nil).Once()
		s.mockCodes.On("Remove", s.ctx, sess.JoinCode).Return(nil).Once()

		completed, err := s.usecase.Cast(s.ctx, model.AuthContext{UserID: voter}, sess.ID, tallies[1].ItemID, true)

		assert.NoError(t, err)
		assert.True(t, completed)
		s.mockRepo.AssertExpectations(t)
		s.mockCodes.AssertExpectations(t)
	})

	t.Run("Should reject a non-participant before touching the ballot", func(t provider.T) {
		sess := votingSession(uuid.New())
		outsider := uuid.New()

		s.mockRepo.On("SessionByID", s.ctx, sess.ID).Return(sess, nil).Once()
		s.mockRepo.On("IsParticipant", s.ctx, sess.ID, outsider).Return(false, nil).Once()

		completed, err := s.usecase.Cast(s.ctx, model.AuthContext{UserID: outsider}, sess.ID, uuid.New(), true)

		assert.ErrorIs(t, err, ErrNotParticipant)
		assert.False(t, completed)
		s.mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject a vote before voting started", func(t provider.T) {
		sess := votingSession(uuid.New())
		sess.Status = model.StatusPending
		voter := uuid.New()

		s.mockRepo.On("SessionByID", s.ctx, sess.ID).Return(sess, nil).Once()
		s.mockRepo.On("IsParticipant", s.ctx, sess.ID, voter).Return(true, nil).Once()

		_, err := s.usecase.Cast(s.ctx, model.AuthContext{UserID: voter}, sess.ID, uuid.New(), true)

		assert.ErrorIs(t, err, ErrInvalidState)
		s.mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject a vote for a non-candidate item", func(t provider.T) {
		sess := votingSession(uuid.New())
		voter := uuid.New()

		s.mockRepo.On("SessionByID", s.ctx, sess.ID).Return(sess, nil).Once()
		s.mockRepo.On("IsParticipant", s.ctx, sess.ID, voter).Return(true, nil).Once()
		s.mockRepo.On("Cast", s.ctx, mock.AnythingOfType("model.Vote")).
			Return(model.VoteCounts{}, ErrUnknownCandidate).Once()

		_, err := s.usecase.Cast(s.ctx, model.AuthContext{UserID: voter}, sess.ID, uuid.New(), true)

		assert.ErrorIs(t, err, ErrUnknownCandidate)
		s.mockRepo.AssertExpectations(t)
	})

	t.Run("Should return not found for an unknown session", func(t provider.T) {
		sessionID := uuid.New()

		s.mockRepo.On("SessionByID", s.ctx, sessionID).
			Return(model.Session{}, ErrResourceNotFound).Once()

		_, err := s.usecase.Cast(s.ctx, model.AuthContext{UserID: uuid.New()}, sessionID, uuid.New(), true)

		assert.ErrorIs(t, err, ErrResourceNotFound)
		s.mockRepo.AssertExpectations(t)
	})
}

func (s *UsecaseVoteUnitSuite) TestFinalize(t provider.T) {
	t.Run("Should resolve and complete a voting session", func(t provider.T) {
		hostID := uuid.New()
		sess := votingSession(hostID)
		tallies := validTallies(2)

		s.mockRepo.On("SessionByID", s.ctx, sess.ID).Return(sess, nil).Once()
		s.mockRepo.On("Tallies", s.ctx, sess.ID).Return(tallies, nil).Once()
		s.mockRepo.On("CompleteIfVoting", s.ctx, sess.ID, tallies[2].ItemID).Return(true, nil).Once()
		s.mockCodes.On("Remove", s.ctx, sess.JoinCode).Return(nil).Once()

		winner, err := s.usecase.Finalize(s.ctx, model.AuthContext{UserID: hostID}, sess.ID)

		assert.NoError(t, err)
		assert.Equal(t, tallies[2].ItemID, winner)
		s.mockRepo.AssertExpectations(t)
		s.mockCodes.AssertExpectations(t)
	})

	t.Run("Should return the stored winner when already complete", func(t provider.T) {
		winnerID := uuid.New()
		sess := votingSession(uuid.New())
		sess.Status = model.StatusComplete
		sess.WinnerItemID = &winnerID

		s.mockRepo.On("SessionByID", s.ctx, sess.ID).Return(sess, nil).Once()

		// Any participant may ask; completion is a terminal public fact.
		winner, err := s.usecase.Finalize(s.ctx, model.AuthContext{UserID: uuid.New()}, sess.ID)

		assert.NoError(t, err)
		assert.Equal(t, winnerID, winner)
		s.mockRepo.AssertExpectations(t)
	})

	t.Run("Should return the committed winner after losing the race", func(t provider.T) {
		hostID := uuid.New()
		sess := votingSession(hostID)
		tallies := validTallies(0)

		committedWinner := uuid.New()
		completed := sess
		completed.Status = model.StatusComplete
		completed.WinnerItemID = &committedWinner

		s.mockRepo.On("SessionByID", s.ctx, sess.ID).Return(sess, nil).Once()
		s.mockRepo.On("Tallies", s.ctx, sess.ID).Return(tallies, nil).Once()
		s.mockRepo.On("CompleteIfVoting", s.ctx, sess.ID, tallies[0].ItemID).Return(false, nil).Once()
		s.mockRepo.On("SessionByID", s.ctx, sess.ID).Return(completed, nil).Once()

		winner, err := s.usecase.Finalize(s.ctx, model.AuthContext{UserID: hostID}, sess.ID)

		assert.NoError(t, err)
		assert.Equal(t, committedWinner, winner)
		s.mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject a non-host caller", func(t provider.T) {
		sess := votingSession(uuid.New())

		s.mockRepo.On("SessionByID", s.ctx, sess.ID).Return(sess, nil).Once()

		_, err := s.usecase.Finalize(s.ctx, model.AuthContext{UserID: uuid.New()}, sess.ID)

		assert.ErrorIs(t, err, ErrNotHost)
		s.mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject finalize before voting started", func(t provider.T) {
		hostID := uuid.New()
		sess := votingSession(hostID)
		sess.Status = model.StatusPending

		s.mockRepo.On("SessionByID", s.ctx, sess.ID).Return(sess, nil).Once()

		_, err := s.usecase.Finalize(s.ctx, model.AuthContext{UserID: hostID}, sess.ID)

		assert.ErrorIs(t, err, ErrInvalidState)
		s.mockRepo.AssertExpectations(t)
	})
}

func TestResolveWinner(t *testing.T) {
	t.Parallel()

	itemA := uuid.New()
	itemB := uuid.New()
	itemC := uuid.New()

	t.Run("picks the highest net score", func(t *testing.T) {
		tallies := []model.CandidateTally{
			{ItemID: itemA, Ord: 0, Upvotes: 1, Downvotes: 2},
			{ItemID: itemB, Ord: 1, Upvotes: 3, Downvotes: 1},
			{ItemID: itemC, Ord: 2, Upvotes: 2, Downvotes: 0},
		}

		assert.Equal(t, itemB, resolveWinner(tallies))
	})

	t.Run("breaks score ties toward the lowest rank", func(t *testing.T) {
		tallies := []model.CandidateTally{
			{ItemID: itemA, Ord: 2, Upvotes: 2},
			{ItemID: itemB, Ord: 1, Upvotes: 2},
			{ItemID: itemC, Ord: 0, Upvotes: 1},
		}

		assert.Equal(t, itemB, resolveWinner(tallies))
	})

	t.Run("rank zero wins when nobody voted", func(t *testing.T) {
		tallies := []model.CandidateTally{
			{ItemID: itemA, Ord: 1},
			{ItemID: itemB, Ord: 0},
			{ItemID: itemC, Ord: 2},
		}

		assert.Equal(t, itemB, resolveWinner(tallies))
	})

	t.Run("result does not depend on slice order", func(t *testing.T) {
		tallies := []model.CandidateTally{
			{ItemID: itemA, Ord: 0, Upvotes: 1, Downvotes: 1},
			{ItemID: itemB, Ord: 1, Upvotes: 2, Downvotes: 2},
			{ItemID: itemC, Ord: 2, Upvotes: 0, Downvotes: 0},
		}

		want := resolveWinner(tallies)
		for i := 0; i < 20; i++ {
			shuffled := []model.CandidateTally{tallies[2], tallies[0], tallies[1]}
			assert.Equal(t, want, resolveWinner(shuffled))
			shuffled = []model.CandidateTally{tallies[1], tallies[2], tallies[0]}
			assert.Equal(t, want, resolveWinner(shuffled))
		}
	})
}

func TestVoteUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseVoteUnitSuite))
}
