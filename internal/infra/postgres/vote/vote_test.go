package infra_postgres_vote

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ampeli/wineroulette/internal/model"
	usecase_vote "github.com/ampeli/wineroulette/internal/usecase/vote"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type VoteInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db     *sqlx.DB
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	driver := New(sqlxDB)

	return &resources{
		db:     sqlxDB,
		mock:   mock,
		driver: driver,
		ctx:    context.Background(),
	}
}

func validVote() model.Vote {
	return model.Vote{
		SessionID: uuid.New(),
		ItemID:    uuid.New(),
		UserID:    uuid.New(),
		Upvote:    true,
		CreatedAt: time.Now().UTC(),
	}
}

func (suite *VoteInfraUnitSuite) TestCast(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources, v model.Vote)
		expected      model.VoteCounts
		expectError   bool
		expectedError error
	}{
		{
			name: "Should lock the session row then upsert and snapshot counts",
			setupMocks: func(r *resources, v model.Vote) {
				r.mock.ExpectBegin()
				r.mock.ExpectQuery("SELECT status FROM sessions").
					WithArgs(v.SessionID).
					WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("voting"))
				r.mock.ExpectQuery("SELECT EXISTS").
					WithArgs(v.SessionID, v.ItemID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				r.mock.ExpectExec("INSERT INTO votes").
					WithArgs(v.SessionID, v.ItemID, v.UserID, v.Upvote, v.CreatedAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
				r.mock.ExpectQuery("SELECT").
					WithArgs(v.SessionID).
					WillReturnRows(sqlmock.NewRows([]string{"total_votes", "participants", "candidates"}).
						AddRow(8, 2, 4))
				r.mock.ExpectCommit()
			},
			expected: model.VoteCounts{TotalVotes: 8, Participants: 2, Candidates: 4},
		},
		{
			name: "Should reject a session that left voting under the lock",
			setupMocks: func(r *resources, v model.Vote) {
				r.mock.ExpectBegin()
				r.mock.ExpectQuery("SELECT status FROM sessions").
					WithArgs(v.SessionID).
					WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("complete"))
				r.mock.ExpectRollback()
			},
			expectError:   true,
			expectedError: usecase_vote.ErrInvalidState,
		},
		{
			name: "Should map a vanished session to not found",
			setupMocks: func(r *resources, v model.Vote) {
				r.mock.ExpectBegin()
				r.mock.ExpectQuery("SELECT status FROM sessions").
					WithArgs(v.SessionID).
					WillReturnError(sql.ErrNoRows)
				r.mock.ExpectRollback()
			},
			expectError:   true,
			expectedError: usecase_vote.ErrResourceNotFound,
		},
		{
			name: "Should reject an item outside the candidate set",
			setupMocks: func(r *resources, v model.Vote) {
				r.mock.ExpectBegin()
				r.mock.ExpectQuery("SELECT status FROM sessions").
					WithArgs(v.SessionID).
					WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("voting"))
				r.mock.ExpectQuery("SELECT EXISTS").
					WithArgs(v.SessionID, v.ItemID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				r.mock.ExpectRollback()
			},
			expectError:   true,
			expectedError: usecase_vote.ErrUnknownCandidate,
		},
		{
			name: "Should return error when upsert fails",
			setupMocks: func(r *resources, v model.Vote) {
				r.mock.ExpectBegin()
				r.mock.ExpectQuery("SELECT status FROM sessions").
					WithArgs(v.SessionID).
					WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("voting"))
				r.mock.ExpectQuery("SELECT EXISTS").
					WithArgs(v.SessionID, v.ItemID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				r.mock.ExpectExec("INSERT INTO votes").
					WithArgs(v.SessionID, v.ItemID, v.UserID, v.Upvote, v.CreatedAt).
					WillReturnError(errors.New("connection reset"))
				r.mock.ExpectRollback()
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			v := validVote()
			tc.setupMocks(r, v)

			counts, err := r.driver.Cast(r.ctx, v)

			if tc.expectError {
				assert.Error(t, err)
				if tc.expectedError != nil {
					assert.ErrorIs(t, err, tc.expectedError)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, counts)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (suite *VoteInfraUnitSuite) TestCompleteIfVoting(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources, sessionID, winnerID uuid.UUID)
		expected    bool
		expectError bool
	}{
		{
			name: "Should commit the transition out of voting",
			setupMocks: func(r *resources, sessionID, winnerID uuid.UUID) {
				r.mock.ExpectExec("UPDATE sessions").
					WithArgs(sessionID, winnerID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expected: true,
		},
		{
			name: "Should report a lost race when the row already moved",
			setupMocks: func(r *resources, sessionID, winnerID uuid.UUID) {
				r.mock.ExpectExec("UPDATE sessions").
					WithArgs(sessionID, winnerID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expected: false,
		},
		{
			name: "Should return error when update fails",
			setupMocks: func(r *resources, sessionID, winnerID uuid.UUID) {
				r.mock.ExpectExec("UPDATE sessions").
					WithArgs(sessionID, winnerID).
					WillReturnError(errors.New("connection reset"))
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			sessionID, winnerID := uuid.New(), uuid.New()
			tc.setupMocks(r, sessionID, winnerID)

			committed, err := r.driver.CompleteIfVoting(r.ctx, sessionID, winnerID)

			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, committed)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(VoteInfraUnitSuite))
}
