package infra_postgres_vote

import (
	"context"
	"database/sql"

	"github.com/ampeli/wineroulette/internal/model"
	usecase_vote "github.com/ampeli/wineroulette/internal/usecase/vote"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type sessionDTO struct {
	ID           uuid.UUID     `db:"id"`
	HostID       uuid.UUID     `db:"host_id"`
	Code         string        `db:"code"`
	Status       string        `db:"status"`
	WinnerItemID uuid.NullUUID `db:"winner_item_id"`
}

func (d *Driver) SessionByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	var dto sessionDTO

	query := `
		SELECT id, host_id, code, status, winner_item_id
		FROM sessions
		WHERE id = $1
	`

	err := d.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Session{}, usecase_vote.ErrResourceNotFound
		}
		return model.Session{}, err
	}

	s := model.Session{
		ID:       dto.ID,
		HostID:   dto.HostID,
		JoinCode: dto.Code,
		Status:   dto.Status,
	}
	if dto.WinnerItemID.Valid {
		v := dto.WinnerItemID.UUID
		s.WinnerItemID = &v
	}
	return s, nil
}

func (d *Driver) IsParticipant(ctx context.Context, sessionID, userID uuid.UUID) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM participants WHERE session_id = $1 AND user_id = $2)`

	if err := d.db.GetContext(ctx, &exists, query, sessionID, userID); err != nil {
		return false, err
	}

	return exists, nil
}

// Cast upserts the vote and reads the completion counters inside one
// transaction. The session row lock serializes casts per session: at
// READ COMMITTED two unserialized final votes would each miss the
// other's uncommitted row and both count expected-1, leaving the
// session stuck in voting with every ballot in.
func (d *Driver) Cast(ctx context.Context, v model.Vote) (model.VoteCounts, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.VoteCounts{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var status string
	lockQuery := `SELECT status FROM sessions WHERE id = $1 FOR UPDATE`

	if err := tx.GetContext(ctx, &status, lockQuery, v.SessionID); err != nil {
		if err == sql.ErrNoRows {
			return model.VoteCounts{}, usecase_vote.ErrResourceNotFound
		}
		return model.VoteCounts{}, err
	}
	// Re-checked under the lock: the pre-flight status read in the
	// usecase may be stale by the time the vote lands.
	if status != model.StatusVoting {
		return model.VoteCounts{}, usecase_vote.ErrInvalidState
	}

	var isCandidate bool
	candidateQuery := `SELECT EXISTS(SELECT 1 FROM candidates WHERE session_id = $1 AND item_id = $2)`

	if err := tx.GetContext(ctx, &isCandidate, candidateQuery, v.SessionID, v.ItemID); err != nil {
		return model.VoteCounts{}, err
	}
	if !isCandidate {
		return model.VoteCounts{}, usecase_vote.ErrUnknownCandidate
	}

	upsertQuery := `
		INSERT INTO votes (session_id, item_id, user_id, upvote, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, item_id, user_id)
		DO UPDATE SET upvote = EXCLUDED.upvote
	`

	if _, err := tx.ExecContext(ctx, upsertQuery, v.SessionID, v.ItemID, v.UserID, v.Upvote, v.CreatedAt); err != nil {
		return model.VoteCounts{}, err
	}

	var counts struct {
		TotalVotes   int `db:"total_votes"`
		Participants int `db:"participants"`
		Candidates   int `db:"candidates"`
	}

	countsQuery := `
		SELECT
			(SELECT COUNT(*) FROM votes WHERE session_id = $1) AS total_votes,
			(SELECT COUNT(*) FROM participants WHERE session_id = $1) AS participants,
			(SELECT COUNT(*) FROM candidates WHERE session_id = $1) AS candidates
	`

	if err := tx.GetContext(ctx, &counts, countsQuery, v.SessionID); err != nil {
		return model.VoteCounts{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.VoteCounts{}, err
	}

	return model.VoteCounts{
		TotalVotes:   counts.TotalVotes,
		Participants: counts.Participants,
		Candidates:   counts.Candidates,
	}, nil
}

type tallyDTO struct {
	ItemID    uuid.UUID `db:"item_id"`
	Ord       int       `db:"ord"`
	Upvotes   int       `db:"upvotes"`
	Downvotes int       `db:"downvotes"`
}

func (d *Driver) Tallies(ctx context.Context, sessionID uuid.UUID) ([]model.CandidateTally, error) {
	var dtos []tallyDTO

	query := `
		SELECT
			c.item_id,
			c.ord,
			COUNT(v.user_id) FILTER (WHERE v.upvote) AS upvotes,
			COUNT(v.user_id) FILTER (WHERE NOT v.upvote) AS downvotes
		FROM candidates c
		LEFT JOIN votes v ON v.session_id = c.session_id AND v.item_id = c.item_id
		WHERE c.session_id = $1
		GROUP BY c.item_id, c.ord
		ORDER BY c.ord
	`

	if err := d.db.SelectContext(ctx, &dtos, query, sessionID); err != nil {
		return nil, err
	}

	tallies := make([]model.CandidateTally, 0, len(dtos))
	for _, dto := range dtos {
		tallies = append(tallies, model.CandidateTally{
			ItemID:    dto.ItemID,
			Ord:       dto.Ord,
			Upvotes:   dto.Upvotes,
			Downvotes: dto.Downvotes,
		})
	}

	return tallies, nil
}

// CompleteIfVoting is the single serialization point out of the voting
// state. Whoever flips the row first wins; everybody else sees zero rows
// affected and reads the committed winner instead.
func (d *Driver) CompleteIfVoting(ctx context.Context, sessionID, winnerItemID uuid.UUID) (bool, error) {
	query := `
		UPDATE sessions
		SET status = 'complete', winner_item_id = $2, updated_at = now()
		WHERE id = $1 AND status = 'voting'
	`

	result, err := d.db.ExecContext(ctx, query, sessionID, winnerItemID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
