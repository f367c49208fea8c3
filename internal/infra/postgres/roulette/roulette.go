package infra_postgres_roulette

import (
	"context"
	"database/sql"

	"github.com/ampeli/wineroulette/internal/model"
	usecase_spin "github.com/ampeli/wineroulette/internal/usecase/spin"
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
	ID     uuid.UUID `db:"id"`
	HostID uuid.UUID `db:"host_id"`
	Status string    `db:"status"`
}

func (d *Driver) SessionByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	var dto sessionDTO

	query := `
		SELECT id, host_id, status
		FROM sessions
		WHERE id = $1
	`

	err := d.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Session{}, usecase_spin.ErrResourceNotFound
		}
		return model.Session{}, err
	}

	return model.Session{
		ID:     dto.ID,
		HostID: dto.HostID,
		Status: dto.Status,
	}, nil
}

// ReplaceCandidates is the spin transaction: the conditional status flip
// guards against a racing second spin, then old vote and candidate rows
// go away wholesale and the new draw comes in ranked by shuffle order.
// The deletes are order-independent, votes reference candidates.
func (d *Driver) ReplaceCandidates(ctx context.Context, sessionID uuid.UUID, candidates []model.Candidate) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	transitionQuery := `
		UPDATE sessions
		SET status = 'voting', updated_at = now()
		WHERE id = $1 AND status = 'pending'
	`

	result, err := tx.ExecContext(ctx, transitionQuery, sessionID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_spin.ErrInvalidState
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE session_id = $1`, sessionID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM candidates WHERE session_id = $1`, sessionID); err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO candidates (session_id, item_id, ord)
		VALUES ($1, $2, $3)
	`

	for _, c := range candidates {
		if _, err := tx.ExecContext(ctx, insertQuery, c.SessionID, c.ItemID, c.Ord); err != nil {
			return err
		}
	}

	return tx.Commit()
}
