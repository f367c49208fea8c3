package infra_postgres_session

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ampeli/wineroulette/internal/model"
	usecase_session "github.com/ampeli/wineroulette/internal/usecase/session"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type sessionDTO struct {
	ID           uuid.UUID       `db:"id"`
	HostID       uuid.UUID       `db:"host_id"`
	Code         string          `db:"code"`
	Region       string          `db:"region"`
	PriceMin     sql.NullFloat64 `db:"price_min"`
	PriceMax     sql.NullFloat64 `db:"price_max"`
	RatingMin    sql.NullFloat64 `db:"rating_min"`
	Categories   pq.StringArray  `db:"categories"`
	Status       string          `db:"status"`
	WinnerItemID uuid.NullUUID   `db:"winner_item_id"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

const sessionColumns = `id, host_id, code, region, price_min, price_max, rating_min, categories, status, winner_item_id, created_at, updated_at`

func (dto sessionDTO) toModel() model.Session {
	s := model.Session{
		ID:        dto.ID,
		HostID:    dto.HostID,
		JoinCode:  dto.Code,
		Region:    dto.Region,
		Status:    dto.Status,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
	s.Filters.Categories = []string(dto.Categories)
	if dto.PriceMin.Valid {
		v := dto.PriceMin.Float64
		s.Filters.PriceMin = &v
	}
	if dto.PriceMax.Valid {
		v := dto.PriceMax.Float64
		s.Filters.PriceMax = &v
	}
	if dto.RatingMin.Valid {
		v := dto.RatingMin.Float64
		s.Filters.RatingMin = &v
	}
	if dto.WinnerItemID.Valid {
		v := dto.WinnerItemID.UUID
		s.WinnerItemID = &v
	}
	return s
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func (d *Driver) Create(ctx context.Context, s model.Session, hostName string) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	dto := sessionDTO{
		ID:         s.ID,
		HostID:     s.HostID,
		Code:       s.JoinCode,
		Region:     s.Region,
		PriceMin:   nullFloat(s.Filters.PriceMin),
		PriceMax:   nullFloat(s.Filters.PriceMax),
		RatingMin:  nullFloat(s.Filters.RatingMin),
		Categories: pq.StringArray(s.Filters.Categories),
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	if dto.Categories == nil {
		dto.Categories = pq.StringArray{}
	}

	query := `
		INSERT INTO sessions (id, host_id, code, region, price_min, price_max, rating_min, categories, status, created_at, updated_at)
		VALUES (:id, :host_id, :code, :region, :price_min, :price_max, :rating_min, :categories, :status, :created_at, :updated_at)
	`

	if _, err := tx.NamedExecContext(ctx, query, dto); err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "duplicate key") {
			return usecase_session.ErrCodeConflict
		}
		return err
	}

	participantQuery := `
		INSERT INTO participants (session_id, user_id, display_name)
		VALUES ($1, $2, $3)
	`

	if _, err := tx.ExecContext(ctx, participantQuery, s.ID, s.HostID, hostName); err != nil {
		return err
	}

	return tx.Commit()
}

func (d *Driver) ByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	var dto sessionDTO

	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE id = $1
	`

	err := d.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Session{}, usecase_session.ErrResourceNotFound
		}
		return model.Session{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) ByActiveCode(ctx context.Context, code string) (model.Session, error) {
	var dto sessionDTO

	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE code = $1 AND status <> 'complete'
	`

	err := d.db.GetContext(ctx, &dto, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Session{}, usecase_session.ErrResourceNotFound
		}
		return model.Session{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) AddParticipant(ctx context.Context, sessionID, userID uuid.UUID, displayName string) (bool, error) {
	query := `
		INSERT INTO participants (session_id, user_id, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id, user_id) DO NOTHING
	`

	result, err := d.db.ExecContext(ctx, query, sessionID, userID, displayName)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rowsAffected == 0 {
		return false, nil
	}

	touchQuery := `
		UPDATE sessions
		SET updated_at = now()
		WHERE id = $1
	`

	if _, err := d.db.ExecContext(ctx, touchQuery, sessionID); err != nil {
		return true, err
	}

	return true, nil
}

type participantDTO struct {
	UserID      uuid.UUID `db:"user_id"`
	DisplayName string    `db:"display_name"`
	JoinedAt    time.Time `db:"joined_at"`
}

func (d *Driver) Participants(ctx context.Context, sessionID uuid.UUID) ([]model.Participant, error) {
	var dtos []participantDTO

	query := `
		SELECT user_id, display_name, joined_at
		FROM participants
		WHERE session_id = $1
		ORDER BY joined_at
	`

	if err := d.db.SelectContext(ctx, &dtos, query, sessionID); err != nil {
		return nil, err
	}

	participants := make([]model.Participant, 0, len(dtos))
	for _, dto := range dtos {
		participants = append(participants, model.Participant{
			ID:          dto.UserID,
			DisplayName: dto.DisplayName,
			JoinedAt:    dto.JoinedAt,
		})
	}

	return participants, nil
}

type tallyDTO struct {
	ItemID    uuid.UUID    `db:"item_id"`
	Ord       int          `db:"ord"`
	Upvotes   int          `db:"upvotes"`
	Downvotes int          `db:"downvotes"`
	UserVote  sql.NullBool `db:"user_vote"`
}

func (d *Driver) CandidateTallies(ctx context.Context, sessionID, viewerID uuid.UUID) ([]model.CandidateTally, error) {
	var dtos []tallyDTO

	query := `
		SELECT
			c.item_id,
			c.ord,
			COUNT(v.user_id) FILTER (WHERE v.upvote) AS upvotes,
			COUNT(v.user_id) FILTER (WHERE NOT v.upvote) AS downvotes,
			BOOL_OR(v.upvote) FILTER (WHERE v.user_id = $2) AS user_vote
		FROM candidates c
		LEFT JOIN votes v ON v.session_id = c.session_id AND v.item_id = c.item_id
		WHERE c.session_id = $1
		GROUP BY c.item_id, c.ord
		ORDER BY c.ord
	`

	if err := d.db.SelectContext(ctx, &dtos, query, sessionID, viewerID); err != nil {
		return nil, err
	}

	tallies := make([]model.CandidateTally, 0, len(dtos))
	for _, dto := range dtos {
		t := model.CandidateTally{
			ItemID:    dto.ItemID,
			Ord:       dto.Ord,
			Upvotes:   dto.Upvotes,
			Downvotes: dto.Downvotes,
		}
		if dto.UserVote.Valid {
			v := dto.UserVote.Bool
			t.UserVote = &v
		}
		tallies = append(tallies, t)
	}

	return tallies, nil
}
