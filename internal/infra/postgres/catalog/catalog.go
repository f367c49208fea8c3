package infra_postgres_catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ampeli/wineroulette/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type itemDTO struct {
	ID       uuid.UUID       `db:"id"`
	Name     string          `db:"name"`
	Region   string          `db:"region"`
	Category string          `db:"category"`
	Rating   float64         `db:"rating"`
	Price    sql.NullFloat64 `db:"price"`
}

func (dto itemDTO) toModel() model.Item {
	item := model.Item{
		ID:       dto.ID,
		Name:     dto.Name,
		Region:   dto.Region,
		Category: dto.Category,
		Rating:   dto.Rating,
	}
	if dto.Price.Valid {
		v := dto.Price.Float64
		item.Price = &v
	}
	return item
}

func (d *Driver) Store(ctx context.Context, item model.Item) error {
	dto := itemDTO{
		ID:       item.ID,
		Name:     item.Name,
		Region:   item.Region,
		Category: item.Category,
		Rating:   item.Rating,
	}
	if item.Price != nil {
		dto.Price = sql.NullFloat64{Float64: *item.Price, Valid: true}
	}

	query := `
		INSERT INTO items (id, name, region, category, rating, price)
		VALUES (:id, :name, :region, :category, :rating, :price)
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name, region = EXCLUDED.region, category = EXCLUDED.category, rating = EXCLUDED.rating, price = EXCLUDED.price
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	return err
}

func (d *Driver) ByRegion(ctx context.Context, region string) ([]*model.Item, error) {
	var dtos []itemDTO

	query := `
		SELECT id, name, region, category, rating, price
		FROM items
		WHERE region = $1
		ORDER BY name
	`

	if err := d.db.SelectContext(ctx, &dtos, query, region); err != nil {
		return nil, err
	}

	items := make([]*model.Item, 0, len(dtos))
	for _, dto := range dtos {
		item := dto.toModel()
		items = append(items, &item)
	}

	return items, nil
}

// EligibleItems applies the session filters in the store. Items without
// a resolvable price are excluded whenever a price bound is present: a
// filter the data cannot evaluate must not wave items through.
func (d *Driver) EligibleItems(ctx context.Context, region string, filters model.Filters) ([]model.Item, error) {
	query := `
		SELECT id, name, region, category, rating, price
		FROM items
		WHERE region = $1
	`
	args := []any{region}

	if filters.RatingMin != nil {
		args = append(args, *filters.RatingMin)
		query += fmt.Sprintf(" AND rating >= $%d", len(args))
	}
	if filters.PriceMin != nil {
		args = append(args, *filters.PriceMin)
		query += fmt.Sprintf(" AND price IS NOT NULL AND price >= $%d", len(args))
	}
	if filters.PriceMax != nil {
		args = append(args, *filters.PriceMax)
		query += fmt.Sprintf(" AND price IS NOT NULL AND price <= $%d", len(args))
	}
	if len(filters.Categories) > 0 {
		args = append(args, pq.StringArray(filters.Categories))
		query += fmt.Sprintf(" AND category = ANY($%d)", len(args))
	}

	var dtos []itemDTO
	if err := d.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, err
	}

	items := make([]model.Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, dto.toModel())
	}

	return items, nil
}
