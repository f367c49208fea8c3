package usecase_catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/ampeli/wineroulette/internal/model"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrFailedToStoreItem = errors.New("failed to store item")
	ErrFailedToLoadItems = errors.New("failed to load items")
)

type Repository interface {
	Store(ctx context.Context, item model.Item) error
	ByRegion(ctx context.Context, region string) ([]*model.Item, error)
}

type Usecase struct {
	repository Repository
}

func New(r Repository) *Usecase {
	return &Usecase{
		repository: r,
	}
}

func (u *Usecase) Upload(ctx context.Context, item model.Item) (uuid.UUID, error) {
	if item.Name == "" {
		return uuid.Nil, fmt.Errorf("%w: item name cannot be empty", ErrInvalidInput)
	}
	if item.Region == "" {
		return uuid.Nil, fmt.Errorf("%w: item region cannot be empty", ErrInvalidInput)
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	if err := u.repository.Store(ctx, item); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrFailedToStoreItem, err)
	}

	return item.ID, nil
}

func (u *Usecase) List(ctx context.Context, region string) ([]*model.Item, error) {
	items, err := u.repository.ByRegion(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadItems, err)
	}
	return items, nil
}
