package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
)

// Supply implements CRUD over relief supply items.
type Supply struct {
	supplies model.SupplyStore
	logger   *logger.Logger
}

func NewSupply(supplies model.SupplyStore, logger *logger.Logger) *Supply {
	return &Supply{
		supplies: supplies,
		logger:   logger,
	}
}

func (s *Supply) Create(ctx context.Context, supply model.Supply) (model.Supply, error) {
	s.logger.Debug("Supply service: creating supply", "title", supply.Title)

	created, err := s.supplies.Create(ctx, supply)
	if err != nil {
		return model.Supply{}, fmt.Errorf("failed to create supply: %w", err)
	}

	return created, nil
}

// List returns supplies, optionally filtered by category.
func (s *Supply) List(ctx context.Context, category string) ([]model.Supply, error) {
	supplies, err := s.supplies.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplies: %w", err)
	}

	return supplies, nil
}

func (s *Supply) Get(ctx context.Context, id string) (model.Supply, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Supply{}, model.ErrNotFound
	}

	supply, err := s.supplies.GetByID(ctx, oid)
	if err != nil {
		return model.Supply{}, err
	}

	return supply, nil
}

func (s *Supply) Update(ctx context.Context, id string, patch model.SupplyPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrNotFound
	}

	if err := s.supplies.Update(ctx, oid, patch); err != nil {
		return err
	}

	s.logger.Info("Supply service: supply updated", "id", id)

	return nil
}

func (s *Supply) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrNotFound
	}

	if err := s.supplies.Delete(ctx, oid); err != nil {
		return err
	}

	s.logger.Info("Supply service: supply deleted", "id", id)

	return nil
}
