// Package initiatives manages the transformation initiative collection.
package initiatives

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/storage"
)

// Service owns initiative creation and updates.
type Service struct {
	store storage.InitiativeStore
	log   *logrus.Logger
}

// New constructs the initiatives service.
func New(store storage.InitiativeStore, log *logrus.Logger) *Service {
	return &Service{store: store, log: log}
}

// List returns every initiative.
func (s *Service) List(ctx context.Context) ([]initiative.Initiative, error) {
	return s.store.ListInitiatives(ctx)
}

// Get returns a single initiative; storage.ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id string) (initiative.Initiative, error) {
	return s.store.GetInitiative(ctx, id)
}

// Create validates and stores a new initiative.
func (s *Service) Create(ctx context.Context, in initiative.Initiative) (initiative.Initiative, error) {
	in.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return initiative.Initiative{}, err
	}

	created, err := s.store.CreateInitiative(ctx, in)
	if err != nil {
		return initiative.Initiative{}, err
	}
	s.log.WithField("initiative_id", created.ID).Info("initiative created")
	return created, nil
}

// Update applies a partial update; storage.ErrNotFound when absent.
func (s *Service) Update(ctx context.Context, id string, patch initiative.Patch) (initiative.Initiative, error) {
	if err := patch.Validate(); err != nil {
		return initiative.Initiative{}, err
	}

	updated, err := s.store.UpdateInitiative(ctx, id, patch)
	if err != nil {
		return initiative.Initiative{}, err
	}
	s.log.WithField("initiative_id", id).Info("initiative updated")
	return updated, nil
}
