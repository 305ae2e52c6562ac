package vessel

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

// Service defines the business logic for vessel operations
type Service struct {
	repo Repository
	log  *slog.Logger
}

type Servicer interface {
	List(ctx context.Context) ([]Vessel, error)
	Find(ctx context.Context, id int) (*Vessel, error)
	Create(ctx context.Context, in Input) (*Vessel, error)
	Update(ctx context.Context, id int, in Input) (*Vessel, error)
	Delete(ctx context.Context, id int) error
}

// NewService creates a new vessel service
func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "vessel_service"),
	}
}

// List returns all vessels in storage order
func (s *Service) List(ctx context.Context) ([]Vessel, error) {
	vessels, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list vessels", "error", err)
		return nil, fmt.Errorf("list vessels: %w", err)
	}
	if vessels == nil {
		vessels = []Vessel{}
	}
	return vessels, nil
}

// Find returns a single vessel by ID
func (s *Service) Find(ctx context.Context, id int) (*Vessel, error) {
	v, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find vessel", "vessel_id", id, "error", err)
		return nil, fmt.Errorf("find vessel: %w", err)
	}
	return v, nil
}

// Create validates the input and stores a new vessel; the ID comes from storage
func (s *Service) Create(ctx context.Context, in Input) (*Vessel, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	v, err := s.repo.Create(ctx, in)
	if err != nil {
		s.log.Error("failed to create vessel", "nombre", in.Name, "error", err)
		return nil, fmt.Errorf("create vessel: %w", err)
	}

	s.log.Info("vessel created successfully", "vessel_id", v.ID)
	return v, nil
}

// Update replaces all fields of an existing vessel
func (s *Service) Update(ctx context.Context, id int, in Input) (*Vessel, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	v, err := s.repo.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update vessel", "vessel_id", id, "error", err)
		return nil, fmt.Errorf("update vessel: %w", err)
	}

	s.log.Info("vessel updated successfully", "vessel_id", id)
	return v, nil
}

// Delete removes a vessel permanently
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete vessel", "vessel_id", id, "error", err)
		return fmt.Errorf("delete vessel: %w", err)
	}

	s.log.Info("vessel deleted successfully", "vessel_id", id)
	return nil
}
