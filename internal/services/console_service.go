package services

import (
	"context"
	"fmt"

	"gamestore-backend/internal/models"
	"gamestore-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type ConsoleService interface {
	Create(ctx context.Context, name string) (*models.Console, error)
	List(ctx context.Context) ([]models.Console, error)
	GetByID(ctx context.Context, id uint) (*models.Console, error)
}

type consoleService struct {
	repo   repository.ConsoleRepository
	logger *logrus.Logger
}

func NewConsoleService(repo repository.ConsoleRepository, logger *logrus.Logger) ConsoleService {
	return &consoleService{
		repo:   repo,
		logger: logger,
	}
}

func (s *consoleService) Create(ctx context.Context, name string) (*models.Console, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing console: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("console %q already exists: %w", name, ErrConflict)
	}

	console := &models.Console{Name: name}
	if err := s.repo.Create(ctx, console); err != nil {
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("console %q already exists: %w", name, ErrConflict)
		}
		return nil, fmt.Errorf("failed to create console: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":   console.ID,
		"name": console.Name,
	}).Info("Console created")

	return console, nil
}

func (s *consoleService) List(ctx context.Context) ([]models.Console, error) {
	return s.repo.FindAll(ctx)
}

func (s *consoleService) GetByID(ctx context.Context, id uint) (*models.Console, error) {
	console, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if console == nil {
		return nil, fmt.Errorf("console with ID %d: %w", id, ErrNotFound)
	}
	return console, nil
}
