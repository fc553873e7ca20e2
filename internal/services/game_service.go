package services

import (
	"context"
	"fmt"

	"gamestore-backend/internal/models"
	"gamestore-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type GameService interface {
	Create(ctx context.Context, title string, consoleID uint) (*models.Game, error)
	// List returns every game with its console attached.
	List(ctx context.Context) ([]models.Game, error)
	// GetByID returns the game alone; the console is not loaded.
	GetByID(ctx context.Context, id uint) (*models.Game, error)
}

type gameService struct {
	repo        repository.GameRepository
	consoleRepo repository.ConsoleRepository
	logger      *logrus.Logger
}

func NewGameService(repo repository.GameRepository, consoleRepo repository.ConsoleRepository, logger *logrus.Logger) GameService {
	return &gameService{
		repo:        repo,
		consoleRepo: consoleRepo,
		logger:      logger,
	}
}

func (s *gameService) Create(ctx context.Context, title string, consoleID uint) (*models.Game, error) {
	console, err := s.consoleRepo.FindByID(ctx, consoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to check console: %w", err)
	}
	if console == nil {
		return nil, fmt.Errorf("console with ID %d does not exist: %w", consoleID, ErrConflict)
	}

	existing, err := s.repo.FindByTitleAndConsole(ctx, title, consoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing game: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("game %q already exists for console %d: %w", title, consoleID, ErrConflict)
	}

	game := &models.Game{Title: title, ConsoleID: consoleID}
	if err := s.repo.Create(ctx, game); err != nil {
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("game %q rejected for console %d: %w", title, consoleID, ErrConflict)
		}
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":        game.ID,
		"title":     game.Title,
		"consoleId": game.ConsoleID,
	}).Info("Game created")

	return game, nil
}

func (s *gameService) List(ctx context.Context) ([]models.Game, error) {
	return s.repo.FindAllWithConsole(ctx)
}

func (s *gameService) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	game, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game with ID %d: %w", id, ErrNotFound)
	}
	return game, nil
}
