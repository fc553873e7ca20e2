package repository

import (
	"context"
	"errors"
	"time"

	"gamestore-backend/internal/database"
	"gamestore-backend/internal/models"

	"gorm.io/gorm"
)

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	FindByID(ctx context.Context, id uint) (*models.Game, error)
	FindByTitleAndConsole(ctx context.Context, title string, consoleID uint) (*models.Game, error)
	// FindAllWithConsole preloads each game's console.
	FindAllWithConsole(ctx context.Context) ([]models.Game, error)
}

type gameRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewGameRepository(db *database.Database) GameRepository {
	return &gameRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *gameRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, r.timeout)
}

func (r *gameRepository) Create(ctx context.Context, game *models.Game) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Console").Create(game).Error
}

func (r *gameRepository) FindByID(ctx context.Context, id uint) (*models.Game, error) {
	if uint64(id) > maxRowID {
		return nil, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var game models.Game
	err := r.db.WithContext(ctx).First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) FindByTitleAndConsole(ctx context.Context, title string, consoleID uint) (*models.Game, error) {
	if uint64(consoleID) > maxRowID {
		return nil, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var game models.Game
	err := r.db.WithContext(ctx).
		Where("title = ? AND console_id = ?", title, consoleID).
		First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) FindAllWithConsole(ctx context.Context) ([]models.Game, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	games := []models.Game{}
	err := r.db.WithContext(ctx).Preload("Console").Order("id").Find(&games).Error
	return games, err
}
