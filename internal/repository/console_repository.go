package repository

import (
	"context"
	"errors"
	"time"

	"gamestore-backend/internal/database"
	"gamestore-backend/internal/models"

	"gorm.io/gorm"
)

type ConsoleRepository interface {
	Create(ctx context.Context, console *models.Console) error
	FindByID(ctx context.Context, id uint) (*models.Console, error)
	FindByName(ctx context.Context, name string) (*models.Console, error)
	FindAll(ctx context.Context) ([]models.Console, error)
}

type consoleRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewConsoleRepository(db *database.Database) ConsoleRepository {
	return &consoleRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *consoleRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, r.timeout)
}

func (r *consoleRepository) Create(ctx context.Context, console *models.Console) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(console).Error
}

// FindByID returns nil, nil when no console has the given id.
func (r *consoleRepository) FindByID(ctx context.Context, id uint) (*models.Console, error) {
	if uint64(id) > maxRowID {
		return nil, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var console models.Console
	err := r.db.WithContext(ctx).First(&console, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &console, nil
}

func (r *consoleRepository) FindByName(ctx context.Context, name string) (*models.Console, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var console models.Console
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&console).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &console, nil
}

func (r *consoleRepository) FindAll(ctx context.Context) ([]models.Console, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	consoles := []models.Console{}
	err := r.db.WithContext(ctx).Order("id").Find(&consoles).Error
	return consoles, err
}
