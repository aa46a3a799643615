package services

import (
	"context"
	"errors"

	"github.com/HardPrice/test-task-secunda/internal/database"
	"github.com/HardPrice/test-task-secunda/internal/models"

	"gorm.io/gorm"
)

// BuildingService handles building reads and the single write the
// directory supports: creation. Buildings are immutable afterwards.
type BuildingService struct {
	db database.Database
}

func NewBuildingService(db database.Database) *BuildingService {
	return &BuildingService{db: db}
}

func (s *BuildingService) Create(ctx context.Context, address string, latitude, longitude float64) (*models.Building, error) {
	building := models.Building{
		Address:   address,
		Latitude:  latitude,
		Longitude: longitude,
	}
	if err := s.db.DB().WithContext(ctx).Create(&building).Error; err != nil {
		return nil, err
	}
	return &building, nil
}

func (s *BuildingService) List(ctx context.Context) ([]models.Building, error) {
	var buildings []models.Building
	err := s.db.DB().WithContext(ctx).Order("id").Find(&buildings).Error
	if err != nil {
		return nil, err
	}
	return buildings, nil
}

func (s *BuildingService) Get(ctx context.Context, id uint) (*models.Building, error) {
	var building models.Building
	err := s.db.DB().WithContext(ctx).First(&building, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuildingNotFound
		}
		return nil, err
	}
	return &building, nil
}
