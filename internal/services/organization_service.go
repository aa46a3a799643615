package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HardPrice/test-task-secunda/internal/database"
	"github.com/HardPrice/test-task-secunda/internal/models"
	"github.com/HardPrice/test-task-secunda/pkg/utils"

	"gorm.io/gorm"
)

// SearchFilters holds the independently optional dimensions of an
// organization search. All supplied filters combine with AND; absent
// ones impose no constraint.
type SearchFilters struct {
	BuildingID *uint
	ActivityID *uint
	Name       string
	Geo        GeoFilter
}

// CreateOrganizationInput is the payload of the one multi-entity write
// in the system.
type CreateOrganizationInput struct {
	Name       string
	BuildingID uint
	Phones     []string
	Activities []uint
}

// OrganizationService composes search filters into a single storage
// query and owns the transactional organization write.
type OrganizationService struct {
	db         database.Database
	activities *ActivityService
}

func NewOrganizationService(db database.Database, activities *ActivityService) *OrganizationService {
	return &OrganizationService{
		db:         db,
		activities: activities,
	}
}

// Search returns organizations matching every supplied filter. The
// activity filter is expanded to the full descendant id set first; an
// organization with several matching activities still appears once.
// The geographic predicate is applied over the joined building rows
// after the storage query. Results are ordered by primary key.
func (s *OrganizationService) Search(ctx context.Context, filters SearchFilters) ([]models.Organization, error) {
	query := s.db.DB().WithContext(ctx).
		Model(&models.Organization{}).
		Preload("Building").
		Preload("Phones").
		Preload("Activities")

	if filters.BuildingID != nil {
		query = query.Where("organizations.building_id = ?", *filters.BuildingID)
	}

	if filters.ActivityID != nil {
		activityIDs, err := s.activities.ExpandDescendants(ctx, *filters.ActivityID)
		if err != nil {
			return nil, err
		}
		query = query.
			Distinct("organizations.*").
			Joins("JOIN organization_activity ON organization_activity.organization_id = organizations.id").
			Where("organization_activity.activity_id IN ?", activityIDs)
	}

	if filters.Name != "" {
		query = query.Where("LOWER(organizations.name) LIKE ?", "%"+strings.ToLower(filters.Name)+"%")
	}

	var organizations []models.Organization
	if err := query.Order("organizations.id").Find(&organizations).Error; err != nil {
		return nil, err
	}
	for i := range organizations {
		normalizeAssociations(&organizations[i])
	}

	if filters.Geo.Kind == GeoFilterNone {
		return organizations, nil
	}

	matched := make([]models.Organization, 0, len(organizations))
	for _, org := range organizations {
		if org.Building != nil && filters.Geo.Matches(org.Building.Latitude, org.Building.Longitude) {
			matched = append(matched, org)
		}
	}
	return matched, nil
}

// Get loads an organization with its building, phones and activities.
func (s *OrganizationService) Get(ctx context.Context, id uint) (*models.Organization, error) {
	var organization models.Organization
	err := s.db.DB().WithContext(ctx).
		Preload("Building").
		Preload("Phones").
		Preload("Activities").
		First(&organization, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	normalizeAssociations(&organization)
	return &organization, nil
}

// normalizeAssociations keeps empty association lists as [] rather
// than null in responses.
func normalizeAssociations(org *models.Organization) {
	if org.Phones == nil {
		org.Phones = []models.Phone{}
	}
	if org.Activities == nil {
		org.Activities = []models.Activity{}
	}
}

// Create inserts an organization together with its phones and activity
// associations as one atomic unit. The building must exist, every
// referenced activity must exist and every phone number must match an
// accepted format; any failure rolls back the whole write.
func (s *OrganizationService) Create(ctx context.Context, input CreateOrganizationInput) (*models.Organization, error) {
	for _, number := range input.Phones {
		if err := utils.ValidatePhoneNumber(number); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPhoneNumber, number)
		}
	}

	var organization models.Organization
	err := s.db.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var building models.Building
		if err := tx.First(&building, input.BuildingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBuildingNotFound
			}
			return err
		}

		var activities []models.Activity
		if len(input.Activities) > 0 {
			if err := tx.Where("id IN ?", input.Activities).Find(&activities).Error; err != nil {
				return err
			}
			if len(activities) != len(input.Activities) {
				return ErrActivityNotFound
			}
		}

		organization = models.Organization{
			Name:       input.Name,
			BuildingID: input.BuildingID,
			Activities: activities,
		}
		for _, number := range input.Phones {
			organization.Phones = append(organization.Phones, models.Phone{Number: number})
		}

		return tx.Create(&organization).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, organization.ID)
}
