package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/HardPrice/test-task-secunda/internal/database"
	"github.com/HardPrice/test-task-secunda/internal/models"

	"gorm.io/gorm"
)

// ActivityService owns the business-category forest: creation with the
// depth invariant, listing, and descendant expansion for search.
type ActivityService struct {
	db       database.Database
	cache    database.RedisClient
	cacheTTL time.Duration
}

// NewActivityService creates the service. cache may be nil; descendant
// sets are then recomputed on every search.
func NewActivityService(db database.Database, cache database.RedisClient, cacheTTL time.Duration) *ActivityService {
	return &ActivityService{
		db:       db,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Create inserts a new activity. A nil parentID creates a root at
// level 1; otherwise the level is derived from the parent, failing
// with ErrActivityNotFound when the parent is absent and
// ErrMaxActivityDepth when the parent already sits at the maximum
// level.
func (s *ActivityService) Create(ctx context.Context, name string, parentID *uint) (*models.Activity, error) {
	level := 1
	if parentID != nil {
		var parent models.Activity
		err := s.db.DB().WithContext(ctx).First(&parent, *parentID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrActivityNotFound
			}
			return nil, err
		}
		if parent.Level >= models.MaxActivityDepth {
			return nil, ErrMaxActivityDepth
		}
		level = parent.Level + 1
	}

	activity := models.Activity{
		Name:     name,
		ParentID: parentID,
		Level:    level,
	}
	if err := s.db.DB().WithContext(ctx).Create(&activity).Error; err != nil {
		return nil, err
	}

	s.invalidateAncestors(ctx, &activity)

	return &activity, nil
}

// List returns every activity with its children preloaded two levels
// down, which covers the whole forest given the depth bound.
func (s *ActivityService) List(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.db.DB().WithContext(ctx).
		Preload("Children.Children").
		Order("id").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// ExpandDescendants returns the given id plus every transitive child
// id: a worklist walk over the parent->child relation, one query per
// level, bounded by the maximum nesting depth. A leaf id yields the
// singleton set.
func (s *ActivityService) ExpandDescendants(ctx context.Context, id uint) ([]uint, error) {
	if ids, ok := s.cachedDescendants(ctx, id); ok {
		return ids, nil
	}

	all := []uint{id}
	frontier := []uint{id}

	for depth := 1; depth < models.MaxActivityDepth && len(frontier) > 0; depth++ {
		var children []uint
		err := s.db.DB().WithContext(ctx).
			Model(&models.Activity{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &children).Error
		if err != nil {
			return nil, err
		}
		all = append(all, children...)
		frontier = children
	}

	s.storeDescendants(ctx, id, all)

	return all, nil
}

func descendantsCacheKey(id uint) string {
	return fmt.Sprintf("activity:descendants:%d", id)
}

func (s *ActivityService) cachedDescendants(ctx context.Context, id uint) ([]uint, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, descendantsCacheKey(id))
	if err != nil {
		return nil, false
	}
	var ids []uint
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, false
	}
	return ids, true
}

func (s *ActivityService) storeDescendants(ctx context.Context, id uint, ids []uint) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	// Cache failures only cost a recomputation next time.
	_ = s.cache.Set(ctx, descendantsCacheKey(id), string(raw), s.cacheTTL)
}

// invalidateAncestors drops the cached descendant sets of every
// activity on the new node's parent chain, which are exactly the sets
// the insert extended.
func (s *ActivityService) invalidateAncestors(ctx context.Context, activity *models.Activity) {
	if s.cache == nil {
		return
	}

	keys := []string{descendantsCacheKey(activity.ID)}
	parentID := activity.ParentID
	for depth := 0; depth < models.MaxActivityDepth && parentID != nil; depth++ {
		keys = append(keys, descendantsCacheKey(*parentID))

		var parent models.Activity
		if err := s.db.DB().WithContext(ctx).First(&parent, *parentID).Error; err != nil {
			break
		}
		parentID = parent.ParentID
	}

	_ = s.cache.Delete(ctx, keys...)
}
