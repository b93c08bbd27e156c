package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
	errs "github.com/socialfi-labs/points-engine/internal/domain/error"
	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
	"github.com/socialfi-labs/points-engine/internal/infrastructure/adapter/model"
)

// UserProfileRepository reads display data from the users table owned by the
// surrounding application
type UserProfileRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUserProfileRepository creates a new UserProfileRepository instance
func NewUserProfileRepository(db *gorm.DB, logger coreport.Logger) *UserProfileRepository {
	return &UserProfileRepository{
		db:     db,
		logger: logger,
	}
}

// GetByIDs returns the profiles for the given users. Missing users are
// absent from the result rather than an error.
func (r *UserProfileRepository) GetByIDs(ctx context.Context, userIDs []string) ([]*entity.UserProfile, error) {
	if len(userIDs) == 0 {
		return []*entity.UserProfile{}, nil
	}

	var profileModels []model.UserProfile
	err := r.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&profileModels).Error
	if err != nil {
		r.logger.Error("Database error when loading user profiles", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	profiles := make([]*entity.UserProfile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, &entity.UserProfile{
			UserID:            profileModels[i].ID,
			DisplayName:       profileModels[i].DisplayName,
			TagName:           profileModels[i].TagName,
			ProfilePictureURL: profileModels[i].ProfilePictureURL,
		})
	}
	return profiles, nil
}
