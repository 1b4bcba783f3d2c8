package repositories

import (
	"context"
	"errors"
	"log"
	"time"

	"agrimart/internal/models"
	"agrimart/internal/repositories/cache"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	IncrementTokenVersion(userID uint) error
	List(offset, limit int) ([]models.User, int64, error)
	// UpdateStatus writes status, is_active and the blocked metadata in
	// a single UPDATE so a crash cannot leave partial state.
	UpdateStatus(userID uint, status models.AccountStatus, isActive bool, blockedAt *time.Time, blockedReason *string) error
	Count() (int64, error)
	CountCreatedBetween(from, to time.Time) (int64, error)
}

type userRepository struct {
	db    *gorm.DB
	cache cache.Service
}

func NewUserRepository(db *gorm.DB, cacheSvc cache.Service) UserRepository {
	return &userRepository{db: db, cache: cacheSvc}
}

func (r *userRepository) Create(user *models.User) error {
	var existing models.User
	err := r.db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	ctx := context.Background()
	key := cache.UserKey(id)

	var cached models.User
	if found, err := r.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := r.cache.Set(ctx, key, &user); err != nil {
		log.Printf("failed to cache user %d: %v", id, err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	ctx := context.Background()
	key := cache.UserEmailKey(email)

	var cached models.User
	if found, err := r.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := r.cache.Set(ctx, key, &user); err != nil {
		log.Printf("failed to cache user %s: %v", email, err)
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return err
	}
	return r.invalidate(user.ID)
}

func (r *userRepository) Delete(id uint) error {
	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return r.invalidate(id)
}

func (r *userRepository) IncrementTokenVersion(userID uint) error {
	err := r.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("token_version", gorm.Expr("token_version + 1")).Error
	if err != nil {
		return err
	}
	return r.invalidate(userID)
}

func (r *userRepository) List(offset, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

func (r *userRepository) UpdateStatus(userID uint, status models.AccountStatus, isActive bool, blockedAt *time.Time, blockedReason *string) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"account_status": status,
			"is_active":      isActive,
			"blocked_at":     blockedAt,
			"blocked_reason": blockedReason,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return r.invalidate(userID)
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) CountCreatedBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

// invalidate drops both the id and email keys so stale token versions
// or account status never survive a write. The row may already be soft
// deleted, hence Unscoped.
func (r *userRepository) invalidate(userID uint) error {
	ctx := context.Background()
	if err := r.cache.Delete(ctx, cache.UserKey(userID)); err != nil {
		log.Printf("failed to invalidate user cache %d: %v", userID, err)
	}

	var emails []string
	err := r.db.Model(&models.User{}).Unscoped().
		Where("id = ?", userID).
		Limit(1).
		Pluck("email", &emails).Error
	if err == nil && len(emails) > 0 && emails[0] != "" {
		if err := r.cache.Delete(ctx, cache.UserEmailKey(emails[0])); err != nil {
			log.Printf("failed to invalidate user email cache %s: %v", emails[0], err)
		}
	}
	return nil
}
