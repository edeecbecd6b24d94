package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/joefazee/holidays/internal/cache"
	"github.com/joefazee/holidays/models"
)

type authService struct {
	repo  Repository
	cache cache.Cache[bool]
}

func NewAuthService(repo Repository, cache cache.Cache[bool]) AuthService {
	return &authService{repo: repo, cache: cache}
}

func existsKey(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s:exists", userID)
}

// UserExists consults the cache first. Only positive answers are cached.
func (s *authService) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	cacheKey := existsKey(userID)

	if exists, err := s.cache.Get(ctx, cacheKey); err == nil && exists {
		return true, nil
	}

	_, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if models.IsNotFound(err, models.ResourceUser) {
			return false, nil
		}
		return false, err
	}

	_ = s.cache.Set(ctx, cacheKey, true, UserExistenceCacheTTL)
	return true, nil
}

func (s *authService) Forget(ctx context.Context, userID uuid.UUID) error {
	err := s.cache.Delete(ctx, existsKey(userID))
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil
	}
	return err
}
