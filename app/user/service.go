package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/holidays/internal/logger"
	"github.com/joefazee/holidays/internal/sanitizer"
	"github.com/joefazee/holidays/internal/security"
	"github.com/joefazee/holidays/models"
)

type service struct {
	repo        Repository
	authService AuthService
	tokenMaker  security.Maker
	sanitizer   sanitizer.HTMLStripperer
	tokenTTL    time.Duration
	logger      logger.Logger
}

// NewService creates a new user service.
func NewService(repo Repository,
	authService AuthService,
	tokenMaker security.Maker,
	htmlSanitizer sanitizer.HTMLStripperer,
	tokenTTL time.Duration,
	log logger.Logger,
) Service {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{
		repo:        repo,
		authService: authService,
		tokenMaker:  tokenMaker,
		sanitizer:   htmlSanitizer,
		tokenTTL:    tokenTTL,
		logger:      log,
	}
}

func (s *service) Signup(ctx context.Context, req *SignupRequest) error {
	user := &models.User{Username: s.sanitizer.StripHTML(req.Username)}
	if err := user.SetPassword(req.Password); err != nil {
		return err
	}
	if err := user.Validate(); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user signed up", map[string]interface{}{"user_id": user.ID})
	return nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.repo.GetByUsername(ctx, s.sanitizer.StripHTML(req.Username))
	if err != nil {
		return nil, err
	}

	if !user.CheckPassword(req.Password) {
		return nil, models.ErrInvalidCredentials
	}

	accessToken, _, err := s.tokenMaker.CreateToken(user.ID, user.Username, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		ID:          user.ID,
		AccessToken: accessToken,
	}, nil
}

// DeleteAccount removes the user with its calendar and drops the cached existence flag.
func (s *service) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}

	if s.authService != nil {
		if err := s.authService.Forget(ctx, userID); err != nil {
			s.logger.Error(err, map[string]interface{}{"user_id": userID, "op": "forget"})
		}
	}
	return nil
}
