package service

import (
	"context"
	"time"

	"shared-notes-be/internal/config"
	"shared-notes-be/internal/dto"
	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/pkg/apperrors"
	"shared-notes-be/internal/repository/cache"
	"shared-notes-be/internal/repository/specification"
	"shared-notes-be/internal/repository/unitofwork"
	"shared-notes-be/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userId uuid.UUID) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     cache.TokenStore
	authCfg    config.AuthConfig
	publisher  IPublisherService
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	tokens cache.TokenStore,
	authCfg config.AuthConfig,
	publisher IPublisherService,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
		authCfg:    authCfg,
		publisher:  publisher,
	}
}

func (s *authService) signToken(username, tokenType string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"type": tokenType,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.authCfg.JwtSecret))
}

// parseToken validates signature, expiry and the type claim, returning
// the username claim.
func (s *authService) parseToken(tokenStr, wantType string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.authCfg.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.Unauthorized("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.Unauthorized("invalid token")
	}
	if tokenType, _ := claims["type"].(string); tokenType != wantType {
		return "", apperrors.Unauthorized("invalid token type")
	}

	username, _ := claims["sub"].(string)
	if username == "" {
		return "", apperrors.Unauthorized("invalid token")
	}
	return username, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.BadRequest("username already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeUserRegistered, map[string]interface{}{
		"user_id":  user.Id,
		"username": user.Username,
	})

	return &dto.RegisterResponse{Id: user.Id, Username: user.Username}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Unauthorized("incorrect username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized("incorrect username or password")
	}

	if !user.IsActive {
		return nil, apperrors.BadRequest("inactive user")
	}

	accessToken, err := s.signToken(user.Username, "access", s.authCfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(user.Username, "refresh", s.authCfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	// Mirror both tokens so logout can revoke them before expiry.
	if err := s.tokens.SetAccessToken(ctx, user.Id, accessToken, s.authCfg.AccessTokenTTL); err != nil {
		return nil, err
	}
	if err := s.tokens.SetRefreshToken(ctx, user.Id, refreshToken, s.authCfg.RefreshTokenTTL); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeUserLogin, map[string]interface{}{
		"user_id":  user.Id,
		"username": user.Username,
	})

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	username, err := s.parseToken(req.RefreshToken, "refresh")
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Unauthorized("invalid token")
	}

	// The presented token must byte-match the cached one; logout or a
	// newer login invalidates older refresh tokens immediately.
	stored, err := s.tokens.GetRefreshToken(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	if stored == "" || stored != req.RefreshToken {
		return nil, apperrors.Unauthorized("invalid refresh token")
	}

	accessToken, err := s.signToken(user.Username, "access", s.authCfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.SetAccessToken(ctx, user.Id, accessToken, s.authCfg.AccessTokenTTL); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: req.RefreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *authService) Logout(ctx context.Context, userId uuid.UUID) error {
	return s.tokens.DeleteTokens(ctx, userId)
}

func (s *authService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	// Events feed the activity log only; losing one never fails a request.
	_ = s.publisher.Publish(ctx, events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	})
}
