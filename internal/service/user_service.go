package service

import (
	"context"

	"shared-notes-be/internal/dto"
	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/pkg/apperrors"
	"shared-notes-be/internal/repository/specification"
	"shared-notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Search results are capped; large user bases make unbounded substring
// search a liability.
const userSearchLimit = 10

type IUserService interface {
	GetMe(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Search(ctx context.Context, userId uuid.UUID, query string) ([]*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        user.Id,
		Username:  user.Username,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func (s *userService) GetMe(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	return s.GetById(ctx, userId)
}

func (s *userService) GetById(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	return toUserResponse(user), nil
}

// Search matches active users by username substring, excluding the
// caller, capped at userSearchLimit results.
func (s *userService) Search(ctx context.Context, userId uuid.UUID, query string) ([]*dto.UserResponse, error) {
	if query == "" {
		return []*dto.UserResponse{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx,
		specification.UsernameContains{Query: query},
		specification.ActiveUsers{},
		specification.ExcludeUser{UserID: userId},
		specification.OrderBy{Field: "username"},
		specification.Pagination{Limit: userSearchLimit},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.UserResponse, len(users))
	for i, u := range users {
		res[i] = toUserResponse(u)
	}
	return res, nil
}
