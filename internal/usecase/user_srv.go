package usecase

import (
	"context"
	"errors"
	"fmt"

	"cinevault/internal/data/entity"
	"cinevault/internal/data/repository"
	"cinevault/internal/dto/request"
	"cinevault/internal/dto/response"
	"cinevault/internal/query"
	"cinevault/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	SearchUsers(ctx context.Context, req *request.UserSearchRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, req *request.UserUpdateRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	userRepo   repository.UserRepository
	strictSort bool
	log        *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, strictSort bool, log *zap.Logger) UserService {
	return &userService{
		userRepo:   userRepo,
		strictSort: strictSort,
		log:        log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	return us.SearchUsers(ctx, &request.UserSearchRequest{PaginatedRequest: *req})
}

func (us *userService) SearchUsers(ctx context.Context, req *request.UserSearchRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	if req.CreatedFrom != nil && req.CreatedTo != nil && req.CreatedFrom.After(*req.CreatedTo) {
		return nil, newValidationError("Validation failed", "createdFrom: must not be after createdTo")
	}

	order, err := resolveOrder(query.UserSorts, req.OrderBy, us.strictSort)
	if err != nil {
		us.log.Warn("Unknown user sort key", zap.String("order_by", req.OrderBy))
		return nil, err
	}

	search := query.Search[entity.User]{
		Filter: req.Criteria().Filter(),
		Order:  order,
		Page:   req.ToPage(),
	}

	users, total, err := us.userRepo.Search(ctx, search)
	if err != nil {
		us.log.Error("Failed to search users",
			zap.Error(err),
			zap.String("order", order.Key),
			zap.Int("page", search.Page.Number),
		)
		return nil, fmt.Errorf("search users: %w", err)
	}

	us.log.Info("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.String("order", order.Key),
	)

	return response.MapPage(users, search.Page, total, response.UserToResponse), nil
}

func (us *userService) GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, errNotFound("User")
	}

	resp := response.UserToResponse(*user)
	return &resp, nil
}

func (us *userService) CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		us.log.Warn("Create user validation failed", zap.Error(err))
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		us.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User created", zap.Int64("user_id", user.ID), zap.String("username", user.Username))

	resp := response.UserToResponse(*user)
	return &resp, nil
}

func (us *userService) UpdateUser(ctx context.Context, id int64, req *request.UserUpdateRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		us.log.Warn("Update user validation failed", zap.Error(err), zap.Int64("user_id", id))
		return nil, err
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, errNotFound("User")
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := us.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errNotFound("User")
		}
		us.log.Error("Failed to update user", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("update user: %w", err)
	}

	us.log.Info("User updated", zap.Int64("user_id", id))

	resp := response.UserToResponse(*user)
	return &resp, nil
}

// DeleteUser removes the user together with their reviews, comments and likes.
func (us *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := us.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errNotFound("User")
		}
		us.log.Error("Failed to delete user", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("delete user: %w", err)
	}

	us.log.Info("User deleted", zap.Int64("user_id", id))
	return nil
}
