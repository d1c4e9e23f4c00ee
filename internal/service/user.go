package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmtotable/storefront/internal/models"
	"github.com/farmtotable/storefront/internal/repo"
	"github.com/farmtotable/storefront/internal/transport"
)

type UserRepo interface {
	InsertUser(ctx context.Context, u *models.User) (primitive.ObjectID, error)
	FindUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (matched, modified int64, err error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type UserService struct {
	Repo UserRepo
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.Repo.FindUser(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s *UserService) Create(ctx context.Context, req transport.UserRequest) (primitive.ObjectID, error) {
	u := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      req.Role,
		Area:      req.Area,
		DoorNo:    req.DoorNo,
		Status:    req.Status,
		CreatedAt: time.Now().UTC(),
	}
	return s.Repo.InsertUser(ctx, &u)
}

func (s *UserService) Replace(ctx context.Context, id primitive.ObjectID, req transport.UserRequest) error {
	fields := bson.M{
		"name":      req.Name,
		"email":     req.Email,
		"phone":     req.Phone,
		"password":  req.Password,
		"role":      req.Role,
		"area":      req.Area,
		"doorNo":    req.DoorNo,
		"status":    req.Status,
		"updatedAt": time.Now().UTC(),
	}

	matched, modified, err := s.Repo.UpdateUserFields(ctx, id, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return repo.ErrNotFound
	}
	if modified == 0 {
		return ErrNotModified
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.Repo.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return repo.ErrNotFound
	}
	return nil
}
