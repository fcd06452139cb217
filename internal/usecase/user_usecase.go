package usecase

import (
	"context"

	"career-compass/internal/domain/user"
	ucuser "career-compass/internal/usecase/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, in ucuser.UpdateMeInput) (user.User, error)
}

type User struct {
	*ucuser.Service
}

func NewUserUsecase(users user.Repository) *User {
	return &User{Service: ucuser.NewService(users)}
}
