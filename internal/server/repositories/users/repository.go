package users

import (
	"context"

	"github.com/mpetrov/dashauth/internal/server/models"
)

// Repository persists user records. Email arguments are expected in
// normalized form; callers normalize before lookup or storage.
//
// Create returns common.ErrorAlreadyExists when the email is already taken,
// whether detected here or by the store's uniqueness constraint. Lookups
// return common.ErrorNotFound for absent records.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
