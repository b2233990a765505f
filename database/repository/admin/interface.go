package adminRepo

import (
	"context"

	"ablecare/database"
	"ablecare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AdminRepository persists administrator accounts.
type AdminRepository interface {
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Update(ctx context.Context, admin *models.Admin) error
	// EnsureDefault creates a bootstrap account when the collection is empty.
	EnsureDefault(ctx context.Context, name, email, passwordHash string) error
}

type mongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo returns a new AdminRepository instance using MongoDB.
func NewMongoAdminRepo() AdminRepository {
	return &mongoAdminRepo{coll: database.DB().Collection("admins")}
}
