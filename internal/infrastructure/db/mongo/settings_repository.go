package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

const collectionSettings = "contact_settings"

// SettingsRepository implements ports.SettingsRepository using MongoDB. The
// collection holds at most one document.
type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

// Get returns the singleton settings document, or nil when none exists yet.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.ContactSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.ContactSettings
	err := r.col.FindOne(ctx, bson.M{}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Create(ctx context.Context, settings *domain.ContactSettings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, settings)
	return err
}

func (r *SettingsRepository) Update(ctx context.Context, settings *domain.ContactSettings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": settings.ID}, settings)
	return err
}
