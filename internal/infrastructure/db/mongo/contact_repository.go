package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

const collectionContacts = "contacts"

// ContactRepository implements ports.ContactRepository using MongoDB.
type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{col: db.Collection(collectionContacts)}
}

// List runs a paginated query over contact requests, newest first.
func (r *ContactRepository) List(ctx context.Context, filter ports.ContactListFilter) ([]domain.ContactRequest, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.IsRead != nil {
		query["is_read"] = *filter.IsRead
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	p := filter.Pagination
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	contacts := make([]domain.ContactRequest, 0)
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*domain.ContactRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cr domain.ContactRequest
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&cr)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, err
	}
	return &cr, nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.ContactRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, contact)
	return err
}

func (r *ContactRepository) Update(ctx context.Context, contact *domain.ContactRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": contact.ID}, contact)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

// EnsureIndexes creates list-query indexes on the contacts collection.
func (r *ContactRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "is_read", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
