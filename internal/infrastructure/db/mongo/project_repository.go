package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

const collectionProjects = "projects"

// ProjectRepository implements ports.ProjectRepository using MongoDB.
type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

// listQuery builds the filter document for a paginated project query. Search
// columns differ per surface: the public listing also matches the short
// description shown on cards, the admin listing only title and description.
func listQuery(filter ports.ProjectListFilter) bson.M {
	query := bson.M{}
	if filter.PublishedOnly {
		query["is_published"] = true
	}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		or := bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
		}
		if filter.PublishedOnly {
			or = append(or, bson.M{"short_description": re})
		}
		query["$or"] = or
	}
	return query
}

// List runs a paginated query over projects. The total is counted with the
// same filter so page math stays consistent with the returned slice.
func (r *ProjectRepository) List(ctx context.Context, filter ports.ProjectListFilter) ([]domain.Project, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := listQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	// Published listings surface newest work first within a row; admin
	// listings order by creation time instead.
	sort := bson.D{{Key: "sort_order", Value: 1}, {Key: "created_at", Value: -1}}
	if filter.PublishedOnly {
		sort = bson.D{{Key: "sort_order", Value: 1}, {Key: "published_at", Value: -1}}
	}

	p := filter.Pagination
	opts := options.Find().
		SetSort(sort).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	projects := make([]domain.Project, 0)
	if err := cur.All(ctx, &projects); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Project
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindBySlug retrieves a project by slug. With publishedOnly set, unpublished
// drafts resolve as not found.
func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"slug": slug}
	if publishedOnly {
		filter["is_published"] = true
	}

	var p domain.Project
	err := r.col.FindOne(ctx, filter).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, project)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrProjectSlugTaken
	}
	return err
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": project.ID}, project)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrProjectSlugTaken
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// EnsureIndexes creates indexes on the projects collection: a unique slug
// index plus the filters the list query leans on.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "sort_order", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
