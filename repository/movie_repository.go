package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/screenlog/movie-catalog-backend/domain"
	"github.com/screenlog/movie-catalog-backend/mongo"
)

type movieRepository struct {
	db         mongo.Database
	collection string
}

// NewMovieRepository creates the mongo-backed catalog store.
func NewMovieRepository(db mongo.Database, collection string) domain.MovieRepository {
	return &movieRepository{
		db:         db,
		collection: collection,
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	coll := r.db.Collection(r.collection)
	if _, err := coll.InsertOne(ctx, movie); err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

// CreateMany commits every movie in one bulk write. The bulk call is the
// store's only cross-document batch primitive; a failed call writes nothing
// the caller has to clean up.
func (r *movieRepository) CreateMany(ctx context.Context, movies []*domain.Movie) (int, error) {
	if len(movies) == 0 {
		return 0, nil
	}

	bulk := r.db.Collection(r.collection).BulkWrite()
	for _, movie := range movies {
		bulk.AddModel(driver.NewInsertOneModel().SetDocument(movie))
	}

	result, err := bulk.Execute(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk insert failed: %w", err)
	}
	return int(result.InsertedCount()), nil
}

func (r *movieRepository) Replace(ctx context.Context, movie *domain.Movie) error {
	coll := r.db.Collection(r.collection)
	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": movie.ID}, movie); err != nil {
		return fmt.Errorf("failed to replace movie: %w", err)
	}
	return nil
}

func (r *movieRepository) Fetch(ctx context.Context, limit, page int) ([]domain.Movie, error) {
	coll := r.db.Collection(r.collection)

	opts := options.Find().
		SetSort(bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movies: %w", err)
	}

	movies := make([]domain.Movie, 0, limit)
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}
	return movies, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	coll := r.db.Collection(r.collection)

	var movie domain.Movie
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&movie); err != nil {
		if mongo.ErrNoDocuments(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return &movie, nil
}

func (r *movieRepository) GetByTitleKey(ctx context.Context, key string) ([]domain.Movie, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"title_lower": key})
	if err != nil {
		return nil, fmt.Errorf("failed to find movies by title: %w", err)
	}

	var movies []domain.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}
	return movies, nil
}

func (r *movieRepository) Count(ctx context.Context) (int64, error) {
	coll := r.db.Collection(r.collection)

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}

func (r *movieRepository) Delete(ctx context.Context, id string) error {
	coll := r.db.Collection(r.collection)

	deleted, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the unique index on title_lower. The index, not
// application-level locking, is what protects the one-record-per-title
// invariant against concurrent populate calls.
func (r *movieRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(r.collection).Indexes().CreateOne(ctx, mongo.NewUniqueIndex("title_lower"))
	if err != nil {
		return fmt.Errorf("failed to create title index: %w", err)
	}
	return nil
}
