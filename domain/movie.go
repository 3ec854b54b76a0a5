package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/cases"
)

const CollectionMovie = "movies"

// Movie is the canonical stored record. Summary records come from bulk
// population; the descriptive fields are filled only by a full-detail
// lookup, which flips HasFullDetail. Once HasFullDetail is true the record
// is never overwritten by reconciliation again.
type Movie struct {
	ID         string `bson:"_id" json:"id"`
	Title      string `bson:"title" json:"title"`
	TitleLower string `bson:"title_lower" json:"-"`
	Year       int    `bson:"year,omitempty" json:"year"`
	ImdbID     string `bson:"imdb_id" json:"imdb_id"`

	Rated      string `bson:"rated,omitempty" json:"rated,omitempty"`
	Released   string `bson:"released,omitempty" json:"released,omitempty"`
	Runtime    string `bson:"runtime,omitempty" json:"runtime,omitempty"`
	Genre      string `bson:"genre,omitempty" json:"genre,omitempty"`
	Director   string `bson:"director,omitempty" json:"director,omitempty"`
	Writer     string `bson:"writer,omitempty" json:"writer,omitempty"`
	Actors     string `bson:"actors,omitempty" json:"actors,omitempty"`
	Plot       string `bson:"plot,omitempty" json:"plot,omitempty"`
	Language   string `bson:"language,omitempty" json:"language,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
	Awards     string `bson:"awards,omitempty" json:"awards,omitempty"`
	Poster     string `bson:"poster,omitempty" json:"poster,omitempty"`
	Metascore  string `bson:"metascore,omitempty" json:"metascore,omitempty"`
	ImdbRating string `bson:"imdb_rating,omitempty" json:"imdb_rating,omitempty"`
	ImdbVotes  string `bson:"imdb_votes,omitempty" json:"imdb_votes,omitempty"`
	Type       string `bson:"type,omitempty" json:"type,omitempty"`
	DVD        string `bson:"dvd,omitempty" json:"dvd,omitempty"`
	BoxOffice  string `bson:"box_office,omitempty" json:"box_office,omitempty"`
	Production string `bson:"production,omitempty" json:"production,omitempty"`
	Website    string `bson:"website,omitempty" json:"website,omitempty"`

	HasFullDetail bool               `bson:"has_full_detail" json:"-"`
	CreatedAt     primitive.DateTime `bson:"created_at" json:"-"`
	Version       *int               `bson:"version,omitempty" json:"-"`
}

// PublicMovie is the projection served to API consumers. Descriptive fields
// and the search key stay internal.
type PublicMovie struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Year   int    `json:"year"`
	ImdbID string `json:"imdb_id"`
}

// Public returns the restricted view of the movie.
func (m *Movie) Public() PublicMovie {
	return PublicMovie{
		ID:     m.ID,
		Title:  m.Title,
		Year:   m.Year,
		ImdbID: m.ImdbID,
	}
}

// TitleKey case-folds a title into the de-duplication and search key.
func TitleKey(title string) string {
	return cases.Fold().String(title)
}

// UpsertOutcome reports how UpsertByTitle resolved against the store.
type UpsertOutcome string

const (
	UpsertAdded   UpsertOutcome = "added"
	UpsertUpdated UpsertOutcome = "updated"
)

// MovieRepository is the catalog store contract. The store is the sole
// owner of records; callers hold no cached copies across calls.
type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	// CreateMany writes all movies in a single batch. The batch is the only
	// cross-document write primitive; nothing is written when it errors out
	// up front.
	CreateMany(ctx context.Context, movies []*Movie) (int, error)
	// Replace overwrites the record with the same ID in place.
	Replace(ctx context.Context, movie *Movie) error
	// Fetch returns one page ordered by title ascending, ID as tiebreak.
	Fetch(ctx context.Context, limit, page int) ([]Movie, error)
	GetByID(ctx context.Context, id string) (*Movie, error)
	// GetByTitleKey returns every record whose title_lower equals key, in
	// store iteration order.
	GetByTitleKey(ctx context.Context, key string) ([]Movie, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

// MovieSource is the external metadata provider contract. Payloads are raw
// key/value mappings with the provider's inconsistent field casing; callers
// normalize them before validation.
type MovieSource interface {
	Search(ctx context.Context, keyword string, page int) ([]map[string]interface{}, error)
	Lookup(ctx context.Context, title string) (map[string]interface{}, error)
}

// ReconcileUsecase covers the write paths of the catalog.
type ReconcileUsecase interface {
	BulkPopulate(ctx context.Context) (int, error)
	UpsertByTitle(ctx context.Context, title string) (UpsertOutcome, *Movie, error)
	DeleteByID(ctx context.Context, id string) error
}

// QueryUsecase covers the read paths of the catalog.
type QueryUsecase interface {
	List(ctx context.Context, limit, page int) ([]PublicMovie, error)
	GetByID(ctx context.Context, id string) (*PublicMovie, error)
	GetByTitle(ctx context.Context, title string) (*PublicMovie, error)
}
