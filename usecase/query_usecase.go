package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/screenlog/movie-catalog-backend/domain"
)

type queryUsecase struct {
	repo    domain.MovieRepository
	timeout time.Duration
}

// NewQueryUsecase creates the usecase serving catalog reads.
func NewQueryUsecase(repo domain.MovieRepository, timeout time.Duration) domain.QueryUsecase {
	return &queryUsecase{
		repo:    repo,
		timeout: timeout,
	}
}

// List returns one page of the catalog ordered by title. A page beyond the
// end of the catalog is an empty result, not an error.
func (uc *queryUsecase) List(ctx context.Context, limit, page int) ([]domain.PublicMovie, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if limit < 1 || page < 1 {
		return nil, fmt.Errorf("%w: limit and page must be positive", domain.ErrInvalidRequest)
	}

	movies, err := uc.repo.Fetch(ctx, limit, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	public := make([]domain.PublicMovie, 0, len(movies))
	for i := range movies {
		public = append(public, movies[i].Public())
	}
	return public, nil
}

func (uc *queryUsecase) GetByID(ctx context.Context, id string) (*domain.PublicMovie, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrInvalidRequest)
	}

	movie, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := movie.Public()
	return &view, nil
}

// GetByTitle looks a movie up by its case-folded title. The unique index
// keeps one record per title key; should duplicates ever exist anyway, the
// first record in store iteration order is returned rather than failing.
func (uc *queryUsecase) GetByTitle(ctx context.Context, title string) (*domain.PublicMovie, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidRequest)
	}

	movies, err := uc.repo.GetByTitleKey(ctx, domain.TitleKey(title))
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	if len(movies) == 0 {
		return nil, domain.ErrNotFound
	}

	view := movies[0].Public()
	return &view, nil
}
