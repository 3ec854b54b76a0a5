package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/screenlog/movie-catalog-backend/domain"
)

// Bulk population issues a fixed set of search calls; OMDb serves 10
// results per page, so 10 pages target 100 records.
const (
	populateKeyword = "las"
	populatePages   = 10
)

type reconcileUsecase struct {
	repo    domain.MovieRepository
	source  domain.MovieSource
	timeout time.Duration
}

// NewReconcileUsecase creates the usecase driving all catalog writes.
func NewReconcileUsecase(repo domain.MovieRepository, source domain.MovieSource, timeout time.Duration) domain.ReconcileUsecase {
	return &reconcileUsecase{
		repo:    repo,
		source:  source,
		timeout: timeout,
	}
}

// BulkPopulate seeds an empty catalog from the metadata source's search
// pages and returns the number of records written. The emptiness check and
// the batch write are not one transaction; the unique title_lower index is
// what backstops two populates racing each other.
func (uc *reconcileUsecase) BulkPopulate(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	count, err := uc.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	if count > 0 {
		return 0, domain.ErrAlreadyPopulated
	}

	seen := make(map[string]struct{})
	var movies []*domain.Movie
	for page := 1; page <= populatePages; page++ {
		results, err := uc.source.Search(ctx, populateKeyword, page)
		if err != nil {
			// Abort the whole run; nothing has been written yet.
			return 0, err
		}

		for _, raw := range results {
			movie, err := domain.MovieFromPayload(domain.NormalizePayload(raw), false)
			if err != nil {
				return 0, err
			}
			if _, dup := seen[movie.TitleLower]; dup {
				continue
			}
			seen[movie.TitleLower] = struct{}{}
			movies = append(movies, movie)
		}
	}

	written, err := uc.repo.CreateMany(ctx, movies)
	if err != nil {
		return 0, fmt.Errorf("failed to write movies: %w", err)
	}
	return written, nil
}

// UpsertByTitle reconciles a full-detail fetch against the store. The title
// is the only reliable correlation key: search summaries do not always carry
// the external id, so records are matched on the case-folded canonical
// title. A record that already has full detail is never overwritten.
func (uc *reconcileUsecase) UpsertByTitle(ctx context.Context, title string) (domain.UpsertOutcome, *domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if title == "" {
		return "", nil, fmt.Errorf("%w: title is required", domain.ErrInvalidRequest)
	}

	raw, err := uc.source.Lookup(ctx, title)
	if err != nil {
		return "", nil, err
	}

	candidate, err := domain.MovieFromPayload(domain.NormalizePayload(raw), true)
	if err != nil {
		return "", nil, err
	}

	existing, err := uc.repo.GetByTitleKey(ctx, candidate.TitleLower)
	if err != nil {
		return "", nil, fmt.Errorf("failed to look up existing movie: %w", err)
	}

	if len(existing) == 0 {
		if err := uc.repo.Create(ctx, candidate); err != nil {
			return "", nil, err
		}
		return domain.UpsertAdded, candidate, nil
	}

	current := existing[0]
	if current.HasFullDetail {
		return "", nil, domain.ErrAlreadyUpToDate
	}

	// Overwrite in place: the stored id and creation time survive the
	// upgrade from summary to full detail.
	candidate.ID = current.ID
	candidate.CreatedAt = current.CreatedAt
	candidate.Version = current.Version
	if err := uc.repo.Replace(ctx, candidate); err != nil {
		return "", nil, err
	}
	return domain.UpsertUpdated, candidate, nil
}

func (uc *reconcileUsecase) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidRequest)
	}
	return uc.repo.Delete(ctx, id)
}
