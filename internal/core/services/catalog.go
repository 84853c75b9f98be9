package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kinoman-cli/internal/logger"
)

// defaultListLimit caps list tools when the caller supplies no limit.
const defaultListLimit = 5

// CatalogService answers movie queries against the local catalog.
//
// Title lookups follow a two-phase resolution policy: a direct
// case-insensitive substring match first (cheap and exact for the common
// case), with the fuzzy matcher as fallback on a miss. List queries are
// direct-only.
//
// Methods return typed results with sentinel errors; rendering the final
// user-facing string happens in the tools layer, keeping matching logic
// free of presentation concerns.
type CatalogService struct {
	catalog driven.CatalogStore
	matcher *TitleMatcher
}

// NewCatalogService creates a catalog query service.
func NewCatalogService(catalog driven.CatalogStore, matcher *TitleMatcher) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		matcher: matcher,
	}
}

// MovieInfo resolves a title to its full catalog record.
func (s *CatalogService) MovieInfo(ctx context.Context, title string) (*domain.Movie, error) {
	return s.resolveTitle(ctx, title)
}

// MovieRating resolves a title to its record; callers render only the
// title and rating fields.
func (s *CatalogService) MovieRating(ctx context.Context, title string) (*domain.Movie, error) {
	return s.resolveTitle(ctx, title)
}

// resolveTitle implements the direct-then-fuzzy resolution shared by the
// info and rating lookups.
func (s *CatalogService) resolveTitle(ctx context.Context, title string) (*domain.Movie, error) {
	movie, err := s.catalog.FindByTitle(ctx, normalizeQuery(title))
	if err == nil {
		return movie, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	logger.Debug("Direct title match missed for %q, trying fuzzy", title)
	best, ok := s.matcher.FindBestTitle(ctx, title)
	if !ok {
		return nil, domain.ErrNotFound
	}

	movie, err = s.catalog.GetByTitle(ctx, best)
	if err != nil {
		return nil, fmt.Errorf("re-fetch fuzzy match %q: %w", best, err)
	}
	return movie, nil
}

// MoviesWithActor lists movies featuring the actor, rating descending.
// No fuzzy fallback: actor names are matched by substring only.
func (s *CatalogService) MoviesWithActor(ctx context.Context, actor string, limit int) ([]domain.Movie, error) {
	movies, err := s.catalog.FindByActor(ctx, normalizeQuery(actor), normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, domain.ErrNotFound
	}
	return movies, nil
}

// TopByGenre lists the highest-rated movies whose genre contains the
// given substring.
func (s *CatalogService) TopByGenre(ctx context.Context, genre string, limit int) ([]domain.Movie, error) {
	movies, err := s.catalog.TopByGenre(ctx, normalizeQuery(genre), normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, domain.ErrNotFound
	}
	return movies, nil
}

// SearchByKeyword lists movies whose synopsis contains the keyword.
func (s *CatalogService) SearchByKeyword(ctx context.Context, keyword string, limit int) ([]domain.Movie, error) {
	movies, err := s.catalog.SearchSynopsis(ctx, normalizeQuery(keyword), normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, domain.ErrNotFound
	}
	return movies, nil
}

// normalizeLimit applies the default for unset limits. Non-coercible limits
// are rejected earlier, at the boundary that decodes caller input.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}
