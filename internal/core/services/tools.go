package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kinoman-cli/internal/logger"
)

// Ensure MovieToolsService implements the interface.
var _ driving.MovieTools = (*MovieToolsService)(nil)

// MovieToolsService is the string-boundary wrapper around CatalogService.
// Every method returns a fully rendered message; source-unavailable and
// not-found conditions never escape as errors.
type MovieToolsService struct {
	catalog *CatalogService
}

// NewMovieToolsService creates the tool boundary over the catalog service.
func NewMovieToolsService(catalog *CatalogService) *MovieToolsService {
	return &MovieToolsService{catalog: catalog}
}

// MovieInfo returns a formatted description of the movie.
func (s *MovieToolsService) MovieInfo(ctx context.Context, title string) string {
	movie, err := s.catalog.MovieInfo(ctx, title)
	switch {
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return renderCatalogUnavailable()
	case errors.Is(err, domain.ErrNotFound):
		return renderMovieInfoMiss(title)
	case err != nil:
		logger.Warn("movie info %q: %v", title, err)
		return renderMovieInfoMiss(title)
	}
	return renderMovieInfo(movie)
}

// MovieRating returns the movie's IMDb rating.
func (s *MovieToolsService) MovieRating(ctx context.Context, title string) string {
	movie, err := s.catalog.MovieRating(ctx, title)
	switch {
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return renderCatalogUnavailable()
	case errors.Is(err, domain.ErrNotFound):
		return renderMovieRatingMiss(title)
	case err != nil:
		logger.Warn("movie rating %q: %v", title, err)
		return renderMovieRatingMiss(title)
	}
	return renderMovieRating(movie)
}

// MoviesWithActor lists movies featuring the actor.
func (s *MovieToolsService) MoviesWithActor(ctx context.Context, actor string, limit int) string {
	movies, err := s.catalog.MoviesWithActor(ctx, actor, limit)
	switch {
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return renderCatalogUnavailable()
	case err != nil:
		return renderActorListMiss(actor)
	}
	return renderActorList(actor, movies)
}

// TopByGenre lists the highest-rated movies in a genre.
func (s *MovieToolsService) TopByGenre(ctx context.Context, genre string, limit int) string {
	movies, err := s.catalog.TopByGenre(ctx, genre, limit)
	switch {
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return renderCatalogUnavailable()
	case err != nil:
		return renderGenreTopMiss(genre)
	}
	return renderGenreTop(genre, normalizeLimit(limit), movies)
}

// SearchByKeyword lists movies whose synopsis contains the keyword.
func (s *MovieToolsService) SearchByKeyword(ctx context.Context, keyword string, limit int) string {
	movies, err := s.catalog.SearchByKeyword(ctx, keyword, limit)
	switch {
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return renderCatalogUnavailable()
	case err != nil:
		return renderKeywordListMiss(keyword)
	}
	return renderKeywordList(keyword, movies)
}

// --- Agent tool registry ---

// AgentTool is one callable tool in the agent's registry: a static
// declaration (name, description, JSON schema) plus a handler that decodes
// already-parsed JSON arguments. Declarations are explicit rather than
// reflected from signatures, so the schema the model sees is reviewable.
type AgentTool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Handler     func(ctx context.Context, args map[string]any) (string, error)
}

// Spec converts the tool declaration to the LLM port representation.
func (t *AgentTool) Spec() driven.ToolSpec {
	return driven.ToolSpec{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
	}
}

func stringParam(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func limitParam() map[string]any {
	return map[string]any{
		"type":        "integer",
		"description": "Максимальное число результатов (по умолчанию 5)",
	}
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// CatalogAgentTools declares the five local-catalog tools.
func CatalogAgentTools(tools driving.MovieTools) []AgentTool {
	return []AgentTool{
		{
			Name:        "kaggle_movie_info",
			Description: "Вернуть описание фильма из локального датасета IMDb Top 1000 (год, жанр, рейтинг, режиссёр, актёры, сюжет).",
			Parameters: objectSchema(map[string]any{
				"title": stringParam("Название фильма, допускаются опечатки"),
			}, "title"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				title, err := stringArg(args, "title")
				if err != nil {
					return "", err
				}
				return tools.MovieInfo(ctx, title), nil
			},
		},
		{
			Name:        "kaggle_movie_rating",
			Description: "Вернуть рейтинг IMDb фильма из локального датасета.",
			Parameters: objectSchema(map[string]any{
				"title": stringParam("Название фильма"),
			}, "title"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				title, err := stringArg(args, "title")
				if err != nil {
					return "", err
				}
				return tools.MovieRating(ctx, title), nil
			},
		},
		{
			Name:        "kaggle_movies_with_actor",
			Description: "Вернуть список фильмов с указанным актёром, отсортированный по рейтингу.",
			Parameters: objectSchema(map[string]any{
				"actor": stringParam("Имя актёра"),
				"limit": limitParam(),
			}, "actor"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				actor, err := stringArg(args, "actor")
				if err != nil {
					return "", err
				}
				limit, err := limitArg(args)
				if err != nil {
					return "", err
				}
				return tools.MoviesWithActor(ctx, actor, limit), nil
			},
		},
		{
			Name:        "kaggle_top_by_genre",
			Description: "Вернуть топ фильмов по жанру, отсортированный по рейтингу.",
			Parameters: objectSchema(map[string]any{
				"genre": stringParam("Жанр, например Sci-Fi или Drama"),
				"limit": limitParam(),
			}, "genre"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				genre, err := stringArg(args, "genre")
				if err != nil {
					return "", err
				}
				limit, err := limitArg(args)
				if err != nil {
					return "", err
				}
				return tools.TopByGenre(ctx, genre, limit), nil
			},
		},
		{
			Name:        "kaggle_search_by_keyword",
			Description: "Найти фильмы по ключевому слову в описании сюжета.",
			Parameters: objectSchema(map[string]any{
				"keyword": stringParam("Ключевое слово для поиска в описании"),
				"limit":   limitParam(),
			}, "keyword"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				keyword, err := stringArg(args, "keyword")
				if err != nil {
					return "", err
				}
				limit, err := limitArg(args)
				if err != nil {
					return "", err
				}
				return tools.SearchByKeyword(ctx, keyword, limit), nil
			},
		},
	}
}

// MetadataAgentTools declares the OMDb tools. The service may be nil when
// no API key is configured; the tools then report the API as unavailable.
func MetadataAgentTools(meta driven.MetadataService) []AgentTool {
	lookup := func(ctx context.Context, args map[string]any) (*driven.MovieMetadata, string, error) {
		title, err := stringArg(args, "title")
		if err != nil {
			return nil, "", err
		}
		if meta == nil {
			return nil, title, nil
		}
		m, err := meta.Lookup(ctx, title)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("omdb lookup %q: %v", title, err)
		}
		return m, title, nil
	}

	return []AgentTool{
		{
			Name:        "omdb_movie_info",
			Description: "Получить подробную информацию о фильме из OMDb (онлайн-база).",
			Parameters: objectSchema(map[string]any{
				"title": stringParam("Название фильма"),
			}, "title"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				m, title, err := lookup(ctx, args)
				if err != nil {
					return "", err
				}
				if meta == nil {
					return renderMetadataUnavailable(), nil
				}
				if m == nil {
					return renderMetadataInfoMiss(title), nil
				}
				return renderMetadataInfo(m), nil
			},
		},
		{
			Name:        "omdb_movie_rating",
			Description: "Получить рейтинг IMDb фильма из OMDb (онлайн-база).",
			Parameters: objectSchema(map[string]any{
				"title": stringParam("Название фильма"),
			}, "title"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				m, title, err := lookup(ctx, args)
				if err != nil {
					return "", err
				}
				if meta == nil {
					return renderMetadataUnavailable(), nil
				}
				if m == nil {
					return renderMetadataRatingMiss(title), nil
				}
				return renderMetadataRating(m), nil
			},
		},
		{
			Name:        "omdb_search",
			Description: "Найти фильмы по ключевому слову через OMDb (онлайн-база).",
			Parameters: objectSchema(map[string]any{
				"keyword": stringParam("Поисковый запрос"),
				"limit":   limitParam(),
			}, "keyword"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				keyword, err := stringArg(args, "keyword")
				if err != nil {
					return "", err
				}
				limit, err := limitArg(args)
				if err != nil {
					return "", err
				}
				if meta == nil {
					return renderMetadataUnavailable(), nil
				}
				hits, err := meta.Search(ctx, keyword)
				if err != nil || len(hits) == 0 {
					if err != nil && !errors.Is(err, domain.ErrNotFound) {
						logger.Warn("omdb search %q: %v", keyword, err)
					}
					return renderMetadataSearchMiss(keyword), nil
				}
				return renderMetadataSearch(keyword, hits, normalizeLimit(limit)), nil
			},
		},
	}
}

// stringArg extracts a required string argument from decoded JSON.
func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%w: missing argument %q", domain.ErrInvalidInput, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %q must be a string, got %T", domain.ErrInvalidInput, key, v)
	}
	return s, nil
}

// limitArg coerces the optional limit argument to an integer. JSON numbers
// arrive as float64; numeric strings are accepted; anything else is a
// caller-contract violation surfaced as a hard failure, never silently
// defaulted.
func limitArg(args map[string]any) (int, error) {
	v, ok := args["limit"]
	if !ok || v == nil {
		return 0, nil // normalizeLimit applies the default downstream
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%w: limit %q is not an integer", domain.ErrInvalidInput, n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: limit has unsupported type %T", domain.ErrInvalidInput, v)
	}
}
