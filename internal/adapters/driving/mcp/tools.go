package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TitleInput is the input schema for title-based catalog tools.
type TitleInput struct {
	Title string `json:"title" jsonschema:"the movie title, exact or approximate"`
}

// ActorInput is the input schema for the movies_with_actor tool.
type ActorInput struct {
	Actor string `json:"actor" jsonschema:"the actor name to search for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// GenreInput is the input schema for the top_by_genre tool.
type GenreInput struct {
	Genre string `json:"genre" jsonschema:"the genre to list, e.g. Drama or Comedy"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// KeywordInput is the input schema for the search_by_keyword tool.
type KeywordInput struct {
	Keyword string `json:"keyword" jsonschema:"the keyword to look for in movie synopses"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// TextOutput is the shared output schema: a rendered, human-readable answer.
type TextOutput struct {
	Text string `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "movie_info",
		Description: "Get full information about a movie from the IMDb Top 1000 catalog. Tolerates typos in the title.",
	}, s.handleMovieInfo)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "movie_rating",
		Description: "Get the IMDb rating of a movie from the catalog. Tolerates typos in the title.",
	}, s.handleMovieRating)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "movies_with_actor",
		Description: "List catalog movies featuring an actor, best-rated first.",
	}, s.handleMoviesWithActor)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "top_by_genre",
		Description: "List the top-rated catalog movies of a genre.",
	}, s.handleTopByGenre)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_by_keyword",
		Description: "Find catalog movies whose synopsis mentions a keyword.",
	}, s.handleSearchByKeyword)
}

func (s *Server) handleMovieInfo(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TitleInput,
) (*mcp.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Text: s.ports.Movies.MovieInfo(ctx, input.Title)}, nil
}

func (s *Server) handleMovieRating(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TitleInput,
) (*mcp.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Text: s.ports.Movies.MovieRating(ctx, input.Title)}, nil
}

func (s *Server) handleMoviesWithActor(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ActorInput,
) (*mcp.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Text: s.ports.Movies.MoviesWithActor(ctx, input.Actor, input.Limit)}, nil
}

func (s *Server) handleTopByGenre(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenreInput,
) (*mcp.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Text: s.ports.Movies.TopByGenre(ctx, input.Genre, input.Limit)}, nil
}

func (s *Server) handleSearchByKeyword(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input KeywordInput,
) (*mcp.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Text: s.ports.Movies.SearchByKeyword(ctx, input.Keyword, input.Limit)}, nil
}
