package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driven"
)

// User-facing message text lives here, at the outer edge of the core.
// The strings are Russian, matching the original product voice; everything
// below the tools layer works with typed values only.

// synopsisPreviewLen is how much of a synopsis keyword-search results show.
const synopsisPreviewLen = 150

// renderCatalogUnavailable is the uniform message for every tool when the
// backing database is missing.
func renderCatalogUnavailable() string {
	return "Данные каталога недоступны (база фильмов не найдена). " +
		"Сначала создай базу командой 'kinoman ingest'."
}

func renderMovieInfo(m *domain.Movie) string {
	return fmt.Sprintf(
		"🎬 %s (%s)\nЖанр: %s\nРейтинг IMDb: %s\nРежиссёр: %s\nАктёры: %s\n\nОписание: %s",
		m.Title, m.Year, m.Genre, formatRating(m.Rating), m.Director, m.CastLine(), m.Synopsis,
	)
}

func renderMovieInfoMiss(title string) string {
	return fmt.Sprintf("Фильм '%s' не найден в датасете IMDb Top 1000.", title)
}

func renderMovieRating(m *domain.Movie) string {
	return fmt.Sprintf("Рейтинг IMDb фильма '%s' — %s", m.Title, formatRating(m.Rating))
}

func renderMovieRatingMiss(title string) string {
	return fmt.Sprintf("Рейтинг фильма '%s' не найден в датасете IMDb Top 1000.", title)
}

func renderActorList(actor string, movies []domain.Movie) string {
	lines := make([]string, 0, len(movies))
	for i := range movies {
		lines = append(lines, fmt.Sprintf("%s (%s) — рейтинг %s",
			movies[i].Title, movies[i].Year, formatRating(movies[i].Rating)))
	}
	return fmt.Sprintf("Фильмы с актёром '%s':\n%s", actor, strings.Join(lines, "\n"))
}

func renderActorListMiss(actor string) string {
	return fmt.Sprintf("Фильмы с актёром '%s' не найдены в топ-1000.", actor)
}

func renderGenreTop(genre string, limit int, movies []domain.Movie) string {
	lines := make([]string, 0, len(movies))
	for i := range movies {
		lines = append(lines, fmt.Sprintf("%s (%s) — %s",
			movies[i].Title, movies[i].Year, formatRating(movies[i].Rating)))
	}
	return fmt.Sprintf("Топ %d фильмов жанра '%s':\n%s", limit, genre, strings.Join(lines, "\n"))
}

func renderGenreTopMiss(genre string) string {
	return fmt.Sprintf("Нет фильмов в жанре '%s' в датасете IMDb Top 1000.", genre)
}

func renderKeywordList(keyword string, movies []domain.Movie) string {
	lines := make([]string, 0, len(movies))
	for i := range movies {
		lines = append(lines, fmt.Sprintf("%s — %s...",
			movies[i].Title, truncateRunes(movies[i].Synopsis, synopsisPreviewLen)))
	}
	return fmt.Sprintf("Фильмы по ключевому слову '%s':\n%s", keyword, strings.Join(lines, "\n"))
}

func renderKeywordListMiss(keyword string) string {
	return fmt.Sprintf("Нет фильмов, содержащих слово '%s', в описании.", keyword)
}

// Remote metadata (OMDb) messages.

func renderMetadataUnavailable() string {
	return "OMDb API ключ не найден. Укажи OMDB_API_KEY в окружении " +
		"или задай его командой 'kinoman settings omdb-key'."
}

func renderMetadataInfo(m *driven.MovieMetadata) string {
	return fmt.Sprintf(
		"🎬 %s (%s)\nРежиссёр: %s\nАктёры: %s\nЖанр: %s\nРейтинг IMDb: %s\n\nСюжет: %s",
		m.Title, m.Year, m.Director, m.Actors, m.Genre, m.Rating, m.Plot,
	)
}

func renderMetadataInfoMiss(title string) string {
	return fmt.Sprintf("Фильм '%s' не найден в OMDb.", title)
}

func renderMetadataRating(m *driven.MovieMetadata) string {
	return fmt.Sprintf("Рейтинг IMDb фильма '%s' — %s", m.Title, m.Rating)
}

func renderMetadataRatingMiss(title string) string {
	return fmt.Sprintf("Рейтинг фильма '%s' не найден в OMDb.", title)
}

func renderMetadataSearch(keyword string, hits []driven.MetadataSearchHit, limit int) string {
	if limit > len(hits) {
		limit = len(hits)
	}
	lines := make([]string, 0, limit)
	for _, hit := range hits[:limit] {
		lines = append(lines, fmt.Sprintf("%s (%s)", hit.Title, hit.Year))
	}
	return fmt.Sprintf("Результаты поиска OMDb по запросу '%s':\n%s", keyword, strings.Join(lines, "\n"))
}

func renderMetadataSearchMiss(keyword string) string {
	return fmt.Sprintf("Нет фильмов по запросу '%s' в OMDb.", keyword)
}

// formatRating prints a rating the way the dataset shows it: "8.8", not "8.80".
func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
