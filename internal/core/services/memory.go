package services

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kinoman-cli/internal/logger"
)

// maxHistory caps the stored conversation history.
const maxHistory = 100

// commonCorrections fixes frequent user typos before profile extraction.
var commonCorrections = []struct {
	pattern *regexp.Regexp
	fix     string
}{
	{regexp.MustCompile(`(?i)люлблю`), "люблю"},
	{regexp.MustCompile(`(?i)люблбю`), "люблю"},
	{regexp.MustCompile(`(?i)научные фантастики`), "научную фантастику"},
}

// Profile extraction patterns. The letter class covers Latin and Cyrillic
// names the original dataset and user base use.
var (
	namePattern      = regexp.MustCompile(`(?i)меня зовут\s+([A-Za-zА-Яа-яЁёІіӨөҮүЩщ-]+)`)
	directorsPattern = regexp.MustCompile(`(?i)я люблю фильмы\s+([A-Za-zА-Яа-яЁёІіӨөҮүЩщ -]+)`)
	genresPattern    = regexp.MustCompile(`(?i)я люблю\s+([A-Za-zА-Яа-яЁёІіӨөҮүЩщ ,]+)`)
	moviesPattern    = regexp.MustCompile(`(?i)фильм\s+([A-Za-zА-Яа-яЁёІіӨөҮүЩщ -]+)`)
	alsoWordPattern  = regexp.MustCompile(`(?i)\bтоже\b`)
)

// MemoryService keeps the conversation history and the learned user profile,
// persisting both through the injected store after every change.
type MemoryService struct {
	store driven.MemoryStore

	mu      sync.Mutex
	profile domain.Profile
	history []domain.Message
}

// NewMemoryService creates the memory service, loading any previously
// persisted snapshot.
func NewMemoryService(store driven.MemoryStore) *MemoryService {
	snapshot := store.Load()
	return &MemoryService{
		store:   store,
		profile: snapshot.Profile,
		history: snapshot.History,
	}
}

// Path returns where the memory is persisted, for display purposes.
func (m *MemoryService) Path() string {
	return m.store.Path()
}

// Add appends a conversation turn. Only user/assistant roles are stored;
// tool messages stay in the in-flight LLM context.
func (m *MemoryService) Add(role, content string) {
	if role != domain.RoleUser && role != domain.RoleAssistant {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, domain.Message{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
	})
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.save()
}

// History returns a copy of the stored conversation turns.
func (m *MemoryService) History() []domain.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Message, len(m.history))
	copy(out, m.history)
	return out
}

// UserName returns the remembered user name, if any.
func (m *MemoryService) UserName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile.Name
}

// UpdateFromUserText mines a user message for profile facts: name, favourite
// genres, actors, directors and movies.
func (m *MemoryService) UpdateFromUserText(text string) {
	clean := text
	for _, c := range commonCorrections {
		clean = c.pattern.ReplaceAllString(clean, c.fix)
	}
	txt := strings.TrimSpace(clean)
	low := strings.ToLower(txt)

	m.mu.Lock()
	defer m.mu.Unlock()

	if match := namePattern.FindStringSubmatch(txt); match != nil {
		m.profile.Name = strings.TrimSpace(match[1])
	}

	if strings.Contains(low, "джеки чан") || strings.Contains(low, "jackie chan") {
		m.profile.Actors = appendUnique(m.profile.Actors, "Джеки Чан")
	}

	// "я люблю фильмы Нолана" names a director, not a genre.
	for _, match := range directorsPattern.FindAllStringSubmatch(low, -1) {
		if name := strings.TrimSpace(match[1]); name != "" {
			m.profile.Directors = appendUnique(m.profile.Directors, capitalize(name))
		}
	}

	// Strip director phrases so they do not re-match as genres below.
	lowForGenres := directorsPattern.ReplaceAllString(low, "")

	for _, match := range genresPattern.FindAllStringSubmatch(lowForGenres, -1) {
		for _, piece := range strings.Split(match[1], ",") {
			piece = strings.TrimSpace(alsoWordPattern.ReplaceAllString(piece, ""))
			if piece != "" {
				m.profile.Genres = appendUnique(m.profile.Genres, piece)
			}
		}
	}

	for _, match := range moviesPattern.FindAllStringSubmatch(txt, -1) {
		if title := strings.TrimSpace(match[1]); title != "" {
			m.profile.Movies = appendUnique(m.profile.Movies, title)
		}
	}

	m.save()
}

// PreferencesText renders the profile as a human-readable sentence for the
// system prompt, or "" when nothing is known yet.
func (m *MemoryService) PreferencesText() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var parts []string
	if len(m.profile.Genres) > 0 {
		parts = append(parts, "любимые жанры: "+strings.Join(m.profile.Genres, ", "))
	}
	if len(m.profile.Actors) > 0 {
		parts = append(parts, "любимые актёры: "+strings.Join(m.profile.Actors, ", "))
	}
	if len(m.profile.Directors) > 0 {
		parts = append(parts, "любимые режиссёры: "+strings.Join(m.profile.Directors, ", "))
	}
	if len(m.profile.Movies) > 0 {
		parts = append(parts, "любимые фильмы: "+strings.Join(m.profile.Movies, ", "))
	}
	if len(parts) == 0 {
		return ""
	}
	return "У пользователя " + strings.Join(parts, "; ") + "."
}

// DirectAnswer answers simple profile questions straight from memory,
// skipping the LLM entirely. Returns ok=false when the question is not one
// of the recognised forms.
func (m *MemoryService) DirectAnswer(userText string) (string, bool) {
	low := strings.ToLower(userText)

	if strings.Contains(low, "как меня зовут") {
		if name := m.UserName(); name != "" {
			return fmt.Sprintf("Тебя зовут %s.", name), true
		}
		return "Я ещё не знаю, как тебя зовут.", true
	}

	if strings.Contains(low, "какие жанры я люблю") {
		m.mu.Lock()
		genres := append([]string(nil), m.profile.Genres...)
		m.mu.Unlock()
		if len(genres) > 0 {
			return "Ты любишь " + strings.Join(genres, ", ") + ".", true
		}
		return "Я пока не знаю, какие жанры ты любишь.", true
	}

	if strings.Contains(low, "что я люблю") {
		if prefs := m.PreferencesText(); prefs != "" {
			return prefs, true
		}
		return "Ты пока не рассказал, что ты любишь.", true
	}

	return "", false
}

// save persists the current state; caller must hold the lock.
func (m *MemoryService) save() {
	snapshot := &driven.MemorySnapshot{
		Profile: m.profile,
		History: m.history,
	}
	if err := m.store.Save(snapshot); err != nil {
		logger.Warn("Memory save failed: %v", err)
	}
}

// appendUnique adds value unless an equal entry (case-insensitive) exists.
func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if strings.EqualFold(existing, value) {
			return list
		}
	}
	return append(list, value)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
