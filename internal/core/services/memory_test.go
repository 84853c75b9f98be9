package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
)

func TestMemory_AddAndHistory(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	memory.Add(domain.RoleUser, "привет")
	memory.Add(domain.RoleAssistant, "Привет!")

	history := memory.History()
	require.Len(t, history, 2)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, "привет", history[0].Content)
	assert.NotEmpty(t, history[0].ID)
	assert.NotEqual(t, history[0].ID, history[1].ID)
}

func TestMemory_IgnoresNonConversationRoles(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	memory.Add("tool", "raw tool output")
	memory.Add("system", "prompt")

	assert.Empty(t, memory.History())
}

func TestMemory_HistoryCapped(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	for i := 0; i < maxHistory+10; i++ {
		memory.Add(domain.RoleUser, fmt.Sprintf("сообщение %d", i))
	}

	history := memory.History()
	require.Len(t, history, maxHistory)
	assert.Equal(t, "сообщение 10", history[0].Content, "oldest turns are dropped first")
}

func TestMemory_PersistsThroughStore(t *testing.T) {
	store := newMockMemoryStore()

	first := NewMemoryService(store)
	first.Add(domain.RoleUser, "меня зовут Алекс")
	first.UpdateFromUserText("меня зовут Алекс")

	// A fresh service over the same store sees the saved state.
	second := NewMemoryService(store)
	assert.Equal(t, "Алекс", second.UserName())
	require.Len(t, second.History(), 1)
}

func TestUpdateFromUserText_Name(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	memory.UpdateFromUserText("Привет! Меня зовут Алекс")
	assert.Equal(t, "Алекс", memory.UserName())
}

func TestUpdateFromUserText_Genres(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	memory.UpdateFromUserText("Я люблю комедии, триллеры")
	assert.Equal(t, "У пользователя любимые жанры: комедии, триллеры.", memory.PreferencesText())
}

func TestUpdateFromUserText_AlsoWordStripped(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	memory.UpdateFromUserText("я люблю драмы тоже")
	assert.Equal(t, "У пользователя любимые жанры: драмы.", memory.PreferencesText())
}

func TestUpdateFromUserText_TypoCorrection(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	memory.UpdateFromUserText("я люлблю комедии")
	assert.Equal(t, "У пользователя любимые жанры: комедии.", memory.PreferencesText())
}

func TestUpdateFromUserText_DirectorNotGenre(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	memory.UpdateFromUserText("я люблю фильмы Нолана")

	prefs := memory.PreferencesText()
	assert.Contains(t, prefs, "любимые режиссёры: Нолана")
	assert.NotContains(t, prefs, "любимые жанры")
}

func TestUpdateFromUserText_JackieChan(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	memory.UpdateFromUserText("обожаю Джеки Чан")
	assert.Contains(t, memory.PreferencesText(), "любимые актёры: Джеки Чан")

	// Case-insensitive duplicate is not appended twice.
	memory.UpdateFromUserText("джеки чан лучший")
	assert.Contains(t, memory.PreferencesText(), "любимые актёры: Джеки Чан.")
}

func TestUpdateFromUserText_FavouriteMovie(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	memory.UpdateFromUserText("мой любимый фильм Интерстеллар")
	assert.Contains(t, memory.PreferencesText(), "любимые фильмы: Интерстеллар")
}

func TestPreferencesText_EmptyProfile(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())
	assert.Empty(t, memory.PreferencesText())
}

func TestDirectAnswer_Name(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	answer, ok := memory.DirectAnswer("Как меня зовут?")
	require.True(t, ok)
	assert.Equal(t, "Я ещё не знаю, как тебя зовут.", answer)

	memory.UpdateFromUserText("меня зовут Алекс")
	answer, ok = memory.DirectAnswer("а как меня зовут теперь?")
	require.True(t, ok)
	assert.Equal(t, "Тебя зовут Алекс.", answer)
}

func TestDirectAnswer_Genres(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	answer, ok := memory.DirectAnswer("Какие жанры я люблю?")
	require.True(t, ok)
	assert.Equal(t, "Я пока не знаю, какие жанры ты любишь.", answer)

	memory.UpdateFromUserText("я люблю комедии, драмы")
	answer, ok = memory.DirectAnswer("какие жанры я люблю")
	require.True(t, ok)
	assert.Equal(t, "Ты любишь комедии, драмы.", answer)
}

func TestDirectAnswer_Everything(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	answer, ok := memory.DirectAnswer("что я люблю?")
	require.True(t, ok)
	assert.Equal(t, "Ты пока не рассказал, что ты любишь.", answer)

	memory.UpdateFromUserText("я люблю триллеры")
	answer, ok = memory.DirectAnswer("что я люблю?")
	require.True(t, ok)
	assert.Equal(t, "У пользователя любимые жанры: триллеры.", answer)
}

func TestDirectAnswer_UnrecognisedQuestion(t *testing.T) {
	memory := NewMemoryService(newMockMemoryStore())

	_, ok := memory.DirectAnswer("посоветуй фильм на вечер")
	assert.False(t, ok)
}

func TestAppendUnique(t *testing.T) {
	list := appendUnique(nil, "Драмы")
	list = appendUnique(list, "драмы")
	list = appendUnique(list, "комедии")

	assert.Equal(t, []string{"Драмы", "комедии"}, list)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Нолана", capitalize("нолана"))
	assert.Equal(t, "Нолана", capitalize("НОЛАНА"))
	assert.Equal(t, "", capitalize(""))
}
