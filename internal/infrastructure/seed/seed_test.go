package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyhub/calendar-hub/internal/core/domain"
)

func TestLoad_Default(t *testing.T) {
	today := domain.NewDate(2024, time.March, 3)

	s, err := Load("", today)
	require.NoError(t, err)

	require.Len(t, s.Users, 4)
	assert.Equal(t, "Sudheer", s.Users[0].Name)
	assert.Equal(t, domain.RoleAdmin, s.Users[0].Role)
	for _, u := range s.Users[1:] {
		assert.Equal(t, domain.RoleUser, u.Role)
	}

	require.Len(t, s.Events, 3)
	assert.Equal(t, "Family Movie Night", s.Events[0].Title)
	assert.Equal(t, today, s.Events[0].Date)
	assert.Equal(t, domain.EventTypeGoal, s.Events[1].Type)
	assert.Equal(t, domain.NewDate(2024, time.March, 5), s.Events[1].Date)
	assert.Equal(t, domain.NewDate(2024, time.February, 27), s.Events[2].Date)
	assert.NotEqual(t, s.Events[0].ID, s.Events[1].ID)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users:
  - id: a
    name: Ana
    role: ADMIN
events: []
`), 0o600))

	s, err := Load(path, domain.NewDate(2024, time.January, 1))
	require.NoError(t, err)
	require.Len(t, s.Users, 1)
	assert.Equal(t, domain.RoleAdmin, s.Users[0].Role)
	assert.Contains(t, domain.AvatarColors, s.Users[0].AvatarColor)
	assert.Empty(t, s.Events)
}

func TestParse_Invalid(t *testing.T) {
	today := domain.NewDate(2024, time.January, 1)

	_, err := Parse([]byte(`users: []`), today)
	assert.Error(t, err)

	_, err = Parse([]byte("users:\n  - {id: a, name: A, role: owner}\n"), today)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	_, err = Parse([]byte("users:\n  - {id: a, name: A, role: user}\nevents:\n  - {title: x, type: CHORE}\n"), today)
	assert.ErrorIs(t, err, domain.ErrInvalidEventType)

	_, err = Parse([]byte("users:\n  - {id: a, name: A, role: user}\nevents:\n  - {title: ' ', type: GOAL}\n"), today)
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}
