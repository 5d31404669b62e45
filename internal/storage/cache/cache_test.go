package cache

import (
	"testing"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Sessions(t *testing.T) {
	t.Parallel()

	c := NewCache()

	_, exists := c.GetSession("s1")
	assert.False(t, exists)

	c.SetSession("s1", models.SessionState{Drill: models.DrillRandomMix, Score: 2})

	s, exists := c.GetSession("s1")
	require.True(t, exists)
	assert.Equal(t, models.DrillRandomMix, s.Drill)
	assert.Equal(t, 2, s.Score)

	c.DeleteSession("s1")
	_, exists = c.GetSession("s1")
	assert.False(t, exists)
}

func TestCache_Exercises(t *testing.T) {
	t.Parallel()

	c := NewCache()

	c.SetExercise("s1", models.Exercise{Drill: models.DrillForm, CorrectAnswer: "I"})

	ex, exists := c.GetExercise("s1")
	require.True(t, exists)
	assert.Equal(t, "I", ex.CorrectAnswer)

	c.DeleteExercise("s1")
	_, exists = c.GetExercise("s1")
	assert.False(t, exists)
}

func TestCache_DeleteSessionDropsExercise(t *testing.T) {
	t.Parallel()

	c := NewCache()

	c.SetSession("s1", models.SessionState{})
	c.SetExercise("s1", models.Exercise{Drill: models.DrillForm})

	c.DeleteSession("s1")

	_, exists := c.GetExercise("s1")
	assert.False(t, exists)
}
