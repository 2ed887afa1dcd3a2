package content

import (
	"fmt"
	"strings"
	"testing"

	"campaign-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDirections_IsPureAndComplete(t *testing.T) {
	first := GenerateDirections("a smart water bottle")
	second := GenerateDirections("a smart water bottle")

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	for _, direction := range models.AllDirections {
		text, ok := first[direction]
		require.True(t, ok, "direction %s missing", direction)
		assert.Contains(t, text, "a smart water bottle")
	}
}

func TestGenerateDirections_Tone(t *testing.T) {
	directions := GenerateDirections("Acme")

	assert.Contains(t, directions[models.DirectionSafe], "reinforces trust")
	assert.Contains(t, directions[models.DirectionInnovative], "cutting-edge technology")
	assert.Contains(t, directions[models.DirectionExperimental], "abstract storytelling")
}

func TestGenerateDirections_EmptyProduct(t *testing.T) {
	directions := GenerateDirections("")

	assert.Equal(t,
		"Focus on the core benefits of  and highlight its reliability and ease of use. "+
			"Use straightforward visuals, clear messaging, and a friendly tone that reinforces trust.",
		directions[models.DirectionSafe])
}

func TestGenerateStoryboards_ThreeScenesPerDirection(t *testing.T) {
	boards := GenerateStoryboards("Acme", 1, 6)

	require.Len(t, boards, 3)
	for _, direction := range models.AllDirections {
		scenes := boards[direction]
		require.Len(t, scenes, models.ScenesPerStoryboard)
		for i, scene := range scenes {
			assert.True(t, strings.HasPrefix(scene.Description, fmt.Sprintf("Scene %d (2s): ", i+1)), scene.Description)
			assert.Contains(t, scene.Description, "Acme")
			assert.Contains(t, scene.Prompt, "Acme")
			assert.Contains(t, scene.Prompt, directionAdjectives[direction])
		}
	}
}

func TestGenerateStoryboards_NumVideosHasNoEffect(t *testing.T) {
	one := GenerateStoryboards("Acme", 1, 12)
	ten := GenerateStoryboards("Acme", 10, 12)

	assert.Equal(t, one, ten)
	assert.Equal(t, one, GenerateStoryboards("Acme", 1, 12), "повторный вызов дает тот же результат")
}

func TestGenerateStoryboards_SegmentLength(t *testing.T) {
	testCases := []struct {
		duration int
		want     string
	}{
		{duration: 6, want: "(2s)"},
		{duration: 2, want: "(1s)"},
		{duration: 30, want: "(10s)"},
		{duration: 10, want: "(3s)"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("duration=%d", tc.duration), func(t *testing.T) {
			boards := GenerateStoryboards("Acme", 1, tc.duration)
			for _, scene := range boards[models.DirectionSafe] {
				assert.Contains(t, scene.Description, tc.want)
			}
		})
	}
}

func TestGenerateStoryboards_ClosingSceneInterpolated(t *testing.T) {
	closing := GenerateStoryboards("Acme", 1, 6)[models.DirectionExperimental][2]

	assert.Equal(t,
		"Scene 3 (2s): Conclude by motivating viewers to act, leaving them with a memorable experimental and artistic impression of Acme.",
		closing.Description)
	assert.NotContains(t, closing.Description, "{")
}

func TestSegmentLength(t *testing.T) {
	assert.Equal(t, 1, SegmentLength(0))
	assert.Equal(t, 1, SegmentLength(2))
	assert.Equal(t, 1, SegmentLength(3))
	assert.Equal(t, 2, SegmentLength(6))
	assert.Equal(t, 10, SegmentLength(30))
}
