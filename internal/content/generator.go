// Package content строит тексты направлений кампании и раскадровки по брифу.
// Все функции чистые: одинаковый вход всегда дает побайтно одинаковый результат.
package content

import (
	"fmt"

	"campaign-server/internal/models"
)

// directionAdjectives - тональность сцен для каждого направления.
var directionAdjectives = map[models.Direction]string{
	models.DirectionSafe:         "safe and trustworthy",
	models.DirectionInnovative:   "innovative and modern",
	models.DirectionExperimental: "experimental and artistic",
}

// GenerateDirections возвращает три направления кампании для продукта.
// Пустой продукт допустим: в текст подставляется пустая строка.
func GenerateDirections(product string) models.Directions {
	return models.Directions{
		models.DirectionSafe: fmt.Sprintf(
			"Focus on the core benefits of %s and highlight its reliability and ease of use. "+
				"Use straightforward visuals, clear messaging, and a friendly tone that reinforces trust.",
			product),
		models.DirectionInnovative: fmt.Sprintf(
			"Emphasise how %s pushes boundaries by showcasing its unique features or cutting-edge technology. "+
				"Incorporate dynamic camera movements, modern graphic overlays, and a forward-thinking narrative.",
			product),
		models.DirectionExperimental: fmt.Sprintf(
			"Take a bold, artistic approach to expressing the essence of %s. "+
				"Use abstract storytelling, unexpected metaphors, or surreal visuals that evoke emotion and curiosity.",
			product),
	}
}

// GenerateStoryboards строит по три сцены для каждого направления.
// numVideos пока не влияет на результат: раскадровка одна на направление
// независимо от количества роликов.
func GenerateStoryboards(product string, numVideos, durationSeconds int) models.Storyboards {
	segment := SegmentLength(durationSeconds)

	storyboards := make(models.Storyboards, len(models.AllDirections))
	for _, direction := range models.AllDirections {
		storyboards[direction] = buildScenes(product, segment, directionAdjectives[direction])
	}
	return storyboards
}

// SegmentLength делит ролик на три равные части, минимум 1 секунда.
func SegmentLength(durationSeconds int) int {
	return max(1, durationSeconds/3)
}

func buildScenes(product string, segment int, adjective string) []models.Scene {
	return []models.Scene{
		{
			Description: fmt.Sprintf(
				"Scene 1 (%ds): Introduce %s in a %s way, highlighting its main value proposition.",
				segment, product, adjective),
			Prompt: fmt.Sprintf(
				"An opening shot that showcases %s with %s tone; smooth camera movement and soft lighting.",
				product, adjective),
		},
		{
			Description: fmt.Sprintf(
				"Scene 2 (%ds): Expand on how %s benefits the target audience, incorporating a %s visual metaphor.",
				segment, product, adjective),
			Prompt: fmt.Sprintf(
				"A middle shot using a %s metaphor to illustrate %s's advantage; dynamic transitions and engaging colours.",
				adjective, product),
		},
		{
			Description: fmt.Sprintf(
				"Scene 3 (%ds): Conclude by motivating viewers to act, leaving them with a memorable %s impression of %s.",
				segment, adjective, product),
			Prompt: fmt.Sprintf(
				"A closing shot that leaves a strong %s impression of %s; dramatic composition and inspiring text overlay.",
				adjective, product),
		},
	}
}
