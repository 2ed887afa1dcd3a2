package models

// Direction - одна из трёх фиксированных креативных стратегий кампании.
type Direction string

const (
	DirectionSafe         Direction = "safe"
	DirectionInnovative   Direction = "innovative"
	DirectionExperimental Direction = "experimental"
)

// AllDirections задаёт порядок отображения направлений.
var AllDirections = []Direction{
	DirectionSafe,
	DirectionInnovative,
	DirectionExperimental,
}

// Границы и значения по умолчанию для полей брифа.
const (
	MinNumVideos     = 1
	MaxNumVideos     = 10
	DefaultNumVideos = 1

	MinDuration     = 2
	MaxDuration     = 30
	DefaultDuration = 6

	ScenesPerStoryboard = 3
)

// Brief - бриф клиента. Живёт только в рамках одного запроса.
type Brief struct {
	Product         string `json:"product"`
	NumVideos       int    `json:"num_videos"`
	DurationSeconds int    `json:"duration"`
}

// Scene - один сюжетный шаг раскадровки вместе с промптом для генерации видео.
type Scene struct {
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

// Directions сопоставляет направление с его текстовым описанием.
type Directions map[Direction]string

// Storyboards сопоставляет направление с упорядоченным списком сцен.
type Storyboards map[Direction][]Scene
