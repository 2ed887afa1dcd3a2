package content

import (
	"errors"
	"strconv"
	"strings"

	"campaign-server/internal/models"
)

// NewBrief собирает бриф из сырых значений формы.
// Некорректные числа молча заменяются значениями по умолчанию.
func NewBrief(product, numVideos, duration string) models.Brief {
	return models.Brief{
		Product:         strings.TrimSpace(product),
		NumVideos:       ClampNumVideos(numVideos),
		DurationSeconds: ClampDuration(duration),
	}
}

// ClampNumVideos разбирает количество роликов: по умолчанию 1, диапазон [1,10].
func ClampNumVideos(raw string) int {
	return clampInt(parseIntOr(raw, models.DefaultNumVideos), models.MinNumVideos, models.MaxNumVideos)
}

// ClampDuration разбирает длительность ролика: по умолчанию 6, диапазон [2,30].
func ClampDuration(raw string) int {
	return clampInt(parseIntOr(raw, models.DefaultDuration), models.MinDuration, models.MaxDuration)
}

// parseIntOr возвращает fallback только для нечисловых строк.
// Числа вне диапазона int приходят насыщенными и дальше зажимаются clampInt.
func parseIntOr(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return fallback
	}
	return value
}

func clampInt(value, lo, hi int) int {
	return max(lo, min(value, hi))
}
