package content

import (
	"testing"

	"campaign-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClampNumVideos(t *testing.T) {
	testCases := map[string]int{
		"99":  10,
		"0":   1,
		"-5":  1,
		"abc": 1,
		"":    1,
		"3":   3,
		" 7 ": 7,
		"10":  10,
		"2.5": 1,

		"99999999999999999999":  10,
		"-99999999999999999999": 1,
	}
	for raw, want := range testCases {
		assert.Equal(t, want, ClampNumVideos(raw), "raw=%q", raw)
	}
}

func TestClampDuration(t *testing.T) {
	testCases := map[string]int{
		"1":   2,
		"100": 30,
		"abc": 6,
		"":    6,
		"2":   2,
		"30":  30,
		"15":  15,

		"99999999999999999999":  30,
		"-99999999999999999999": 2,
	}
	for raw, want := range testCases {
		assert.Equal(t, want, ClampDuration(raw), "raw=%q", raw)
	}
}

func TestNewBrief(t *testing.T) {
	brief := NewBrief("  eco sneakers \n", "99", "abc")

	assert.Equal(t, models.Brief{Product: "eco sneakers", NumVideos: 10, DurationSeconds: 6}, brief)
}
