package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_login_attempts_total",
			Help: "Total number of login attempts by status.",
		},
		[]string{"status"},
	)

	briefsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_briefs_generated_total",
		Help: "Total number of briefs turned into directions and storyboards.",
	})

	videoTasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_video_tasks_total",
			Help: "Total number of video generation requests by outcome.",
		},
		[]string{"outcome"},
	)
)
