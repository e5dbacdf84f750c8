package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Technical metrics
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	ResponseTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_time_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: []float64{0.1, 0.5, 1, 2, 5},
	}, []string{"method", "path"})

	// Business metrics
	PickupsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickups_created_total",
		Help: "Total number of pickup requests created",
	})

	PickupsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickups_completed_total",
		Help: "Total number of pickups completed",
	})

	PointsAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "points_awarded_total",
		Help: "Total points credited to user ledgers",
	})

	RewardsRedeemed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rewards_redeemed_total",
		Help: "Total number of reward redemptions",
	})
)
