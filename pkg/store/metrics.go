package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mutation counters for the /metrics endpoint. Registered once at package
// init; every Store instance feeds the same collectors.
var (
	postsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "postsdb_posts_created_total",
		Help: "Number of posts created.",
	})
	postsEdited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "postsdb_posts_edited_total",
		Help: "Number of post content edits.",
	})
	postsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "postsdb_posts_deleted_total",
		Help: "Number of posts soft-deleted.",
	})
	postsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "postsdb_posts_active",
		Help: "Current number of visible (not removed) posts.",
	})
)
