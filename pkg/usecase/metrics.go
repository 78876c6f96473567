package usecase

import (
	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// eventsTotal counts handled webhook events by kind and result
	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fixcache",
		Name:      "events_total",
		Help:      "Handled webhook events by kind and result",
	}, []string{"kind", "result"})

	// cacheChanges counts admitted, refreshed and evicted cache entries
	cacheChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fixcache",
		Name:      "cache_changes_total",
		Help:      "Cache entries changed by committed updates, by change type",
	}, []string{"change"})

	cacheConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fixcache",
		Name:      "cache_commit_conflicts_total",
		Help:      "Cache commits rejected because another writer committed first",
	})

	pullRequestHits = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fixcache",
		Name:      "pull_request_hits",
		Help:      "Number of cached files touched per opened pull request",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
	})
)

func observeCacheChange(change *model.CacheChange) {
	cacheChanges.WithLabelValues("admitted").Add(float64(len(change.Admitted)))
	cacheChanges.WithLabelValues("refreshed").Add(float64(len(change.Refreshed)))
	cacheChanges.WithLabelValues("evicted").Add(float64(len(change.Evicted)))
}

func observeEvent(kind model.EventKind, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	eventsTotal.WithLabelValues(string(kind), result).Inc()
}
