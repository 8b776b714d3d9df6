package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifyhub_events_published_total",
		Help: "Total number of dispatch results published to the event hub",
	})

	eventsDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifyhub_events_dropped_total",
		Help: "Total number of events dropped due to full subscriber buffers",
	})

	subscribersGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "notifyhub_event_subscribers",
		Help: "Current number of event hub subscribers",
	})
)

func RecordPublished() {
	eventsPublishedTotal.Inc()
}

func RecordDropped() {
	eventsDroppedTotal.Inc()
}

func SetSubscribers(n int) {
	subscribersGauge.Set(float64(n))
}
