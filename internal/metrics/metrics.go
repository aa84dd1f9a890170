package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	SecurityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSecurityEvents,
			Help: HelpTextSecurityEvents,
		},
		[]string{LabelReason},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	FarmActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFarmActions,
			Help: HelpTextFarmActions,
		},
		[]string{LabelAction, LabelOutcome},
	)

	TilesReady = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTilesReady,
			Help: HelpTextTilesReady,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	QuestsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsClaimed,
			Help: HelpTextQuestsClaimed,
		},
		[]string{LabelQuest},
	)

	QuestRewards = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestRewards,
			Help: HelpTextQuestRewards,
		},
	)

	Notices = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotices,
			Help: HelpTextNotices,
		},
		[]string{LabelLevel},
	)

	ChainTransactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChainTransactions,
			Help: HelpTextChainTransactions,
		},
		[]string{LabelAction, LabelOutcome},
	)

	AutosaveWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAutosaveWrites,
			Help: HelpTextAutosaveWrites,
		},
		[]string{LabelOutcome},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	StreamClients = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
		[]string{LabelTransport},
	)
)
