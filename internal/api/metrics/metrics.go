// Package metrics defines and registers all custom Prometheus metrics for
// the NUJJUM accessibility API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at package init; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nujjum"

// ProfilesCreatedTotal counts successfully created POD user profiles.
var ProfilesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profiles_created_total",
		Help:      "Total number of POD user profiles created.",
	},
)

// SosCreatedTotal counts logged SOS requests.
// Label:
//   - emergency_type: "medical", "safety", "mobility_support", or "other"
var SosCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sos_created_total",
		Help:      "Total number of SOS requests logged, by emergency type.",
	},
	[]string{"emergency_type"},
)

// SosDedupTotal counts recent-SOS guard decisions.
// Label:
//   - result: "hit" (replayed existing SOS) or "miss" (new SOS logged)
var SosDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sos_dedup_total",
		Help:      "Total number of recent-SOS guard checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// TranslationsServedTotal counts i18n table responses.
// Label:
//   - lang: the normalized language served ("en" or "ar")
var TranslationsServedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "translations_served_total",
		Help:      "Total number of localization tables served, by normalized language.",
	},
	[]string{"lang"},
)
