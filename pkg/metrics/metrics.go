// Package metrics provides the centralized Prometheus metrics registry for
// the SharePoint client. Metrics are defined in their respective packages
// (client, sharepoint) to maintain modularity and avoid circular
// dependencies; this package documents them in one place.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the module. All
// metrics are automatically registered via promauto in their respective
// packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - sp_requests_total{status} (Counter): Total requests by HTTP status
//   - sp_request_duration_seconds (Histogram): Request duration
//   - sp_errors_total{class} (Counter): Errors by class (invalid_argument, http, transport)
//
// Fetch Metrics (pkg/sharepoint):
//   - sp_pages_fetched_total (Counter): List pages fetched
//   - sp_items_retrieved_total (Counter): List items retrieved across pages
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   rate(sp_errors_total[5m])
//
//   # Items per Page
//   rate(sp_items_retrieved_total[5m]) / rate(sp_pages_fetched_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(sp_request_duration_seconds_bucket[5m]))
