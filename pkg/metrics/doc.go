// Package metrics exposes Prometheus metrics for HTTP services.
//
// A Collector owns its own registry (Go runtime and process collectors plus
// request metrics), records every request passing through Middleware and
// serves the registry through Handler:
//
//	m := metrics.NewCollector(metrics.Config{Namespace: "storygen"})
//	r.Use(m.Middleware)
//	r.Handle("/metrics", m.Handler())
//
// Requests are labeled by chi route pattern rather than raw path so
// cardinality stays bounded; unmatched requests share the "unmatched" label.
//
// Metrics:
//   - <ns>_http_requests_total{method,route,status}
//   - <ns>_http_request_duration_seconds{method,route}
//   - <ns>_http_requests_in_flight
package metrics
