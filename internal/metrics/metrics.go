// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics holds the Prometheus instruments used across ContentHub.
// All collectors are registered with the default registry in init, so
// importing this package is enough to expose them on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SeedRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contenthub_seed_runs_total",
			Help: "Seed runs by topic and final status.",
		}, []string{"topic", "status"})

	SeedItemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contenthub_seed_items_total",
			Help: "Seeded content items by outcome state.",
		}, []string{"state"})

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contenthub_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contenthub_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(
		SeedRunsTotal,
		SeedItemsTotal,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
