// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ApplicationTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dealflow_application_transitions_total",
	Help: "Application status changes by target status",
}, []string{"status"})

var ApplicationDuplicates = promauto.NewCounter(prometheus.CounterOpts{
	Name: "dealflow_application_duplicates_total",
	Help: "Apply calls rejected because an active application exists",
})

var DealConversions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dealflow_deal_conversions_total",
	Help: "Application to deal conversions by outcome",
}, []string{"outcome"})

var DealConversionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "dealflow_deal_conversion_duration_seconds",
	Help:    "Duration of accepting an application including deal creation",
	Buckets: prometheus.DefBuckets,
})

var ContractTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dealflow_contract_transitions_total",
	Help: "Contract audit events by type and resulting status",
}, []string{"event", "status"})

var NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
	Name: "dealflow_notifications_sent_total",
	Help: "Notifications delivered to the webhook",
})

var NotificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "dealflow_notifications_failed_total",
	Help: "Notifications that could not be delivered",
})

var DomainEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dealflow_domain_events_published_total",
	Help: "Domain events handed to the broker by type",
}, []string{"type"})

var ContractRefreshRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dealflow_contract_refresh_runs_total",
	Help: "Runs of the due contract refresh by outcome",
}, []string{"outcome"})

var ContractRefreshLastSuccess = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "dealflow_contract_refresh_last_success_timestamp_seconds",
	Help: "Unix time of the last refresh run without failures",
})
