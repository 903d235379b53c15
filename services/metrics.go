package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	toolInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dining_agent_tool_invocations_total",
		Help: "Tool calls dispatched on behalf of the model, by tool and outcome.",
	}, []string{"tool", "outcome"})

	modelRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dining_agent_model_requests_total",
		Help: "Requests sent to the model endpoint, by stage and outcome.",
	}, []string{"stage", "outcome"})

	bookingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dining_agent_bookings_total",
		Help: "Reservations confirmed across all sessions.",
	})

	bookedRevenue = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dining_agent_booked_revenue_total",
		Help: "Projected revenue of confirmed reservations.",
	})
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"

	stageInitial  = "initial"
	stageFollowUp = "follow_up"
)

func outcome(err error) string {
	if err != nil {
		return outcomeError
	}
	return outcomeOK
}
