package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_bookings_created_total",
		Help: "Appointments successfully booked.",
	})

	SlotConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_slot_conflicts_total",
		Help: "Bookings rejected because the slot was already taken.",
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduler_status_transitions_total",
		Help: "Owner-triggered appointment status changes.",
	}, []string{"target"})
)
