package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name  string
		from  PickupStatus
		to    PickupStatus
		legal bool
	}{
		{"requested to scheduled", PickupStatusRequested, PickupStatusScheduled, true},
		{"requested to rejected", PickupStatusRequested, PickupStatusRejected, true},
		{"scheduled to en_route", PickupStatusScheduled, PickupStatusEnRoute, true},
		{"scheduled to completed skips travel", PickupStatusScheduled, PickupStatusCompleted, true},
		{"scheduled to rejected", PickupStatusScheduled, PickupStatusRejected, true},
		{"en_route to arrived", PickupStatusEnRoute, PickupStatusArrived, true},
		{"arrived to completed", PickupStatusArrived, PickupStatusCompleted, true},
		{"requested cannot skip to en_route", PickupStatusRequested, PickupStatusEnRoute, false},
		{"requested cannot complete directly", PickupStatusRequested, PickupStatusCompleted, false},
		{"en_route cannot be rejected", PickupStatusEnRoute, PickupStatusRejected, false},
		{"no backward move", PickupStatusArrived, PickupStatusEnRoute, false},
		{"completed is terminal", PickupStatusCompleted, PickupStatusRejected, false},
		{"rejected is terminal", PickupStatusRejected, PickupStatusRequested, false},
		{"self transition is illegal", PickupStatusScheduled, PickupStatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.legal, tt.from.CanTransition(tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, PickupStatusCompleted.IsTerminal())
	assert.True(t, PickupStatusRejected.IsTerminal())
	assert.False(t, PickupStatusRequested.IsTerminal())
	assert.False(t, PickupStatusScheduled.IsTerminal())
	assert.False(t, PickupStatusEnRoute.IsTerminal())
	assert.False(t, PickupStatusArrived.IsTerminal())
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, PickupStatusEnRoute.IsValid())
	assert.False(t, PickupStatus("CANCELLED").IsValid())
	assert.False(t, PickupStatus("").IsValid())
	// statuses are case sensitive
	assert.False(t, PickupStatus("requested").IsValid())
}
