package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardPath(t *testing.T) {
	path := []BookingStatus{
		BookingStatusPending,
		BookingStatusAssigned,
		BookingStatusEnRoute,
		BookingStatusPickedUp,
		BookingStatusInTransit,
		BookingStatusCompleted,
	}

	for i := 0; i < len(path)-1; i++ {
		assert.True(t, CanTransition(path[i], path[i+1]),
			"expected %s -> %s to be legal", path[i], path[i+1])
	}
}

func TestCanTransition_NoSkippingOrBacktracking(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
	}{
		{"skip assignment", BookingStatusPending, BookingStatusEnRoute},
		{"skip pickup", BookingStatusEnRoute, BookingStatusInTransit},
		{"straight to completed", BookingStatusPending, BookingStatusCompleted},
		{"backwards", BookingStatusPickedUp, BookingStatusEnRoute},
		{"self loop", BookingStatusInTransit, BookingStatusInTransit},
		{"out of completed", BookingStatusCompleted, BookingStatusPending},
		{"out of cancelled", BookingStatusCancelled, BookingStatusAssigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanTransition_CancellableFromEveryNonTerminal(t *testing.T) {
	for _, from := range []BookingStatus{
		BookingStatusPending,
		BookingStatusAssigned,
		BookingStatusEnRoute,
		BookingStatusPickedUp,
		BookingStatusInTransit,
	} {
		assert.True(t, CanTransition(from, BookingStatusCancelled),
			"expected %s to be cancellable", from)
	}
}

func TestCanTransition_RandomWalkNeverEscapesTerminal(t *testing.T) {
	all := []BookingStatus{
		BookingStatusPending, BookingStatusAssigned, BookingStatusEnRoute,
		BookingStatusPickedUp, BookingStatusInTransit, BookingStatusCompleted,
		BookingStatusCancelled,
	}

	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 200; run++ {
		status := BookingStatusPending
		for step := 0; step < 20; step++ {
			next := all[rng.Intn(len(all))]
			if !CanTransition(status, next) {
				continue
			}
			assert.False(t, status.IsTerminal(),
				"legal transition out of terminal status %s", status)
			status = next
		}
	}
}

func TestCanCancel_RoleMatrix(t *testing.T) {
	tests := []struct {
		status  BookingStatus
		role    string
		allowed bool
	}{
		{BookingStatusPending, RoleUser, true},
		{BookingStatusPending, RoleDriver, false},
		{BookingStatusPending, RoleAdmin, true},
		{BookingStatusAssigned, RoleUser, true},
		{BookingStatusAssigned, RoleDriver, true},
		{BookingStatusEnRoute, RoleUser, true},
		{BookingStatusEnRoute, RoleDriver, true},
		{BookingStatusPickedUp, RoleUser, false},
		{BookingStatusPickedUp, RoleDriver, false},
		{BookingStatusPickedUp, RoleAdmin, true},
		{BookingStatusInTransit, RoleUser, false},
		{BookingStatusInTransit, RoleDriver, false},
		{BookingStatusInTransit, RoleAdmin, true},
		{BookingStatusCompleted, RoleAdmin, false},
		{BookingStatusCancelled, RoleAdmin, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, CanCancel(tt.status, tt.role),
			"CanCancel(%s, %s)", tt.status, tt.role)
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusInTransit.IsTerminal())
}

func TestBookingStatus_TimestampColumn(t *testing.T) {
	assert.Equal(t, "assigned_at", BookingStatusAssigned.TimestampColumn())
	assert.Equal(t, "en_route_at", BookingStatusEnRoute.TimestampColumn())
	assert.Equal(t, "picked_up_at", BookingStatusPickedUp.TimestampColumn())
	assert.Equal(t, "in_transit_at", BookingStatusInTransit.TimestampColumn())
	assert.Equal(t, "completed_at", BookingStatusCompleted.TimestampColumn())
	assert.Equal(t, "cancelled_at", BookingStatusCancelled.TimestampColumn())
	assert.Equal(t, "", BookingStatusPending.TimestampColumn())
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, BookingStatusPending.IsValid())
	assert.True(t, BookingStatusCancelled.IsValid())
	assert.False(t, BookingStatus("unknown").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}
