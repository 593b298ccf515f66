package domain

import "testing"

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingPending, BookingInProgress, false},
		{BookingPending, BookingCompleted, false},
		{BookingConfirmed, BookingInProgress, true},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingPending, false},
		{BookingInProgress, BookingCompleted, true},
		{BookingInProgress, BookingCancelled, false},
		{BookingInProgress, BookingPending, false},
		{BookingCompleted, BookingCancelled, false},
		{BookingCompleted, BookingPending, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCancelled, BookingPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestTerminalStatesHaveNoEdges(t *testing.T) {
	all := []BookingStatus{BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled}
	for _, target := range all {
		if BookingCompleted.CanTransitionTo(target) {
			t.Errorf("completed should not transition to %s", target)
		}
		if BookingCancelled.CanTransitionTo(target) {
			t.Errorf("cancelled should not transition to %s", target)
		}
	}
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "in_progress", "completed", "cancelled"} {
		if !ValidBookingStatus(s) {
			t.Errorf("%q should be a valid status", s)
		}
	}
	for _, s := range []string{"", "archived", "PENDING", "done"} {
		if ValidBookingStatus(s) {
			t.Errorf("%q should not be a valid status", s)
		}
	}
}
