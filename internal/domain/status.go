package domain

import (
	"fmt"
	"strings"
)

// SubscriberStatus is the lifecycle state of a subscriber. Transitions only
// move forward: Pending -> Active on confirmation, Pending/Disabled -> Pending
// on re-subscription. Nothing moves a subscriber out of Active.
type SubscriberStatus int

const (
	StatusPending SubscriberStatus = iota
	StatusActive
	StatusDisabled
)

// String returns the canonical stored representation of the status.
func (s SubscriberStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusPending:
		return "pending_confirmation"
	case StatusDisabled:
		return "disabled"
	}
	return "disabled"
}

// ParseSubscriberStatus maps a stored status string back to the enum.
// Matching is case-insensitive. Callers on the read path that cannot fail
// should fall back to StatusDisabled when an error is returned.
func ParseSubscriberStatus(s string) (SubscriberStatus, error) {
	switch strings.ToLower(s) {
	case "active":
		return StatusActive, nil
	case "pending_confirmation":
		return StatusPending, nil
	case "disabled":
		return StatusDisabled, nil
	}
	return StatusDisabled, fmt.Errorf("unknown subscriber status: %q", s)
}
