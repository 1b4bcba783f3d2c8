package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from AccountStatus
		to   AccountStatus
		want bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to blocked", StatusPending, StatusBlocked, false},
		{"pending to suspended", StatusPending, StatusSuspended, false},
		{"approved to blocked", StatusApproved, StatusBlocked, true},
		{"approved to suspended", StatusApproved, StatusSuspended, true},
		{"approved to pending", StatusApproved, StatusPending, false},
		{"blocked to approved", StatusBlocked, StatusApproved, true},
		{"blocked to suspended", StatusBlocked, StatusSuspended, false},
		{"suspended to approved", StatusSuspended, StatusApproved, true},
		{"suspended to blocked", StatusSuspended, StatusBlocked, false},
		{"same status is a no-op", StatusBlocked, StatusBlocked, true},
		{"unknown source", AccountStatus("weird"), StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []AccountStatus{StatusPending, StatusApproved, StatusBlocked, StatusSuspended} {
		assert.True(t, ValidStatus(s), string(s))
	}
	assert.False(t, ValidStatus(AccountStatus("rejected")))
	assert.False(t, ValidStatus(AccountStatus("")))
}

func TestUserCanLogin(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{"approved active", User{AccountStatus: StatusApproved, IsActive: true}, true},
		{"pending", User{AccountStatus: StatusPending, IsActive: true}, true},
		{"blocked", User{AccountStatus: StatusBlocked, IsActive: false}, false},
		{"suspended", User{AccountStatus: StatusSuspended, IsActive: true}, false},
		{"approved but deactivated", User{AccountStatus: StatusApproved, IsActive: false}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.CanLogin())
		})
	}
}

func TestVendorApproved(t *testing.T) {
	approved := Vendor{Status: StatusApproved}
	pending := Vendor{Status: StatusPending}
	suspended := Vendor{Status: StatusSuspended}

	assert.True(t, approved.Approved())
	assert.False(t, pending.Approved())
	assert.False(t, suspended.Approved())
}

func TestCanTransitionOrder(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{OrderPending, OrderProcessing, true},
		{OrderPending, OrderCancelled, true},
		{OrderProcessing, OrderShipped, true},
		{OrderProcessing, OrderCancelled, true},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderPending, false},
		{OrderCancelled, OrderProcessing, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransitionOrder(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}
