package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus_AcceptsLifecycleStatuses(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, ValidStatus(s), "expected %q to be valid", s)
	}
}

func TestValidStatus_RejectsUnknownValues(t *testing.T) {
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus("Pending"))
	assert.False(t, ValidStatus("out for delivery"))
}

func TestOrder_Deletable(t *testing.T) {
	assert.True(t, Order{Status: StatusPending}.Deletable())
	assert.False(t, Order{Status: StatusPreparing}.Deletable())
	assert.False(t, Order{Status: StatusOutForDelivery}.Deletable())
	assert.False(t, Order{Status: StatusDelivered}.Deletable())
}

func TestOrder_Frozen(t *testing.T) {
	assert.True(t, Order{Status: StatusDelivered}.Frozen())
	assert.False(t, Order{Status: StatusPending}.Frozen())
	assert.False(t, Order{Status: StatusOutForDelivery}.Frozen())
}
