package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaintenancePlanNextDue(t *testing.T) {
	last := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	plan := MaintenancePlan{IntervalDays: 30, LastDone: &last}

	assert.Equal(t, time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), plan.NextDue())
}

func TestMaintenancePlanNeverRunHasZeroDue(t *testing.T) {
	plan := MaintenancePlan{IntervalDays: 30}
	assert.True(t, plan.NextDue().IsZero())
}
