package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	assert.True(t, StatusDraft.CanTransitionTo(StatusApproved))
	assert.True(t, StatusApproved.CanTransitionTo(StatusPaid))

	// No skipping, no going back, no leaving paid.
	assert.False(t, StatusDraft.CanTransitionTo(StatusPaid))
	assert.False(t, StatusApproved.CanTransitionTo(StatusDraft))
	assert.False(t, StatusPaid.CanTransitionTo(StatusDraft))
	assert.False(t, StatusPaid.CanTransitionTo(StatusApproved))
	assert.False(t, StatusDraft.CanTransitionTo(StatusDraft))
}
