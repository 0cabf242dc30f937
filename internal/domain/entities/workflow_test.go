package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWorkflow(t *testing.T) {
	w := DefaultWorkflow()

	assert.True(t, w.CanTransition(StatusDraft, StatusSubmitted))
	assert.True(t, w.CanTransition("under_review", " approved "))
	assert.True(t, w.CanTransition(StatusAdditionalInfoRequired, StatusUnderReview))
	assert.False(t, w.CanTransition(StatusDraft, StatusApproved))
	assert.False(t, w.CanTransition(StatusApproved, StatusUnderReview))
	assert.False(t, w.CanTransition("UNKNOWN", StatusSubmitted))

	for _, code := range []string{StatusApproved, StatusRejected, StatusWithdrawn} {
		assert.True(t, w.IsTerminal(code), code)
	}
	assert.False(t, w.IsTerminal(StatusSubmitted))
	assert.ElementsMatch(t, []string{StatusSubmitted, StatusWithdrawn}, w.Next(StatusDraft))
}

func TestDefaultStatusesCoverWorkflow(t *testing.T) {
	codes := map[string]bool{}
	for _, s := range DefaultStatuses() {
		assert.True(t, s.Category.Valid(), s.Code)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, s.ColorCode)
		codes[s.Code] = true
	}
	for from, next := range DefaultWorkflow() {
		assert.True(t, codes[from], from)
		for _, to := range next {
			assert.True(t, codes[to], to)
		}
	}
}
