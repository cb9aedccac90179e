package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTeacherTokenEvaluateAt(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		token TeacherToken
		want  TokenDenial
	}{
		{"fresh token", TeacherToken{}, TokenOK},
		{"fresh with future expiry", TeacherToken{ExpiresAt: &future}, TokenOK},
		{"used", TeacherToken{IsUsed: true}, TokenAlreadyUsed},
		{"expired", TeacherToken{ExpiresAt: &past}, TokenExpired},
		// A consumed token reads "already used" even after its expiry
		// passes, so retries always see the same denial.
		{"used and expired", TeacherToken{IsUsed: true, ExpiresAt: &past}, TokenAlreadyUsed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.EvaluateAt(now))
		})
	}
}

func TestTeacherTokenDenialIsStable(t *testing.T) {
	token := TeacherToken{IsUsed: true}
	for i := 0; i < 5; i++ {
		assert.Equal(t, TokenAlreadyUsed, token.EvaluateAt(time.Now()))
	}
}

func TestResultPinEvaluateAt(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		pin  ResultPin
		want PinDenial
	}{
		{"fresh", ResultPin{UsageCount: 0, MaxUses: 3}, PinOK},
		{"last use left", ResultPin{UsageCount: 2, MaxUses: 3}, PinOK},
		{"exhausted", ResultPin{UsageCount: 3, MaxUses: 3}, PinExhausted},
		{"over-counted", ResultPin{UsageCount: 4, MaxUses: 3}, PinExhausted},
		{"expired", ResultPin{UsageCount: 0, MaxUses: 3, ExpiresAt: &past}, PinExpired},
		{"expired beats exhausted", ResultPin{UsageCount: 3, MaxUses: 3, ExpiresAt: &past}, PinExpired},
		{"future expiry", ResultPin{UsageCount: 0, MaxUses: 3, ExpiresAt: &future}, PinOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pin.EvaluateAt(now))
		})
	}
}

func TestResultPinEnvelope(t *testing.T) {
	pin := ResultPin{MaxUses: 5}

	// After N uses, remaining is always M - N.
	for n := 1; n <= 5; n++ {
		pin.UsageCount = n
		env := pin.Envelope()
		assert.Equal(t, n, env.Count)
		assert.Equal(t, 5, env.Max)
		assert.Equal(t, 5-n, env.Remaining)
	}

	pin.UsageCount = 7
	assert.Equal(t, 0, pin.Envelope().Remaining)
}

// The last-use scenario: a PIN with one view left succeeds and reports
// remaining=0; the next attempt is denied.
func TestResultPinLastUse(t *testing.T) {
	pin := ResultPin{UsageCount: 2, MaxUses: 3}
	assert.Equal(t, PinOK, pin.EvaluateAt(time.Now()))

	pin.UsageCount++
	env := pin.Envelope()
	assert.Equal(t, 3, env.Count)
	assert.Equal(t, 0, env.Remaining)

	assert.Equal(t, PinExhausted, pin.EvaluateAt(time.Now()))
}
