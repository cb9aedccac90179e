package scores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/config"
)

func TestEntryTicketRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{
		JWTSecret:      "test-secret",
		EntryTicketTTL: time.Minute,
	}

	ticket, err := IssueEntryTicket("tok-1", "class-1", "subj-1", "term-1")
	require.NoError(t, err)

	claims, err := ParseEntryTicket(ticket)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", claims.TokenID)
	assert.Equal(t, "class-1", claims.ClassID)
	assert.Equal(t, "subj-1", claims.SubjectID)
	assert.Equal(t, "term-1", claims.TermID)
	assert.Equal(t, "score-entry", claims.Subject)
}

func TestEntryTicketRejectsTampering(t *testing.T) {
	config.AppConfig = &config.Config{
		JWTSecret:      "test-secret",
		EntryTicketTTL: time.Minute,
	}

	ticket, err := IssueEntryTicket("tok-1", "class-1", "subj-1", "term-1")
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "different-secret"
	_, err = ParseEntryTicket(ticket)
	assert.Error(t, err)
}
