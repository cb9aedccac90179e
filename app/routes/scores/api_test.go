package scores

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/config"
)

const (
	testClassID   = "4f9c0d2e-aa11-4b59-9d1c-1a2b3c4d5e6f"
	testSubjectID = "5a8b1c3d-bb22-4c60-8e2d-2b3c4d5e6f70"
	testTermID    = "6b9c2d4e-cc33-4d71-9f3e-3c4d5e6f7081"
)

func testConfig() {
	config.AppConfig = &config.Config{
		JWTSecret:      "test-secret",
		EntryTicketTTL: time.Minute,
	}
}

func submitBody(t *testing.T, scores string) string {
	t.Helper()
	ticket, err := IssueEntryTicket("tok-1", testClassID, testSubjectID, testTermID)
	require.NoError(t, err)
	return fmt.Sprintf(`{"ticket":%q,"token":"ABCD1234","term_id":%q,"class_id":%q,"subject_id":%q,"scores":%s}`,
		ticket, testTermID, testClassID, testSubjectID, scores)
}

func submitApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/scores/submit", func(c *fiber.Ctx) error { return SubmitScoresAPI(c, nil) })
	return app
}

func postSubmit(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/scores/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

// Batch-shape violations are rejected before any token lookup, so a
// nil database handle is safe here.
func TestSubmitScoresRequestValidation(t *testing.T) {
	testConfig()
	app := submitApp()

	oversize := `[`
	for i := 0; i <= MaxBatchSize; i++ {
		if i > 0 {
			oversize += ","
		}
		oversize += fmt.Sprintf(`{"student_id":"stu%d"}`, i+1)
	}
	oversize += `]`

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"malformed body", `{`, 400, "Invalid request body"},
		{"missing token", `{"term_id":"` + testTermID + `"}`, 400, "ticket, token, term_id, class_id and subject_id are required"},
		{"empty batch", submitBody(t, `[]`), 400, "score batch is empty"},
		{"oversize batch", submitBody(t, oversize), 400, fmt.Sprintf("score batch exceeds %d entries", MaxBatchSize)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := postSubmit(t, app, tt.body)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantErr, body["error"])
		})
	}
}

// A submission must present the ticket issued at redemption; a garbage
// ticket or one bound to a different entry context is refused before
// the token is even looked up.
func TestSubmitScoresRequiresMatchingTicket(t *testing.T) {
	testConfig()
	app := submitApp()

	garbage := fmt.Sprintf(`{"ticket":"not-a-ticket","token":"ABCD1234","term_id":%q,"class_id":%q,"subject_id":%q,"scores":[{"student_id":"stu1"}]}`,
		testTermID, testClassID, testSubjectID)
	code, body := postSubmit(t, app, garbage)
	assert.Equal(t, 403, code)
	assert.Equal(t, "entry ticket is invalid or expired", body["error"])

	// Ticket issued for a different class.
	otherTicket, err := IssueEntryTicket("tok-2", testSubjectID, testSubjectID, testTermID)
	require.NoError(t, err)
	mismatched := fmt.Sprintf(`{"ticket":%q,"token":"ABCD1234","term_id":%q,"class_id":%q,"subject_id":%q,"scores":[{"student_id":"stu1"}]}`,
		otherTicket, testTermID, testClassID, testSubjectID)
	code, body = postSubmit(t, app, mismatched)
	assert.Equal(t, 403, code)
	assert.Equal(t, "entry ticket does not match this submission", body["error"])
}

func TestRedeemTokenRequestValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/tokens/redeem", func(c *fiber.Ctx) error { return RedeemTokenAPI(c, nil) })

	tests := []struct {
		name string
		body string
	}{
		{"missing class and subject", `{"code":"ABCD1234"}`},
		{"short code", `{"code":"AB","class_id":"` + testClassID + `","subject_id":"` + testSubjectID + `"}`},
		{"non-uuid class", `{"code":"ABCD1234","class_id":"jss1","subject_id":"` + testSubjectID + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/tokens/redeem", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)
		})
	}
}
