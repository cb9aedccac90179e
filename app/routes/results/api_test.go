package results

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

func TestAdmissionPattern(t *testing.T) {
	valid := []string{
		"HMA/2025/010",
		"HMA/2024/1234",
		"AB/1999/001",
		"HMAJS/2025/999",
	}
	for _, s := range valid {
		assert.Truef(t, admissionPattern.MatchString(s), "%q should match", s)
	}

	invalid := []string{
		"",
		"hma/2025/010",
		"HMA-2025-010",
		"HMA/25/010",
		"HMA/2025/10",
		"HMA/2025/01000",
		"TOOLONG/2025/010",
		"HMA/2025/010 ",
	}
	for _, s := range invalid {
		assert.Falsef(t, admissionPattern.MatchString(s), "%q should not match", s)
	}
}

// Requests that fail validation never reach the database, so a nil
// handle is safe here.
func TestCheckResultRequestValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/results/check", func(c *fiber.Ctx) error { return CheckResultAPI(c, nil) })

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"malformed body", `{`, 400, "Invalid request body"},
		{"missing pin", `{"admission_number":"HMA/2025/010"}`, 403, string(models.PinInvalid)},
		{"missing admission number", `{"pin":"123456"}`, 403, string(models.PinInvalid)},
		// A malformed admission number reads as invalid credentials,
		// not as a format error.
		{"malformed admission number", `{"admission_number":"nope","pin":"123456"}`, 403, string(models.PinInvalid)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/results/check", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantErr, body["error"])
		})
	}
}

func TestGeneratePinCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := generatePinCode()
		assert.Len(t, code, 6)
		for _, ch := range code {
			assert.True(t, ch >= '0' && ch <= '9')
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1)
}
