package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

func guardedApp(userRoles ...string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		user := &models.User{ID: "u1", Email: "staff@example.com", IsActive: true}
		for _, name := range userRoles {
			user.Roles = append(user.Roles, &models.Role{Name: name})
		}
		c.Locals("user", user)
		return c.Next()
	})
	app.Get("/guarded", RequireRole("admin", "bursar"), func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})
	return app
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		wantCode int
	}{
		{"admin passes", []string{"admin"}, 200},
		{"bursar passes", []string{"bursar"}, 200},
		{"second role counts", []string{"records", "bursar"}, 200},
		{"records denied", []string{"records"}, 403},
		{"no roles denied", nil, 403},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := guardedApp(tt.roles...)
			resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

// No user in context means the middleware chain was bypassed; deny.
func TestRequireRoleWithoutUser(t *testing.T) {
	app := fiber.New()
	app.Get("/guarded", RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}
