package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/policy"
)

// newPolicyApp memasang route uji: inject principal → RequireAction → handler
// yang menaikkan flag. Flag harus tetap false saat akses ditolak.
func newPolicyApp(role string, action policy.Action, handlerRan *bool) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if role != "" {
				helperAuth.StorePrincipal(c, helperAuth.Principal{
					UserID: 1, Role: role, FullName: "Uji",
				})
			}
			return c.Next()
		},
		RequireAction(action),
		func(c *fiber.Ctx) error {
			*handlerRan = true
			return c.SendStatus(fiber.StatusOK)
		})
	return app
}

func TestRequireActionAllowsMatchingRole(t *testing.T) {
	handlerRan := false
	app := newPolicyApp(constants.RoleDirector, policy.ActionUserManage, &handlerRan)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, handlerRan)
}

func TestRequireActionDeniesBeforeHandler(t *testing.T) {
	handlerRan := false
	app := newPolicyApp(constants.RoleStudent, policy.ActionUserManage, &handlerRan)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.False(t, handlerRan, "handler tidak boleh jalan saat ditolak")
}

func TestRequireActionWithoutPrincipalIs401(t *testing.T) {
	handlerRan := false
	app := newPolicyApp("", policy.ActionUserManage, &handlerRan)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, handlerRan)
}
