// internals/middlewares/auth/policy_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/policy"
)

// RequireAction menolak request sebelum handler jalan bila kebijakan akses
// tidak mengizinkan role principal menjalankan action tersebut.
func RequireAction(action policy.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := helperAuth.GetPrincipal(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: principal tidak ditemukan")
		}

		if d := policy.Decide(p.Role, action); !d.Allowed {
			return helper.JsonError(c, fiber.StatusForbidden, d.Reason)
		}
		return c.Next()
	}
}
