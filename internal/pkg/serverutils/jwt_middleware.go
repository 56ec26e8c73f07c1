package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/role"
)

// Locals keys populated by the JWT middleware.
const (
	LocalEmployeeCode = "employee_code"
	LocalRole         = "role"
)

// NewJwtMiddleware verifies the Bearer token and stores the employee code and
// role in the request locals. The signing key is injected, not read from the
// environment.
func NewJwtMiddleware(tokenKey string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(tokenKey), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid claims"))
		}

		employeeCode, _ := claims["employee_code"].(string)
		roleID, _ := claims["role_id"].(float64)

		ctx.Locals(LocalEmployeeCode, employeeCode)
		ctx.Locals(LocalRole, role.FromID(int(roleID)))
		return ctx.Next()
	}
}

// RequireRoles gates a route to an explicit set of roles. The legacy system
// compared raw RoleID integers per route; the access matrix is unchanged.
func RequireRoles(permitted ...role.Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		r, ok := ctx.Locals(LocalRole).(role.Role)
		if !ok || !role.Allowed(r, permitted) {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, "Access denied. User does not have access to this route."))
		}
		return ctx.Next()
	}
}

// CurrentEmployeeCode reads the authenticated employee code set by the JWT
// middleware.
func CurrentEmployeeCode(ctx *fiber.Ctx) string {
	code, _ := ctx.Locals(LocalEmployeeCode).(string)
	return code
}
