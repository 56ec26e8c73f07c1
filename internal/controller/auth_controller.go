package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/serverutils"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/service"
)

const refreshCookieName = "refresh_token"

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	ChangePassword(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	jwt         fiber.Handler
}

func NewAuthController(authService service.IAuthService, jwt fiber.Handler) IAuthController {
	return &authController{
		authService: authService,
		jwt:         jwt,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/refresh", c.Refresh)
	h.Post("/logout", c.Logout)
	h.Put("/password", c.jwt, c.ChangePassword)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    res.RefreshToken,
		HTTPOnly: true,
		SameSite: "Strict",
		Expires:  time.Now().Add(2 * time.Hour),
	})

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

// Refresh reads the refresh token from the cookie set at login, falling back
// to the request body for clients that do not keep cookies.
func (c *authController) Refresh(ctx *fiber.Ctx) error {
	refreshToken := ctx.Cookies(refreshCookieName)
	if refreshToken == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := ctx.BodyParser(&body); err == nil {
			refreshToken = body.RefreshToken
		}
	}
	if refreshToken == "" {
		return apperror.Validation("refresh token is required")
	}

	res, err := c.authService.Refresh(ctx.Context(), refreshToken)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Token refreshed", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: "Strict",
		Expires:  time.Now().Add(-time.Hour),
	})
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}

func (c *authController) ChangePassword(ctx *fiber.Ctx) error {
	var req struct {
		CurrentPassword string `json:"currentPassword" validate:"required"`
		NewPassword     string `json:"newPassword" validate:"required"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	employeeCode := serverutils.CurrentEmployeeCode(ctx)
	if err := c.authService.ChangePassword(ctx.Context(), employeeCode, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password changed", nil))
}
