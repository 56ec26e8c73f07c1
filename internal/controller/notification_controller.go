package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/role"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/serverutils"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/service"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
	GetInbox(ctx *fiber.Ctx) error
	GetUnreadCount(ctx *fiber.Ctx) error
	MarkViewed(ctx *fiber.Ctx) error
	MarkAllViewed(ctx *fiber.Ctx) error
}

type notificationController struct {
	notificationService service.INotificationService
	jwt                 fiber.Handler
}

func NewNotificationController(notificationService service.INotificationService, jwt fiber.Handler) INotificationController {
	return &notificationController{
		notificationService: notificationService,
		jwt:                 jwt,
	}
}

// RegisterRoutes exposes the inbox. Every route is scoped to the
// authenticated employee; there is no cross-inbox access.
func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notifications")
	h.Use(c.jwt)
	h.Use(serverutils.RequireRoles(role.AllStaff()...))

	h.Get("/", c.GetInbox)
	h.Get("/unread-count", c.GetUnreadCount)
	h.Put("/viewed", c.MarkAllViewed)
	h.Put("/:id/viewed", c.MarkViewed)
}

func (c *notificationController) GetInbox(ctx *fiber.Ctx) error {
	employeeCode := serverutils.CurrentEmployeeCode(ctx)
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	notifications, total, err := c.notificationService.GetNotifications(ctx.Context(), employeeCode, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Notifications retrieved", fiber.Map{
		"notifications": notifications,
		"total":         total,
	}))
}

func (c *notificationController) GetUnreadCount(ctx *fiber.Ctx) error {
	employeeCode := serverutils.CurrentEmployeeCode(ctx)
	count, err := c.notificationService.GetUnreadCount(ctx.Context(), employeeCode)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Unread count retrieved", dto.UnreadCountResponse{Count: count}))
}

func (c *notificationController) MarkViewed(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid notification id")
	}

	employeeCode := serverutils.CurrentEmployeeCode(ctx)
	if err := c.notificationService.MarkAsViewed(ctx.Context(), id, employeeCode); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Notification marked as viewed", nil))
}

func (c *notificationController) MarkAllViewed(ctx *fiber.Ctx) error {
	employeeCode := serverutils.CurrentEmployeeCode(ctx)
	if err := c.notificationService.MarkAllAsViewed(ctx.Context(), employeeCode); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Notifications marked as viewed", nil))
}
