package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/role"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/serverutils"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/service"
)

type IHandsetController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetStaffHandsets(ctx *fiber.Ctx) error
	GetByEmployee(ctx *fiber.Ctx) error
	GetStaffView(ctx *fiber.Ctx) error
	GetAllocation(ctx *fiber.Ctx) error
}

type handsetController struct {
	handsetService service.IHandsetService
	jwt            fiber.Handler
}

func NewHandsetController(handsetService service.IHandsetService, jwt fiber.Handler) IHandsetController {
	return &handsetController{
		handsetService: handsetService,
		jwt:            jwt,
	}
}

// RegisterRoutes keeps the legacy path shapes the frontend depends on,
// including the /deletion/:id delete route and the two employee views.
func (c *handsetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/handsets")
	h.Use(c.jwt)

	h.Post("/", serverutils.RequireRoles(role.AllStaff()...), c.Create)
	h.Put("/:id", serverutils.RequireRoles(role.Admin, role.FixedAssetTeam), c.Update)
	h.Delete("/deletion/:id", serverutils.RequireRoles(role.AllStaff()...), c.Delete)

	h.Get("/", serverutils.RequireRoles(role.Admin, role.FixedAssetTeam), c.GetAll)
	h.Get("/staffHandsets", serverutils.RequireRoles(role.Admin, role.FixedAssetTeam), c.GetStaffHandsets)
	h.Get("/handset/:employeeCode", serverutils.RequireRoles(role.AllStaff()...), c.GetByEmployee)
	h.Get("/allocations/:allocationID", serverutils.RequireRoles(role.AllStaff()...), c.GetAllocation)
	h.Get("/:employeeCode", serverutils.RequireRoles(role.AllStaff()...), c.GetStaffView)
}

func (c *handsetController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateHandsetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.handsetService.CreateRequest(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Handset request created", res))
}

func (c *handsetController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperror.Validation("invalid handset id")
	}

	var req dto.UpdateHandsetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.handsetService.UpdateRequest(ctx.Context(), uint(id), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Handset request updated", res))
}

func (c *handsetController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperror.Validation("invalid handset id")
	}

	if err := c.handsetService.DeleteRequest(ctx.Context(), uint(id)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Handset request deleted", nil))
}

func (c *handsetController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.handsetService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Handset requests retrieved", res))
}

// GetStaffHandsets is the admin review queue, most recent first.
func (c *handsetController) GetStaffHandsets(ctx *fiber.Ctx) error {
	res, err := c.handsetService.GetAllOrdered(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Handset requests retrieved", res))
}

func (c *handsetController) GetByEmployee(ctx *fiber.Ctx) error {
	employeeCode := ctx.Params("employeeCode")
	res, err := c.handsetService.GetByEmployee(ctx.Context(), employeeCode)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Handset requests retrieved", res))
}

func (c *handsetController) GetStaffView(ctx *fiber.Ctx) error {
	employeeCode := ctx.Params("employeeCode")
	res, err := c.handsetService.GetStaffView(ctx.Context(), employeeCode)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff handset view retrieved", res))
}

func (c *handsetController) GetAllocation(ctx *fiber.Ctx) error {
	allocationID, err := ctx.ParamsInt("allocationID")
	if err != nil || allocationID <= 0 {
		return apperror.Validation("invalid allocation id")
	}

	res, err := c.handsetService.GetAllocation(ctx.Context(), uint(allocationID))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Allocation retrieved", res))
}
