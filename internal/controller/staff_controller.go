package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/role"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/serverutils"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/service"
)

type IStaffController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Deactivate(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetActive(ctx *fiber.Ctx) error
	GetNew(ctx *fiber.Ctx) error
	GetRetired(ctx *fiber.Ctx) error
	GetByEmployeeCode(ctx *fiber.Ctx) error
	GetAdmins(ctx *fiber.Ctx) error
	CountAll(ctx *fiber.Ctx) error
	CountByGender(ctx *fiber.Ctx) error
	CountByCategory(ctx *fiber.Ctx) error
	CountByStatus(ctx *fiber.Ctx) error
	CountByServicePlan(ctx *fiber.Ctx) error
	ImportTempRecords(ctx *fiber.Ctx) error
}

type staffController struct {
	staffService service.IStaffService
	jwt          fiber.Handler
}

func NewStaffController(staffService service.IStaffService, jwt fiber.Handler) IStaffController {
	return &staffController{
		staffService: staffService,
		jwt:          jwt,
	}
}

func (c *staffController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/staff")
	h.Use(c.jwt)

	h.Post("/", serverutils.RequireRoles(role.Admin, role.ERTeam), c.Create)
	h.Post("/import", serverutils.RequireRoles(role.Admin), c.ImportTempRecords)

	h.Get("/", serverutils.RequireRoles(role.Admin, role.ERTeam), c.GetAll)
	h.Get("/active", serverutils.RequireRoles(role.Admin, role.ERTeam), c.GetActive)
	h.Get("/new", serverutils.RequireRoles(role.Admin, role.ERTeam), c.GetNew)
	h.Get("/retired", serverutils.RequireRoles(role.Admin, role.ERTeam), c.GetRetired)
	h.Get("/admins", serverutils.RequireRoles(role.AllStaff()...), c.GetAdmins)
	h.Get("/count", serverutils.RequireRoles(role.Admin, role.ERTeam), c.CountAll)
	h.Get("/count/gender/:gender", serverutils.RequireRoles(role.Admin, role.ERTeam), c.CountByGender)
	h.Get("/count/category/:category", serverutils.RequireRoles(role.Admin, role.ERTeam), c.CountByCategory)
	h.Get("/count/status/:status", serverutils.RequireRoles(role.Admin, role.ERTeam), c.CountByStatus)
	h.Get("/count/plan/:plan", serverutils.RequireRoles(role.Admin, role.ERTeam), c.CountByServicePlan)
	h.Get("/:employeeCode", serverutils.RequireRoles(role.AllStaff()...), c.GetByEmployeeCode)

	h.Put("/:employeeCode", serverutils.RequireRoles(role.Admin, role.ERTeam), c.Update)
	h.Delete("/:employeeCode", serverutils.RequireRoles(role.Admin), c.Deactivate)
}

func (c *staffController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.staffService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Staff member created", res))
}

func (c *staffController) Update(ctx *fiber.Ctx) error {
	employeeCode := ctx.Params("employeeCode")

	var req dto.UpdateStaffRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}

	res, err := c.staffService.Update(ctx.Context(), employeeCode, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff member updated", res))
}

// Deactivate marks the staff member Inactive rather than deleting their
// history.
func (c *staffController) Deactivate(ctx *fiber.Ctx) error {
	employeeCode := ctx.Params("employeeCode")

	if err := c.staffService.SetInactive(ctx.Context(), employeeCode); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Staff member deactivated", nil))
}

func (c *staffController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.staffService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff members retrieved", res))
}

func (c *staffController) GetActive(ctx *fiber.Ctx) error {
	res, err := c.staffService.GetActive(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff members retrieved", res))
}

// GetNew lists active staff whose employment started within the last year.
func (c *staffController) GetNew(ctx *fiber.Ctx) error {
	res, err := c.staffService.GetNew(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff members retrieved", res))
}

func (c *staffController) GetRetired(ctx *fiber.Ctx) error {
	res, err := c.staffService.GetRetired(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff members retrieved", res))
}

func (c *staffController) GetByEmployeeCode(ctx *fiber.Ctx) error {
	employeeCode := ctx.Params("employeeCode")
	res, err := c.staffService.GetByEmployeeCode(ctx.Context(), employeeCode)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff member retrieved", res))
}

func (c *staffController) GetAdmins(ctx *fiber.Ctx) error {
	res, err := c.staffService.GetAdmins(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Administrators retrieved", res))
}

func (c *staffController) CountAll(ctx *fiber.Ctx) error {
	count, err := c.staffService.CountAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff count retrieved", dto.StaffCountResponse{Count: count}))
}

func (c *staffController) CountByGender(ctx *fiber.Ctx) error {
	count, err := c.staffService.CountByGender(ctx.Context(), ctx.Params("gender"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff count retrieved", dto.StaffCountResponse{Count: count}))
}

func (c *staffController) CountByCategory(ctx *fiber.Ctx) error {
	count, err := c.staffService.CountByEmploymentCategory(ctx.Context(), ctx.Params("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff count retrieved", dto.StaffCountResponse{Count: count}))
}

func (c *staffController) CountByStatus(ctx *fiber.Ctx) error {
	count, err := c.staffService.CountByEmploymentStatus(ctx.Context(), ctx.Params("status"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff count retrieved", dto.StaffCountResponse{Count: count}))
}

func (c *staffController) CountByServicePlan(ctx *fiber.Ctx) error {
	count, err := c.staffService.CountByServicePlan(ctx.Context(), ctx.Params("plan"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff count retrieved", dto.StaffCountResponse{Count: count}))
}

func (c *staffController) ImportTempRecords(ctx *fiber.Ctx) error {
	res, err := c.staffService.ImportTempRecords(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff import finished", res))
}
