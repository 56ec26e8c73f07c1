package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/role"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/serverutils"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/service"
)

type IAllocationController interface {
	RegisterRoutes(r fiber.Router)
	GetAvailableBudget(ctx *fiber.Ctx) error
	GetStaffAirtime(ctx *fiber.Ctx) error
	GetContracts(ctx *fiber.Ctx) error
}

type allocationController struct {
	allocationService service.IAllocationService
	jwt               fiber.Handler
}

func NewAllocationController(allocationService service.IAllocationService, jwt fiber.Handler) IAllocationController {
	return &allocationController{
		allocationService: allocationService,
		jwt:               jwt,
	}
}

// RegisterRoutes mounts the budget endpoints under the staff prefix. The jwt
// handler is chained per route because the staff controller already guards
// the same group prefix.
func (c *allocationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/staff")

	h.Get("/allocation/handset/:employeeCode", c.jwt, serverutils.RequireRoles(role.AllStaff()...), c.GetStaffAirtime)
	h.Get("/allocation/:employeeCode", c.jwt, serverutils.RequireRoles(role.AllStaff()...), c.GetAvailableBudget)
	h.Get("/contracts/:employeeCode", c.jwt, serverutils.RequireRoles(role.AllStaff()...), c.GetContracts)
}

// GetAvailableBudget reports the advisory airtime budget figure the contract
// form shows before signup.
func (c *allocationController) GetAvailableBudget(ctx *fiber.Ctx) error {
	employeeCode := ctx.Params("employeeCode")
	res, err := c.allocationService.ComputeAvailableBudget(ctx.Context(), employeeCode)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Available budget retrieved", res))
}

// GetStaffAirtime returns the staff row joined with its airtime tier, without
// the budget computation.
func (c *allocationController) GetStaffAirtime(ctx *fiber.Ctx) error {
	employeeCode := ctx.Params("employeeCode")
	res, err := c.allocationService.GetStaffAirtime(ctx.Context(), employeeCode)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff allocation retrieved", res))
}

func (c *allocationController) GetContracts(ctx *fiber.Ctx) error {
	employeeCode := ctx.Params("employeeCode")
	res, err := c.allocationService.GetContracts(ctx.Context(), employeeCode)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Contracts retrieved", res))
}
