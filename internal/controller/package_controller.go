package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/role"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/serverutils"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/service"
)

type IPackageController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetList(ctx *fiber.Ctx) error
	GetByID(ctx *fiber.Ctx) error
}

type packageController struct {
	packageService service.IPackageService
	jwt            fiber.Handler
}

func NewPackageController(packageService service.IPackageService, jwt fiber.Handler) IPackageController {
	return &packageController{
		packageService: packageService,
		jwt:            jwt,
	}
}

func (c *packageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/packages")
	h.Use(c.jwt)

	h.Post("/", serverutils.RequireRoles(role.Admin, role.BillingTeam), c.Create)
	h.Get("/", serverutils.RequireRoles(role.AllStaff()...), c.GetAll)
	h.Get("/list", serverutils.RequireRoles(role.AllStaff()...), c.GetList)
	h.Get("/:id", serverutils.RequireRoles(role.AllStaff()...), c.GetByID)
	h.Put("/:id", serverutils.RequireRoles(role.Admin, role.BillingTeam), c.Update)
	h.Delete("/:id", serverutils.RequireRoles(role.Admin, role.BillingTeam), c.Delete)
}

func (c *packageController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePackageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.packageService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Package created", res))
}

func (c *packageController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperror.Validation("invalid package id")
	}

	var req dto.UpdatePackageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.packageService.Update(ctx.Context(), uint(id), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Package updated", res))
}

func (c *packageController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperror.Validation("invalid package id")
	}

	if err := c.packageService.Delete(ctx.Context(), uint(id)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Package deleted", nil))
}

func (c *packageController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.packageService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Packages retrieved", res))
}

// GetList is the compact projection used by the contract signup form.
func (c *packageController) GetList(ctx *fiber.Ctx) error {
	res, err := c.packageService.GetListRows(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Packages retrieved", res))
}

func (c *packageController) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperror.Validation("invalid package id")
	}

	res, err := c.packageService.GetByID(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Package retrieved", res))
}
