package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/YoussefAz2/elenashop-sub001/internal/dto"
	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/serverutils"
	"github.com/YoussefAz2/elenashop-sub001/internal/service"
)

type IThemeController interface {
	RegisterRoutes(r fiber.Router)
	Palettes(ctx *fiber.Ctx) error
	Typography(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	ApplyPalette(ctx *fiber.Ctx) error
	ApplyTypography(ctx *fiber.Ctx) error
}

type themeController struct {
	service service.IThemeService
}

func NewThemeController(service service.IThemeService) IThemeController {
	return &themeController{service: service}
}

func (c *themeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/themes/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("palettes", c.Palettes)
	h.Get("typography", c.Typography)
	h.Get("", c.List)
	h.Get(":storeId", c.Show)
	h.Put(":storeId", c.Update)
	h.Post(":storeId/reset", c.Reset)
	h.Post(":storeId/palette", c.ApplyPalette)
	h.Post(":storeId/typography", c.ApplyTypography)
}

// identity extracts the caller and the store of the route.
func identity(ctx *fiber.Ctx) (storeId, userId uuid.UUID, err error) {
	storeId, err = uuid.Parse(ctx.Params("storeId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid store id")
	}
	userIdStr, _ := ctx.Locals(serverutils.UserIDKey).(string)
	userId, err = uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id")
	}
	return storeId, userId, nil
}

func (c *themeController) Palettes(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get palettes", c.service.ListPalettes()))
}

func (c *themeController) Typography(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get typography presets", c.service.ListTypography()))
}

func (c *themeController) List(ctx *fiber.Ctx) error {
	var req dto.ListThemesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list themes", res))
}

func (c *themeController) Show(ctx *fiber.Ctx) error {
	storeId, _, err := identity(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), storeId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get theme", res))
}

func (c *themeController) Update(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateThemeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), storeId, userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update theme", res))
}

func (c *themeController) Reset(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Reset(ctx.UserContext(), storeId, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success reset theme", res))
}

func (c *themeController) ApplyPalette(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	var req dto.ApplyPaletteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ApplyPalette(ctx.UserContext(), storeId, userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success apply palette", res))
}

func (c *themeController) ApplyTypography(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	var req dto.ApplyTypographyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ApplyTypography(ctx.UserContext(), storeId, userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success apply typography", res))
}
