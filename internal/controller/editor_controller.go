package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/YoussefAz2/elenashop-sub001/internal/dto"
	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/serverutils"
	"github.com/YoussefAz2/elenashop-sub001/internal/service"
)

type IEditorController interface {
	RegisterRoutes(r fiber.Router)
	Open(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
	SetOverride(ctx *fiber.Ctx) error
	ResetOverride(ctx *fiber.Ctx) error
	CopyStyle(ctx *fiber.Ctx) error
	PasteStyle(ctx *fiber.Ctx) error
	Undo(ctx *fiber.Ctx) error
	Redo(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	CloseSelection(ctx *fiber.Ctx) error
	Hover(ctx *fiber.Ctx) error
	Unhover(ctx *fiber.Ctx) error
	Bind(ctx *fiber.Ctx) error
}

type editorController struct {
	service service.IEditorService
}

func NewEditorController(service service.IEditorService) IEditorController {
	return &editorController{service: service}
}

// RegisterRoutes protects each route on its own; the socket below the
// same prefix authenticates through the query string instead.
func (c *editorController) RegisterRoutes(r fiber.Router) {
	auth := serverutils.JwtMiddleware
	h := r.Group("/editor/v1/:storeId")
	h.Post("session", auth, c.Open)
	h.Get("session", auth, c.Show)
	h.Delete("session", auth, c.Close)
	h.Put("overrides/:elementId", auth, c.SetOverride)
	h.Delete("overrides/:elementId", auth, c.ResetOverride)
	h.Post("overrides/:elementId/copy", auth, c.CopyStyle)
	h.Post("overrides/:elementId/paste", auth, c.PasteStyle)
	h.Post("undo", auth, c.Undo)
	h.Post("redo", auth, c.Redo)
	h.Put("selection", auth, c.Select)
	h.Delete("selection", auth, c.CloseSelection)
	h.Put("hover", auth, c.Hover)
	h.Delete("hover/:elementId", auth, c.Unhover)
	h.Post("bindings", auth, c.Bind)
}

func elementParam(ctx *fiber.Ctx) (string, error) {
	req := dto.ElementRequest{ElementId: ctx.Params("elementId")}
	if err := serverutils.ValidateRequest(req); err != nil {
		return "", err
	}
	return req.ElementId, nil
}

func (c *editorController) Open(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	var req dto.OpenSessionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
		}
	}

	res, err := c.service.Open(ctx.UserContext(), storeId, userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success open editor session", res))
}

func (c *editorController) Show(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Get(storeId, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get editor session", res))
}

func (c *editorController) Close(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Close(storeId, userId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success close editor session", nil))
}

func (c *editorController) SetOverride(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	var req dto.SetOverrideRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	req.ElementId = ctx.Params("elementId")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetOverride(storeId, userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set override", res))
}

// elementOp runs an operation that only needs the element id.
func (c *editorController) elementOp(ctx *fiber.Ctx, message string, op func(storeId, userId uuid.UUID, elementId string) (*dto.SessionResponse, error)) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}
	elementId, err := elementParam(ctx)
	if err != nil {
		return err
	}

	res, err := op(storeId, userId, elementId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *editorController) ResetOverride(ctx *fiber.Ctx) error {
	return c.elementOp(ctx, "Success reset override", c.service.ResetOverride)
}

func (c *editorController) CopyStyle(ctx *fiber.Ctx) error {
	return c.elementOp(ctx, "Success copy style", c.service.CopyStyle)
}

func (c *editorController) PasteStyle(ctx *fiber.Ctx) error {
	return c.elementOp(ctx, "Success paste style", c.service.PasteStyle)
}

func (c *editorController) Unhover(ctx *fiber.Ctx) error {
	return c.elementOp(ctx, "Success unhover element", c.service.Unhover)
}

func (c *editorController) Undo(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Undo(storeId, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success undo", res))
}

func (c *editorController) Redo(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Redo(storeId, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success redo", res))
}

func (c *editorController) Select(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	var req dto.SelectElementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Select(storeId, userId, req.Element.Normalize())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success select element", res))
}

func (c *editorController) CloseSelection(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.CloseSelection(storeId, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success close selection", res))
}

func (c *editorController) Hover(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	var req dto.SelectElementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Hover(storeId, userId, req.Element.Normalize())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success hover element", res))
}

func (c *editorController) Bind(ctx *fiber.Ctx) error {
	storeId, userId, err := identity(ctx)
	if err != nil {
		return err
	}

	var req dto.BindElementsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Bind(ctx.UserContext(), storeId, userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success bind elements", res))
}
