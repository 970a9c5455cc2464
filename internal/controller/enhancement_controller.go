package controller

import (
	"knowex-be/internal/dto"
	"knowex-be/internal/pkg/serverutils"
	"knowex-be/internal/repository/memory"
	"knowex-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEnhancementController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	Techniques(ctx *fiber.Ctx) error
	SetActive(ctx *fiber.Ctx) error
	SetEnabled(ctx *fiber.Ctx) error
	UpdateConfig(ctx *fiber.Ctx) error
	Apply(ctx *fiber.Ctx) error
}

type enhancementController struct {
	service service.IEnhancementService
	repo    *memory.SessionRepository
}

func NewEnhancementController(service service.IEnhancementService, repo *memory.SessionRepository) IEnhancementController {
	return &enhancementController{service: service, repo: repo}
}

func (c *enhancementController) RegisterRoutes(r fiber.Router) {
	session := serverutils.SessionMiddleware(c.repo)

	h := r.Group("/enhancement/v1")
	h.Get("techniques", c.Techniques)
	h.Get("", session, c.State)
	h.Put("active", session, c.SetActive)
	h.Put("enabled", session, c.SetEnabled)
	h.Patch(":technique/config", session, c.UpdateConfig)
	h.Post(":technique/apply", session, c.Apply)
}

func (c *enhancementController) State(ctx *fiber.Ctx) error {
	res, err := c.service.State(ctx.Context(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get enhancement state", res))
}

func (c *enhancementController) Techniques(ctx *fiber.Ctx) error {
	res, err := c.service.Techniques(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get techniques", res))
}

func (c *enhancementController) SetActive(ctx *fiber.Ctx) error {
	var req dto.SetActiveTechniqueRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}

	res, err := c.service.SetActive(ctx.Context(), serverutils.CurrentSession(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set active technique", res))
}

func (c *enhancementController) SetEnabled(ctx *fiber.Ctx) error {
	var req dto.SetEnhancementEnabledRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetEnabled(ctx.Context(), serverutils.CurrentSession(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set enhancement enabled", res))
}

func (c *enhancementController) UpdateConfig(ctx *fiber.Ctx) error {
	var req dto.UpdateTechniqueConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateConfig(ctx.Context(), serverutils.CurrentSession(ctx), ctx.Params("technique"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update technique config", res))
}

func (c *enhancementController) Apply(ctx *fiber.Ctx) error {
	res, err := c.service.Apply(ctx.Context(), serverutils.CurrentSession(ctx), ctx.Params("technique"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Enhancement apply started", res))
}
