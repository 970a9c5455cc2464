package controller

import (
	"knowex-be/internal/pkg/serverutils"
	"knowex-be/internal/repository/memory"
	"knowex-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
	repo    *memory.SessionRepository
}

func NewSessionController(service service.ISessionService, repo *memory.SessionRepository) ISessionController {
	return &sessionController{service: service, repo: repo}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Post("", c.Create)
	h.Get("", serverutils.SessionMiddleware(c.repo), c.Show)
	h.Delete("", serverutils.SessionMiddleware(c.repo), c.Delete)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	res, err := c.service.Create(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.Context(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *sessionController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.Context(), serverutils.CurrentSession(ctx)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}
