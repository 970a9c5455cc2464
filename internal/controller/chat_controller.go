package controller

import (
	"knowex-be/internal/dto"
	"knowex-be/internal/pkg/serverutils"
	"knowex-be/internal/repository/memory"
	"knowex-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Conversation(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	repo    *memory.SessionRepository
}

func NewChatController(service service.IChatService, repo *memory.SessionRepository) IChatController {
	return &chatController{service: service, repo: repo}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.SessionMiddleware(c.repo))
	h.Get(":kbId/messages", c.Conversation)
	h.Post(":kbId/messages", c.Send)
	h.Delete(":kbId/messages", c.Clear)
}

func (c *chatController) Conversation(ctx *fiber.Ctx) error {
	res, err := c.service.Conversation(ctx.Context(), serverutils.CurrentSession(ctx), ctx.Params("kbId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get conversation", res))
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.SendChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Send(ctx.UserContext(), serverutils.CurrentSession(ctx), ctx.Params("kbId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) Clear(ctx *fiber.Ctx) error {
	res, err := c.service.Clear(ctx.Context(), serverutils.CurrentSession(ctx), ctx.Params("kbId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear conversation", res))
}
