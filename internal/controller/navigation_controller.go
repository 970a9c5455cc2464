package controller

import (
	"knowex-be/internal/dto"
	"knowex-be/internal/pkg/serverutils"
	"knowex-be/pkg/navigation"

	"github.com/gofiber/fiber/v2"
)

type INavigationController interface {
	RegisterRoutes(r fiber.Router)
	Resolve(ctx *fiber.Ctx) error
}

type navigationController struct{}

func NewNavigationController() INavigationController {
	return &navigationController{}
}

func (c *navigationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/navigation/v1")
	h.Get("resolve", c.Resolve)
}

// Resolve maps a client path to the page it renders.
func (c *navigationController) Resolve(ctx *fiber.Ctx) error {
	var req dto.ResolveRouteRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.BadRequest("Invalid query", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resolve route", navigation.Resolve(req.Path)))
}
