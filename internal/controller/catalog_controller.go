package controller

import (
	"knowex-be/internal/pkg/serverutils"
	"knowex-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	Channels(ctx *fiber.Ctx) error
	Datasets(ctx *fiber.Ctx) error
	Dataset(ctx *fiber.Ctx) error
	Records(ctx *fiber.Ctx) error
	TextSamples(ctx *fiber.Ctx) error
	SampleDatasets(ctx *fiber.Ctx) error
	KnowledgeBases(ctx *fiber.Ctx) error
	KnowledgeBase(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("channels", c.Channels)
	h.Get("datasets", c.Datasets)
	h.Get("datasets/:id", c.Dataset)
	h.Get("datasets/:id/records", c.Records)
	h.Get("datasets/:id/text/:column", c.TextSamples)
	h.Get("sample-datasets", c.SampleDatasets)
	h.Get("knowledge-bases", c.KnowledgeBases)
	h.Get("knowledge-bases/:id", c.KnowledgeBase)
}

func (c *catalogController) Channels(ctx *fiber.Ctx) error {
	res, err := c.service.Channels(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get channels", res))
}

func (c *catalogController) Datasets(ctx *fiber.Ctx) error {
	res, err := c.service.Datasets(ctx.Context(), ctx.Query("channel"), ctx.Query("search"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get datasets", res))
}

func (c *catalogController) Dataset(ctx *fiber.Ctx) error {
	res, err := c.service.Dataset(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dataset", res))
}

func (c *catalogController) Records(ctx *fiber.Ctx) error {
	res, err := c.service.Records(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dataset records", res))
}

func (c *catalogController) TextSamples(ctx *fiber.Ctx) error {
	res, err := c.service.TextSamples(ctx.Context(), ctx.Params("id"), ctx.Params("column"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get text samples", res))
}

func (c *catalogController) SampleDatasets(ctx *fiber.Ctx) error {
	res, err := c.service.SampleDatasets(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get sample datasets", res))
}

func (c *catalogController) KnowledgeBases(ctx *fiber.Ctx) error {
	res, err := c.service.KnowledgeBases(ctx.Context(), ctx.Query("search"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get knowledge bases", res))
}

func (c *catalogController) KnowledgeBase(ctx *fiber.Ctx) error {
	res, err := c.service.KnowledgeBase(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get knowledge base", res))
}
