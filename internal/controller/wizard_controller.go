package controller

import (
	"io"

	"knowex-be/internal/dto"
	"knowex-be/internal/pkg/serverutils"
	"knowex-be/internal/repository/memory"
	"knowex-be/internal/service"
	"knowex-be/pkg/dataset"
	"knowex-be/pkg/wizard"

	"github.com/gofiber/fiber/v2"
)

const uploadFormField = "file"

type IWizardController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	GoToStep(ctx *fiber.Ctx) error
	SetTab(ctx *fiber.Ctx) error
	NextTab(ctx *fiber.Ctx) error
	PreviousTab(ctx *fiber.Ctx) error
	SetSource(ctx *fiber.Ctx) error
	SelectDataset(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	RemoveUpload(ctx *fiber.Ctx) error
	Columns(ctx *fiber.Ctx) error
	ToggleColumn(ctx *fiber.Ctx) error
	Build(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	Visualizations(ctx *fiber.Ctx) error
}

type wizardController struct {
	service service.IWizardService
	repo    *memory.SessionRepository
}

func NewWizardController(service service.IWizardService, repo *memory.SessionRepository) IWizardController {
	return &wizardController{service: service, repo: repo}
}

func (c *wizardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wizard/v1")
	h.Use(serverutils.SessionMiddleware(c.repo))
	h.Get("", c.State)
	h.Put("step", c.GoToStep)
	h.Put("tab", c.SetTab)
	h.Post("tab/next", c.NextTab)
	h.Post("tab/previous", c.PreviousTab)
	h.Put("source", c.SetSource)
	h.Put("dataset", c.SelectDataset)
	h.Post("upload", c.Upload)
	h.Delete("upload", c.RemoveUpload)
	h.Get("columns", c.Columns)
	h.Post("columns/:name/toggle", c.ToggleColumn)
	h.Post("build", c.Build)
	h.Post("build/refresh", c.Refresh)
	h.Get("visualizations", c.Visualizations)
}

func (c *wizardController) State(ctx *fiber.Ctx) error {
	res, err := c.service.State(ctx.Context(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get wizard state", res))
}

func (c *wizardController) GoToStep(ctx *fiber.Ctx) error {
	var req dto.GoToStepRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GoToStep(ctx.Context(), serverutils.CurrentSession(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success go to step", res))
}

func (c *wizardController) SetTab(ctx *fiber.Ctx) error {
	var req dto.SetTabRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetTab(ctx.Context(), serverutils.CurrentSession(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set tab", res))
}

func (c *wizardController) NextTab(ctx *fiber.Ctx) error {
	res, err := c.service.NextTab(ctx.Context(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success next tab", res))
}

func (c *wizardController) PreviousTab(ctx *fiber.Ctx) error {
	res, err := c.service.PreviousTab(ctx.Context(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success previous tab", res))
}

func (c *wizardController) SetSource(ctx *fiber.Ctx) error {
	var req dto.SetSourceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetSource(ctx.Context(), serverutils.CurrentSession(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set dataset source", res))
}

func (c *wizardController) SelectDataset(ctx *fiber.Ctx) error {
	var req dto.SelectDatasetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}

	res, err := c.service.SelectDataset(ctx.Context(), serverutils.CurrentSession(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success select dataset", res))
}

func (c *wizardController) Upload(ctx *fiber.Ctx) error {
	header, err := ctx.FormFile(uploadFormField)
	if err != nil {
		return serverutils.BadRequest("Missing file field 'file'", err)
	}
	if err := dataset.ValidateFileName(header.Filename); err != nil {
		return err
	}

	f, err := header.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	res, err := c.service.Upload(ctx.Context(), serverutils.CurrentSession(ctx), &wizard.UploadedFile{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload dataset", res))
}

func (c *wizardController) RemoveUpload(ctx *fiber.Ctx) error {
	res, err := c.service.RemoveUpload(ctx.Context(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove upload", res))
}

func (c *wizardController) Columns(ctx *fiber.Ctx) error {
	res, err := c.service.Columns(ctx.Context(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get columns", res))
}

func (c *wizardController) ToggleColumn(ctx *fiber.Ctx) error {
	res, err := c.service.ToggleColumn(ctx.Context(), serverutils.CurrentSession(ctx), ctx.Params("name"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle column", res))
}

func (c *wizardController) Build(ctx *fiber.Ctx) error {
	res, err := c.service.Build(ctx.Context(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Knowledge store build started", res))
}

func (c *wizardController) Refresh(ctx *fiber.Ctx) error {
	res, err := c.service.Refresh(ctx.Context(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Visualization refresh started", res))
}

func (c *wizardController) Visualizations(ctx *fiber.Ctx) error {
	res, err := c.service.Visualizations(ctx.Context(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get visualizations", res))
}
