package apiv1

import (
	"freelance-tracker-backend/controllers"
	sourcehandler "freelance-tracker-backend/lib/source"
	apimodels "freelance-tracker-backend/models/api"
	sourceapimodels "freelance-tracker-backend/models/api/source"

	"github.com/gofiber/fiber/v2"
)

type sourceApiController struct {
	controllers.BaseAPIController
}

func InitSourceApiRouters(app *fiber.App) {
	controller := sourceApiController{}
	app.Route("source", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
		})
	})
}

// @Summary List sources
// @Tags Source
// @Description List all sourcing channels
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]sourceapimodels.SourceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/source/list [get]
func (c *sourceApiController) list(ctx *fiber.Ctx) error {
	list, err := sourcehandler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create source
// @Tags Source
// @Description Create a sourcing channel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		sourceapimodels.SourceData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/source [post]
func (c *sourceApiController) create(ctx *fiber.Ctx) error {
	var payload sourceapimodels.SourceData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := sourcehandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get source
// @Tags Source
// @Description Get a sourcing channel by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"source id"
// @Success 200 {object} apimodels.Response{data=sourceapimodels.SourceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/source/{id} [get]
func (c *sourceApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := sourcehandler.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update source
// @Tags Source
// @Description Update a sourcing channel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"source id"
// @Param	body				body		sourceapimodels.SourceData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/source/{id} [put]
func (c *sourceApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload sourceapimodels.SourceData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := sourcehandler.Instance.Update(id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete source
// @Tags Source
// @Description Delete a sourcing channel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"source id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/source/{id} [delete]
func (c *sourceApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := sourcehandler.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
