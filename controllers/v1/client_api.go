package apiv1

import (
	"freelance-tracker-backend/controllers"
	clienthandler "freelance-tracker-backend/lib/client"
	contacthandler "freelance-tracker-backend/lib/contact"
	apimodels "freelance-tracker-backend/models/api"
	clientapimodels "freelance-tracker-backend/models/api/client"

	"github.com/gofiber/fiber/v2"
)

type clientApiController struct {
	controllers.BaseAPIController
}

func InitClientApiRouters(app *fiber.App) {
	controller := clientApiController{}
	app.Route("client", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Get("contact/list", controller.contactList)
		})
	})
}

// @Summary List clients
// @Tags Client
// @Description List clients with filtering and paging
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		clientapimodels.ClientFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/list [post]
func (c *clientApiController) list(ctx *fiber.Ctx) error {
	var payload clientapimodels.ClientFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := clienthandler.Instance.List(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create client
// @Tags Client
// @Description Create a client
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		clientapimodels.ClientData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client [post]
func (c *clientApiController) create(ctx *fiber.Ctx) error {
	var payload clientapimodels.ClientData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := clienthandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get client
// @Tags Client
// @Description Get a client by id, contacts included
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"client id"
// @Success 200 {object} apimodels.Response{data=clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id} [get]
func (c *clientApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := clienthandler.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update client
// @Tags Client
// @Description Update a client
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"client id"
// @Param	body				body		clientapimodels.ClientData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id} [put]
func (c *clientApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload clientapimodels.ClientData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := clienthandler.Instance.Update(id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete client
// @Tags Client
// @Description Delete a client
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"client id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id} [delete]
func (c *clientApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := clienthandler.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List client contacts
// @Tags Client
// @Description List the contacts attached to a client
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"client id"
// @Success 200 {object} apimodels.Response{data=[]clientapimodels.ContactView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id}/contact/list [get]
func (c *clientApiController) contactList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := contacthandler.Instance.ListByClient(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
