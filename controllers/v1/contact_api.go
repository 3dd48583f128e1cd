package apiv1

import (
	"freelance-tracker-backend/controllers"
	contacthandler "freelance-tracker-backend/lib/contact"
	apimodels "freelance-tracker-backend/models/api"
	clientapimodels "freelance-tracker-backend/models/api/client"

	"github.com/gofiber/fiber/v2"
)

type contactApiController struct {
	controllers.BaseAPIController
}

func InitContactApiRouters(app *fiber.App) {
	controller := contactApiController{}
	app.Route("contact", func(router fiber.Router) {
		router.Get("find", controller.findByEmail)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
		})
	})
}

// @Summary Create contact
// @Tags Contact
// @Description Create a contact attached to a client
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		clientapimodels.ContactData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contact [post]
func (c *contactApiController) create(ctx *fiber.Ctx) error {
	var payload clientapimodels.ContactData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := contacthandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get contact
// @Tags Contact
// @Description Get a contact by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"contact id"
// @Success 200 {object} apimodels.Response{data=clientapimodels.ContactView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contact/{id} [get]
func (c *contactApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := contacthandler.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update contact
// @Tags Contact
// @Description Update a contact
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"contact id"
// @Param	body				body		clientapimodels.ContactData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contact/{id} [put]
func (c *contactApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload clientapimodels.ContactData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := contacthandler.Instance.Update(id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete contact
// @Tags Contact
// @Description Delete a contact
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"contact id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contact/{id} [delete]
func (c *contactApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := contacthandler.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Find contact by email
// @Tags Contact
// @Description Find a contact by exact email match
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   email	query	string	true	"contact email"
// @Success 200 {object} apimodels.Response{data=clientapimodels.ContactView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contact/find [get]
func (c *contactApiController) findByEmail(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("email is required"))
	}
	resp, err := contacthandler.Instance.FindByEmail(email)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
