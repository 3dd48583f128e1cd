package apiv1

import (
	"freelance-tracker-backend/controllers"
	"freelance-tracker-backend/lib/pipeline"
	apimodels "freelance-tracker-backend/models/api"
	projectapimodels "freelance-tracker-backend/models/api/project"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type stepApiController struct {
	controllers.BaseAPIController
}

func InitStepApiRouters(app *fiber.App) {
	controller := stepApiController{}
	app.Route("step", func(router fiber.Router) {
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Delete("", controller.delete)
			idRouter.Put("schedule", controller.schedule)
			idRouter.Put("waiting-feedback", controller.waitingFeedback)
			idRouter.Put("validate", controller.validate)
			idRouter.Put("fail", controller.fail)
			idRouter.Put("cancel", controller.cancel)
			idRouter.Put("status", controller.status)
		})
	})
}

func stepErrStatus(err error) int {
	if errors.Is(err, pipeline.ErrStepNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// @Summary Get step
// @Tags Interview step
// @Description Get an interview step by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"step id"
// @Success 200 {object} apimodels.Response{data=projectapimodels.StepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/step/{id} [get]
func (c *stepApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipeline.Instance.GetStep(id)
	if err != nil {
		return ctx.Status(stepErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete step
// @Tags Interview step
// @Description Delete an interview step
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"step id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/step/{id} [delete]
func (c *stepApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := pipeline.Instance.DeleteStep(id); err != nil {
		return ctx.Status(stepErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Schedule step
// @Tags Interview step
// @Description Set the interview date, the step becomes planned
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"step id"
// @Param	body				body		projectapimodels.ScheduleRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=projectapimodels.StepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/step/{id}/schedule [put]
func (c *stepApiController) schedule(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload projectapimodels.ScheduleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipeline.Instance.Schedule(id, payload.Date)
	if err != nil {
		return ctx.Status(stepErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Mark step waiting for feedback
// @Tags Interview step
// @Description The interview took place, waiting for the client's decision
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"step id"
// @Success 200 {object} apimodels.Response{data=projectapimodels.StepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/step/{id}/waiting-feedback [put]
func (c *stepApiController) waitingFeedback(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipeline.Instance.MarkWaitingFeedback(id)
	if err != nil {
		return ctx.Status(stepErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Validate step
// @Tags Interview step
// @Description Mark the step as passed
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"step id"
// @Success 200 {object} apimodels.Response{data=projectapimodels.StepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/step/{id}/validate [put]
func (c *stepApiController) validate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipeline.Instance.MarkValidated(id)
	if err != nil {
		return ctx.Status(stepErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Fail step
// @Tags Interview step
// @Description Mark the step as failed
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"step id"
// @Success 200 {object} apimodels.Response{data=projectapimodels.StepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/step/{id}/fail [put]
func (c *stepApiController) fail(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipeline.Instance.MarkFailed(id)
	if err != nil {
		return ctx.Status(stepErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Cancel step
// @Tags Interview step
// @Description Mark the step as canceled
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"step id"
// @Success 200 {object} apimodels.Response{data=projectapimodels.StepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/step/{id}/cancel [put]
func (c *stepApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipeline.Instance.MarkCanceled(id)
	if err != nil {
		return ctx.Status(stepErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Set step status
// @Tags Interview step
// @Description Set an arbitrary valid status on a step
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"step id"
// @Param	body				body		projectapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=projectapimodels.StepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/step/{id}/status [put]
func (c *stepApiController) status(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload projectapimodels.StatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipeline.Instance.UpdateStatus(id, payload.Status)
	if err != nil {
		return ctx.Status(stepErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
