package apiv1

import (
	"fmt"
	"time"

	"freelance-tracker-backend/controllers"
	pdfexport "freelance-tracker-backend/lib/export/pdf"
	"freelance-tracker-backend/lib/pipeline"
	projecthandler "freelance-tracker-backend/lib/project"
	"freelance-tracker-backend/middleware"
	apimodels "freelance-tracker-backend/models/api"
	projectapimodels "freelance-tracker-backend/models/api/project"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type projectApiController struct {
	controllers.BaseAPIController
}

func InitProjectApiRouters(app *fiber.App) {
	controller := projectApiController{}
	app.Route("project", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Get("step/list", controller.stepList)
			idRouter.Get("current-step", controller.currentStep)
			idRouter.Put("transition", controller.transition)
			idRouter.Get("report", controller.report)
		})
	})
}

func projectErrStatus(err error) int {
	if errors.Is(err, pipeline.ErrProjectNotFound) || errors.Is(err, pipeline.ErrFromStepNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// @Summary List projects
// @Tags Project
// @Description List the freelance's projects
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]projectapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/project/list [get]
func (c *projectApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	list, err := projecthandler.Instance.List(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create project
// @Tags Project
// @Description Create a project, the first pipeline step is opened automatically
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		projectapimodels.ProjectData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/project [post]
func (c *projectApiController) create(ctx *fiber.Ctx) error {
	var payload projectapimodels.ProjectData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := projecthandler.Instance.Create(userID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get project
// @Tags Project
// @Description Get a project by id, client, source and ordered steps included
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"project id"
// @Success 200 {object} apimodels.Response{data=projectapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/project/{id} [get]
func (c *projectApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := projecthandler.Instance.GetByID(userID, id)
	if err != nil {
		return ctx.Status(projectErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update project
// @Tags Project
// @Description Update a project
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"project id"
// @Param	body				body		projectapimodels.ProjectData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/project/{id} [put]
func (c *projectApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload projectapimodels.ProjectData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err := projecthandler.Instance.Update(userID, id, payload); err != nil {
		return ctx.Status(projectErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete project
// @Tags Project
// @Description Delete a project and its steps
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"project id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/project/{id} [delete]
func (c *projectApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err := projecthandler.Instance.Delete(userID, id); err != nil {
		return ctx.Status(projectErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List project steps
// @Tags Project
// @Description List the interview steps of a project ordered by date
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"project id"
// @Success 200 {object} apimodels.Response{data=[]projectapimodels.StepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/project/{id}/step/list [get]
func (c *projectApiController) stepList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	list, err := projecthandler.Instance.StepList(userID, id)
	if err != nil {
		return ctx.Status(projectErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Current pipeline step
// @Tags Project
// @Description Get the step the project currently sits at, null when there are no steps
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"project id"
// @Success 200 {object} apimodels.Response{data=projectapimodels.StepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/project/{id}/current-step [get]
func (c *projectApiController) currentStep(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := pipeline.Instance.CurrentStage(userID, id)
	if err != nil {
		return ctx.Status(projectErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Move project to another stage
// @Tags Project
// @Description Validate the current step and open the target stage step
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"project id"
// @Param	body				body		projectapimodels.TransitionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=projectapimodels.StepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/project/{id}/transition [put]
func (c *projectApiController) transition(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload projectapimodels.TransitionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := pipeline.Instance.Transition(userID, id, payload)
	if err != nil {
		return ctx.Status(projectErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Project pipeline report
// @Tags Project
// @Description Download a PDF summary of the project pipeline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"project id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/project/{id}/report [get]
func (c *projectApiController) report(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	project, err := projecthandler.Instance.GetByID(userID, id)
	if err != nil {
		return ctx.Status(projectErrStatus(err)).JSON(apimodels.NewError(err.Error()))
	}
	data, err := pdfexport.Instance.ProjectReport(project)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	fileName := fmt.Sprintf("project-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
