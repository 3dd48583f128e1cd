package apiv1

import (
	"fmt"
	"time"

	"freelance-tracker-backend/controllers"
	xlsexport "freelance-tracker-backend/lib/export/xls"
	kanbanhandler "freelance-tracker-backend/lib/kanban"
	"freelance-tracker-backend/middleware"
	apimodels "freelance-tracker-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type kanbanApiController struct {
	controllers.BaseAPIController
}

func InitKanbanApiRouters(app *fiber.App) {
	controller := kanbanApiController{}
	app.Route("board", func(router fiber.Router) {
		router.Get("", controller.board)
		router.Get("export", controller.export)
	})
}

// @Summary Kanban board
// @Tags Board
// @Description Group active projects by current pipeline stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=kanbanapimodels.Board}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board [get]
func (c *kanbanApiController) board(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := kanbanhandler.Instance.BuildBoard(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export board to Excel
// @Tags Board
// @Description Download the kanban board as an xlsx file
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board/export [get]
func (c *kanbanApiController) export(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	board, err := kanbanhandler.Instance.BuildBoard(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	data, err := xlsexport.Instance.ExportBoard(board)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	fileName := fmt.Sprintf("board-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
