package apiv1

import (
	"io"

	"freelance-tracker-backend/controllers"
	filestorage "freelance-tracker-backend/lib/file-storage"
	usershandler "freelance-tracker-backend/lib/users"
	"freelance-tracker-backend/middleware"
	apimodels "freelance-tracker-backend/models/api"
	userapimodels "freelance-tracker-backend/models/api/user"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	uploadLimit := middleware.WithBodyLimit(10 * 1024 * 1024)
	app.Route("profile", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Put("", controller.update)
		router.Post("upload-avatar", uploadLimit, controller.uploadAvatar)
		router.Get("avatar", controller.getAvatar)
		router.Post("upload-cv", uploadLimit, controller.uploadCV)
		router.Get("cv", controller.getCV)
	})
}

// @Summary Get profile
// @Tags Profile
// @Description Get the freelance profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=userapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := usershandler.Instance.GetProfile(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update profile
// @Tags Profile
// @Description Update the freelance profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		userapimodels.ProfileUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [put]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	var payload userapimodels.ProfileUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err := usershandler.Instance.UpdateProfile(userID, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload avatar
// @Tags Profile
// @Description Upload the profile avatar
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   avatar		formData	file 	true 	"file to upload"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/upload-avatar [post]
func (c *userApiController) uploadAvatar(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("avatar")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open avatar file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read avatar file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	err = filestorage.Instance.UploadAvatar(ctx.UserContext(), userID, fileBody, file.Filename)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download avatar
// @Tags Profile
// @Description Download the profile avatar
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/avatar [get]
func (c *userApiController) getAvatar(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	body, file, err := filestorage.Instance.GetAvatar(ctx.UserContext(), userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if file.ContentType != "" {
		ctx.Set("Content-Type", file.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+file.Name+`"`)
	return ctx.Send(body)
}

// @Summary Upload CV
// @Tags Profile
// @Description Upload the freelance CV
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   cv		formData	file 	true 	"file to upload"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/upload-cv [post]
func (c *userApiController) uploadCV(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("cv")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open cv file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read cv file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	err = filestorage.Instance.UploadCV(ctx.UserContext(), userID, fileBody, file.Filename)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download CV
// @Tags Profile
// @Description Download the freelance CV
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/cv [get]
func (c *userApiController) getCV(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	body, file, err := filestorage.Instance.GetCV(ctx.UserContext(), userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if file.ContentType != "" {
		ctx.Set("Content-Type", file.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+file.Name+`"`)
	return ctx.Send(body)
}
