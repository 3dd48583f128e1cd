package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"freelance-tracker-backend/config"
	apiv1 "freelance-tracker-backend/controllers/v1"
	"freelance-tracker-backend/fiberlog"
	"freelance-tracker-backend/initializers"
	"freelance-tracker-backend/lib/ws"
	"freelance-tracker-backend/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // limit of 20MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//websocket push
	wsApp := fiber.New()
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)
	app.Mount("/ws", wsApp)

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)

	//everything below requires a valid token
	private := fiber.New()
	apiV1.Mount("/", private)
	private.Use(middleware.AuthorizationRequired())
	apiv1.InitUserApiRouters(private)
	apiv1.InitClientApiRouters(private)
	apiv1.InitContactApiRouters(private)
	apiv1.InitSourceApiRouters(private)
	apiv1.InitProjectApiRouters(private)
	apiv1.InitStepApiRouters(private)
	apiv1.InitKanbanApiRouters(private)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
