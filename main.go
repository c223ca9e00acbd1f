package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pos-backend/configs"
	"pos-backend/pkg/logger"
	"pos-backend/routes"
	"pos-backend/ws"

	"github.com/gin-gonic/gin"
)

const shutdownGrace = 10 * time.Second

func main() {
	cfg := configs.LoadConfig()
	gin.SetMode(cfg.GinMode)

	log := logger.New("pos-backend", logger.ParseLevel(cfg.LogLevel), os.Stdout)

	// DB
	db, err := configs.ConnectionDB(cfg)
	if err != nil {
		log.Error("startup", "", "connect database failed", err)
		os.Exit(1)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Error("startup", "", "migrate failed", err)
		os.Exit(1)
	}
	if err := configs.SeedAdmin(db, cfg, log); err != nil {
		log.Error("startup", "", "seed admin failed", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Order board
	hub := ws.NewOrderHub(log)
	go hub.Run(ctx)

	// HTTP
	r := routes.NewRouter(routes.Deps{DB: db, Config: cfg, Log: log, Hub: hub})

	addr := fmt.Sprintf(":%s", cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("startup", "", "listen failed", err)
		os.Exit(1)
	}

	// a second signal kills the process the default way
	go func() {
		<-ctx.Done()
		stop()
		log.Info("shutdown", "", "signal received, draining requests")
	}()

	log.Info("startup", "", "server running at "+addr)
	if err := routes.Serve(ctx, ln, r, shutdownGrace); err != nil {
		log.Error("shutdown", "", "server stopped", err)
		os.Exit(1)
	}
	log.Info("shutdown", "", "server stopped")
}
