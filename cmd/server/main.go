package main

import (
	"flag"
	"log/slog"
	"os"

	"hr-admin/internal/config"
	"hr-admin/internal/handler"
	"hr-admin/internal/logger"
	"hr-admin/internal/model"
	"hr-admin/internal/service"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("db handle failed", "err", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	err = db.AutoMigrate(
		&model.User{},
		&model.Employee{},
		&model.Candidate{},
		&model.Leave{},
		&model.Attendance{},
	)
	if err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	tokens := service.NewTokenService(cfg.Auth.JWTSecret)
	r := handler.NewRouter(db, tokens)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
