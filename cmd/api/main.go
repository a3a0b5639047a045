package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "lexcase-backend/internal/adapter/http"
	"lexcase-backend/internal/adapter/middleware"
	"lexcase-backend/internal/adapter/renderer/browserpdf"
	"lexcase-backend/internal/adapter/renderer/docxtpl"
	"lexcase-backend/internal/adapter/repository/sqldb"
	"lexcase-backend/internal/config"
	"lexcase-backend/internal/domain/casefile"
	"lexcase-backend/internal/infrastructure/cache"
	"lexcase-backend/internal/infrastructure/db"
	casefileuc "lexcase-backend/internal/usecase/casefile"
	"lexcase-backend/internal/usecase/document"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := gdb.AutoMigrate(&casefile.CaseFile{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	repo := sqldb.NewCaseFileRepository(gdb)
	files := casefileuc.NewUsecase(repo)
	docs := document.NewService(repo, browserpdf.New(), docxtpl.New(), cfg.TemplatesDir, cfg.GeneratedDir)

	h := httpadp.NewHandler()
	fh := httpadp.NewCaseFileHandler(files)
	dh := httpadp.NewDocumentHandler(docs)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idem := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	fg := e.Group("/files", idem)
	fg.POST("", fh.Create)
	fg.GET("", fh.List)
	fg.GET("/statistics", fh.Statistics)
	fg.GET("/search/esas/:esasNo", fh.FindByEsasNo)
	fg.GET("/search/hukuk/:hukukNo", fh.FindByHukukNo)
	fg.GET("/search/plaka/:plaka", fh.FindByPlaka)
	fg.GET("/:foyNo", fh.Get)
	fg.PATCH("/:foyNo", fh.Update)
	fg.DELETE("/:foyNo", fh.Delete)

	dg := e.Group("/documents", idem)
	dg.GET("/generate/html/:foyNo", dh.GenerateHTML)
	dg.GET("/generate/pdf/:foyNo", dh.GeneratePDF)
	dg.POST("/generate/word/:foyNo", dh.GenerateWord)
	dg.POST("/update/html/:foyNo", dh.UpdateHTML)

	go func() {
		addr := ":" + cfg.AppPort
		log.Printf("listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rdb.Close()
}
