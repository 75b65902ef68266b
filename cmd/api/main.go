package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loanme-backend/internal/adapter/http"
	mid "loanme-backend/internal/adapter/middleware"
	"loanme-backend/internal/adapter/repository/mysql"
	"loanme-backend/internal/config"
	loanDomain "loanme-backend/internal/domain/loan"
	postDomain "loanme-backend/internal/domain/post"
	"loanme-backend/internal/infrastructure/cache"
	"loanme-backend/internal/infrastructure/db"
	"loanme-backend/internal/usecase/ledger"
	postuc "loanme-backend/internal/usecase/post"
	"loanme-backend/pkg/clock"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&loanDomain.Record{}, &mysql.Wallet{}, &postDomain.Post{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// Explicit wiring: every collaborator is passed in, nothing is global.
	records := mysql.NewRecordStore(gdb)
	guow := mysql.NewGormUoW(gdb, time.Duration(cfg.SettlementTimeoutS)*time.Second)
	ledgerUC := ledger.NewUsecase(records, guow, clock.System{})
	postUC := postuc.NewUsecase(mysql.NewPostRepository(gdb))

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(ledgerUC)
	ph := httpadp.NewPostHandler(postUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idemp := mid.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	e.POST("/loans", lh.CreateLoan, mid.RequireParty, idemp)
	e.GET("/loans/:loan_id", lh.GetLoan)
	e.POST("/loans/:loan_id/fund", lh.FundLoan, mid.RequireParty, idemp)
	e.POST("/loans/:loan_id/payments", lh.MakePayment, mid.RequireParty, idemp)

	e.POST("/posts", ph.CreatePost, mid.RequireParty, idemp)
	e.GET("/posts", ph.ListOpenPosts)
	e.GET("/posts/:post_id", ph.GetPost)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
