package main

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/go-dana/core-bank/pkg/configpkg"
	"github.com/go-dana/core-bank/pkg/currencypkg"
	"github.com/go-dana/core-bank/pkg/dbpkg"
	"github.com/go-dana/core-bank/pkg/tokenpkg"

	"github.com/go-dana/core-bank/internal/accountdelivery"
	"github.com/go-dana/core-bank/internal/accountrepo"
	"github.com/go-dana/core-bank/internal/accountservice"
	"github.com/go-dana/core-bank/internal/admindelivery"
	"github.com/go-dana/core-bank/internal/carddelivery"
	"github.com/go-dana/core-bank/internal/cardrepo"
	"github.com/go-dana/core-bank/internal/cardservice"
	"github.com/go-dana/core-bank/internal/interestservice"
	"github.com/go-dana/core-bank/internal/journalrepo"
	"github.com/go-dana/core-bank/internal/ledgerrepo"
	"github.com/go-dana/core-bank/internal/middleware"
	"github.com/go-dana/core-bank/internal/statementservice"
	"github.com/go-dana/core-bank/internal/sysconfigrepo"
	"github.com/go-dana/core-bank/internal/transferdelivery"
	"github.com/go-dana/core-bank/internal/transferservice"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	server, sweeper, err := createServer(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	scheduler, err := scheduleSweep(sweeper, logger, config.InterestSweepSpec)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot schedule interest sweep")
	}

	scheduler.Start()
	defer scheduler.Stop()

	err = server.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

// scheduleSweep registers the monthly interest sweep on a cron scheduler.
// An overlapping run fails fast inside the service, so a slow sweep never
// stacks up.
func scheduleSweep(sweeper *interestservice.Service, logger zerolog.Logger, spec string) (*cron.Cron, error) {
	scheduler := cron.New()

	_, err := scheduler.AddFunc(spec, func() {
		ctx := logger.WithContext(context.Background())

		if _, err := sweeper.ApplyMonthlyInterest(ctx); err != nil {
			logger.Error().Err(err).Msg("scheduled interest sweep failed")
		}
	})
	if err != nil {
		return nil, err
	}

	return scheduler, nil
}

func createServer(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*gin.Engine, *interestservice.Service, error) {
	accountRepo := accountrepo.NewRepoPGS(conn)
	cardRepo := cardrepo.NewRepoPGS(conn)
	journalRepo := journalrepo.NewRepoPGS(conn)
	sysconfigRepo := sysconfigrepo.NewRepoPGS(conn)
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewJWTMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, nil, errors.New("cannot create token maker")
	}

	converter := currencypkg.NewConverter(currencypkg.DefaultTable())

	accountService := accountservice.New(accountRepo, ledgerRepo, journalRepo, sysconfigRepo)
	transferService := transferservice.New(ledgerRepo, accountRepo, converter)
	cardService := cardservice.New(cardRepo, ledgerRepo, accountRepo, converter)
	statementService := statementservice.New(cardRepo, journalRepo, ledgerRepo, converter)
	interestService := interestservice.New(accountRepo, ledgerRepo)

	accountHandler := accountdelivery.NewHandler(accountService)
	transferHandler := transferdelivery.NewHandler(transferService)
	cardHandler := carddelivery.NewHandler(cardService, statementService)
	adminHandler := admindelivery.NewHandler(sysconfigRepo, interestService, journalRepo)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(gin.Recovery())

	authRoutes := server.Group("/").Use(middleware.Auth(tokenMaker))

	authRoutes.POST("/accounts", accountHandler.Create)
	authRoutes.GET("/accounts/:id", accountHandler.Get)
	authRoutes.GET("/accounts", accountHandler.List)
	authRoutes.DELETE("/accounts/:id", accountHandler.Delete)
	authRoutes.POST("/accounts/:id/deposits", accountHandler.Deposit)
	authRoutes.POST("/accounts/:id/withdrawals", accountHandler.Withdraw)
	authRoutes.GET("/accounts/:id/transactions", accountHandler.Transactions)

	authRoutes.POST("/transfers", transferHandler.Create)

	authRoutes.POST("/cards", cardHandler.Create)
	authRoutes.GET("/cards/:id", cardHandler.Get)
	authRoutes.GET("/cards", cardHandler.List)
	authRoutes.POST("/cards/:id/charges", cardHandler.Charge)
	authRoutes.POST("/cards/:id/payments", cardHandler.Pay)
	authRoutes.POST("/cards/:id/funds", cardHandler.AddFunds)
	authRoutes.GET("/cards/:id/statement", cardHandler.Statement)
	authRoutes.DELETE("/cards/:id", cardHandler.Delete)

	adminRoutes := server.Group("/admin").
		Use(middleware.Auth(tokenMaker)).
		Use(middleware.RequireAdmin())

	adminRoutes.GET("/config", adminHandler.GetConfig)
	adminRoutes.PATCH("/config", adminHandler.UpdateConfig)
	adminRoutes.PUT("/accounts/:id/balance", accountHandler.UpdateBalance)
	adminRoutes.POST("/interest-sweep", adminHandler.RunInterestSweep)
	adminRoutes.GET("/transactions/:id", adminHandler.GetTransaction)
	adminRoutes.POST("/cards/:id/interest", cardHandler.ApplyInterest)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("currency", accountdelivery.ValidCurrency)
		if err != nil {
			return nil, nil, errors.New("cannot register currency validator")
		}
	}

	return server, interestService, nil
}
