package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"parking-service/config"
	"parking-service/internal/module/parking/fees"
	"parking-service/internal/module/parking/handler"
	"parking-service/internal/module/parking/repositories"
	"parking-service/internal/module/parking/usecases"
	"parking-service/internal/pkg/database"
	"parking-service/internal/pkg/http"
	log_internal "parking-service/internal/pkg/log"
	"parking-service/internal/pkg/messagestream"
	"parking-service/internal/pkg/middleware"
	"parking-service/internal/pkg/redis"
	"parking-service/internal/pkg/scheduler"
	router "parking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/go-redsync/redsync/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
)

type service struct {
	app            *fiber.App
	messageRouters []*message.Router
	scheduler      *scheduler.Scheduler
	asynqClient    *asynq.Client
	db             *sqlx.DB
}

func main() {
	cfg := config.InitConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := initService(ctx, cfg)
	logger := log_internal.GetLogger()

	for _, router := range svc.messageRouters {
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	go func() {
		if err := http.StartHttpServer(svc.app, cfg.HttpServer.Port); err != nil {
			log.Fatal(err)
		}
	}()
	logger.Info(ctx, "http server listening on :"+cfg.HttpServer.Port)

	<-ctx.Done()
	logger.Info(context.Background(), "shutting down")

	if err := svc.app.ShutdownWithTimeout(cfg.HttpServer.ShutdownTimeout); err != nil {
		logger.Error(context.Background(), "error shutdown http server", err)
	}
	for _, router := range svc.messageRouters {
		if err := router.Close(); err != nil {
			logger.Error(context.Background(), "error close message router", err)
		}
	}
	if svc.scheduler != nil {
		svc.scheduler.Shutdown()
	}
	if svc.asynqClient != nil {
		svc.asynqClient.Close()
	}
	svc.db.Close()
}

func initService(ctx context.Context, cfg *config.Config) *service {
	// init logger
	logZap := log_internal.SetupLogger(cfg.Log.Level)
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()

	// init database
	db := database.GetConnection(&cfg.Database)

	// init redis, scheduler client and slot locks
	var (
		rs          *redsync.Redsync
		asynqClient *asynq.Client
		sched       *scheduler.Scheduler
	)
	if cfg.Redis.Enabled {
		redisClient := redis.SetupClient(&cfg.Redis)
		rs = redis.SetupRedsync(redisClient)
		sched = &scheduler.Scheduler{Log: logger}
		asynqClient = sched.InitClient(&cfg.Redis)
	}

	// init message stream
	stream, err := messagestream.New(&cfg.MessageStream)
	if err != nil {
		log.Fatalf("error init message stream: %v", err)
	}

	// Init Subscriber
	subscriber, err := stream.NewSubscriber()
	if err != nil {
		log.Fatalf("error create subscriber: %v", err)
	}

	// Init Publisher
	publisher, err := stream.NewPublisher()
	if err != nil {
		log.Fatalf("error create publisher: %v", err)
	}

	policy := fees.Policy{
		RatePerHour: cfg.Parking.RatePerHour,
		GracePeriod: cfg.Parking.GracePeriod,
	}
	layout := usecases.Layout{
		CarSlots:  cfg.Parking.CarSlots,
		BikeSlots: cfg.Parking.BikeSlots,
	}

	parkingRepo := repositories.New(db, logger, asynqClient, rs, cfg.Redis.LockExpiry)
	parkingUsecase := usecases.New(parkingRepo, logger, publisher, policy, layout, nil)

	if _, err := parkingUsecase.Provision(ctx); err != nil {
		log.Fatalf("error provision parking slots: %v", err)
	}

	sessions := session.New(session.Config{
		Expiration: cfg.Admin.SessionExpiry,
	})

	otel := log_internal.Setup()
	m := middleware.Middleware{
		Log:            otel,
		Sessions:       sessions,
		AdminPassword:  cfg.Admin.Password,
		RequireSession: cfg.Admin.RequireSession,
	}

	validator := validator.New()
	parkingHandler := handler.ParkingHandler{
		Log:       otel,
		Validator: validator,
		Usecase:   parkingUsecase,
		Publish:   publisher,
		Sessions:  sessions,
	}

	var messageRouters []*message.Router

	ledgerAuditRouter, err := messagestream.NewRouter(publisher, messagestream.TopicLedgerPoisoned, messagestream.HandlerLedgerAudit, messagestream.TopicLedgerEvents, subscriber, parkingHandler.ConsumeLedgerEvent)
	if err != nil {
		logger.Error(ctx, "Failed to create ledger_audit router", err)
	} else {
		messageRouters = append(messageRouters, ledgerAuditRouter)
	}

	if sched != nil {
		err := sched.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency,
			[]string{scheduler.TypeOverstayCheck},
			[]func(ctx context.Context, t *asynq.Task) error{parkingHandler.CheckOverstay},
		)
		if err != nil {
			log.Fatalf("error start scheduler: %v", err)
		}

		if cfg.Scheduler.MonitoringEnabled {
			go sched.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)
		}
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &parkingHandler, &m)

	return &service{
		app:            r,
		messageRouters: messageRouters,
		scheduler:      sched,
		asynqClient:    asynqClient,
		db:             db,
	}
}
