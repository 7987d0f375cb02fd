package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "iugu_gateway/docs" // swag generated
	"iugu_gateway/internal/adapter/http/handlers"
	"iugu_gateway/internal/adapter/http/middleware"
	"iugu_gateway/internal/adapter/persistence/repository"
	"iugu_gateway/internal/config"
	"iugu_gateway/internal/infrastructure/cache"
	"iugu_gateway/internal/infrastructure/database"
	"iugu_gateway/internal/infrastructure/iugu"
	"iugu_gateway/internal/infrastructure/metrics"
	"iugu_gateway/internal/infrastructure/notification"
	"iugu_gateway/internal/usecase"
	"iugu_gateway/internal/usecase/interfaces"
	"iugu_gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

// server holds the HTTP handlers and the resources to release on shutdown.
type server struct {
	payment      *handlers.PaymentHandler
	subscription *handlers.SubscriptionHandler
	webhook      *handlers.WebhookHandler
	registry     *prometheus.Registry
	closers      []func() error
}

func (s *server) close(log *zap.Logger) {
	for _, c := range s.closers {
		if err := c(); err != nil {
			log.Warn("failed to release resource", zap.Error(err))
		}
	}
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zl, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	srv, err := buildServer(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("Failed to startup the application", zap.Error(err))
	}
	defer srv.close(zl)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(srv, cfg, zl),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
	}
	zl.Info("server stopped")
}

func buildServer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*server, error) {
	srv := &server{registry: prometheus.NewRegistry()}

	ddb, err := database.NewDynamoDBClient(ctx)
	if err != nil {
		return nil, err
	}
	meta := repository.NewMetadataDynamoRepository(ddb)
	orders := repository.NewOrderDynamoRepository(ddb, meta)
	cart := repository.NewCartDynamoRepository(ddb)

	var customers interfaces.ICustomerStore = repository.NewCustomerDynamoRepository(meta)
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("customer cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		} else {
			customers = cache.NewCustomerStore(customers, rdb, cfg.Redis.TTL, log)
			srv.closers = append(srv.closers, rdb.Close)
		}
	}

	var notifier interfaces.INotifier = notification.NewLogNotifier(log)
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := notification.NewSyncProducer(cfg.Kafka.Brokers)
		if err != nil {
			return nil, err
		}
		kn := notification.NewKafkaNotifier(producer, cfg.Kafka.EmailTopic, log)
		notifier = kn
		srv.closers = append(srv.closers, kn.Close)
	}

	paymentMetrics := metrics.NewPaymentMetrics(srv.registry)

	opts := []iugu.Option{iugu.WithLogger(log)}
	if cfg.Iugu.BaseURL != "" {
		opts = append(opts, iugu.WithBaseURL(cfg.Iugu.BaseURL))
	}
	client, err := iugu.NewClient(cfg.Iugu.APIToken, opts...)
	if err != nil {
		return nil, err
	}
	gateway := iugu.NewGateway(client, log)

	hooks := usecase.Hooks{}
	customerUseCase := usecase.NewCustomerUseCase(gateway, customers, cfg.Settings, hooks, log)
	chargeUseCase := usecase.NewChargeUseCase(gateway, orders, cart, customerUseCase, paymentMetrics, cfg.Settings, hooks, log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(orders, cart, chargeUseCase, customerUseCase, cfg.Settings, log)
	checkoutUseCase := usecase.NewCheckoutUseCase(orders, chargeUseCase, subscriptionUseCase, cfg.Settings, log)
	reconciler := usecase.NewStatusReconciler(orders, notifier, paymentMetrics, cfg.Settings, hooks, log)
	webhookUseCase := usecase.NewWebhookUseCase(orders, gateway, reconciler, log)

	srv.payment = handlers.NewPaymentHandler(checkoutUseCase, log)
	srv.subscription = handlers.NewSubscriptionHandler(subscriptionUseCase, log)
	srv.webhook = handlers.NewWebhookHandler(webhookUseCase, log)
	return srv, nil
}

func newRouter(srv *server, cfg *config.Config, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, srv.payment)
	addSubscriptionRoutes(v1, srv.subscription)
	addWebhookRoutes(v1, srv.webhook, rate.Limit(cfg.Webhook.RatePerSecond), cfg.Webhook.Burst, log)
	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
}
