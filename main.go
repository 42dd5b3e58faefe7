package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"gopkg.in/natefinch/lumberjack.v2"

	"booking-service/cache"
	"booking-service/config"
	"booking-service/domain"
	"booking-service/handlers"
	"booking-service/repository"
	"booking-service/routes"
	"booking-service/services"
)

var (
	server      *gin.Engine
	ctx         context.Context
	cfg         *config.Config
	mongoclient *mongo.Client

	bookingCollection   *mongo.Collection
	modificationRepo    *repository.ModificationRepo
	wishlistCache       *cache.WishlistCache
	pricingService      services.PricingService
	paymentService      services.PaymentService
	notificationService services.NotificationService
	bookingService      services.BookingService
	BookingHandler      handlers.BookingHandler
	PricingHandler      handlers.PricingHandler
	WishlistHandler     handlers.WishlistHandler
	BookingRouteHandler routes.BookingRouteHandler
)

func init() {
	ctx = context.TODO()
	cfg = config.GetConfig()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	lumberjackLog := &lumberjack.Logger{
		Filename:  "/booking-service/logs/logfile.log",
		MaxSize:   1,
		LocalTime: true,
	}
	logger.SetOutput(lumberjackLog)

	mongoconn := options.Client().ApplyURI(cfg.MongoURI)
	var err error
	mongoclient, err = mongo.Connect(ctx, mongoconn)
	if err != nil {
		panic(err)
	}

	if err := mongoclient.Ping(ctx, readpref.Primary()); err != nil {
		panic(err)
	}

	fmt.Println("MongoDB successfully connected...")

	tracerProvider, err := NewTracerProvider(cfg.ServiceName, cfg.JaegerAddress)
	if err != nil {
		log.Fatal("JaegerTraceProvider failed to Initialize", err)
	}
	tracer := tracerProvider.Tracer(cfg.ServiceName)

	bookingCollection = mongoclient.Database("Yorker").Collection("bookings")

	storeLogger := log.New(os.Stdout, "[booking-store] ", log.LstdFlags)
	cacheLogger := log.New(os.Stdout, "[wishlist-cache] ", log.LstdFlags)

	modificationRepo, err = repository.New(storeLogger)
	if err != nil {
		log.Fatal(err)
	}
	modificationRepo.CreateTable()

	wishlistCache = cache.New(cacheLogger, tracer)
	wishlistCache.Ping()

	bookingRepo := repository.NewBookingRepo(bookingCollection, storeLogger)

	pricingService = services.NewPricingServiceImpl(tracer)
	paymentService = services.NewPaymentServiceImpl(cfg.PaymentGatewayURL, tracer)
	notificationService = services.NewNotificationServiceImpl(cfg, logger)
	bookingService = services.NewBookingServiceImpl(bookingRepo, modificationRepo,
		pricingService, paymentService, notificationService, domain.RealClock{}, logger, tracer)

	BookingHandler = handlers.NewBookingHandler(bookingService, tracer)
	PricingHandler = handlers.NewPricingHandler(pricingService, tracer)
	WishlistHandler = handlers.NewWishlistHandler(wishlistCache, tracer)
	BookingRouteHandler = routes.NewBookingRouteHandler(BookingHandler, PricingHandler, WishlistHandler)

	server = gin.Default()
}

func main() {
	defer mongoclient.Disconnect(ctx)
	defer modificationRepo.CloseSession()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"https://localhost:4200"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	server.Use(cors.New(corsConfig))

	router := server.Group("/api")
	router.GET("/healthchecker", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Message"})
	})

	BookingRouteHandler.BookingRoute(router)

	err := server.Run(":" + cfg.Port)
	if err != nil {
		fmt.Println(err)
		return
	}
}

func NewTracerProvider(serviceName, collectorEndpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(collectorEndpoint)))
	if err != nil {
		return nil, fmt.Errorf("unable to initialize exporter due: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.DeploymentEnvironmentKey.String("development"),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}
