// cmd/payments-service/main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nexuspay/payments-service/internal/bus"
	"github.com/nexuspay/payments-service/internal/bus/kafka"
	"github.com/nexuspay/payments-service/internal/bus/rabbitmq"
	"github.com/nexuspay/payments-service/internal/config"
	"github.com/nexuspay/payments-service/internal/httpapi"
	"github.com/nexuspay/payments-service/internal/payment"
	stripewebhook "github.com/nexuspay/payments-service/internal/payment/webhook/stripe"
	"github.com/nexuspay/payments-service/internal/receipt"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Receipt correlation store. Memory is the default; redis adds TTL
	// eviction, postgres adds durability across restarts.
	var receipts receipt.Store
	switch cfg.ReceiptStoreDriver {
	case "redis":
		store, err := receipt.NewRedisStore(cfg.RedisAddr, cfg.ReceiptTTL)
		if err != nil {
			log.Fatalf("failed to create redis receipt store: %v", err)
		}
		defer store.Close()
		receipts = store
	case "postgres":
		store, err := receipt.NewPostgresStore(cfg.GetDBURL())
		if err != nil {
			log.Fatalf("failed to create postgres receipt store: %v", err)
		}
		defer store.Close()
		receipts = store
	default:
		receipts = receipt.NewMemoryStore()
	}

	// Event bus for the paymentSucceeded emission.
	var publisher bus.Publisher
	switch cfg.BusDriver {
	case "kafka":
		publisher = kafka.NewProducer(cfg.KafkaBroker, cfg.BusTopic)
	case "rabbitmq":
		p, err := rabbitmq.NewPublisher(cfg.GetRabbitMQURL(), cfg.BusTopic)
		if err != nil {
			log.Fatalf("failed to connect to rabbitmq: %v", err)
		}
		publisher = p
	default:
		publisher = bus.NopPublisher{}
	}
	defer publisher.Close()

	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)
	processor := stripewebhook.New(cfg.StripeEndpointSecret)

	service := payment.NewPaymentService(gateway, processor, receipts, publisher, payment.Settings{
		Currency:           cfg.Currency,
		SuccessURL:         cfg.SuccessURL,
		SuccessURLPerOrder: cfg.SuccessURLPerOrder,
		CancelURL:          cfg.CancelURL,
		ProcessorTimeout:   cfg.ProcessorTimeout,
	})

	router := httpapi.NewRouter(service)
	router.RegisterRoutes()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		log.Println("Shutting down gracefully...")
		if err := router.App.Shutdown(); err != nil {
			log.Printf("server shutdown error: %v", err)
		}
	}()

	log.Printf("payments service listening on :%s (store=%s bus=%s)",
		cfg.HTTPPort, cfg.ReceiptStoreDriver, cfg.BusDriver)
	if err := router.App.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
