package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lapak/internal/models"
	"lapak/internal/services"
	"lapak/pkg/rabbitmq"
)

type config struct {
	appPort        string
	dbDriver       string
	dbDSN          string
	jwtSecret      string
	rabbitMQURL    string
	seedSampleData bool
}

// loadConfig reads configuration from environment variables with defaults.
// An empty RABBITMQ_URL disables event publishing.
func loadConfig() config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "lapak.db")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("SEED_SAMPLE_DATA", false)
	viper.AutomaticEnv()

	return config{
		appPort:        viper.GetString("APP_PORT"),
		dbDriver:       viper.GetString("DATABASE_DRIVER"),
		dbDSN:          viper.GetString("DATABASE_DSN"),
		jwtSecret:      viper.GetString("JWT_SECRET"),
		rabbitMQURL:    viper.GetString("RABBITMQ_URL"),
		seedSampleData: viper.GetBool("SEED_SAMPLE_DATA"),
	}
}

// openDatabase opens the configured database and migrates the schema.
func openDatabase(cfg config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.dbDriver {
	case "postgres":
		dialector = postgres.Open(cfg.dbDSN)
	default:
		dialector = sqlite.Open(cfg.dbDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Customer{}, &models.Order{}, &models.User{}); err != nil {
		return nil, err
	}
	return db, nil
}

func main() {
	cfg := loadConfig()

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// RabbitMQ is optional; without it order events are skipped.
	var publisher services.EventPublisher
	if cfg.rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		log.Println("Starting RabbitMQ consumer for order events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received Order Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	if cfg.seedSampleData {
		if err := seedSampleData(db); err != nil {
			log.Fatalf("Failed to seed sample data: %v", err)
		}
		log.Println("Sample data created successfully.")
	}

	app := newApp(db, publisher, cfg.jwtSecret)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.appPort)
		if err := app.Listen(cfg.appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
