package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"ordering/cmd"
	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/userrepo"
	"ordering/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultDraftTTLHours = 24

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateExpireStaleDraftsCommandHandler(),
		draftTTL(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		DraftOrderTTLHours: goDotEnvVariable("DRAFT_ORDER_TTL_HOURS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &userrepo.UserDTO{})
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func draftTTL(configs cmd.Config) time.Duration {
	hours, err := strconv.Atoi(configs.DraftOrderTTLHours)
	if err != nil || hours <= 0 {
		hours = defaultDraftTTLHours
	}
	return time.Duration(hours) * time.Hour
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateDeactivateUserCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAddOrderItemCommandHandler(),
		app.CreateRemoveOrderItemCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateDeliveryEstimator(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
