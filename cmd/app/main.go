package main

import (
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"

	"foodbridge/cmd"
	_ "foodbridge/docs"
	httpin "foodbridge/internal/adapters/in/http"
	"foodbridge/internal/adapters/out/postgres/donationrepo"
	"foodbridge/internal/adapters/out/postgres/requestrepo"
	"foodbridge/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			FoodBridge API
//	@version		1.0
//	@description	Coordinates the lifecycle of donated food between donors, receivers and delivery people.
//	@BasePath		/api/v1

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	root := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		root.CreateExpireDonationsCommandHandler(),
		configs.ExpirySweepSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		ExpirySweepSchedule: goDotEnvVariable("EXPIRY_SWEEP_SCHEDULE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	// TranslateError turns the driver's unique violation into
	// gorm.ErrDuplicatedKey, which the request repository maps to
	// ConflictError.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(&donationrepo.DonationDTO{}, &requestrepo.RequestDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpin.NewServer(
		root.CreateCreateDonationCommandHandler(),
		root.CreateUpdateDonationCommandHandler(),
		root.CreateDeleteDonationCommandHandler(),
		root.CreateRequestDonationCommandHandler(),
		root.CreateRespondToRequestCommandHandler(),
		root.CreateCancelRequestCommandHandler(),
		root.CreateAdvanceDeliveryCommandHandler(),
		root.CreateGetAvailableDonationsQueryHandler(),
		root.CreateGetMyDonationsQueryHandler(),
		root.CreateGetSentRequestsQueryHandler(),
		root.CreateGetReceivedRequestsQueryHandler(),
		root.CreateGetMyDeliveriesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
