package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"manufacturing/cmd"
	httpin "manufacturing/internal/adapters/in/http"
	"manufacturing/internal/adapters/out/postgres/milestonerepo"
	"manufacturing/internal/adapters/out/postgres/referencerepo"
	"manufacturing/internal/adapters/out/postgres/trackingrepo"
	"manufacturing/internal/adapters/out/postgres/workflowrepo"
	"manufacturing/internal/generated/servers"
	"manufacturing/internal/jobs"
	"manufacturing/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	// Fail fast on a broken API contract before accepting traffic.
	if _, err := servers.GetSwagger(); err != nil {
		log.Fatalf("Invalid OpenAPI specification: %v", err)
	}

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateMarkDelayedMilestonesCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize gorm: %v", err)
	}

	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&workflowrepo.WorkflowDTO{},
		&workflowrepo.WorkflowStepDTO{},
		&milestonerepo.MilestoneDTO{},
		&trackingrepo.TrackingRecordDTO{},
		&referencerepo.OrderDTO{},
		&referencerepo.EmployeeDTO{},
		&referencerepo.TaskNotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	// Register instruments before the first scrape so all series report zero.
	metrics.Init()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := httpin.NewServer(
		app.CreateInitializeWorkflowCommandHandler(),
		app.CreateAssignEmployeeCommandHandler(),
		app.CreateUpdateStepStatusCommandHandler(),
		app.CreateAttachDocumentsCommandHandler(),
		app.CreateCreateMilestoneCommandHandler(),
		app.CreateUpdateMilestoneProgressCommandHandler(),
		app.CreateUpdateMilestoneStatusCommandHandler(),
		app.CreateCreateTrackingRecordCommandHandler(),
		app.CreateUpdateTaskStatsCommandHandler(),
		app.CreateUpdateEfficiencyCommandHandler(),
		app.CreateIncrementHoursCommandHandler(),
		app.CreateGetWorkflowStepsQueryHandler(),
		app.CreateGetMilestonesQueryHandler(),
		app.CreateGetProjectProgressQueryHandler(),
		app.CreateGetEmployeePerformanceQueryHandler(),
		app.CreateGetProjectTeamPerformanceQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
