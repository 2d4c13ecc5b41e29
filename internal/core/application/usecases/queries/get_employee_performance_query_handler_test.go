package queries_test

import (
	"context"
	"testing"
	"time"

	"manufacturing/internal/adapters/out/postgres/referencerepo"
	"manufacturing/internal/adapters/out/postgres/trackingrepo"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetEmployeePerformanceQueryHandlerTestSuite exercises the tracking read
// models: the cross-project employee summary and the per-project team board.
type GetEmployeePerformanceQueryHandlerTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	employeeHandler queries.GetEmployeePerformanceQueryHandler
	teamHandler     queries.GetProjectTeamPerformanceQueryHandler
}

func (suite *GetEmployeePerformanceQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&trackingrepo.TrackingRecordDTO{},
		&referencerepo.EmployeeDTO{},
	)
	suite.Require().NoError(err)

	suite.employeeHandler = queries.NewGetEmployeePerformanceQueryHandler(db)
	suite.teamHandler = queries.NewGetProjectTeamPerformanceQueryHandler(db)
}

func (suite *GetEmployeePerformanceQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetEmployeePerformanceQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE tracking_records, employees").Error
	suite.Require().NoError(err)
}

func (suite *GetEmployeePerformanceQueryHandlerTestSuite) TestHandle_EmployeeWithoutRecords_ReportsZeros() {
	query, err := queries.NewGetEmployeePerformanceQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.employeeHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, result.TasksAssigned)
	suite.Equal(0, result.TasksCompleted)
	suite.InDelta(0, result.HoursWorked, 0.001)
	suite.Equal(0, result.AverageEfficiency)
}

func (suite *GetEmployeePerformanceQueryHandlerTestSuite) TestHandle_SumsAcrossProjects() {
	employeeID := kernel.NewUUID()

	// Two projects, one record each
	suite.saveRecord(employeeID, kernel.NewUUID(), 10, 4, 3, 2, 1, 12.5, 80)
	suite.saveRecord(employeeID, kernel.NewUUID(), 6, 6, 0, 0, 0, 7.5, 90)

	// Noise from another employee must not count
	suite.saveRecord(kernel.NewUUID(), kernel.NewUUID(), 100, 100, 0, 0, 0, 40, 10)

	query, err := queries.NewGetEmployeePerformanceQuery(employeeID)
	suite.Require().NoError(err)

	result, err := suite.employeeHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(employeeID, result.EmployeeID)
	suite.Equal(16, result.TasksAssigned)
	suite.Equal(10, result.TasksCompleted)
	suite.Equal(3, result.TasksInProgress)
	suite.Equal(2, result.TasksPaused)
	suite.Equal(1, result.TasksCancelled)
	suite.InDelta(20.0, result.HoursWorked, 0.001)
	// AVG(80, 90) = 85
	suite.Equal(85, result.AverageEfficiency)
}

func (suite *GetEmployeePerformanceQueryHandlerTestSuite) TestHandle_TeamOrderedByEfficiencyDescending() {
	projectID := kernel.NewUUID()

	steady := kernel.NewUUID()
	fast := kernel.NewUUID()
	slow := kernel.NewUUID()

	suite.createEmployee(steady, "Mary", "Shaw")
	suite.createEmployee(fast, "Ken", "Thompson")

	suite.saveRecord(steady, projectID, 8, 5, 2, 1, 0, 30, 75)
	suite.saveRecord(fast, projectID, 5, 5, 0, 0, 0, 18, 95)
	suite.saveRecord(slow, projectID, 4, 1, 2, 1, 0, 25, 40)

	// A record on another project stays off this board
	suite.saveRecord(steady, kernel.NewUUID(), 3, 3, 0, 0, 0, 9, 100)

	query, err := queries.NewGetProjectTeamPerformanceQuery(projectID)
	suite.Require().NoError(err)

	result, err := suite.teamHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(fast, result[0].EmployeeID)
	suite.Equal("Ken Thompson", result[0].EmployeeName)
	suite.Equal(95, result[0].EfficiencyPercentage)

	suite.Equal(steady, result[1].EmployeeID)
	suite.Equal("Mary Shaw", result[1].EmployeeName)
	suite.Equal(8, result[1].TasksAssigned)
	suite.Equal(5, result[1].TasksCompleted)
	suite.InDelta(30.0, result[1].HoursWorked, 0.001)

	// Employees missing from the directory come back with an empty name
	suite.Equal(slow, result[2].EmployeeID)
	suite.Empty(result[2].EmployeeName)
	suite.Equal(40, result[2].EfficiencyPercentage)
}

func (suite *GetEmployeePerformanceQueryHandlerTestSuite) TestHandle_EqualEfficiency_KeepsInsertionOrder() {
	ctx := context.Background()
	projectID := kernel.NewUUID()

	earlier := kernel.NewUUID()
	later := kernel.NewUUID()
	suite.createEmployee(earlier, "Ada", "Lovelace")
	suite.createEmployee(later, "Grace", "Hopper")

	repo := trackingrepo.NewGormTrackingRepository(suite.db, &mockAggregateTracker{})

	stats, err := tracking.NewTaskStats(6, 3, 2, 1, 0)
	suite.Require().NoError(err)
	efficiency, err := kernel.NewPercentage(70)
	suite.Require().NoError(err)

	earlierRecord, err := tracking.RestoreTrackingRecord(kernel.NewUUID(), earlier, projectID,
		nil, stats, efficiency, 12, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, earlierRecord))

	laterRecord, err := tracking.RestoreTrackingRecord(kernel.NewUUID(), later, projectID,
		nil, stats, efficiency, 9, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, laterRecord))

	// Pin the insertion times so the tie-break is unambiguous
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.db.Exec("UPDATE tracking_records SET created_at = ? WHERE id = ?",
		base, earlierRecord.ID().Bytes()).Error)
	suite.Require().NoError(suite.db.Exec("UPDATE tracking_records SET created_at = ? WHERE id = ?",
		base.Add(time.Minute), laterRecord.ID().Bytes()).Error)

	// A rewrite of the later record must not disturb its insertion time
	suite.Require().NoError(laterRecord.AddHours(3, time.Now().UTC()))
	suite.Require().NoError(repo.Update(ctx, laterRecord))

	query, err := queries.NewGetProjectTeamPerformanceQuery(projectID)
	suite.Require().NoError(err)

	result, err := suite.teamHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(earlier, result[0].EmployeeID)
	suite.Equal(later, result[1].EmployeeID)
	suite.Equal(70, result[0].EfficiencyPercentage)
	suite.Equal(70, result[1].EfficiencyPercentage)
}

func (suite *GetEmployeePerformanceQueryHandlerTestSuite) TestHandle_EmptyProject_ReturnsEmptyTeam() {
	query, err := queries.NewGetProjectTeamPerformanceQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.teamHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetEmployeePerformanceQueryHandlerTestSuite) TestHandle_InvalidQueries_ReturnError() {
	_, err := suite.employeeHandler.Handle(context.Background(), queries.GetEmployeePerformanceQuery{})
	suite.Require().Error(err)

	_, err = suite.teamHandler.Handle(context.Background(), queries.GetProjectTeamPerformanceQuery{})
	suite.Require().Error(err)
}

// saveRecord persists a tracking record with the given counters.
func (suite *GetEmployeePerformanceQueryHandlerTestSuite) saveRecord(
	employeeID, projectID kernel.UUID,
	assigned, completed, inProgress, paused, cancelled int,
	hours float64, efficiency int,
) {
	stats, err := tracking.NewTaskStats(assigned, completed, inProgress, paused, cancelled)
	suite.Require().NoError(err)

	percentage, err := kernel.NewPercentage(efficiency)
	suite.Require().NoError(err)

	record, err := tracking.RestoreTrackingRecord(kernel.NewUUID(), employeeID, projectID,
		nil, stats, percentage, hours, time.Now().UTC())
	suite.Require().NoError(err)

	repo := trackingrepo.NewGormTrackingRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), record))
}

func (suite *GetEmployeePerformanceQueryHandlerTestSuite) createEmployee(
	id kernel.UUID, firstName, lastName string,
) {
	dto := referencerepo.EmployeeDTO{
		ID:        id.Bytes(),
		FirstName: firstName,
		LastName:  lastName,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func TestGetEmployeePerformanceQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetEmployeePerformanceQueryHandlerTestSuite))
}
