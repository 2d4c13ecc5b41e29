package http

import (
	"errors"
	"net/http"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/milestone"
	"manufacturing/internal/core/domain/model/tracking"
	"manufacturing/internal/core/domain/model/workflow"
	"manufacturing/internal/generated/servers"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	initializeWorkflowHandler      commands.InitializeWorkflowCommandHandler
	assignEmployeeHandler          commands.AssignEmployeeCommandHandler
	updateStepStatusHandler        commands.UpdateStepStatusCommandHandler
	attachDocumentsHandler         commands.AttachDocumentsCommandHandler
	createMilestoneHandler         commands.CreateMilestoneCommandHandler
	updateMilestoneProgressHandler commands.UpdateMilestoneProgressCommandHandler
	updateMilestoneStatusHandler   commands.UpdateMilestoneStatusCommandHandler
	createTrackingRecordHandler    commands.CreateTrackingRecordCommandHandler
	updateTaskStatsHandler         commands.UpdateTaskStatsCommandHandler
	updateEfficiencyHandler        commands.UpdateEfficiencyCommandHandler
	incrementHoursHandler          commands.IncrementHoursCommandHandler

	// Query handlers
	getWorkflowStepsHandler          queries.GetWorkflowStepsQueryHandler
	getMilestonesHandler             queries.GetMilestonesQueryHandler
	getProjectProgressHandler        queries.GetProjectProgressQueryHandler
	getEmployeePerformanceHandler    queries.GetEmployeePerformanceQueryHandler
	getProjectTeamPerformanceHandler queries.GetProjectTeamPerformanceQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	initializeWorkflowHandler commands.InitializeWorkflowCommandHandler,
	assignEmployeeHandler commands.AssignEmployeeCommandHandler,
	updateStepStatusHandler commands.UpdateStepStatusCommandHandler,
	attachDocumentsHandler commands.AttachDocumentsCommandHandler,
	createMilestoneHandler commands.CreateMilestoneCommandHandler,
	updateMilestoneProgressHandler commands.UpdateMilestoneProgressCommandHandler,
	updateMilestoneStatusHandler commands.UpdateMilestoneStatusCommandHandler,
	createTrackingRecordHandler commands.CreateTrackingRecordCommandHandler,
	updateTaskStatsHandler commands.UpdateTaskStatsCommandHandler,
	updateEfficiencyHandler commands.UpdateEfficiencyCommandHandler,
	incrementHoursHandler commands.IncrementHoursCommandHandler,
	getWorkflowStepsHandler queries.GetWorkflowStepsQueryHandler,
	getMilestonesHandler queries.GetMilestonesQueryHandler,
	getProjectProgressHandler queries.GetProjectProgressQueryHandler,
	getEmployeePerformanceHandler queries.GetEmployeePerformanceQueryHandler,
	getProjectTeamPerformanceHandler queries.GetProjectTeamPerformanceQueryHandler,
) *Server {
	return &Server{
		initializeWorkflowHandler:        initializeWorkflowHandler,
		assignEmployeeHandler:            assignEmployeeHandler,
		updateStepStatusHandler:          updateStepStatusHandler,
		attachDocumentsHandler:           attachDocumentsHandler,
		createMilestoneHandler:           createMilestoneHandler,
		updateMilestoneProgressHandler:   updateMilestoneProgressHandler,
		updateMilestoneStatusHandler:     updateMilestoneStatusHandler,
		createTrackingRecordHandler:      createTrackingRecordHandler,
		updateTaskStatsHandler:           updateTaskStatsHandler,
		updateEfficiencyHandler:          updateEfficiencyHandler,
		incrementHoursHandler:            incrementHoursHandler,
		getWorkflowStepsHandler:          getWorkflowStepsHandler,
		getMilestonesHandler:             getMilestonesHandler,
		getProjectProgressHandler:        getProjectProgressHandler,
		getEmployeePerformanceHandler:    getEmployeePerformanceHandler,
		getProjectTeamPerformanceHandler: getProjectTeamPerformanceHandler,
	}
}

// errorResponse maps domain errors to HTTP status codes: invalid values to 400,
// missing objects to 404, duplicates and forbidden status transitions to 409.
// Everything else is a 500.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, workflow.ErrInvalidStatusTransition),
		errors.Is(err, workflow.ErrStepIsCompleted):
		status = http.StatusConflict
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: err.Error(),
	})
}

// InitializeWorkflow handles POST /api/v1/orders/{orderId}/workflow - creates
// the full production step catalog for a confirmed order.
func (s *Server) InitializeWorkflow(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewInitializeWorkflowCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.initializeWorkflowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	metrics.IncWorkflowsInitialized()

	return ctx.JSON(http.StatusCreated, servers.WorkflowCreated{
		StepsCreated: workflow.StageCount,
	})
}

// GetWorkflowSteps handles GET /api/v1/orders/{orderId}/workflow/steps -
// returns the ordered steps with assignee names and the progress summary.
func (s *Server) GetWorkflowSteps(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetWorkflowStepsQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getWorkflowStepsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	steps := make([]servers.WorkflowStep, len(result.Steps))
	for i, step := range result.Steps {
		documents := make([]servers.DocumentRef, len(step.Documents))
		for j, doc := range step.Documents {
			documents[j] = servers.DocumentRef{Name: doc.Name, Url: doc.URL}
		}

		steps[i] = servers.WorkflowStep{
			Id:          step.ID.Bytes(),
			StepNumber:  step.StepNumber,
			StepType:    step.StepType,
			Name:        step.Name,
			Status:      step.Status,
			AssignedAt:  step.AssignedAt,
			StartedAt:   step.StartedAt,
			CompletedAt: step.CompletedAt,
			Documents:   documents,
		}
		if step.AssignedEmployeeID != nil {
			assigneeID := step.AssignedEmployeeID.Bytes()
			steps[i].AssigneeId = &assigneeID
		}
		if step.AssigneeName != "" {
			assigneeName := step.AssigneeName
			steps[i].AssigneeName = &assigneeName
		}
		if step.Notes != "" {
			notes := step.Notes
			steps[i].Notes = &notes
		}
	}

	return ctx.JSON(http.StatusOK, servers.WorkflowSteps{
		OrderId:           result.OrderID.Bytes(),
		CurrentStepNumber: result.CurrentStepNumber,
		Steps:             steps,
		Progress: servers.WorkflowProgress{
			TotalSteps:         result.Progress.TotalSteps,
			CompletedSteps:     result.Progress.CompletedSteps,
			InProgressSteps:    result.Progress.InProgressSteps,
			RemainingSteps:     result.Progress.RemainingSteps,
			ProgressPercentage: result.Progress.ProgressPercentage,
		},
	})
}

// AssignEmployee handles POST /api/v1/workflow/steps/{stepId}/assignee -
// assigns an employee to a workflow step.
func (s *Server) AssignEmployee(ctx echo.Context, stepId openapi_types.UUID) error {
	var request servers.AssignEmployeeRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	stepID, err := kernel.UUIDFromString(stepId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	employeeID, err := kernel.UUIDFromString(request.EmployeeId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	reason := ""
	if request.Reason != nil {
		reason = *request.Reason
	}

	cmd, err := commands.NewAssignEmployeeCommand(stepID, employeeID, reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.assignEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	metrics.IncStepAssignments()

	return ctx.NoContent(http.StatusOK)
}

// UpdateStepStatus handles PUT /api/v1/workflow/steps/{stepId}/status -
// changes a step's status, advancing the workflow cursor on completion.
func (s *Server) UpdateStepStatus(ctx echo.Context, stepId openapi_types.UUID) error {
	var request servers.UpdateStepStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	stepID, err := kernel.UUIDFromString(stepId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	status, err := workflow.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	notes := ""
	if request.Notes != nil {
		notes = *request.Notes
	}

	cmd, err := commands.NewUpdateStepStatusCommand(stepID, status, notes)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateStepStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	metrics.IncStepTransition(status.String())

	return ctx.NoContent(http.StatusOK)
}

// AttachDocuments handles POST /api/v1/workflow/steps/{stepId}/documents -
// appends document references to a workflow step.
func (s *Server) AttachDocuments(ctx echo.Context, stepId openapi_types.UUID) error {
	var request servers.AttachDocumentsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	stepID, err := kernel.UUIDFromString(stepId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	documents := make([]workflow.DocumentRef, 0, len(request.Documents))
	for _, doc := range request.Documents {
		document, err := workflow.NewDocumentRef(doc.Name, doc.Url)
		if err != nil {
			return errorResponse(ctx, err)
		}
		documents = append(documents, document)
	}

	cmd, err := commands.NewAttachDocumentsCommand(stepID, documents)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.attachDocumentsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateMilestone handles POST /api/v1/projects/{projectId}/milestones -
// creates a milestone and returns its generated ID.
func (s *Server) CreateMilestone(ctx echo.Context, projectId openapi_types.UUID) error {
	var request servers.NewMilestone
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	projectID, err := kernel.UUIDFromString(projectId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateMilestoneCommand(projectID, request.Name, request.TargetDate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createMilestoneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.MilestoneCreated{
		MilestoneId: cmd.MilestoneID().Bytes(),
	})
}

// GetMilestones handles GET /api/v1/projects/{projectId}/milestones - lists the
// project's milestones ordered by target date, undated milestones last.
func (s *Server) GetMilestones(ctx echo.Context, projectId openapi_types.UUID) error {
	projectID, err := kernel.UUIDFromString(projectId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetMilestonesQuery(projectID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	milestones, err := s.getMilestonesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Milestone, len(milestones))
	for i, item := range milestones {
		response[i] = servers.Milestone{
			Id:                   item.ID.Bytes(),
			Name:                 item.Name,
			TargetDate:           item.TargetDate,
			Status:               item.Status,
			CompletionPercentage: item.CompletionPercentage,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateMilestoneProgress handles PUT /api/v1/milestones/{milestoneId}/progress.
func (s *Server) UpdateMilestoneProgress(ctx echo.Context, milestoneId openapi_types.UUID) error {
	var request servers.UpdateProgressRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	milestoneID, err := kernel.UUIDFromString(milestoneId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	completion, err := kernel.NewPercentage(request.Percentage)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateMilestoneProgressCommand(milestoneID, completion)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateMilestoneProgressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateMilestoneStatus handles PUT /api/v1/milestones/{milestoneId}/status.
func (s *Server) UpdateMilestoneStatus(ctx echo.Context, milestoneId openapi_types.UUID) error {
	var request servers.UpdateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	milestoneID, err := kernel.UUIDFromString(milestoneId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	status, err := milestone.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateMilestoneStatusCommand(milestoneID, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateMilestoneStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetProjectProgress handles GET /api/v1/projects/{projectId}/progress -
// returns the project's milestone rollup.
func (s *Server) GetProjectProgress(ctx echo.Context, projectId openapi_types.UUID) error {
	projectID, err := kernel.UUIDFromString(projectId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetProjectProgressQuery(projectID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	progress, err := s.getProjectProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ProjectProgress{
		TotalMilestones:      progress.TotalMilestones,
		CompletedMilestones:  progress.CompletedMilestones,
		InProgressMilestones: progress.InProgressMilestones,
		DelayedMilestones:    progress.DelayedMilestones,
		AverageCompletion:    progress.AverageCompletion,
	})
}

// CreateTrackingRecord handles POST /api/v1/tracking/records - creates an
// employee tracking record and returns its generated ID.
func (s *Server) CreateTrackingRecord(ctx echo.Context) error {
	var request servers.NewTrackingRecord
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	employeeID, err := kernel.UUIDFromString(request.EmployeeId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	projectID, err := kernel.UUIDFromString(request.ProjectId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	var productionStageID *kernel.UUID
	if request.ProductionStageId != nil {
		stageID, err := kernel.UUIDFromString(request.ProductionStageId.String())
		if err != nil {
			return errorResponse(ctx, err)
		}
		productionStageID = &stageID
	}

	cmd, err := commands.NewCreateTrackingRecordCommand(employeeID, projectID, productionStageID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createTrackingRecordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.TrackingRecordCreated{
		TrackingId: cmd.TrackingID().Bytes(),
	})
}

// UpdateTaskStats handles PUT /api/v1/tracking/{employeeId}/{projectId}/task-stats -
// overwrites the record's task counters.
func (s *Server) UpdateTaskStats(ctx echo.Context, employeeId openapi_types.UUID,
	projectId openapi_types.UUID) error {
	var request servers.TaskStatsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	employeeID, err := kernel.UUIDFromString(employeeId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	projectID, err := kernel.UUIDFromString(projectId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	stats, err := tracking.NewTaskStats(request.TasksAssigned, request.TasksCompleted,
		request.TasksInProgress, request.TasksPaused, request.TasksCancelled)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateTaskStatsCommand(employeeID, projectID, stats)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateTaskStatsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateEfficiency handles PUT /api/v1/tracking/{employeeId}/{projectId}/efficiency.
func (s *Server) UpdateEfficiency(ctx echo.Context, employeeId openapi_types.UUID,
	projectId openapi_types.UUID) error {
	var request servers.EfficiencyRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	employeeID, err := kernel.UUIDFromString(employeeId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	projectID, err := kernel.UUIDFromString(projectId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	efficiency, err := kernel.NewPercentage(request.Percentage)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateEfficiencyCommand(employeeID, projectID, efficiency)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateEfficiencyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// IncrementHours handles POST /api/v1/tracking/{employeeId}/{projectId}/hours -
// adds worked hours to the record.
func (s *Server) IncrementHours(ctx echo.Context, employeeId openapi_types.UUID,
	projectId openapi_types.UUID) error {
	var request servers.HoursRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	employeeID, err := kernel.UUIDFromString(employeeId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	projectID, err := kernel.UUIDFromString(projectId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewIncrementHoursCommand(employeeID, projectID, request.Hours)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.incrementHoursHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetEmployeePerformance handles GET /api/v1/employees/{employeeId}/performance -
// returns the employee's summed counters across all projects.
func (s *Server) GetEmployeePerformance(ctx echo.Context, employeeId openapi_types.UUID) error {
	employeeID, err := kernel.UUIDFromString(employeeId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetEmployeePerformanceQuery(employeeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	performance, err := s.getEmployeePerformanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.EmployeePerformance{
		EmployeeId:        performance.EmployeeID.Bytes(),
		TasksAssigned:     performance.TasksAssigned,
		TasksCompleted:    performance.TasksCompleted,
		TasksInProgress:   performance.TasksInProgress,
		TasksPaused:       performance.TasksPaused,
		TasksCancelled:    performance.TasksCancelled,
		HoursWorked:       performance.HoursWorked,
		AverageEfficiency: performance.AverageEfficiency,
	})
}

// GetProjectTeamPerformance handles GET /api/v1/projects/{projectId}/team-performance -
// returns per-employee rows ordered by efficiency descending.
func (s *Server) GetProjectTeamPerformance(ctx echo.Context, projectId openapi_types.UUID) error {
	projectID, err := kernel.UUIDFromString(projectId.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetProjectTeamPerformanceQuery(projectID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	team, err := s.getProjectTeamPerformanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.TeamMemberPerformance, len(team))
	for i, member := range team {
		response[i] = servers.TeamMemberPerformance{
			EmployeeId:           member.EmployeeID.Bytes(),
			EmployeeName:         member.EmployeeName,
			TasksAssigned:        member.TasksAssigned,
			TasksCompleted:       member.TasksCompleted,
			HoursWorked:          member.HoursWorked,
			EfficiencyPercentage: member.EfficiencyPercentage,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
