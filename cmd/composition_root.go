package cmd

import (
	"log/slog"

	"manufacturing/internal/adapters/out/postgres"
	"manufacturing/internal/adapters/out/postgres/referencerepo"
	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateInitializeWorkflowCommandHandler() commands.InitializeWorkflowCommandHandler {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInitializeWorkflowCommandHandler(f, referencerepo.NewGormOrderRegistry(c.gormDB))
}

func (c *CompositionRoot) CreateAssignEmployeeCommandHandler() commands.AssignEmployeeCommandHandler {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignEmployeeCommandHandler(f,
		referencerepo.NewGormEmployeeDirectory(c.gormDB),
		referencerepo.NewGormTaskInbox(c.gormDB),
		c.logger)
}

func (c *CompositionRoot) CreateUpdateStepStatusCommandHandler() commands.UpdateStepStatusCommandHandler {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStepStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAttachDocumentsCommandHandler() commands.AttachDocumentsCommandHandler {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachDocumentsCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMilestoneCommandHandler() commands.CreateMilestoneCommandHandler {
	var f commands.MilestoneUoWFactory = FuncMilestoneUoWFactory(func() commands.MilestoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMilestoneCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMilestoneProgressCommandHandler() commands.UpdateMilestoneProgressCommandHandler {
	var f commands.MilestoneUoWFactory = FuncMilestoneUoWFactory(func() commands.MilestoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMilestoneProgressCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMilestoneStatusCommandHandler() commands.UpdateMilestoneStatusCommandHandler {
	var f commands.MilestoneUoWFactory = FuncMilestoneUoWFactory(func() commands.MilestoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMilestoneStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkDelayedMilestonesCommandHandler() commands.MarkDelayedMilestonesCommandHandler {
	var f commands.MilestoneUoWFactory = FuncMilestoneUoWFactory(func() commands.MilestoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDelayedMilestonesCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTrackingRecordCommandHandler() commands.CreateTrackingRecordCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTrackingRecordCommandHandler(f,
		referencerepo.NewGormEmployeeDirectory(c.gormDB))
}

func (c *CompositionRoot) CreateUpdateTaskStatsCommandHandler() commands.UpdateTaskStatsCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTaskStatsCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateEfficiencyCommandHandler() commands.UpdateEfficiencyCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateEfficiencyCommandHandler(f)
}

func (c *CompositionRoot) CreateIncrementHoursCommandHandler() commands.IncrementHoursCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIncrementHoursCommandHandler(f)
}

func (c *CompositionRoot) CreateGetWorkflowStepsQueryHandler() queries.GetWorkflowStepsQueryHandler {
	return queries.NewGetWorkflowStepsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMilestonesQueryHandler() queries.GetMilestonesQueryHandler {
	return queries.NewGetMilestonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProjectProgressQueryHandler() queries.GetProjectProgressQueryHandler {
	return queries.NewGetProjectProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEmployeePerformanceQueryHandler() queries.GetEmployeePerformanceQueryHandler {
	return queries.NewGetEmployeePerformanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProjectTeamPerformanceQueryHandler() queries.GetProjectTeamPerformanceQueryHandler {
	return queries.NewGetProjectTeamPerformanceQueryHandler(c.gormDB)
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}

type FuncMilestoneUoWFactory func() commands.MilestoneUoW

func (f FuncMilestoneUoWFactory) Create() commands.MilestoneUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}
