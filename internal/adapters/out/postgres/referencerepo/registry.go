package referencerepo

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/ports"

	"gorm.io/gorm"
)

var (
	_ ports.OrderRegistry     = &GormOrderRegistry{}
	_ ports.EmployeeDirectory = &GormEmployeeDirectory{}
	_ ports.TaskInbox         = &GormTaskInbox{}
)

// GormOrderRegistry answers order existence checks against the orders reference table.
type GormOrderRegistry struct {
	db *gorm.DB
}

// NewGormOrderRegistry creates a registry adapter over the orders reference table.
func NewGormOrderRegistry(db *gorm.DB) *GormOrderRegistry {
	return &GormOrderRegistry{db: db}
}

// Exists reports whether the order is registered.
func (r *GormOrderRegistry) Exists(ctx context.Context, orderID kernel.UUID) (bool, error) {
	var count int64

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderID.Bytes()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// GormEmployeeDirectory answers employee existence checks against the employees reference table.
type GormEmployeeDirectory struct {
	db *gorm.DB
}

// NewGormEmployeeDirectory creates a directory adapter over the employees reference table.
func NewGormEmployeeDirectory(db *gorm.DB) *GormEmployeeDirectory {
	return &GormEmployeeDirectory{db: db}
}

// Exists reports whether the employee is on the directory.
func (d *GormEmployeeDirectory) Exists(ctx context.Context, employeeID kernel.UUID) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&EmployeeDTO{}).
		Where("id = ?", employeeID.Bytes()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// GormTaskInbox files assignment notifications into the task_notifications table.
// Entries are written outside the workflow transaction, after the assignment has
// committed, so a failed notification never rolls back the assignment itself.
type GormTaskInbox struct {
	db *gorm.DB
}

// NewGormTaskInbox creates an inbox adapter over the task_notifications table.
func NewGormTaskInbox(db *gorm.DB) *GormTaskInbox {
	return &GormTaskInbox{db: db}
}

// NotifyAssignment files a task for the employee referencing the step.
func (i *GormTaskInbox) NotifyAssignment(ctx context.Context, employeeID, orderID, stepID kernel.UUID,
	stepName, reason string) error {
	dto := TaskNotificationDTO{
		ID:         kernel.NewUUID().Bytes(),
		EmployeeID: employeeID.Bytes(),
		OrderID:    orderID.Bytes(),
		StepID:     stepID.Bytes(),
		StepName:   stepName,
		Reason:     reason,
	}

	return i.db.WithContext(ctx).Create(&dto).Error
}
