// Package referencerepo provides GORM-based adapters over the company reference
// tables: the order book, the employee directory and the per-employee task inbox.
// These tables are owned by upstream systems; the adapters here only check
// existence and append inbox notifications.
package referencerepo

import (
	"time"

	"github.com/google/uuid"
)

// OrderDTO mirrors the sales order reference table.
type OrderDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for order reference rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// EmployeeDTO mirrors the employee reference table.
type EmployeeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(128);not null"`
	LastName  string    `gorm:"type:varchar(128);not null"`
}

// TableName specifies the database table name for employee reference rows.
func (EmployeeDTO) TableName() string {
	return "employees"
}

// TaskNotificationDTO represents an inbox entry telling an employee they were
// assigned to a workflow step.
type TaskNotificationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null"`
	StepID     uuid.UUID `gorm:"type:uuid;not null"`
	StepName   string    `gorm:"type:varchar(255);not null"`
	Reason     string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for task inbox entries.
func (TaskNotificationDTO) TableName() string {
	return "task_notifications"
}
