package tracking

import (
	"errors"
	"fmt"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

var (
	// ErrTrackingRecordIsNotConstructed is returned when a TrackingRecord was
	// not created through NewTrackingRecord or RestoreTrackingRecord.
	ErrTrackingRecordIsNotConstructed = errors.New(
		"TrackingRecord must be created via NewTrackingRecord or RestoreTrackingRecord constructor")
)

// TrackingRecord is the aggregate root of the employee tracking ledger. One
// record exists per (employee, project) pair, optionally narrowed to a single
// production stage.
//
// Task counters are replaced wholesale on every write (the source systems
// report full snapshots, not deltas); hours worked only ever grow.
type TrackingRecord struct {
	id                kernel.UUID
	employeeID        kernel.UUID
	projectID         kernel.UUID
	productionStageID *kernel.UUID
	stats             TaskStats
	efficiency        kernel.Percentage
	hoursWorked       float64
	lastUpdated       time.Time

	isConstructed bool
}

// NewTrackingRecord creates a fresh ledger record with zeroed counters,
// zero efficiency and no hours.
func NewTrackingRecord(id, employeeID, projectID kernel.UUID, productionStageID *kernel.UUID,
	now time.Time) (*TrackingRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := employeeID.Validate(); err != nil {
		return nil, err
	}
	if err := projectID.Validate(); err != nil {
		return nil, err
	}
	if productionStageID != nil {
		if err := productionStageID.Validate(); err != nil {
			return nil, err
		}
	}

	return &TrackingRecord{
		id:                id,
		employeeID:        employeeID,
		projectID:         projectID,
		productionStageID: productionStageID,
		lastUpdated:       now,
		isConstructed:     true,
	}, nil
}

// RestoreTrackingRecord reconstructs a record from persistence.
func RestoreTrackingRecord(id, employeeID, projectID kernel.UUID, productionStageID *kernel.UUID,
	stats TaskStats, efficiency kernel.Percentage, hoursWorked float64,
	lastUpdated time.Time) (*TrackingRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := employeeID.Validate(); err != nil {
		return nil, err
	}
	if err := projectID.Validate(); err != nil {
		return nil, err
	}
	if productionStageID != nil {
		if err := productionStageID.Validate(); err != nil {
			return nil, err
		}
	}
	if hoursWorked < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("hoursWorked",
			fmt.Errorf("%v is negative", hoursWorked))
	}

	return &TrackingRecord{
		id:                id,
		employeeID:        employeeID,
		projectID:         projectID,
		productionStageID: productionStageID,
		stats:             stats,
		efficiency:        efficiency,
		hoursWorked:       hoursWorked,
		lastUpdated:       lastUpdated,
		isConstructed:     true,
	}, nil
}

// Validate ensures the TrackingRecord was created through a constructor.
func (r *TrackingRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrTrackingRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's identifier.
func (r *TrackingRecord) ID() kernel.UUID {
	return r.id
}

// EmployeeID returns the tracked employee's identifier.
func (r *TrackingRecord) EmployeeID() kernel.UUID {
	return r.employeeID
}

// ProjectID returns the tracked project's identifier.
func (r *TrackingRecord) ProjectID() kernel.UUID {
	return r.projectID
}

// ProductionStageID returns the optional stage the record is narrowed to.
func (r *TrackingRecord) ProductionStageID() *kernel.UUID {
	return r.productionStageID
}

// Stats returns the current task counter snapshot.
func (r *TrackingRecord) Stats() TaskStats {
	return r.stats
}

// Efficiency returns the employee's efficiency rating on this project.
func (r *TrackingRecord) Efficiency() kernel.Percentage {
	return r.efficiency
}

// HoursWorked returns the cumulative hours logged on this record.
func (r *TrackingRecord) HoursWorked() float64 {
	return r.hoursWorked
}

// LastUpdated returns the time of the most recent mutation.
func (r *TrackingRecord) LastUpdated() time.Time {
	return r.lastUpdated
}

// OverwriteStats replaces the task counter snapshot. The previous snapshot is
// discarded entirely; callers sending partial updates must merge beforehand.
func (r *TrackingRecord) OverwriteStats(stats TaskStats, now time.Time) {
	r.stats = stats
	r.lastUpdated = now
}

// UpdateEfficiency replaces the efficiency rating.
func (r *TrackingRecord) UpdateEfficiency(efficiency kernel.Percentage, now time.Time) {
	r.efficiency = efficiency
	r.lastUpdated = now
}

// AddHours adds a non-negative number of hours to the cumulative total.
func (r *TrackingRecord) AddHours(delta float64, now time.Time) error {
	if delta < 0 {
		return errs.NewValueIsInvalidErrorWithCause("hours",
			fmt.Errorf("%v is negative", delta))
	}
	r.hoursWorked += delta
	r.lastUpdated = now
	return nil
}
