package workflow

import (
	"fmt"

	"manufacturing/internal/pkg/errs"
)

// StageType is the stable key identifying one of the canonical fulfillment stages.
type StageType string

const (
	StageClientPO            StageType = "client_po"
	StageSalesOrder          StageType = "sales_order"
	StageDesignEngineering   StageType = "design_engineering"
	StageMaterialRequirement StageType = "material_requirement"
	StageProductionPlan      StageType = "production_plan"
	StageQualityCheck        StageType = "quality_check"
	StageShipment            StageType = "shipment"
	StageDelivery            StageType = "delivery"
)

// StageDefinition describes one entry of the static stage catalog: its fixed
// position in the sequence, its type key, and its display texts.
type StageDefinition struct {
	Number      int
	Type        StageType
	Name        string
	Description string
}

// stageCatalog is the ordered definition of the fulfillment cycle. The order and
// numbering here are the single source of truth for workflow initialization.
var stageCatalog = []StageDefinition{
	{Number: 1, Type: StageClientPO, Name: "Client PO", Description: "Client purchase order intake and verification"},
	{Number: 2, Type: StageSalesOrder, Name: "Sales Order", Description: "Sales order details and confirmation"},
	{Number: 3, Type: StageDesignEngineering, Name: "Design & Engineering", Description: "Design documents and engineering sign-off"},
	{Number: 4, Type: StageMaterialRequirement, Name: "Material Requirement", Description: "Material requirements and procurement request"},
	{Number: 5, Type: StageProductionPlan, Name: "Production Plan", Description: "Production planning and scheduling"},
	{Number: 6, Type: StageQualityCheck, Name: "Quality Check", Description: "Quality inspection and verification"},
	{Number: 7, Type: StageShipment, Name: "Shipment", Description: "Shipment preparation and dispatch"},
	{Number: 8, Type: StageDelivery, Name: "Delivery", Description: "Delivery to client and closure"},
}

// StageCount is the number of stages every initialized workflow carries.
var StageCount = len(stageCatalog)

// Stages returns the catalog in sequence order. The returned slice is a copy;
// callers may not mutate the catalog.
func Stages() []StageDefinition {
	out := make([]StageDefinition, len(stageCatalog))
	copy(out, stageCatalog)
	return out
}

// StageByNumber returns the catalog entry with the given sequence number.
func StageByNumber(number int) (StageDefinition, error) {
	if number < 1 || number > len(stageCatalog) {
		return StageDefinition{}, errs.NewValueIsOutOfRangeError("stage number", number, 1, len(stageCatalog))
	}
	return stageCatalog[number-1], nil
}

// StageTypeFromString validates a raw stage type key against the catalog.
func StageTypeFromString(s string) (StageType, error) {
	for _, stage := range stageCatalog {
		if string(stage.Type) == s {
			return stage.Type, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("stage type",
		fmt.Errorf("%q is not a known stage type", s))
}
