package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// HomeRepository defines the interface for home persistence operations,
// including the four child collections (insurances, smoke alarms, repairs,
// utility bills). The backing store keeps one JSON array per collection per
// owner, so list operations load the whole collection and filters run in
// memory.
type HomeRepository interface {
	// Homes

	Create(ctx context.Context, home *entity.Home) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Home, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Home, error)
	Update(ctx context.Context, home *entity.Home) error
	// Delete removes a home. Cascading the child collections is the caller's
	// responsibility (the store has no cross-key transactions).
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// Insurances

	CreateInsurance(ctx context.Context, ins *entity.HomeInsurance) error
	FindInsurancesByHome(ctx context.Context, homeID, userID uuid.UUID) ([]*entity.HomeInsurance, error)
	UpdateInsurance(ctx context.Context, ins *entity.HomeInsurance) error
	DeleteInsurance(ctx context.Context, id, userID uuid.UUID) error
	DeleteInsurancesByHome(ctx context.Context, homeID, userID uuid.UUID) error

	// Smoke alarms

	CreateSmokeAlarm(ctx context.Context, alarm *entity.SmokeAlarm) error
	FindSmokeAlarmsByHome(ctx context.Context, homeID, userID uuid.UUID) ([]*entity.SmokeAlarm, error)
	UpdateSmokeAlarm(ctx context.Context, alarm *entity.SmokeAlarm) error
	DeleteSmokeAlarm(ctx context.Context, id, userID uuid.UUID) error
	DeleteSmokeAlarmsByHome(ctx context.Context, homeID, userID uuid.UUID) error

	// Repairs and maintenance

	CreateRepair(ctx context.Context, repair *entity.RepairMaintenance) error
	FindRepairsByHome(ctx context.Context, homeID, userID uuid.UUID) ([]*entity.RepairMaintenance, error)
	UpdateRepair(ctx context.Context, repair *entity.RepairMaintenance) error
	DeleteRepair(ctx context.Context, id, userID uuid.UUID) error
	DeleteRepairsByHome(ctx context.Context, homeID, userID uuid.UUID) error

	// Utility bills

	CreateUtilityBill(ctx context.Context, bill *entity.UtilityBill) error
	FindUtilityBillsByHome(ctx context.Context, homeID, userID uuid.UUID) ([]*entity.UtilityBill, error)
	UpdateUtilityBill(ctx context.Context, bill *entity.UtilityBill) error
	DeleteUtilityBill(ctx context.Context, id, userID uuid.UUID) error
	DeleteUtilityBillsByHome(ctx context.Context, homeID, userID uuid.UUID) error
}
