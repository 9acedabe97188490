package keyvalue

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// Key prefixes of the home record family.
const (
	homesPrefix          = "homes"
	homeInsurancesPrefix = "home_insurances"
	smokeAlarmsPrefix    = "smoke_alarms"
	repairsPrefix        = "repair_maintenances"
	utilityBillsPrefix   = "utility_bills"
)

// homeRepository implements adapter.HomeRepository on the key-value store.
type homeRepository struct {
	homes      *collection[homeRecord]
	insurances *collection[homeInsuranceRecord]
	alarms     *collection[smokeAlarmRecord]
	repairs    *collection[repairMaintenanceRecord]
	bills      *collection[utilityBillRecord]
}

// NewHomeRepository creates a new home repository instance.
func NewHomeRepository(store adapter.KeyValueStore) adapter.HomeRepository {
	return &homeRepository{
		homes:      newCollection[homeRecord](store, homesPrefix),
		insurances: newCollection[homeInsuranceRecord](store, homeInsurancesPrefix),
		alarms:     newCollection[smokeAlarmRecord](store, smokeAlarmsPrefix),
		repairs:    newCollection[repairMaintenanceRecord](store, repairsPrefix),
		bills:      newCollection[utilityBillRecord](store, utilityBillsPrefix),
	}
}

// Create appends a home to the owner's collection.
func (r *homeRepository) Create(ctx context.Context, home *entity.Home) error {
	return appendItem(ctx, r.homes, home.UserID, homeFromEntity(home))
}

// FindByID retrieves a home by id, scoped to the owning user.
func (r *homeRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Home, error) {
	records, err := r.homes.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec.toEntity(), nil
		}
	}
	return nil, domainerror.ErrRecordNotFound
}

// FindByUser retrieves all homes for a user.
func (r *homeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Home, error) {
	records, err := r.homes.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	homes := make([]*entity.Home, len(records))
	for i, rec := range records {
		homes[i] = rec.toEntity()
	}
	return homes, nil
}

// Update replaces an existing home in the owner's collection.
func (r *homeRepository) Update(ctx context.Context, home *entity.Home) error {
	return replaceItem(ctx, r.homes, home.UserID, home.ID, homeRecordID, homeFromEntity(home))
}

// Delete removes a home from the owner's collection.
func (r *homeRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return removeItem(ctx, r.homes, userID, id, homeRecordID)
}

// CreateInsurance appends an insurance policy to the owner's collection.
func (r *homeRepository) CreateInsurance(ctx context.Context, ins *entity.HomeInsurance) error {
	return appendItem(ctx, r.insurances, ins.UserID, homeInsuranceFromEntity(ins))
}

// FindInsurancesByHome retrieves the insurance policies attached to a home.
func (r *homeRepository) FindInsurancesByHome(ctx context.Context, homeID, userID uuid.UUID) ([]*entity.HomeInsurance, error) {
	records, err := r.insurances.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []*entity.HomeInsurance
	for _, rec := range records {
		if rec.HomeID == homeID {
			out = append(out, rec.toEntity())
		}
	}
	return out, nil
}

// UpdateInsurance replaces an existing insurance policy.
func (r *homeRepository) UpdateInsurance(ctx context.Context, ins *entity.HomeInsurance) error {
	return replaceItem(ctx, r.insurances, ins.UserID, ins.ID, insuranceRecordID, homeInsuranceFromEntity(ins))
}

// DeleteInsurance removes an insurance policy.
func (r *homeRepository) DeleteInsurance(ctx context.Context, id, userID uuid.UUID) error {
	return removeItem(ctx, r.insurances, userID, id, insuranceRecordID)
}

// DeleteInsurancesByHome removes every insurance policy attached to a home.
func (r *homeRepository) DeleteInsurancesByHome(ctx context.Context, homeID, userID uuid.UUID) error {
	return removeWhere(ctx, r.insurances, userID, func(rec homeInsuranceRecord) bool {
		return rec.HomeID == homeID
	})
}

// CreateSmokeAlarm appends a smoke alarm to the owner's collection.
func (r *homeRepository) CreateSmokeAlarm(ctx context.Context, alarm *entity.SmokeAlarm) error {
	return appendItem(ctx, r.alarms, alarm.UserID, smokeAlarmFromEntity(alarm))
}

// FindSmokeAlarmsByHome retrieves the smoke alarms registered against a home.
func (r *homeRepository) FindSmokeAlarmsByHome(ctx context.Context, homeID, userID uuid.UUID) ([]*entity.SmokeAlarm, error) {
	records, err := r.alarms.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []*entity.SmokeAlarm
	for _, rec := range records {
		if rec.HomeID == homeID {
			out = append(out, rec.toEntity())
		}
	}
	return out, nil
}

// UpdateSmokeAlarm replaces an existing smoke alarm.
func (r *homeRepository) UpdateSmokeAlarm(ctx context.Context, alarm *entity.SmokeAlarm) error {
	return replaceItem(ctx, r.alarms, alarm.UserID, alarm.ID, alarmRecordID, smokeAlarmFromEntity(alarm))
}

// DeleteSmokeAlarm removes a smoke alarm.
func (r *homeRepository) DeleteSmokeAlarm(ctx context.Context, id, userID uuid.UUID) error {
	return removeItem(ctx, r.alarms, userID, id, alarmRecordID)
}

// DeleteSmokeAlarmsByHome removes every smoke alarm registered against a home.
func (r *homeRepository) DeleteSmokeAlarmsByHome(ctx context.Context, homeID, userID uuid.UUID) error {
	return removeWhere(ctx, r.alarms, userID, func(rec smokeAlarmRecord) bool {
		return rec.HomeID == homeID
	})
}

// CreateRepair appends a repair record to the owner's collection.
func (r *homeRepository) CreateRepair(ctx context.Context, repair *entity.RepairMaintenance) error {
	return appendItem(ctx, r.repairs, repair.UserID, repairMaintenanceFromEntity(repair))
}

// FindRepairsByHome retrieves the repair records attached to a home.
func (r *homeRepository) FindRepairsByHome(ctx context.Context, homeID, userID uuid.UUID) ([]*entity.RepairMaintenance, error) {
	records, err := r.repairs.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []*entity.RepairMaintenance
	for _, rec := range records {
		if rec.HomeID == homeID {
			out = append(out, rec.toEntity())
		}
	}
	return out, nil
}

// UpdateRepair replaces an existing repair record.
func (r *homeRepository) UpdateRepair(ctx context.Context, repair *entity.RepairMaintenance) error {
	return replaceItem(ctx, r.repairs, repair.UserID, repair.ID, repairRecordID, repairMaintenanceFromEntity(repair))
}

// DeleteRepair removes a repair record.
func (r *homeRepository) DeleteRepair(ctx context.Context, id, userID uuid.UUID) error {
	return removeItem(ctx, r.repairs, userID, id, repairRecordID)
}

// DeleteRepairsByHome removes every repair record attached to a home.
func (r *homeRepository) DeleteRepairsByHome(ctx context.Context, homeID, userID uuid.UUID) error {
	return removeWhere(ctx, r.repairs, userID, func(rec repairMaintenanceRecord) bool {
		return rec.HomeID == homeID
	})
}

// CreateUtilityBill appends a utility bill to the owner's collection.
func (r *homeRepository) CreateUtilityBill(ctx context.Context, bill *entity.UtilityBill) error {
	return appendItem(ctx, r.bills, bill.UserID, utilityBillFromEntity(bill))
}

// FindUtilityBillsByHome retrieves the utility bills attached to a home.
func (r *homeRepository) FindUtilityBillsByHome(ctx context.Context, homeID, userID uuid.UUID) ([]*entity.UtilityBill, error) {
	records, err := r.bills.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []*entity.UtilityBill
	for _, rec := range records {
		if rec.HomeID == homeID {
			out = append(out, rec.toEntity())
		}
	}
	return out, nil
}

// UpdateUtilityBill replaces an existing utility bill.
func (r *homeRepository) UpdateUtilityBill(ctx context.Context, bill *entity.UtilityBill) error {
	return replaceItem(ctx, r.bills, bill.UserID, bill.ID, billRecordID, utilityBillFromEntity(bill))
}

// DeleteUtilityBill removes a utility bill.
func (r *homeRepository) DeleteUtilityBill(ctx context.Context, id, userID uuid.UUID) error {
	return removeItem(ctx, r.bills, userID, id, billRecordID)
}

// DeleteUtilityBillsByHome removes every utility bill attached to a home.
func (r *homeRepository) DeleteUtilityBillsByHome(ctx context.Context, homeID, userID uuid.UUID) error {
	return removeWhere(ctx, r.bills, userID, func(rec utilityBillRecord) bool {
		return rec.HomeID == homeID
	})
}

func homeRecordID(r homeRecord) uuid.UUID                { return r.ID }
func insuranceRecordID(r homeInsuranceRecord) uuid.UUID  { return r.ID }
func alarmRecordID(r smokeAlarmRecord) uuid.UUID         { return r.ID }
func repairRecordID(r repairMaintenanceRecord) uuid.UUID { return r.ID }
func billRecordID(r utilityBillRecord) uuid.UUID         { return r.ID }
