package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/persistence/model"
)

// vehicleRepository implements the adapter.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository instance.
func NewVehicleRepository(db *gorm.DB) adapter.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

// Create creates a new vehicle in the database.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleModel := model.VehicleFromEntity(vehicle)
	result := r.db.WithContext(ctx).Create(vehicleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a vehicle by id, scoped to the owning user.
func (r *vehicleRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Vehicle, error) {
	var vehicleModel model.VehicleModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&vehicleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return vehicleModel.ToEntity(), nil
}

// FindByUser retrieves all vehicles for a user, newest first.
func (r *vehicleRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vehicle, error) {
	var vehicleModels []model.VehicleModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&vehicleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	vehicles := make([]*entity.Vehicle, len(vehicleModels))
	for i := range vehicleModels {
		vehicles[i] = vehicleModels[i].ToEntity()
	}
	return vehicles, nil
}

// Update updates an existing vehicle, scoped to the owning user.
func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleModel := model.VehicleFromEntity(vehicle)
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", vehicle.ID, vehicle.UserID).
		Save(vehicleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteWithExpenses removes a vehicle and all its expense records in a single
// transaction, so a failure part way leaves both intact.
func (r *vehicleRepository) DeleteWithExpenses(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("vehicle_id = ? AND user_id = ?", id, userID).
			Delete(&model.VehicleExpenseModel{}).Error; err != nil {
			return err
		}

		result := tx.
			Where("id = ? AND user_id = ?", id, userID).
			Delete(&model.VehicleModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrRecordNotFound
		}
		return nil
	})
}

// CreateExpense creates a new vehicle expense in the database.
func (r *vehicleRepository) CreateExpense(ctx context.Context, expense *entity.VehicleExpense) error {
	expenseModel := model.VehicleExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindExpenseByID retrieves a vehicle expense by id, scoped to the owning user.
func (r *vehicleRepository) FindExpenseByID(ctx context.Context, id, userID uuid.UUID) (*entity.VehicleExpense, error) {
	var expenseModel model.VehicleExpenseModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindExpensesByVehicle retrieves all expenses for a vehicle, newest first.
func (r *vehicleRepository) FindExpensesByVehicle(ctx context.Context, vehicleID, userID uuid.UUID) ([]*entity.VehicleExpense, error) {
	var expenseModels []model.VehicleExpenseModel
	result := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND user_id = ?", vehicleID, userID).
		Order("date DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.VehicleExpense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses, nil
}

// UpdateExpense updates an existing vehicle expense, scoped to the owning user.
func (r *vehicleRepository) UpdateExpense(ctx context.Context, expense *entity.VehicleExpense) error {
	expenseModel := model.VehicleExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", expense.ID, expense.UserID).
		Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteExpense removes a vehicle expense, scoped to the owning user.
func (r *vehicleRepository) DeleteExpense(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.VehicleExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}
