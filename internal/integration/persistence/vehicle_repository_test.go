package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.ExpenseModel{},
		&model.ActivityModel{},
		&model.VehicleModel{},
		&model.VehicleExpenseModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestVehicleRepository_ExpenseRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	vehicle := entity.NewVehicle(userID, "Toyota", "Camry", "2021", "ABC-123",
		entity.FuelTypePetrol, nil, nil, nil)
	if err := repo.Create(ctx, vehicle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	litres := mustDecimal(t, "42.300")
	expense := entity.NewVehicleExpense(userID, vehicle.ID, entity.VehicleExpenseTypeFuel,
		mustDecimal(t, "65.50"), time.Now().UTC(), &litres, nil, "Shell", "")
	if err := repo.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindExpenseByID(ctx, expense.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Amount.Equal(mustDecimal(t, "65.50")) {
		t.Errorf("expected amount 65.50, got %s", got.Amount)
	}
	if got.Litres == nil || !got.Litres.Equal(litres) {
		t.Errorf("expected litres %s, got %v", litres, got.Litres)
	}
	if got.Provider != "Shell" {
		t.Errorf("expected provider Shell, got %q", got.Provider)
	}

	expenses, err := repo.FindExpensesByVehicle(ctx, vehicle.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expenses) != 1 {
		t.Errorf("expected 1 expense, got %d", len(expenses))
	}
}

func TestVehicleRepository_DeleteWithExpensesCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	vehicle := entity.NewVehicle(userID, "Toyota", "Camry", "2021", "ABC-123",
		entity.FuelTypePetrol, nil, nil, nil)
	if err := repo.Create(ctx, vehicle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keeper := entity.NewVehicle(userID, "Mazda", "3", "2019", "XYZ-789",
		entity.FuelTypePetrol, nil, nil, nil)
	if err := repo.Create(ctx, keeper); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		expense := entity.NewVehicleExpense(userID, vehicle.ID, entity.VehicleExpenseTypeFuel,
			mustDecimal(t, "50.00"), time.Now().UTC(), nil, nil, "", "")
		if err := repo.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	keeperExpense := entity.NewVehicleExpense(userID, keeper.ID, entity.VehicleExpenseTypeService,
		mustDecimal(t, "320.00"), time.Now().UTC(), nil, nil, "", "")
	if err := repo.CreateExpense(ctx, keeperExpense); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.DeleteWithExpenses(ctx, vehicle.ID, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByID(ctx, vehicle.ID, userID); err == nil {
		t.Error("expected vehicle to be deleted")
	}
	orphans, err := repo.FindExpensesByVehicle(ctx, vehicle.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orphans) != 0 {
		t.Errorf("expected expenses cascaded, got %d", len(orphans))
	}

	kept, err := repo.FindExpensesByVehicle(ctx, keeper.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("expected keeper expense to survive, got %d", len(kept))
	}
}

func TestVehicleRepository_DeleteMissingVehicle(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)

	if err := repo.DeleteWithExpenses(context.Background(), uuid.New(), uuid.New()); err == nil {
		t.Error("expected error deleting a missing vehicle")
	}
}

func TestUserRepository_CaseInsensitiveEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := entity.NewUser("jane.doe@example.com", "Jane", "Doe", "Sydney", "Australia", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindByEmail(ctx, "Jane.Doe@Example.COM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, got.ID)
	}

	exists, err := repo.ExistsByEmail(ctx, "JANE.DOE@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected case-insensitive existence check to succeed")
	}
}
