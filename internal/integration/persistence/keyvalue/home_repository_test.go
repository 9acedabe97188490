package keyvalue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	"github.com/lifetrack/backend/internal/infra/kv"
)

func newTestStore(t *testing.T) (adapter.KeyValueStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return kv.NewStore(client), mr
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestHomeRepository_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHomeRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	payment := mustDecimal(t, "2150.00")
	home := entity.NewHome(userID, "Main residence", entity.HomeTypeHouse,
		entity.OwnershipTypeMortgaged, &payment, "12 Wattle St")

	if err := repo.Create(ctx, home); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindByID(ctx, home.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Main residence" {
		t.Errorf("expected name %q, got %q", "Main residence", got.Name)
	}
	if got.Type != entity.HomeTypeHouse {
		t.Errorf("expected type %s, got %s", entity.HomeTypeHouse, got.Type)
	}
	if got.MonthlyPayment == nil || !got.MonthlyPayment.Equal(payment) {
		t.Errorf("expected monthly payment %s, got %v", payment, got.MonthlyPayment)
	}

	got.Name = "Old place"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := repo.FindByID(ctx, home.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Name != "Old place" {
		t.Errorf("expected updated name, got %q", again.Name)
	}

	if err := repo.Delete(ctx, home.ID, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, home.ID, userID); err == nil {
		t.Error("expected not found after delete")
	}
}

func TestHomeRepository_OwnerIsolation(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHomeRepository(store)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	home := entity.NewHome(alice, "Alice's flat", entity.HomeTypeApartment,
		entity.OwnershipTypeRented, nil, "")
	if err := repo.Create(ctx, home); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByID(ctx, home.ID, bob); err == nil {
		t.Error("expected bob to not see alice's home")
	}
	bobHomes, err := repo.FindByUser(ctx, bob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bobHomes) != 0 {
		t.Errorf("expected bob to have no homes, got %d", len(bobHomes))
	}
	if err := repo.Delete(ctx, home.ID, bob); err == nil {
		t.Error("expected bob's delete of alice's home to fail")
	}
}

func TestHomeRepository_CorruptValueFailsSoft(t *testing.T) {
	store, mr := newTestStore(t)
	repo := NewHomeRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	mr.Set(homesPrefix+"_"+userID.String(), "{not json")

	homes, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("expected soft failure, got error: %v", err)
	}
	if len(homes) != 0 {
		t.Errorf("expected empty collection from corrupt value, got %d", len(homes))
	}

	// A fresh write must recover the key.
	home := entity.NewHome(userID, "Recovered", entity.HomeTypeUnit,
		entity.OwnershipTypeOwned, nil, "")
	if err := repo.Create(ctx, home); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	homes, err = repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(homes) != 1 {
		t.Errorf("expected 1 home after recovery, got %d", len(homes))
	}
}

func TestHomeRepository_InterleavedCreatesBothSurvive(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHomeRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	const writers = 8
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			home := entity.NewHome(userID, "Concurrent", entity.HomeTypeHouse,
				entity.OwnershipTypeOwned, nil, "")
			if err := repo.Create(ctx, home); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	homes, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(homes) != writers {
		t.Errorf("expected %d homes to survive interleaved creates, got %d", writers, len(homes))
	}
}

func TestHomeRepository_ChildCollections(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHomeRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	home := entity.NewHome(userID, "Main residence", entity.HomeTypeHouse,
		entity.OwnershipTypeOwned, nil, "")
	if err := repo.Create(ctx, home); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	otherHome := entity.NewHome(userID, "Beach house", entity.HomeTypeHouse,
		entity.OwnershipTypeOwned, nil, "")
	if err := repo.Create(ctx, otherHome); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ins := entity.NewHomeInsurance(userID, home.ID, "AAMI", "POL-1",
		mustDecimal(t, "850.00"), time.Now().AddDate(1, 0, 0))
	if err := repo.CreateInsurance(ctx, ins); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alarm := entity.NewSmokeAlarm(userID, home.ID, "Hallway",
		entity.SmokeAlarmStatusWorking, nil, nil)
	if err := repo.CreateSmokeAlarm(ctx, alarm); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bill := entity.NewUtilityBill(userID, otherHome.ID, entity.UtilityBillTypeWater,
		mustDecimal(t, "120.40"), time.Now(), false)
	if err := repo.CreateUtilityBill(ctx, bill); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("children filter by home", func(t *testing.T) {
		insurances, err := repo.FindInsurancesByHome(ctx, home.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(insurances) != 1 || insurances[0].Provider != "AAMI" {
			t.Errorf("unexpected insurances: %+v", insurances)
		}

		bills, err := repo.FindUtilityBillsByHome(ctx, home.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bills) != 0 {
			t.Errorf("expected no bills on main residence, got %d", len(bills))
		}
	})

	t.Run("cascade removes only the target home's children", func(t *testing.T) {
		if err := repo.DeleteInsurancesByHome(ctx, home.ID, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.DeleteSmokeAlarmsByHome(ctx, home.ID, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		insurances, err := repo.FindInsurancesByHome(ctx, home.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(insurances) != 0 {
			t.Errorf("expected insurances cascaded, got %d", len(insurances))
		}

		bills, err := repo.FindUtilityBillsByHome(ctx, otherHome.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bills) != 1 {
			t.Errorf("expected beach house bill to survive, got %d", len(bills))
		}
	})
}
