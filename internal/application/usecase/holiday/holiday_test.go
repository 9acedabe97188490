package holiday

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// fakeHolidayRepository is an in-memory HolidayRepository for use case tests.
type fakeHolidayRepository struct {
	holidays map[uuid.UUID]*entity.Holiday
	expenses map[uuid.UUID]*entity.HolidayDailyExpense
}

func newFakeHolidayRepository() *fakeHolidayRepository {
	return &fakeHolidayRepository{
		holidays: make(map[uuid.UUID]*entity.Holiday),
		expenses: make(map[uuid.UUID]*entity.HolidayDailyExpense),
	}
}

func (r *fakeHolidayRepository) Create(_ context.Context, h *entity.Holiday) error {
	r.holidays[h.ID] = h
	return nil
}

func (r *fakeHolidayRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Holiday, error) {
	h, ok := r.holidays[id]
	if !ok || h.UserID != userID {
		return nil, domainerror.ErrRecordNotFound
	}
	return h, nil
}

func (r *fakeHolidayRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Holiday, error) {
	var out []*entity.Holiday
	for _, h := range r.holidays {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepository) Update(_ context.Context, h *entity.Holiday) error {
	if _, ok := r.holidays[h.ID]; !ok {
		return domainerror.ErrRecordNotFound
	}
	r.holidays[h.ID] = h
	return nil
}

func (r *fakeHolidayRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	h, ok := r.holidays[id]
	if !ok || h.UserID != userID {
		return domainerror.ErrRecordNotFound
	}
	delete(r.holidays, id)
	return nil
}

func (r *fakeHolidayRepository) CreateDailyExpense(_ context.Context, e *entity.HolidayDailyExpense) error {
	r.expenses[e.ID] = e
	return nil
}

func (r *fakeHolidayRepository) FindDailyExpenseByID(_ context.Context, id, userID uuid.UUID) (*entity.HolidayDailyExpense, error) {
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID {
		return nil, domainerror.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeHolidayRepository) FindDailyExpensesByHoliday(_ context.Context, holidayID, userID uuid.UUID) ([]*entity.HolidayDailyExpense, error) {
	var out []*entity.HolidayDailyExpense
	for _, e := range r.expenses {
		if e.HolidayID == holidayID && e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepository) FindDailyExpensesByDay(_ context.Context, holidayID, userID uuid.UUID, dayNumber int) ([]*entity.HolidayDailyExpense, error) {
	var out []*entity.HolidayDailyExpense
	for _, e := range r.expenses {
		if e.HolidayID == holidayID && e.UserID == userID && e.DayNumber == dayNumber {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepository) UpdateDailyExpense(_ context.Context, e *entity.HolidayDailyExpense) error {
	if _, ok := r.expenses[e.ID]; !ok {
		return domainerror.ErrRecordNotFound
	}
	r.expenses[e.ID] = e
	return nil
}

func (r *fakeHolidayRepository) DeleteDailyExpense(_ context.Context, id, userID uuid.UUID) error {
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID {
		return domainerror.ErrRecordNotFound
	}
	delete(r.expenses, id)
	return nil
}

func (r *fakeHolidayRepository) DeleteDailyExpensesByHoliday(_ context.Context, holidayID, userID uuid.UUID) error {
	for id, e := range r.expenses {
		if e.HolidayID == holidayID && e.UserID == userID {
			delete(r.expenses, id)
		}
	}
	return nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCreateHolidayUseCase_DerivesTotalCost(t *testing.T) {
	repo := newFakeHolidayRepository()
	uc := NewCreateHolidayUseCase(repo)
	userID := uuid.New()

	out, err := uc.Execute(context.Background(), CreateHolidayInput{
		UserID:            userID,
		Description:       "Bali trip",
		TravelMode:        entity.TravelModeFlight,
		DepartureDate:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Days:              7,
		TransportCost:     dec("500"),
		AccommodationCost: dec("1200"),
		InsuranceCost:     dec("80"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Holiday.TotalCost.Equal(dec("1780")) {
		t.Errorf("expected total cost 1780, got %s", out.Holiday.TotalCost)
	}
}

func TestCreateHolidayUseCase_Validation(t *testing.T) {
	repo := newFakeHolidayRepository()
	uc := NewCreateHolidayUseCase(repo)
	userID := uuid.New()

	base := CreateHolidayInput{
		UserID:            userID,
		Description:       "Road trip",
		TravelMode:        entity.TravelModeCar,
		DepartureDate:     time.Now(),
		Days:              3,
		TransportCost:     dec("100"),
		AccommodationCost: dec("200"),
		InsuranceCost:     dec("0"),
	}

	t.Run("rejects zero days", func(t *testing.T) {
		input := base
		input.Days = 0
		if _, err := uc.Execute(context.Background(), input); err == nil {
			t.Error("expected error for zero days")
		}
	})

	t.Run("rejects unknown travel mode", func(t *testing.T) {
		input := base
		input.TravelMode = "Teleport"
		_, err := uc.Execute(context.Background(), input)
		var recErr *domainerror.RecordError
		if !errors.As(err, &recErr) || recErr.Code != domainerror.ErrCodeInvalidTravelMode {
			t.Errorf("expected travel mode error, got %v", err)
		}
	})

	t.Run("rejects negative cost component", func(t *testing.T) {
		input := base
		input.InsuranceCost = dec("-1")
		if _, err := uc.Execute(context.Background(), input); err == nil {
			t.Error("expected error for negative cost")
		}
	})

	t.Run("accepts zero cost components", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Holiday.TotalCost.Equal(dec("300")) {
			t.Errorf("expected total cost 300, got %s", out.Holiday.TotalCost)
		}
	})
}

func TestUpdateHolidayUseCase_RecomputesTotalCost(t *testing.T) {
	repo := newFakeHolidayRepository()
	userID := uuid.New()

	holiday := entity.NewHoliday(
		userID, "Bali trip", entity.TravelModeFlight,
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), 7,
		dec("500"), dec("1200"), dec("80"),
	)
	repo.holidays[holiday.ID] = holiday

	uc := NewUpdateHolidayUseCase(repo)
	newAccommodation := dec("1500")
	out, err := uc.Execute(context.Background(), UpdateHolidayInput{
		ID:                holiday.ID,
		UserID:            userID,
		AccommodationCost: &newAccommodation,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Holiday.TotalCost.Equal(dec("2080")) {
		t.Errorf("expected recomputed total cost 2080, got %s", out.Holiday.TotalCost)
	}
}

func TestAddDailyExpenseUseCase_DayNumberBounds(t *testing.T) {
	repo := newFakeHolidayRepository()
	userID := uuid.New()

	holiday := entity.NewHoliday(
		userID, "City break", entity.TravelModeTrain,
		time.Now(), 3,
		dec("150"), dec("400"), dec("30"),
	)
	repo.holidays[holiday.ID] = holiday

	uc := NewAddDailyExpenseUseCase(repo)
	base := AddDailyExpenseInput{
		UserID:      userID,
		HolidayID:   holiday.ID,
		DayNumber:   2,
		Type:        entity.DailyExpenseTypeMeals,
		Amount:      dec("45.50"),
		Description: "Dinner",
	}

	t.Run("accepts day inside duration", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Expense.DayNumber != 2 {
			t.Errorf("expected day 2, got %d", out.Expense.DayNumber)
		}
	})

	t.Run("rejects day zero", func(t *testing.T) {
		input := base
		input.DayNumber = 0
		_, err := uc.Execute(context.Background(), input)
		var recErr *domainerror.RecordError
		if !errors.As(err, &recErr) || recErr.Code != domainerror.ErrCodeInvalidDayNumber {
			t.Errorf("expected day number error, got %v", err)
		}
	})

	t.Run("rejects day past duration", func(t *testing.T) {
		input := base
		input.DayNumber = 4
		if _, err := uc.Execute(context.Background(), input); err == nil {
			t.Error("expected error for day past holiday duration")
		}
	})

	t.Run("rejects expense on missing holiday", func(t *testing.T) {
		input := base
		input.HolidayID = uuid.New()
		if _, err := uc.Execute(context.Background(), input); err == nil {
			t.Error("expected error for unknown holiday")
		}
	})
}

func TestGetHolidayCostsUseCase_Aggregates(t *testing.T) {
	repo := newFakeHolidayRepository()
	userID := uuid.New()

	holiday := entity.NewHoliday(
		userID, "Bali trip", entity.TravelModeFlight,
		time.Now(), 7,
		dec("500"), dec("1200"), dec("80"),
	)
	repo.holidays[holiday.ID] = holiday

	add := NewAddDailyExpenseUseCase(repo)
	for _, e := range []struct {
		day    int
		amount string
	}{
		{1, "45.50"},
		{1, "12.00"},
		{3, "90.25"},
	} {
		if _, err := add.Execute(context.Background(), AddDailyExpenseInput{
			UserID:    userID,
			HolidayID: holiday.ID,
			DayNumber: e.day,
			Type:      entity.DailyExpenseTypeMeals,
			Amount:    dec(e.amount),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	uc := NewGetHolidayCostsUseCase(repo)
	out, err := uc.Execute(context.Background(), GetHolidayCostsInput{
		UserID:    userID,
		HolidayID: holiday.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.BaseCost.Equal(dec("1780")) {
		t.Errorf("expected base cost 1780, got %s", out.BaseCost)
	}
	if !out.DailyTotal.Equal(dec("147.75")) {
		t.Errorf("expected daily total 147.75, got %s", out.DailyTotal)
	}
	if !out.GrandTotal.Equal(dec("1927.75")) {
		t.Errorf("expected grand total 1927.75, got %s", out.GrandTotal)
	}
	if !out.TotalByDay[1].Equal(dec("57.50")) {
		t.Errorf("expected day 1 total 57.50, got %s", out.TotalByDay[1])
	}
	if !out.TotalByDay[3].Equal(dec("90.25")) {
		t.Errorf("expected day 3 total 90.25, got %s", out.TotalByDay[3])
	}
}

func TestDeleteHolidayUseCase_CascadesDailyExpenses(t *testing.T) {
	repo := newFakeHolidayRepository()
	userID := uuid.New()

	holiday := entity.NewHoliday(
		userID, "Cruise", entity.TravelModeCruise,
		time.Now(), 5,
		dec("900"), dec("0"), dec("60"),
	)
	repo.holidays[holiday.ID] = holiday
	expense := entity.NewHolidayDailyExpense(
		userID, holiday.ID, 1, entity.DailyExpenseTypeOther, dec("20"), "Tips", false,
	)
	repo.expenses[expense.ID] = expense

	uc := NewDeleteHolidayUseCase(repo)
	if err := uc.Execute(context.Background(), DeleteHolidayInput{ID: holiday.ID, UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.holidays) != 0 {
		t.Error("expected holiday to be deleted")
	}
	if len(repo.expenses) != 0 {
		t.Error("expected daily expenses to be cascaded")
	}
}
