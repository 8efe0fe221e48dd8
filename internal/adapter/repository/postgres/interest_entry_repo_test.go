package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/iho/treasury/internal/domain"
)

// anyEntryArgs matches the nine insert arguments without asserting values;
// pgxmock requires the argument count to line up even when values are ignored.
func anyEntryArgs() []interface{} {
	args := make([]interface{}, 9)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func entryFixture() *domain.InterestEntry {
	return &domain.InterestEntry{
		ID:           "entry-1",
		Kind:         domain.KindAdvance,
		InstrumentID: "adv-1",
		EntryDate:    time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		Balance:      decimal.RequireFromString("100000.00"),
		DailyRate:    decimal.RequireFromString("0.0001232877"),
		Interest:     decimal.RequireFromString("12.33"),
		Cumulative:   decimal.RequireFromString("12.33"),
		CreatedAt:    time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC),
	}
}

func TestInterestEntryCreate(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectExec("INSERT INTO interest_entries").
		WithArgs(anyEntryArgs()...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mockPool.ExpectCommit()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	repo := NewInterestEntryRepository(nil)
	if err := repo.Create(context.Background(), tx, entryFixture()); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestInterestEntryCreateDuplicateKeepsTransactionUsable(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	// The conflicting insert affects zero rows instead of raising, so the
	// transaction is not aborted.
	mockPool.ExpectExec("INSERT INTO interest_entries").
		WithArgs(anyEntryArgs()...).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mockPool.ExpectQuery("SELECT EXISTS").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mockPool.ExpectCommit()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	repo := NewInterestEntryRepository(nil)
	entry := entryFixture()

	err = repo.Create(context.Background(), tx, entry)
	if !errors.Is(err, domain.ErrDuplicateInterestEntry) {
		t.Fatalf("err = %v, want ErrDuplicateInterestEntry", err)
	}

	// Subsequent statements on the same transaction must still succeed.
	exists, err := repo.ExistsOn(context.Background(), tx, entry.Kind, entry.InstrumentID, entry.EntryDate)
	if err != nil {
		t.Fatalf("exists after duplicate: %v", err)
	}
	if !exists {
		t.Error("expected entry to exist")
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit: %v", err)
	}

	assertExpectations(t, mockPool)
}
