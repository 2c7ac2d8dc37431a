package ledger

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"

	"github.com/pluto-fi/plutotui/pluto"
)

func TestSortByAmountMagnitude(t *testing.T) {
	march := pluto.NewDate(2025, time.March, 1)
	ts := []pluto.Transaction{
		tx("t1", "Rent", "rent", -50, march),
		tx("t2", "Refund", "shopping", 30, march),
	}

	// magnitude, not signed value: the -50 debit outranks the 30 credit
	sorted := Sort(ts, SortByAmount, Descending)
	be.Equal(t, "t1", sorted[0].TransactionID)
	be.Equal(t, "t2", sorted[1].TransactionID)

	sorted = Sort(ts, SortByAmount, Ascending)
	be.Equal(t, "t2", sorted[0].TransactionID)
}

func TestSortByDate(t *testing.T) {
	ts := []pluto.Transaction{
		tx("t1", "B", "misc", -1, pluto.NewDate(2025, time.March, 15)),
		tx("t2", "A", "misc", -1, pluto.NewDate(2025, time.January, 2)),
		tx("t3", "C", "misc", -1, pluto.NewDate(2025, time.July, 30)),
	}

	sorted := Sort(ts, SortByDate, Ascending)
	be.Equal(t, "t2", sorted[0].TransactionID)
	be.Equal(t, "t1", sorted[1].TransactionID)
	be.Equal(t, "t3", sorted[2].TransactionID)

	sorted = Sort(ts, SortByDate, Descending)
	be.Equal(t, "t3", sorted[0].TransactionID)
}

func TestSortByNameIsLocaleAware(t *testing.T) {
	march := pluto.NewDate(2025, time.March, 1)
	ts := []pluto.Transaction{
		tx("t1", "café du monde", "dining", -1, march),
		tx("t2", "Apple Store", "shopping", -1, march),
		tx("t3", "Zara", "shopping", -1, march),
	}

	sorted := Sort(ts, SortByName, Ascending)
	be.Equal(t, "Apple Store", sorted[0].Name)
	// loose collation ranks the accented name by its letters, not its bytes
	be.Equal(t, "café du monde", sorted[1].Name)
	be.Equal(t, "Zara", sorted[2].Name)
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	march := pluto.NewDate(2025, time.March, 1)
	ts := []pluto.Transaction{
		tx("t1", "First", "misc", -25, march),
		tx("t2", "Second", "misc", 25, march),
		tx("t3", "Third", "misc", -25, march),
	}

	sorted := Sort(ts, SortByAmount, Descending)
	be.Equal(t, "t1", sorted[0].TransactionID)
	be.Equal(t, "t2", sorted[1].TransactionID)
	be.Equal(t, "t3", sorted[2].TransactionID)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	ts := []pluto.Transaction{
		tx("t1", "B", "misc", -10, pluto.NewDate(2025, time.March, 2)),
		tx("t2", "A", "misc", -90, pluto.NewDate(2025, time.March, 1)),
	}

	_ = Sort(ts, SortByAmount, Descending)

	be.Equal(t, "t1", ts[0].TransactionID)
	be.Equal(t, "t2", ts[1].TransactionID)
}
