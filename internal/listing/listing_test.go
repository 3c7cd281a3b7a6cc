package listing

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/status"
)

var now = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

func ptr(v float64) *float64 { return &v }

func ids(list []models.Competition) []int {
	out := make([]int, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}

func sample() []models.Competition {
	return []models.Competition{
		{ID: 1, Title: "Forex Sprint", Market: models.MarketForex, EntryFee: 100, PrizePool: 5000, Participants: 40,
			StartsAt: now.Add(time.Hour), EndsAt: now.Add(25 * time.Hour)},
		{ID: 2, Title: "Crypto Marathon", Market: models.MarketCrypto, EntryFee: 50, PrizePool: 10000, Participants: 120,
			StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour)},
		{ID: 3, Title: "Weekend forex cup", Market: models.MarketForex, EntryFee: 20, PrizePool: 8000, Participants: 40,
			StartsAt: now.Add(-48 * time.Hour), EndsAt: now.Add(-24 * time.Hour)},
		{ID: 4, Title: "Altcoin Arena", Market: models.MarketCrypto, EntryFee: 0, PrizePool: 8000, Participants: 75,
			StartsAt: now.Add(2 * time.Hour), EndsAt: now.Add(50 * time.Hour)},
	}
}

func TestCompetitions_Filters(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"no predicates", Filter{}, []int{1, 2, 3, 4}},
		{"max fee", Filter{MaxFee: ptr(75)}, []int{2, 3, 4}},
		{"min fee", Filter{MinFee: ptr(50)}, []int{1, 2}},
		{"fee range inclusive", Filter{MinFee: ptr(20), MaxFee: ptr(50)}, []int{2, 3}},
		{"min prize", Filter{MinPrize: ptr(8000)}, []int{2, 3, 4}},
		{"market", Filter{Markets: []models.Market{models.MarketForex}}, []int{1, 3}},
		{"status", Filter{Statuses: []status.Status{status.Upcoming}}, []int{1, 4}},
		{"live or ended", Filter{Statuses: []status.Status{status.Live, status.Ended}}, []int{2, 3}},
		{"query case insensitive", Filter{Query: "FOREX"}, []int{1, 3}},
		{"combined", Filter{Query: "forex", MaxFee: ptr(50)}, []int{3}},
		{"nothing matches", Filter{MinPrize: ptr(1e9)}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Competitions(sample(), tt.filter, now))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompetitions_MaxFeeExample(t *testing.T) {
	list := []models.Competition{
		{ID: 1, EntryFee: 100, PrizePool: 5000},
		{ID: 2, EntryFee: 50, PrizePool: 10000},
	}
	got := Competitions(list, Filter{MaxFee: ptr(75)}, now)
	if len(got) != 1 || got[0].EntryFee != 50 || got[0].PrizePool != 10000 {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestCompetitions_Sorting(t *testing.T) {
	tests := []struct {
		sort Sort
		want []int
	}{
		{SortNewest, []int{1, 2, 3, 4}},
		{SortPrize, []int{2, 3, 4, 1}},
		{SortParticipants, []int{2, 4, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			got := ids(Competitions(sample(), Filter{Sort: tt.sort}, now))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompetitions_PrizeSortExample(t *testing.T) {
	list := []models.Competition{{ID: 1, PrizePool: 5000}, {ID: 2, PrizePool: 10000}, {ID: 3, PrizePool: 8000}}
	got := Competitions(list, Filter{Sort: SortPrize}, now)
	var prizes []float64
	for _, c := range got {
		prizes = append(prizes, c.PrizePool)
	}
	if diff := cmp.Diff([]float64{10000, 8000, 5000}, prizes); diff != "" {
		t.Errorf("prize order mismatch (-want +got):\n%s", diff)
	}
}

func TestCompetitions_Idempotent(t *testing.T) {
	f := Filter{MaxFee: ptr(60), Sort: SortPrize}
	once := Competitions(sample(), f, now)
	twice := Competitions(once, f, now)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second pass changed the result (-once +twice):\n%s", diff)
	}
}

func TestCompetitions_DoesNotMutateInput(t *testing.T) {
	src := sample()
	before := ids(src)
	Competitions(src, Filter{Sort: SortPrize}, now)
	if diff := cmp.Diff(before, ids(src)); diff != "" {
		t.Errorf("input reordered (-before +after):\n%s", diff)
	}
}

func TestParseSort(t *testing.T) {
	for in, want := range map[string]Sort{"": SortNewest, "newest": SortNewest, "prize": SortPrize, "participants": SortParticipants} {
		got, err := ParseSort(in)
		if err != nil || got != want {
			t.Errorf("ParseSort(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseSort("oldest"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestTransactions(t *testing.T) {
	list := []models.Transaction{
		{ID: "a", Type: models.TxDeposit, Amount: 100, Status: models.TxCompleted},
		{ID: "b", Type: models.TxWithdraw, Amount: 50, Status: models.TxPending},
		{ID: "c", Type: models.TxDeposit, Amount: 500, Status: models.TxCompleted},
		{ID: "d", Type: models.TxWithdraw, Amount: 200, Status: models.TxCompleted},
	}

	tests := []struct {
		name   string
		filter TxFilter
		want   []string
	}{
		{"all", TxFilter{}, []string{"a", "b", "c", "d"}},
		{"deposits", TxFilter{Type: models.TxDeposit}, []string{"a", "c"}},
		{"pending", TxFilter{Status: models.TxPending}, []string{"b"}},
		{"amount range", TxFilter{MinAmount: ptr(100), MaxAmount: ptr(200)}, []string{"a", "d"}},
		{"completed withdrawals", TxFilter{Type: models.TxWithdraw, Status: models.TxCompleted}, []string{"d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, tx := range Transactions(list, tt.filter) {
				got = append(got, tx.ID)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
