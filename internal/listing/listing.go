// Package listing filters and sorts competition and transaction lists.
//
// Functions here never modify their input: results are fresh slices, and
// sorting is stable so equal keys keep their original relative order.
package listing

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/status"
)

// Sort selects the ordering of a competition list
type Sort string

const (
	SortNewest       Sort = "newest"
	SortPrize        Sort = "prize"
	SortParticipants Sort = "participants"
)

// ParseSort validates a sort key. An empty key means SortNewest.
func ParseSort(s string) (Sort, error) {
	switch Sort(s) {
	case "", SortNewest:
		return SortNewest, nil
	case SortPrize, SortParticipants:
		return Sort(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// Filter holds the competition predicates. Nil bounds and empty
// allow-lists do not constrain the result.
type Filter struct {
	Query    string
	MinFee   *float64
	MaxFee   *float64
	MinPrize *float64
	Markets  []models.Market
	Statuses []status.Status
	Sort     Sort
}

// Competitions returns the competitions matching every predicate in f,
// ordered by f.Sort. Statuses are derived at now.
func Competitions(list []models.Competition, f Filter, now time.Time) []models.Competition {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Competition, 0, len(list))
	for _, c := range list {
		if f.MinFee != nil && c.EntryFee < *f.MinFee {
			continue
		}
		if f.MaxFee != nil && c.EntryFee > *f.MaxFee {
			continue
		}
		if f.MinPrize != nil && c.PrizePool < *f.MinPrize {
			continue
		}
		if len(f.Markets) > 0 && !slices.Contains(f.Markets, c.Market) {
			continue
		}
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, status.Derive(now, c.StartsAt, c.EndsAt).Status) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(c.Title), query) {
			continue
		}
		out = append(out, c)
	}

	switch f.Sort {
	case SortPrize:
		slices.SortStableFunc(out, func(a, b models.Competition) int {
			return cmp.Compare(b.PrizePool, a.PrizePool)
		})
	case SortParticipants:
		slices.SortStableFunc(out, func(a, b models.Competition) int {
			return cmp.Compare(b.Participants, a.Participants)
		})
	}
	return out
}

// TxFilter holds the transaction predicates
type TxFilter struct {
	Type      models.TxType
	Status    models.TxStatus
	MinAmount *float64
	MaxAmount *float64
}

// Transactions returns the transactions matching f in their original order
func Transactions(list []models.Transaction, f TxFilter) []models.Transaction {
	out := make([]models.Transaction, 0, len(list))
	for _, tx := range list {
		if f.Type != "" && tx.Type != f.Type {
			continue
		}
		if f.Status != "" && tx.Status != f.Status {
			continue
		}
		if f.MinAmount != nil && tx.Amount < *f.MinAmount {
			continue
		}
		if f.MaxAmount != nil && tx.Amount > *f.MaxAmount {
			continue
		}
		out = append(out, tx)
	}
	return out
}
