package models

import "time"

// Market tags a competition with the kind of instrument traded
type Market string

const (
	MarketForex  Market = "forex"
	MarketCrypto Market = "crypto"
)

// Markets lists the known market tags
var Markets = []Market{MarketForex, MarketCrypto}

// Valid reports whether m is a known market
func (m Market) Valid() bool {
	return m == MarketForex || m == MarketCrypto
}

// DefaultCurrency is used when a competition does not name one
const DefaultCurrency = "USDT"

// PrizePlace is one row of a prize breakdown
type PrizePlace struct {
	Place  int     `json:"place"`
	Amount float64 `json:"amount"`
}

// Competition is a trading competition users can enter
type Competition struct {
	ID             int          `json:"id"`
	Title          string       `json:"title"`
	Market         Market       `json:"market"`
	EntryFee       float64      `json:"entry_fee"`
	FeeCurrency    string       `json:"fee_currency"`
	Participants   int          `json:"participants"`
	Capacity       *int         `json:"capacity,omitempty"`
	StartsAt       time.Time    `json:"starts_at"`
	EndsAt         time.Time    `json:"ends_at"`
	PrizePool      float64      `json:"prize_pool"`
	PrizeCurrency  string       `json:"prize_currency"`
	PrizeBreakdown []PrizePlace `json:"prize_breakdown"`
	CreatedAt      time.Time    `json:"created_at"`
}

// Full reports whether the competition has reached its capacity
func (c Competition) Full() bool {
	return c.Capacity != nil && c.Participants >= *c.Capacity
}

// AllocatedPrize sums the prize breakdown
func (c Competition) AllocatedPrize() float64 {
	var sum float64
	for _, p := range c.PrizeBreakdown {
		sum += p.Amount
	}
	return sum
}

// TxType is the direction of a wallet transaction
type TxType string

const (
	TxDeposit  TxType = "deposit"
	TxWithdraw TxType = "withdraw"
)

// TxStatus is the settlement state of a wallet transaction
type TxStatus string

const (
	TxCompleted TxStatus = "completed"
	TxPending   TxStatus = "pending"
)

func (t TxType) Valid() bool {
	return t == TxDeposit || t == TxWithdraw
}

func (s TxStatus) Valid() bool {
	return s == TxCompleted || s == TxPending
}

// PaymentMethod is how a deposit or withdrawal is routed
type PaymentMethod string

const (
	MethodCard PaymentMethod = "card"
	MethodBank PaymentMethod = "bank"
)

// Valid reports whether m is a known payment method
func (m PaymentMethod) Valid() bool {
	return m == MethodCard || m == MethodBank
}

// Transaction is a wallet movement. Amounts are stored in cents.
type Transaction struct {
	ID          string        `json:"id"`
	Type        TxType        `json:"type"`
	AmountCents int64         `json:"-"`
	Amount      float64       `json:"amount"`
	Method      PaymentMethod `json:"method"`
	Status      TxStatus      `json:"status"`
	CreatedAt   time.Time     `json:"date"`
}

// Wallet is the single balance shown on the wallet page
type Wallet struct {
	BalanceCents int64   `json:"-"`
	Balance      float64 `json:"balance"`
	Currency     string  `json:"currency"`
}

// EntryStatus is the state of a user's tournament entry
type EntryStatus string

const (
	EntryOngoing     EntryStatus = "ongoing"
	EntryUnderReview EntryStatus = "under_review"
	EntryFinished    EntryStatus = "finished"
	EntryCanceled    EntryStatus = "canceled"
)

// EntryStatuses lists entry states in display order
var EntryStatuses = []EntryStatus{EntryOngoing, EntryUnderReview, EntryFinished, EntryCanceled}

// Valid reports whether s is a known entry status
func (s EntryStatus) Valid() bool {
	for _, v := range EntryStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// TournamentEntry is a competition the user has joined
type TournamentEntry struct {
	ID            int         `json:"id"`
	CompetitionID int         `json:"competition_id"`
	Title         string      `json:"title"`
	Status        EntryStatus `json:"status"`
	Participants  int         `json:"participants"`
	Prize         float64     `json:"prize"`
	Rank          int         `json:"rank"`
	CancelReason  string      `json:"cancel_reason,omitempty"`
	JoinedAt      time.Time   `json:"joined_at"`
}

// Leader is one row of the leaderboard
type Leader struct {
	Rank   int      `json:"rank"`
	Name   string   `json:"name"`
	Handle string   `json:"handle"`
	Points int      `json:"points"`
	Badges []string `json:"badges"`
}

// Theme is the UI colour scheme preference
type Theme string

const (
	ThemeLight     Theme = "light"
	ThemeDark      Theme = "dark"
	ThemeLegendary Theme = "legendary"
)

// Valid reports whether t is a known theme
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeLegendary
}

// Preferences are the process-wide display settings
type Preferences struct {
	Language string `json:"language" yaml:"language"`
	Theme    Theme  `json:"theme" yaml:"theme"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}
