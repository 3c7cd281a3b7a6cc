// Package i18n holds the compiled-in English and Persian string tables.
//
// Keys are an enumerated type and each table is a fixed-size array indexed
// by Key, so a table entry for an unknown key does not compile.
package i18n

import "fmt"

// Language is a supported UI language
type Language string

const (
	English Language = "en"
	Persian Language = "fa"
)

// Languages lists the supported languages
var Languages = []Language{English, Persian}

// ParseLanguage validates a language code
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case English, Persian:
		return Language(s), nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Dir returns the text direction for the language
func (l Language) Dir() string {
	if l == Persian {
		return "rtl"
	}
	return "ltr"
}

// Key names a translatable string
type Key int

const (
	CommonCancel Key = iota
	CommonFilter
	CommonLoading
	CommonJoin
	CommonExport

	CompetitionsTitle
	CompetitionsFilterFee
	CompetitionsFilterPrize
	CompetitionsSortBy
	CompetitionsSortNewest
	CompetitionsSortPrize
	CompetitionsSortParticipants
	CompetitionsMarketForex
	CompetitionsMarketCrypto
	CompetitionsParticipants
	CompetitionsEntryFee

	StatusUpcoming
	StatusLive
	StatusEnded
	StatusStarted

	TournamentsTitle
	TournamentsSubtitle
	TournamentsOngoing
	TournamentsUnderReview
	TournamentsFinished
	TournamentsCanceled
	TournamentsUpcoming
	TournamentsResults
	TournamentsViewLive
	TournamentsViewEvidence

	WalletBalance
	WalletAmount
	WalletDeposit
	WalletWithdraw
	WalletBankTransfer
	WalletCreditCard
	WalletDepositFlow
	WalletWithdrawFlow
	WalletEnterAmount
	WalletEnterWithdrawAmount
	WalletSelectPaymentMethod
	WalletVerificationRequired
	WalletTransactions

	LeaderboardTitle
	LeaderboardPoints

	keyCount
)

var keyNames = [keyCount]string{
	CommonCancel:  "common.cancel",
	CommonFilter:  "common.filter",
	CommonLoading: "common.loading",
	CommonJoin:    "common.join",
	CommonExport:  "common.export",

	CompetitionsTitle:            "competitions.title",
	CompetitionsFilterFee:        "competitions.filterFee",
	CompetitionsFilterPrize:      "competitions.filterPrize",
	CompetitionsSortBy:           "competitions.sortBy",
	CompetitionsSortNewest:       "competitions.sortNewest",
	CompetitionsSortPrize:        "competitions.sortPrize",
	CompetitionsSortParticipants: "competitions.sortParticipants",
	CompetitionsMarketForex:      "competitions.marketForex",
	CompetitionsMarketCrypto:     "competitions.marketCrypto",
	CompetitionsParticipants:     "competitions.participants",
	CompetitionsEntryFee:         "competitions.entryFee",

	StatusUpcoming: "status.upcoming",
	StatusLive:     "status.live",
	StatusEnded:    "status.ended",
	StatusStarted:  "status.started",

	TournamentsTitle:        "tournaments.title",
	TournamentsSubtitle:     "tournaments.subtitle",
	TournamentsOngoing:      "tournaments.ongoing",
	TournamentsUnderReview:  "tournaments.underReview",
	TournamentsFinished:     "tournaments.finished",
	TournamentsCanceled:     "tournaments.canceled",
	TournamentsUpcoming:     "tournaments.upcoming",
	TournamentsResults:      "tournaments.results",
	TournamentsViewLive:     "tournaments.viewLive",
	TournamentsViewEvidence: "tournaments.viewEvidence",

	WalletBalance:              "wallet.balance",
	WalletAmount:               "wallet.amount",
	WalletDeposit:              "wallet.deposit",
	WalletWithdraw:             "wallet.withdraw",
	WalletBankTransfer:         "wallet.bankTransfer",
	WalletCreditCard:           "wallet.creditCard",
	WalletDepositFlow:          "wallet.depositFlow",
	WalletWithdrawFlow:         "wallet.withdrawFlow",
	WalletEnterAmount:          "wallet.enterAmount",
	WalletEnterWithdrawAmount:  "wallet.enterWithdrawAmount",
	WalletSelectPaymentMethod:  "wallet.selectPaymentMethod",
	WalletVerificationRequired: "wallet.verificationRequired",
	WalletTransactions:         "wallet.transactions",

	LeaderboardTitle:  "leaderboard.title",
	LeaderboardPoints: "leaderboard.points",
}

// String returns the dotted key path
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("key(%d)", int(k))
	}
	return keyNames[k]
}

// Keys returns every defined key in declaration order
func Keys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// LookupKey finds a key by its dotted path
func LookupKey(path string) (Key, bool) {
	for i, name := range keyNames {
		if name == path {
			return Key(i), true
		}
	}
	return 0, false
}

func table(lang Language) *[keyCount]string {
	if lang == Persian {
		return &persian
	}
	return &english
}

// T translates key into lang. Missing Persian strings fall back to
// English, and a key missing from both renders as its dotted path.
func T(lang Language, key Key) string {
	if key < 0 || key >= keyCount {
		return key.String()
	}
	if s := table(lang)[key]; s != "" {
		return s
	}
	if s := english[key]; s != "" {
		return s
	}
	return keyNames[key]
}

// TPath translates a dotted key path, returning the path itself when the
// key is unknown.
func TPath(lang Language, path string) string {
	key, ok := LookupKey(path)
	if !ok {
		return path
	}
	return T(lang, key)
}

// Catalog returns every translation for lang keyed by dotted path
func Catalog(lang Language) map[string]string {
	out := make(map[string]string, keyCount)
	for _, k := range Keys() {
		out[keyNames[k]] = T(lang, k)
	}
	return out
}
