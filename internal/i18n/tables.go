package i18n

var english = [keyCount]string{
	CommonCancel:  "Cancel",
	CommonFilter:  "Filter",
	CommonLoading: "Loading...",
	CommonJoin:    "Join",
	CommonExport:  "Export",

	CompetitionsTitle:            "Competitions",
	CompetitionsFilterFee:        "Entry fee",
	CompetitionsFilterPrize:      "Minimum prize",
	CompetitionsSortBy:           "Sort by",
	CompetitionsSortNewest:       "Newest",
	CompetitionsSortPrize:        "Prize pool",
	CompetitionsSortParticipants: "Participants",
	CompetitionsMarketForex:      "Forex",
	CompetitionsMarketCrypto:     "Crypto",
	CompetitionsParticipants:     "Participants",
	CompetitionsEntryFee:         "Entry fee",

	StatusUpcoming: "Upcoming",
	StatusLive:     "Live",
	StatusEnded:    "Ended",
	StatusStarted:  "Started",

	TournamentsTitle:        "My Tournaments",
	TournamentsSubtitle:     "Track the competitions you have entered",
	TournamentsOngoing:      "Ongoing",
	TournamentsUnderReview:  "Under review",
	TournamentsFinished:     "Finished",
	TournamentsCanceled:     "Canceled",
	TournamentsUpcoming:     "Upcoming",
	TournamentsResults:      "Results",
	TournamentsViewLive:     "View live",
	TournamentsViewEvidence: "View evidence",

	WalletBalance:              "Balance",
	WalletAmount:               "Amount",
	WalletDeposit:              "Deposit",
	WalletWithdraw:             "Withdraw",
	WalletBankTransfer:         "Bank transfer",
	WalletCreditCard:           "Credit card",
	WalletDepositFlow:          "Deposit funds",
	WalletWithdrawFlow:         "Withdraw funds",
	WalletEnterAmount:          "Enter an amount",
	WalletEnterWithdrawAmount:  "Enter the amount to withdraw",
	WalletSelectPaymentMethod:  "Select a payment method",
	WalletVerificationRequired: "Two-factor verification required",
	WalletTransactions:         "Transactions",

	LeaderboardTitle:  "Leaderboard",
	LeaderboardPoints: "Points",
}

var persian = [keyCount]string{
	CommonCancel:  "لغو",
	CommonFilter:  "فیلتر",
	CommonLoading: "در حال بارگذاری...",
	CommonJoin:    "شرکت",
	CommonExport:  "خروجی",

	CompetitionsTitle:            "مسابقات",
	CompetitionsFilterFee:        "هزینه ورود",
	CompetitionsFilterPrize:      "حداقل جایزه",
	CompetitionsSortBy:           "مرتب‌سازی",
	CompetitionsSortNewest:       "جدیدترین",
	CompetitionsSortPrize:        "جایزه",
	CompetitionsSortParticipants: "شرکت‌کنندگان",
	CompetitionsMarketForex:      "فارکس",
	CompetitionsMarketCrypto:     "کریپتو",
	CompetitionsParticipants:     "شرکت‌کنندگان",
	CompetitionsEntryFee:         "هزینه ورود",

	StatusUpcoming: "به‌زودی",
	StatusLive:     "در حال برگزاری",
	StatusEnded:    "پایان یافته",
	StatusStarted:  "شروع شده",

	TournamentsTitle:        "تورنمنت‌های من",
	TournamentsSubtitle:     "مسابقاتی که در آن‌ها شرکت کرده‌اید",
	TournamentsOngoing:      "در حال برگزاری",
	TournamentsUnderReview:  "در حال بررسی",
	TournamentsFinished:     "پایان یافته",
	TournamentsCanceled:     "لغو شده",
	TournamentsUpcoming:     "به‌زودی",
	TournamentsResults:      "نتایج",
	TournamentsViewLive:     "مشاهده زنده",
	TournamentsViewEvidence: "مشاهده مدارک",

	WalletBalance:              "موجودی",
	WalletAmount:               "مبلغ",
	WalletDeposit:              "واریز",
	WalletWithdraw:             "برداشت",
	WalletBankTransfer:         "انتقال بانکی",
	WalletCreditCard:           "کارت اعتباری",
	WalletDepositFlow:          "واریز وجه",
	WalletWithdrawFlow:         "برداشت وجه",
	WalletEnterAmount:          "مبلغ را وارد کنید",
	WalletEnterWithdrawAmount:  "مبلغ برداشت را وارد کنید",
	WalletSelectPaymentMethod:  "روش پرداخت را انتخاب کنید",
	WalletVerificationRequired: "تأیید دو مرحله‌ای لازم است",

	LeaderboardTitle: "جدول امتیازات",
}
