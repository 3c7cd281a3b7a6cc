package i18n

import "testing"

func TestEnglishTableComplete(t *testing.T) {
	for _, k := range Keys() {
		if english[k] == "" {
			t.Errorf("missing English string for %s", k)
		}
	}
}

func TestKeyNamesUnique(t *testing.T) {
	seen := map[string]Key{}
	for _, k := range Keys() {
		name := k.String()
		if name == "" {
			t.Errorf("key %d has no name", int(k))
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("keys %d and %d share name %q", int(prev), int(k), name)
		}
		seen[name] = k
	}
}

func TestT(t *testing.T) {
	tests := []struct {
		name string
		lang Language
		key  Key
		want string
	}{
		{"english", English, WalletBalance, "Balance"},
		{"persian", Persian, StatusStarted, "شروع شده"},
		{"persian market tag", Persian, CompetitionsMarketForex, "فارکس"},
		{"persian falls back to english", Persian, WalletTransactions, "Transactions"},
		{"unknown language uses english", Language("de"), CommonCancel, "Cancel"},
		{"out of range key", English, Key(-1), "key(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.lang, tt.key); got != tt.want {
				t.Errorf("T = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTPath(t *testing.T) {
	if got := TPath(English, "wallet.creditCard"); got != "Credit card" {
		t.Errorf("TPath = %q", got)
	}
	if got := TPath(Persian, "wallet.nope"); got != "wallet.nope" {
		t.Errorf("expected unknown path to echo back, got %q", got)
	}
}

func TestCatalog(t *testing.T) {
	cat := Catalog(Persian)
	if len(cat) != int(keyCount) {
		t.Fatalf("expected %d entries, got %d", keyCount, len(cat))
	}
	if cat["leaderboard.points"] != "Points" {
		t.Errorf("expected fallback for leaderboard.points, got %q", cat["leaderboard.points"])
	}
	for path, v := range cat {
		if v == "" {
			t.Errorf("empty translation for %s", path)
		}
	}
}

func TestLanguage(t *testing.T) {
	if English.Dir() != "ltr" || Persian.Dir() != "rtl" {
		t.Error("unexpected text direction")
	}
	if _, err := ParseLanguage("fa"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseLanguage("de"); err == nil {
		t.Error("expected error for unsupported language")
	}
}
