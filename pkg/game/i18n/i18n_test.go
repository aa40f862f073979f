package i18n

import (
	"testing"
)

func TestCatalog(t *testing.T) {
	Load("../../../locales", "en_US")

	if got, want := T("GOAL_REACHED", "fallback"), "Goal reached in %d moves!"; got != want {
		t.Errorf("T(GOAL_REACHED) = %q, want %q", got, want)
	}
	if got, want := F("GOAL_REACHED", "", 12), "Goal reached in 12 moves!"; got != want {
		t.Errorf("F(GOAL_REACHED, 12) = %q, want %q", got, want)
	}
}

func TestFallback(t *testing.T) {
	Load("../../../locales", "en_US")

	if got := T("NO_SUCH_KEY", "plain"); got != "plain" {
		t.Errorf("T(NO_SUCH_KEY) = %q, want fallback", got)
	}
}

func TestT_RuntimeKeys(t *testing.T) {
	Load("../../../locales", "en_US")

	keys := []string{"NO_PATH", "BUSY", "DEV_MAP"}
	for _, key := range keys {
		if got := T(key, ""); got == "" || got == key {
			t.Errorf("T(%s) = %q, want a catalog entry", key, got)
		}
	}
}
