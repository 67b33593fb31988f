package models

import (
	"testing"
	"time"
)

func TestGameCodeExpired(t *testing.T) {
	created := time.Date(2023, 5, 22, 8, 0, 0, 0, time.UTC)
	code := GameCode{Code: "ABCD1234", CreatedAt: created}

	if code.Expired(created.Add(11*time.Hour + 59*time.Minute)) {
		t.Error("code should still be live just before the 12 hour mark")
	}
	if !code.Expired(created.Add(GameCodeTTL)) {
		t.Error("code should be expired exactly at the 12 hour mark")
	}
	if !code.Expired(created.Add(13 * time.Hour)) {
		t.Error("code should be expired after 13 hours")
	}
}

func TestGameUserLockedOut(t *testing.T) {
	cases := []struct {
		attempts int
		locked   bool
	}{
		{0, false},
		{MaxLoginAttempts - 1, false},
		{MaxLoginAttempts, true},
		{MaxLoginAttempts + 1, true},
	}

	for _, tc := range cases {
		user := GameUser{LoginAttempt: tc.attempts}
		if got := user.LockedOut(); got != tc.locked {
			t.Errorf("LockedOut with %d attempts: expected %v, got %v", tc.attempts, tc.locked, got)
		}
	}
}
