package api

import (
	"net/http"
	"testing"
	"time"
)

func TestRateLimiterBudget(t *testing.T) {
	rl := newRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.allow("1.2.3.4") {
			t.Fatalf("Expected request %d to be within budget", i+1)
		}
	}

	if rl.allow("1.2.3.4") {
		t.Error("Expected request over budget to be rejected")
	}

	// Another client has its own budget
	if !rl.allow("5.6.7.8") {
		t.Error("Expected a different IP to be admitted")
	}
}

func TestLoginRateLimited(t *testing.T) {
	env := newTestEnv(t, PostsSourceFeed, "http://127.0.0.1:1")

	var lastCode int
	for i := 0; i < 6; i++ {
		w := env.request(t, "POST", "/api/admin/login", map[string]string{"password": "wrong"}, "")
		lastCode = w.Code
	}

	if lastCode != http.StatusTooManyRequests {
		t.Errorf("Expected 429 after exhausting the login budget, got: %d", lastCode)
	}
}
