package website

import (
	"testing"
	"time"
)

func TestLoginLimiterBlocksAfterMax(t *testing.T) {
	limiter := NewLoginLimiter(2, 200*time.Millisecond)
	ip := "203.0.113.10"

	if !limiter.Check(ip) {
		t.Fatalf("expected first attempt to be allowed")
	}
	limiter.Record(ip)
	if !limiter.Check(ip) {
		t.Fatalf("expected second attempt to be allowed")
	}
	limiter.Record(ip)
	if limiter.Check(ip) {
		t.Fatalf("expected third attempt to be blocked")
	}
}

func TestLoginLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewLoginLimiter(1, 150*time.Millisecond)
	ip := "203.0.113.20"

	if !limiter.Check(ip) {
		t.Fatalf("expected first attempt to be allowed")
	}
	limiter.Record(ip)
	if limiter.Check(ip) {
		t.Fatalf("expected second attempt to be blocked")
	}

	time.Sleep(200 * time.Millisecond)
	if !limiter.Check(ip) {
		t.Fatalf("expected attempt after window to be allowed")
	}
}

func TestLoginLimiterIsPerIP(t *testing.T) {
	limiter := NewLoginLimiter(1, 200*time.Millisecond)

	limiter.Record("203.0.113.30")
	if limiter.Check("203.0.113.30") {
		t.Fatalf("expected first ip to be blocked after max")
	}
	if !limiter.Check("203.0.113.31") {
		t.Fatalf("expected second ip to be allowed independently")
	}
}

func TestLoginLimiterSuccessDoesNotCount(t *testing.T) {
	limiter := NewLoginLimiter(3, time.Minute)
	ip := "203.0.113.40"

	for i := 0; i < 10; i++ {
		if !limiter.Check(ip) {
			t.Fatalf("expected check %d without recorded failures to be allowed", i)
		}
	}
}
