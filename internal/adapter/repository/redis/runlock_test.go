package redis

import (
	"context"
	"testing"
	"time"
)

func TestRunLockerAcquireRelease(t *testing.T) {
	client, _ := newTestRedisClient(t)
	locker := NewRunLocker(client)
	ctx := context.Background()

	ok, err := locker.Acquire(ctx, "accrual:advance:2024-01-10", time.Minute)
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	if !ok {
		t.Fatal("expected to acquire free lock")
	}

	ok, err = locker.Acquire(ctx, "accrual:advance:2024-01-10", time.Minute)
	if err != nil {
		t.Fatalf("second acquire failed: %v", err)
	}
	if ok {
		t.Fatal("expected held lock to refuse second acquire")
	}

	if err := locker.Release(ctx, "accrual:advance:2024-01-10"); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	ok, err = locker.Acquire(ctx, "accrual:advance:2024-01-10", time.Minute)
	if err != nil {
		t.Fatalf("acquire after release failed: %v", err)
	}
	if !ok {
		t.Fatal("expected to acquire released lock")
	}
}

func TestRunLockerIndependentKeys(t *testing.T) {
	client, _ := newTestRedisClient(t)
	locker := NewRunLocker(client)
	ctx := context.Background()

	ok, err := locker.Acquire(ctx, "accrual:advance:2024-01-10", time.Minute)
	if err != nil || !ok {
		t.Fatalf("acquire advance lock: ok=%v err=%v", ok, err)
	}

	ok, err = locker.Acquire(ctx, "accrual:loan:2024-01-10", time.Minute)
	if err != nil {
		t.Fatalf("acquire loan lock: %v", err)
	}
	if !ok {
		t.Fatal("loan lock must be independent of advance lock")
	}
}

func TestRunLockerExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	locker := NewRunLocker(client)
	ctx := context.Background()

	ok, err := locker.Acquire(ctx, "accrual:advance:2024-01-10", time.Second)
	if err != nil || !ok {
		t.Fatalf("acquire: ok=%v err=%v", ok, err)
	}

	mr.FastForward(2 * time.Second)

	ok, err = locker.Acquire(ctx, "accrual:advance:2024-01-10", time.Second)
	if err != nil {
		t.Fatalf("acquire after expiry: %v", err)
	}
	if !ok {
		t.Fatal("expected lock to expire")
	}
}
