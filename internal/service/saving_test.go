package service_test

import (
	"sync"
	"testing"

	"daybook/internal/service"
)

func TestSaveGuard_TryBeginEnd(t *testing.T) {
	g := service.NewSaveGuard()

	if !g.TryBegin("u1") {
		t.Fatal("first TryBegin should succeed")
	}
	if g.TryBegin("u1") {
		t.Fatal("second TryBegin for the same user should fail")
	}
	if !g.Saving("u1") {
		t.Fatal("expected Saving=true while begun")
	}

	// Other users are independent.
	if !g.TryBegin("u2") {
		t.Fatal("TryBegin for another user should succeed")
	}
	g.End("u2")

	g.End("u1")
	if g.Saving("u1") {
		t.Fatal("expected Saving=false after End")
	}
	if !g.TryBegin("u1") {
		t.Fatal("TryBegin should succeed again after End")
	}
}

func TestSaveGuard_Concurrent(t *testing.T) {
	g := service.NewSaveGuard()

	const attempts = 50
	var wg sync.WaitGroup
	wins := make(chan struct{}, attempts)

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryBegin("u1") {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	var count int
	for range wins {
		count++
	}
	if count != 1 {
		t.Fatalf("expected exactly one winner, got %d", count)
	}
}
