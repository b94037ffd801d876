package notifier

import (
	"sync"
	"testing"
	"time"
)

func TestNotifyWithNoWaiters(t *testing.T) {
	n := New()
	n.Notify() // must not block or panic
}

func TestWaitIfFalseReturnsImmediately(t *testing.T) {
	n := New()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if n.WaitIf(func() bool { return false }) {
			t.Error("WaitIf with a false predicate should not block")
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitIf(false) blocked")
	}
}

func TestSingleWaiterWakesOnNotify(t *testing.T) {
	n := New()
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		n.Wait()
	}()

	for n.Count() < 1 {
		time.Sleep(time.Millisecond)
	}
	n.Notify()

	waitWithTimeout(t, &wg, time.Second)
}

func TestBroadcastWakesAllWaiters(t *testing.T) {
	n := New()
	const waiters = 8

	var wg sync.WaitGroup
	wg.Add(waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			defer wg.Done()
			n.Wait()
		}()
	}

	for n.Count() < waiters {
		time.Sleep(time.Millisecond)
	}
	n.Notify()

	waitWithTimeout(t, &wg, time.Second)
}

func TestNotifyIfGatesOnPredicate(t *testing.T) {
	n := New()
	const waiters = 2

	var wg sync.WaitGroup
	wg.Add(waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			defer wg.Done()
			n.Wait()
		}()
	}

	for !n.NotifyIf(func() bool { return n.Count() == waiters }) {
		time.Sleep(time.Millisecond)
	}

	waitWithTimeout(t, &wg, time.Second)
}

// TestLostWakeupAbsence exercises P12: a producer that flips shared state and
// then notifies must never leave a concurrent WaitIf-based consumer parked
// forever, regardless of how the two goroutines interleave.
func TestLostWakeupAbsence(t *testing.T) {
	for i := 0; i < 200; i++ {
		n := New()
		var mu sync.Mutex
		ready := false

		done := make(chan struct{})
		go func() {
			for n.WaitIf(func() bool {
				mu.Lock()
				defer mu.Unlock()
				return !ready
			}) {
			}
			close(done)
		}()

		mu.Lock()
		ready = true
		mu.Unlock()
		n.Notify()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("iteration %d: lost wakeup, consumer never observed ready", i)
		}
	}
}

func waitWithTimeout(t *testing.T, wg *sync.WaitGroup, timeout time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal("timed out waiting for goroutines")
	}
}
