// Package leaktest has small helpers for catching goroutine and memory
// leaks in tests.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settle gives background goroutines a moment to wind down before a
// count or measurement is taken.
func settle(d time.Duration) {
	runtime.Gosched()
	time.Sleep(d)
}

// GoroutineChecker compares the goroutine count at two points in a test.
type GoroutineChecker struct {
	t      testing.TB
	before int
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	settle(10 * time.Millisecond)
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine()}
}

// Check fails the test when more than tolerance goroutines outlive the
// checkpoint.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	settle(50 * time.Millisecond)
	runtime.GC()
	settle(50 * time.Millisecond)

	after := runtime.NumGoroutine()
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// MemoryChecker compares heap allocation at two points in a test.
type MemoryChecker struct {
	t      testing.TB
	before runtime.MemStats
}

// NewMemoryChecker records the current heap allocation.
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()

	runtime.GC()
	settle(10 * time.Millisecond)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return &MemoryChecker{t: t, before: m}
}

// Check fails the test when the heap grew by more than maxGrowthMB.
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	runtime.GC()
	settle(50 * time.Millisecond)

	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	growthMB := (float64(after.Alloc) - float64(m.before.Alloc)) / 1024 / 1024
	if growthMB > maxGrowthMB {
		m.t.Errorf("Potential memory leak: growth=%.2fMB (max=%.2fMB)", growthMB, maxGrowthMB)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test when goroutines
// outlive it.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckNoMemoryLeak runs fn and fails the test when the heap grows by
// more than maxGrowthMB.
func CheckNoMemoryLeak(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()

	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}

// WaitForGoroutines blocks until the goroutine count drops to target,
// failing the test at the timeout.
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		runtime.Gosched()
		if runtime.NumGoroutine() <= target {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d",
		runtime.NumGoroutine(), target)
}
