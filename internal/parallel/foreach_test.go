package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestForEach(t *testing.T) {
	out := make([]int, 100)
	if err := ForEach(context.Background(), len(out), 8, func(i int) {
		out[i] = i * i
	}); err != nil {
		t.Fatal(err)
	}
	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestForEachLimit(t *testing.T) {
	var running, peak int32
	ForEach(context.Background(), 50, 3, func(int) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&running, -1)
	})
	if peak > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", peak)
	}
}

func TestForEachCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls int32
	err := ForEach(ctx, 10, 1, func(int) { atomic.AddInt32(&calls, 1) })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestForEachEmpty(t *testing.T) {
	if err := ForEach(context.Background(), 0, 4, func(int) { t.Error("body called") }); err != nil {
		t.Fatal(err)
	}
}
