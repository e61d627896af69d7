package pool

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRun(t *testing.T) {
	p := New(2)
	defer p.Close()

	t.Run("returns value", func(t *testing.T) {
		got, err := Run(p, func(workerID int) (string, error) {
			return fmt.Sprintf("result: %d", 21*2), nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "result: 42" {
			t.Errorf("expected 'result: 42', got %q", got)
		}
	})

	t.Run("returns error", func(t *testing.T) {
		wantErr := errors.New("lookup failed")
		got, err := Run(p, func(int) (int, error) {
			return 7, wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected %v, got %v", wantErr, err)
		}
		if got != 7 {
			t.Errorf("value returned alongside the error should be kept, got %d", got)
		}
	})

	t.Run("captured arguments", func(t *testing.T) {
		add := func(a, b int) TaskFunc[int] {
			return func(int) (int, error) { return a + b, nil }
		}

		got, err := Run(p, add(3, 4))
		if err != nil || got != 7 {
			t.Errorf("expected (7, nil), got (%d, %v)", got, err)
		}
	})
}

func TestSubmit(t *testing.T) {
	t.Run("keys increase in submission order", func(t *testing.T) {
		p := New(0)
		defer p.Close()

		f1 := Submit(p, func(int) (int, error) { return 1, nil })
		f2 := Submit(p, func(int) (int, error) { return 2, nil })

		if f2.Key() <= f1.Key() {
			t.Errorf("expected increasing keys, got %d then %d", f1.Key(), f2.Key())
		}

		p.Assist()
		if res := f2.Result(); res.Key != f2.Key() || res.Value != 2 {
			t.Errorf("unexpected result %+v", res)
		}
	})

	t.Run("future resolves asynchronously", func(t *testing.T) {
		p := New(1)
		defer p.Close()

		g := newGate()
		f := Submit(p, func(int) (string, error) {
			g.wait()
			return "done", nil
		})

		if f.IsReady() {
			t.Fatal("future should not be ready while the task is blocked")
		}

		g.open()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		got, err := f.GetWithContext(ctx)
		if err != nil || got != "done" {
			t.Errorf("expected (done, nil), got (%q, %v)", got, err)
		}
	})

	t.Run("tasks may submit more tasks", func(t *testing.T) {
		p := New(2)
		defer p.Close()

		inner := make(chan *Future[int], 1)
		p.Go(func(int) error {
			inner <- Submit(p, func(int) (int, error) { return 5, nil })
			return nil
		})

		got, err := (<-inner).Get()
		if err != nil || got != 5 {
			t.Errorf("expected (5, nil), got (%d, %v)", got, err)
		}
	})
}

func TestTrySubmit(t *testing.T) {
	p := New(1)
	defer p.Close()

	f, err := TrySubmit(p, func(int) (int, error) { return 9, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := f.Get(); got != 9 {
		t.Errorf("expected 9, got %d", got)
	}
}

func TestGo(t *testing.T) {
	p := New(1)
	defer p.Close()

	wantErr := errors.New("write failed")
	f := p.Go(func(int) error { return wantErr })

	if _, err := f.Get(); !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
}
