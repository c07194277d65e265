package service

import (
	"context"
	"errors"
	"testing"

	"pgregory.net/rapid"

	"medsupply/internal/domain"
)

func TestProperty_AddAccumulates(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		s := setup(rt)
		m := s.medicine(rt, "Aspirin", 1, "2030-01-01")
		q1 := rapid.Int64Range(1, 1000).Draw(rt, "q1")
		q2 := rapid.Int64Range(1, 1000).Draw(rt, "q2")

		if _, err := s.inventory.AddMedicine(ctx, m.ID, q1); err != nil {
			rt.Fatal(err)
		}
		if _, err := s.inventory.AddMedicine(ctx, m.ID, q2); err != nil {
			rt.Fatal(err)
		}
		got, err := s.inventory.GetQuantity(ctx, m.ID)
		if err != nil || got != q1+q2 {
			rt.Fatalf("quantity %d (err %v), want %d", got, err, q1+q2)
		}
	})
}

func TestProperty_RemoveNeverLeavesZeroOrNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		s := setup(rt)
		start := rapid.Int64Range(1, 50).Draw(rt, "start")
		m := s.stocked(rt, "Aspirin", 1, start)
		removals := rapid.SliceOfN(rapid.Int64Range(1, 20), 1, 10).Draw(rt, "removals")

		expected := start
		for _, r := range removals {
			_, err := s.inventory.RemoveMedicine(ctx, m.ID, r)
			switch {
			case expected == 0:
				if !errors.Is(err, domain.ErrNotFound) {
					rt.Fatalf("expected not found, got %v", err)
				}
			case r > expected:
				if !errors.Is(err, domain.ErrInsufficientStock) {
					rt.Fatalf("expected insufficient stock, got %v", err)
				}
			default:
				if err != nil {
					rt.Fatal(err)
				}
				expected -= r
			}
			got, err := s.inventory.GetQuantity(ctx, m.ID)
			if expected == 0 {
				if !errors.Is(err, domain.ErrNotFound) {
					rt.Fatalf("depleted entry still visible: %d %v", got, err)
				}
			} else if got != expected {
				rt.Fatalf("quantity %d, want %d", got, expected)
			}
		}
	})
}

func TestProperty_CheckoutIsAtomic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		s := setup(rt)
		n := rapid.IntRange(1, 4).Draw(rt, "lines")

		cart := s.carts.NewCart()
		meds := make([]*domain.Medicine, n)
		stock := make([]int64, n)
		want := make([]int64, n)
		short := false
		for i := 0; i < n; i++ {
			stock[i] = rapid.Int64Range(1, 10).Draw(rt, "stock")
			want[i] = rapid.Int64Range(1, 12).Draw(rt, "want")
			if want[i] > stock[i] {
				short = true
			}
			meds[i] = s.stocked(rt, "Med", 1, stock[i])
			if err := cart.AddItem(meds[i], want[i]); err != nil {
				rt.Fatal(err)
			}
		}

		_, err := s.carts.Checkout(ctx, cart)
		if short != (err != nil) {
			rt.Fatalf("short=%v err=%v", short, err)
		}
		for i, m := range meds {
			got, qerr := s.inventory.GetQuantity(ctx, m.ID)
			exp := stock[i]
			if !short {
				exp -= want[i]
			}
			if exp == 0 {
				if !errors.Is(qerr, domain.ErrNotFound) {
					rt.Fatalf("line %d: expected depletion, got %d %v", i, got, qerr)
				}
				continue
			}
			if got != exp {
				rt.Fatalf("line %d: quantity %d, want %d", i, got, exp)
			}
		}
	})
}
