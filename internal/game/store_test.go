package game_test

import (
	"context"
	"errors"
	"testing"

	"fairmines/internal/game"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := game.NewMemoryStore(500)

	balance, err := store.Balance(ctx, "s1")
	if err != nil {
		t.Fatalf("failed to read balance: %v", err)
	}
	if balance != 500 {
		t.Errorf("new session should start at 500, got %f", balance)
	}

	if _, err := store.Debit(ctx, "s1", 200); err != nil {
		t.Fatalf("debit failed: %v", err)
	}
	if balance, _ = store.Balance(ctx, "s1"); balance != 300 {
		t.Errorf("expected 300 after debit, got %f", balance)
	}

	if _, err := store.Debit(ctx, "s1", 1000); !errors.Is(err, game.ErrInsufficientBalance) {
		t.Errorf("expected ErrInsufficientBalance, got %v", err)
	}
	if balance, _ = store.Balance(ctx, "s1"); balance != 300 {
		t.Errorf("rejected debit must not change the balance, got %f", balance)
	}

	if _, err := store.Credit(ctx, "s1", 50); err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	if balance, _ = store.Balance(ctx, "s1"); balance != 350 {
		t.Errorf("expected 350 after credit, got %f", balance)
	}

	t.Run("sequences are monotonic per session", func(t *testing.T) {
		for want := int64(1); want <= 5; want++ {
			seq, err := store.NextSequence(ctx, "s1")
			if err != nil {
				t.Fatalf("failed to get sequence: %v", err)
			}
			if seq != want {
				t.Errorf("expected sequence %d, got %d", want, seq)
			}
		}

		seq, _ := store.NextSequence(ctx, "s2")
		if seq != 1 {
			t.Errorf("sessions should count independently, got %d", seq)
		}
	})
}
