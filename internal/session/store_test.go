package session_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"insurance-orchestrator/internal/model"
	"insurance-orchestrator/internal/session"
)

func testStores(t *testing.T) map[string]session.Store {
	t.Helper()
	sqlite, err := session.NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]session.Store{
		"memory": session.NewMemoryStore(0, 0),
		"sqlite": sqlite,
	}
}

func TestGetCreatesLazily(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			sess, err := store.Get(context.Background(), "fresh")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if sess.ID != "fresh" {
				t.Errorf("ID = %q, want %q", sess.ID, "fresh")
			}
			if sess.Slots == nil {
				t.Error("expected non-nil Slots on a fresh session")
			}
			if sess.PendingAction != nil {
				t.Error("expected no pending action on a fresh session")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			sess := model.NewSession("s1")
			sess.ActiveOp = model.OpSubmitClaim
			sess.Awaiting = "vehicle"
			sess.Slots["policy_id"] = "POL1002"
			sess.LastIntent = "SUBMIT_CLAIM"
			sess.PendingAction = &model.PendingAction{
				Operation: model.Operation{
					Kind:     model.OpGetClaim,
					GetClaim: &model.GetClaimOp{ClaimID: "98765"},
				},
				Summary: "Check status for claim ID 98765?",
			}

			if err := store.Save(ctx, sess); err != nil {
				t.Fatalf("Save: %v", err)
			}

			got, err := store.Get(ctx, "s1")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.ActiveOp != model.OpSubmitClaim {
				t.Errorf("ActiveOp = %q, want %q", got.ActiveOp, model.OpSubmitClaim)
			}
			if got.Awaiting != "vehicle" {
				t.Errorf("Awaiting = %q, want %q", got.Awaiting, "vehicle")
			}
			if got.Slots["policy_id"] != "POL1002" {
				t.Errorf("Slots[policy_id] = %q, want %q", got.Slots["policy_id"], "POL1002")
			}
			if got.PendingAction == nil {
				t.Fatal("expected pending action to survive the round trip")
			}
			if got.PendingAction.Operation.Kind != model.OpGetClaim {
				t.Errorf("pending op kind = %q, want %q", got.PendingAction.Operation.Kind, model.OpGetClaim)
			}
			if got.PendingAction.Operation.GetClaim.ClaimID != "98765" {
				t.Errorf("pending claim id = %q, want %q", got.PendingAction.Operation.GetClaim.ClaimID, "98765")
			}
			if got.UpdatedAt.IsZero() {
				t.Error("expected UpdatedAt to be stamped on save")
			}
		})
	}
}

func TestGetReturnsCopy(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			sess := model.NewSession("s1")
			sess.Slots["policy_id"] = "POL1002"
			if err := store.Save(ctx, sess); err != nil {
				t.Fatalf("Save: %v", err)
			}

			first, _ := store.Get(ctx, "s1")
			first.Slots["policy_id"] = "mutated"

			second, _ := store.Get(ctx, "s1")
			if second.Slots["policy_id"] != "POL1002" {
				t.Errorf("stored session mutated through a returned copy: %q", second.Slots["policy_id"])
			}
		})
	}
}

func TestLockSerializesSameSession(t *testing.T) {
	store := session.NewMemoryStore(0, 0)

	var (
		mu      sync.Mutex
		inTurn  bool
		overlap bool
		wg      sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := store.Lock("same")
			defer unlock()

			mu.Lock()
			if inTurn {
				overlap = true
			}
			inTurn = true
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inTurn = false
			mu.Unlock()
		}()
	}
	wg.Wait()

	if overlap {
		t.Error("two turns held the same session lock at once")
	}
}

func TestSQLitePurgeIdle(t *testing.T) {
	store, err := session.NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Save(ctx, model.NewSession("old")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Nothing is older than an hour yet.
	n, err := store.PurgeIdle(ctx, time.Hour)
	if err != nil {
		t.Fatalf("PurgeIdle: %v", err)
	}
	if n != 0 {
		t.Errorf("purged %d sessions, want 0", n)
	}

	// A zero TTL treats everything as idle.
	n, err = store.PurgeIdle(ctx, -time.Second)
	if err != nil {
		t.Fatalf("PurgeIdle: %v", err)
	}
	if n != 1 {
		t.Errorf("purged %d sessions, want 1", n)
	}
}
