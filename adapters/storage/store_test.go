package storage

import (
	"testing"
	"time"

	"stack-advisor/core/types"
	"stack-advisor/internal/errors"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	fileStore, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
	}
}

func TestSaveAssignsID(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			session := &Session{Name: "fintech audit"}
			if err := store.Save(session); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if session.ID == "" {
				t.Error("Save should assign an ID")
			}
			if session.CreatedAt.IsZero() || session.UpdatedAt.IsZero() {
				t.Error("Save should set timestamps")
			}
		})
	}
}

func TestSaveGetRoundTrip(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			session := &Session{
				Name: "audit",
				Context: types.ProjectContext{
					TeamSize: 12,
					Industry: "fintech",
					ExistingStack: map[string][]string{
						"code-hosting": {"GitHub"},
					},
				},
			}
			if err := store.Save(session); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got, err := store.Get(session.ID)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got.Name != "audit" {
				t.Errorf("Expected name 'audit', got %q", got.Name)
			}
			if got.Context.TeamSize != 12 || got.Context.Industry != "fintech" {
				t.Errorf("Context not preserved: %+v", got.Context)
			}
			if len(got.Context.ExistingStack["code-hosting"]) != 1 {
				t.Errorf("Existing stack not preserved: %+v", got.Context.ExistingStack)
			}
		})
	}
}

func TestGetMissingSession(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get("no-such-id")
			if err == nil {
				t.Fatal("Expected an error for missing session")
			}
			if !errors.IsType(err, errors.TypeNotFound) {
				t.Errorf("Expected NOT_FOUND, got %v", err)
			}
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			first := &Session{Name: "first"}
			if err := store.Save(first); err != nil {
				t.Fatal(err)
			}
			// Ensure distinct UpdatedAt values
			time.Sleep(5 * time.Millisecond)
			second := &Session{Name: "second"}
			if err := store.Save(second); err != nil {
				t.Fatal(err)
			}

			sessions, err := store.List()
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(sessions) != 2 {
				t.Fatalf("Expected 2 sessions, got %d", len(sessions))
			}
			if sessions[0].Name != "second" {
				t.Errorf("Expected newest session first, got %q", sessions[0].Name)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			session := &Session{Name: "temp"}
			if err := store.Save(session); err != nil {
				t.Fatal(err)
			}
			if err := store.Delete(session.ID); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, err := store.Get(session.ID); !errors.IsType(err, errors.TypeNotFound) {
				t.Errorf("Expected NOT_FOUND after delete, got %v", err)
			}
			if err := store.Delete(session.ID); !errors.IsType(err, errors.TypeNotFound) {
				t.Errorf("Expected NOT_FOUND deleting twice, got %v", err)
			}
		})
	}
}

func TestSaveUpdatesExisting(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			session := &Session{Name: "before"}
			if err := store.Save(session); err != nil {
				t.Fatal(err)
			}
			created := session.CreatedAt

			session.Name = "after"
			if err := store.Save(session); err != nil {
				t.Fatal(err)
			}

			got, err := store.Get(session.ID)
			if err != nil {
				t.Fatal(err)
			}
			if got.Name != "after" {
				t.Errorf("Expected updated name, got %q", got.Name)
			}
			if !got.CreatedAt.Equal(created) {
				t.Errorf("CreatedAt should not change on update: %v vs %v", got.CreatedAt, created)
			}

			sessions, err := store.List()
			if err != nil {
				t.Fatal(err)
			}
			if len(sessions) != 1 {
				t.Errorf("Update should not create a new session, got %d", len(sessions))
			}
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("redis", "")
	if err == nil {
		t.Fatal("Expected an error for unknown backend")
	}
	if !errors.IsType(err, errors.TypeStorage) {
		t.Errorf("Expected STORAGE_ERROR, got %v", err)
	}
}
