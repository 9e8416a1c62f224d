package session

import (
	"errors"
	"testing"
)

// memStore is an in-memory Persister for tests.
type memStore struct {
	rows map[string][3]string
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string][3]string)}
}

func (m *memStore) Save(id, token, refreshToken, authUser string) error {
	m.rows[id] = [3]string{token, refreshToken, authUser}
	return nil
}

func (m *memStore) Load(id string) (string, string, string, error) {
	row, ok := m.rows[id]
	if !ok {
		return "", "", "", errors.New("not found")
	}
	return row[0], row[1], row[2], nil
}

func (m *memStore) Delete(id string) error {
	delete(m.rows, id)
	return nil
}

func TestSetPersistsAndHydrates(t *testing.T) {
	store := newMemStore()

	sess := New("s1", store)
	user := &User{FullName: "Asha", Email: "asha@example.com", UserType: "ADMIN"}
	if err := sess.Set("tok", "refresh", user); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A fresh session over the same store must see the saved state.
	restored := New("s1", store)
	if err := restored.Hydrate(); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if restored.Token() != "tok" || restored.RefreshToken() != "refresh" {
		t.Errorf("tokens = %q / %q", restored.Token(), restored.RefreshToken())
	}
	got := restored.CurrentUser()
	if got == nil || got.FullName != "Asha" || got.UserType != "ADMIN" {
		t.Errorf("user = %+v", got)
	}
}

func TestClearDropsEverything(t *testing.T) {
	store := newMemStore()
	sess := New("s1", store)
	if err := sess.Set("tok", "refresh", &User{Email: "a@b.c"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := sess.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if sess.Authenticated() {
		t.Error("cleared session still authenticated")
	}
	if sess.CurrentUser() != nil {
		t.Error("cleared session kept user")
	}
	if _, _, _, err := store.Load("s1"); err == nil {
		t.Error("persisted row survived Clear")
	}
}

func TestCurrentUserReturnsCopy(t *testing.T) {
	sess := New("s1", nil)
	if err := sess.Set("tok", "", &User{FullName: "Asha"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got := sess.CurrentUser()
	got.FullName = "changed"
	if sess.CurrentUser().FullName != "Asha" {
		t.Error("mutating the returned user leaked into the session")
	}
}

func TestManagerLifecycle(t *testing.T) {
	store := newMemStore()
	mgr := NewManager(store)

	sess := mgr.Create()
	if sess.ID() == "" {
		t.Fatal("empty session id")
	}
	if err := sess.Set("tok", "refresh", nil); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got := mgr.Get(sess.ID()); got != sess {
		t.Error("Get returned a different live session")
	}

	mgr.Drop(sess.ID())
	if got := mgr.Get(sess.ID()); got != nil {
		t.Error("dropped session still resolvable")
	}
}
