package registry

import "testing"

func TestRegisterAndLookup(t *testing.T) {
	Register(Theme{ID: "test-greek", Title: "Greek", Order: 100, Symbols: []string{"α", "β", "γ"}})

	if !Exists("test-greek") {
		t.Fatal("Exists() should report registered theme")
	}

	th, err := Lookup("test-greek")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if len(th.Symbols) != 3 || th.Symbols[1] != "β" {
		t.Errorf("unexpected symbols: %v", th.Symbols)
	}

	if _, err := Lookup("missing"); err == nil {
		t.Error("Lookup() of unknown theme should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Theme{ID: "test-dup", Title: "Dup", Symbols: []string{"x"}})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register(Theme{ID: "test-dup", Title: "Dup", Symbols: []string{"y"}})
}

func TestListOrder(t *testing.T) {
	Register(Theme{ID: "test-z-first", Title: "First", Order: -10, Symbols: []string{"1"}})

	list := List()
	if len(list) == 0 {
		t.Fatal("List() returned nothing")
	}
	if list[0].ID != "test-z-first" {
		t.Errorf("List()[0] = %q, expected lowest order first", list[0].ID)
	}
}
