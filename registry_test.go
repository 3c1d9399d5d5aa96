package marina

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestRegistry_Insert(t *testing.T) {
	tests := []struct {
		name   string
		insert []string
		want   []string
	}{
		{
			name:   "empty",
			insert: nil,
			want:   nil,
		},
		{
			name:   "already sorted",
			insert: []string{"Alice", "bob", "Carol"},
			want:   []string{"Alice", "bob", "Carol"},
		},
		{
			name:   "reverse order",
			insert: []string{"zephyr", "Marlin", "albatross"},
			want:   []string{"albatross", "Marlin", "zephyr"},
		},
		{
			name:   "case is ignored",
			insert: []string{"b", "A", "a", "B"},
			want:   []string{"A", "a", "b", "B"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			for _, n := range tt.insert {
				if err := r.Insert(boat(n, 10, nil, "0")); err != nil {
					t.Fatalf("Insert(%q) unexpected error: %v", n, err)
				}
			}
			if diff := cmp.Diff(tt.want, names(r)); diff != "" {
				t.Errorf("Insert() order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegistry_InsertAtCapacity(t *testing.T) {
	r := fill(Capacity)
	err := r.Insert(boat("one too many", 10, nil, "0"))
	if !errors.Is(err, ErrCapacity) {
		t.Errorf("Insert() into a full registry: got error %v, want %v", err, ErrCapacity)
	}
	if r.Len() != Capacity {
		t.Errorf("Len() = %d, want %d", r.Len(), Capacity)
	}
	if _, ok := r.Find("one too many"); ok {
		t.Error("Find() found a boat that was rejected")
	}
}

func TestRegistry_Find(t *testing.T) {
	r := NewRegistry()
	first := boat("Sea Breeze", 20, SlipNumber(1), "10")
	second := boat("sea breeze", 30, SlipNumber(2), "20")
	r.Insert(first)
	r.Insert(second)

	got, ok := r.Find("SEA BREEZE")
	if !ok {
		t.Fatal("Find() did not find a boat with a different case")
	}
	if got != first {
		t.Errorf("Find() = %+v, want the first match %+v", got, first)
	}
	if _, ok := r.Find("Sea"); ok {
		t.Error("Find() matched a prefix")
	}
}

func TestRegistry_FindAgreesWithOrder(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"ſ", "t", "S"} {
		r.Insert(boat(n, 10, nil, "0"))
	}
	if diff := cmp.Diff([]string{"S", "t", "ſ"}, names(r)); diff != "" {
		t.Errorf("Insert() order mismatch (-want +got):\n%s", diff)
	}
	got, ok := r.Find("s")
	if !ok || got.Name != "S" {
		t.Errorf("Find(\"s\") = %v, want boat \"S\"", got)
	}
	if err := r.Remove("s"); err != nil {
		t.Fatalf("Remove(\"s\") unexpected error: %v", err)
	}
	if _, ok := r.Find("s"); ok {
		t.Error("Find(\"s\") matched a boat sorted elsewhere")
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"Alice", "bob", "Carol", "dave"} {
		r.Insert(boat(n, 10, nil, "0"))
	}

	if err := r.Remove("BOB"); err != nil {
		t.Fatalf("Remove() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"Alice", "Carol", "dave"}, names(r)); diff != "" {
		t.Errorf("Remove() left a gap or broke the order (-want +got):\n%s", diff)
	}

	if err := r.Remove("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove() of unknown boat: got error %v, want %v", err, ErrNotFound)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d after failed removal, want 3", r.Len())
	}
}

func TestRegistry_Sort(t *testing.T) {
	r := NewRegistry()
	// bypass Insert to start from an unsorted registry, like a decoded file.
	r.boats = []*Boat{
		boat("zed", 1, nil, "0"),
		boat("Bob", 2, nil, "0"),
		boat("amy", 3, nil, "0"),
		boat("bob", 4, nil, "0"),
	}
	r.Sort()
	if diff := cmp.Diff([]string{"amy", "Bob", "bob", "zed"}, names(r)); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Total(t *testing.T) {
	r := NewRegistry()
	r.Insert(boat("a", 10, nil, "10.25"))
	r.Insert(boat("b", 10, nil, "0.75"))
	if got, want := r.Total(), M(11); !got.Equal(want) {
		t.Errorf("Total() = %v, want %v", got, want)
	}
}

func TestRegistry_InsertKeepsOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := NewRegistry()
		n := rapid.IntRange(0, Capacity+5).Draw(t, "n")
		for i := range n {
			name := rapid.StringMatching(`[A-Za-z]{1,6}`).Draw(t, "name")
			err := r.Insert(boat(name, 10, nil, "0"))
			if i < Capacity && err != nil {
				t.Fatalf("Insert() unexpected error: %v", err)
			}
			if i >= Capacity && !errors.Is(err, ErrCapacity) {
				t.Fatalf("Insert() beyond capacity: got %v, want %v", err, ErrCapacity)
			}
		}
		if !slices.IsSortedFunc(r.Boats(), func(a, b *Boat) int { return compareNames(a.Name, b.Name) }) {
			t.Fatalf("registry is not sorted: %q", names(r))
		}
		if want := min(n, Capacity); r.Len() != want {
			t.Fatalf("Len() = %d, want %d", r.Len(), want)
		}
	})
}

func TestRegistry_RemoveThenFind(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := NewRegistry()
		for _, n := range rapid.SliceOfDistinct(rapid.StringMatching(`[a-z]{1,4}`), func(s string) string { return s }).Draw(t, "names") {
			r.Insert(boat(n, 10, nil, "0"))
		}
		name := rapid.StringMatching(`[a-zA-Z]{1,4}`).Draw(t, "removed")
		_, existed := r.Find(name)
		before := r.Len()

		err := r.Remove(name)

		if existed {
			if err != nil {
				t.Fatalf("Remove(%q) unexpected error: %v", name, err)
			}
			if r.Len() != before-1 {
				t.Fatalf("Len() = %d after removal, want %d", r.Len(), before-1)
			}
		} else {
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("Remove(%q): got %v, want %v", name, err, ErrNotFound)
			}
			if r.Len() != before {
				t.Fatalf("Len() = %d after failed removal, want %d", r.Len(), before)
			}
		}
		if _, ok := r.Find(name); ok {
			t.Fatalf("Find(%q) after Remove() still finds a boat", name)
		}
	})
}
