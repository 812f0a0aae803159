package photo

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func abc() []Photo {
	return []Photo{
		{Src: "A", Width: 400, Height: 300},
		{Src: "B", Width: 400, Height: 300},
		{Src: "C", Width: 400, Height: 300},
	}
}

func TestReorderScenarios(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"first to last", 0, 2, []string{"B", "C", "A"}},
		{"last to first", 2, 0, []string{"C", "A", "B"}},
		{"adjacent forward", 0, 1, []string{"B", "A", "C"}},
		{"adjacent backward", 2, 1, []string{"A", "C", "B"}},
		{"same slot", 1, 1, []string{"A", "B", "C"}},
		{"target past end", 0, 3, []string{"A", "B", "C"}},
		{"negative source", -1, 2, []string{"A", "B", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sources(Reorder(abc(), tt.from, tt.to))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Reorder(%d, %d) mismatch (-want +got):\n%s", tt.from, tt.to, diff)
			}
		})
	}
}

func TestReorderDoesNotMutateInput(t *testing.T) {
	in := abc()
	_ = Reorder(in, 0, 2)
	if diff := cmp.Diff(abc(), in); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestReorderPreservesMultiset(t *testing.T) {
	list := []Photo{{Src: "a"}, {Src: "b"}, {Src: "b"}, {Src: "c"}, {Src: "d"}, {Src: "e"}}
	want := Sources(list)
	sort.Strings(want)
	for i := range list {
		for j := range list {
			out := Reorder(list, i, j)
			if len(out) != len(list) {
				t.Fatalf("Reorder(%d, %d) len = %d, want %d", i, j, len(out), len(list))
			}
			got := Sources(out)
			if out[j] != list[i] {
				t.Fatalf("Reorder(%d, %d)[%d] = %q, want %q", i, j, j, out[j].Src, list[i].Src)
			}
			sort.Strings(got)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("Reorder(%d, %d) multiset changed:\n%s", i, j, diff)
			}
		}
	}
}

func TestReorderEmptyList(t *testing.T) {
	if got := Reorder(nil, 0, 0); len(got) != 0 {
		t.Fatalf("Reorder(nil) = %v, want empty", got)
	}
}

func TestApplyDropOutside(t *testing.T) {
	got := Apply(abc(), DragEnd{Active: 0})
	if diff := cmp.Diff(abc(), got); diff != "" {
		t.Fatalf("drop outside changed order (-want +got):\n%s", diff)
	}
}

func TestApplyTarget(t *testing.T) {
	got := Sources(Apply(abc(), Target(0, 2)))
	if diff := cmp.Diff([]string{"B", "C", "A"}, got); diff != "" {
		t.Fatalf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestDragEndMoves(t *testing.T) {
	tests := []struct {
		name string
		e    DragEnd
		want bool
	}{
		{"no target", DragEnd{Active: 1}, false},
		{"same slot", Target(1, 1), false},
		{"valid", Target(0, 2), true},
		{"target zero", Target(2, 0), true},
		{"out of range", Target(0, 3), false},
	}
	for _, tt := range tests {
		if got := tt.e.Moves(3); got != tt.want {
			t.Errorf("%s: Moves = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAspect(t *testing.T) {
	if got := (Photo{Width: 400, Height: 300}).Aspect(); got < 1.33 || got > 1.34 {
		t.Fatalf("aspect = %v, want ~1.333", got)
	}
	if got := (Photo{Width: 400}).Aspect(); got != 0 {
		t.Fatalf("aspect without height = %v, want 0", got)
	}
}
