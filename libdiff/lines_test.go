package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type linesTest struct {
	from, to string
	want     []Line
}

func TestLines(t *testing.T) {
	lts := []linesTest{
		{
			from: "a\nb\n",
			to:   "a\nb\n",
			want: []Line{{Equal, "a"}, {Equal, "b"}},
		},
		{
			from: "a\nb\nc\n",
			to:   "a\nc\n",
			want: []Line{{Equal, "a"}, {Delete, "b"}, {Equal, "c"}},
		},
		{
			from: "a\n",
			to:   "a\nb\n",
			want: []Line{{Equal, "a"}, {Insert, "b"}},
		},
		{
			from: "",
			to:   "",
		},
	}
	for _, lt := range lts {
		d := Lines(lt.from, lt.to)
		if diff := cmp.Diff(lt.want, d.Lines); diff != "" {
			t.Errorf("%q -> %q (-want +got):\n%s", lt.from, lt.to, diff)
		}
		if d.Changed() != (lt.from != lt.to) {
			t.Errorf("%q -> %q: changed=%t", lt.from, lt.to, d.Changed())
		}
	}
}

func TestDiffString(t *testing.T) {
	d := Lines("q0 q1\nq0\n", "q0 q1\nq1\n")
	want := "  q0 q1\n- q0\n+ q1\n"
	if got := d.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if ins, del := d.Counts(); ins != 1 || del != 1 {
		t.Errorf("counts %d %d", ins, del)
	}
}

func TestReverse(t *testing.T) {
	from, to := "a\nb\nc\nd\n", "a\nx\nc\n"
	got := Reverse(Lines(from, to))
	want := Lines(to, from)
	if diff := cmp.Diff(want.Lines, got.Lines); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
