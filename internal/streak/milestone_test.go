package streak

import "testing"

func TestMilestoneForExactRungs(t *testing.T) {
	for _, m := range Ladder {
		got, ok := MilestoneFor(m)
		if !ok || got != m {
			t.Errorf("MilestoneFor(%d) = %d,%v, want %d,true", m, got, ok, m)
		}
	}
}

func TestMilestoneForOffRungs(t *testing.T) {
	for _, n := range []int{0, 1, 2, 4, 8, 99, 999, 1001} {
		if got, ok := MilestoneFor(n); ok {
			t.Errorf("MilestoneFor(%d) = %d, want no milestone", n, got)
		}
	}
}

func TestNextMilestone(t *testing.T) {
	cases := []struct{ length, want int }{
		{0, 3},
		{3, 5}, // sitting on a rung targets the next one
		{7, 10},
		{8, 10},
		{364, 365},
		{1000, 1100}, // beyond the ladder: +100
		{1234, 1334},
	}
	for _, c := range cases {
		if got := NextMilestone(c.length); got != c.want {
			t.Errorf("NextMilestone(%d) = %d, want %d", c.length, got, c.want)
		}
	}
}

func TestProgressFor(t *testing.T) {
	// Between rungs 7 and 10: 8 days is 1/3 of the way.
	p := ProgressFor(8)
	if p.Next != 10 {
		t.Errorf("Next = %d, want 10", p.Next)
	}
	if p.Remaining != 2 {
		t.Errorf("Remaining = %d, want 2", p.Remaining)
	}
	if p.Percent != 33 {
		t.Errorf("Percent = %d, want 33", p.Percent)
	}
}

func TestProgressForBelowFirstRung(t *testing.T) {
	p := ProgressFor(0)
	if p.Next != 3 || p.Percent != 0 || p.Remaining != 3 {
		t.Errorf("ProgressFor(0) = %+v, want next 3, 0%%, 3 remaining", p)
	}
	p = ProgressFor(2)
	if p.Next != 3 || p.Percent != 67 || p.Remaining != 1 {
		t.Errorf("ProgressFor(2) = %+v, want next 3, 67%%, 1 remaining", p)
	}
}

func TestProgressForOnRung(t *testing.T) {
	// Exactly on a rung: progress restarts toward the next one.
	p := ProgressFor(30)
	if p.Next != 50 || p.Percent != 0 || p.Remaining != 20 {
		t.Errorf("ProgressFor(30) = %+v, want next 50, 0%%, 20 remaining", p)
	}
}

func TestProgressPercentBounds(t *testing.T) {
	for n := 0; n <= 1200; n++ {
		p := ProgressFor(n)
		if p.Percent < 0 || p.Percent > 100 {
			t.Fatalf("ProgressFor(%d).Percent = %d out of [0,100]", n, p.Percent)
		}
		if p.Remaining != p.Next-n {
			t.Fatalf("ProgressFor(%d).Remaining inconsistent: %+v", n, p)
		}
	}
}

func TestLadderAscending(t *testing.T) {
	for i := 1; i < len(Ladder); i++ {
		if Ladder[i] <= Ladder[i-1] {
			t.Fatalf("ladder not strictly ascending at index %d", i)
		}
	}
	if Ladder[0] <= 0 {
		t.Fatal("ladder values must be positive")
	}
}
