package cost

import "testing"

func TestDurationAdd(t *testing.T) {
	a := FromSeconds(1.5)
	b := FromSeconds(2.5)
	got := a.Add(b)
	want := FromSeconds(4.0)
	if got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
}

func TestDurationZero(t *testing.T) {
	a := FromSeconds(3.0)
	if got := a.Add(a.Zero()); got != a {
		t.Errorf("a.Add(a.Zero()) = %v, want %v", got, a)
	}
}

func TestDurationLess(t *testing.T) {
	small := FromSeconds(1.0)
	big := FromSeconds(2.0)
	if !small.Less(big) {
		t.Errorf("expected %v < %v", small, big)
	}
	if big.Less(small) {
		t.Errorf("did not expect %v < %v", big, small)
	}
	if small.Less(small) {
		t.Errorf("did not expect %v < %v", small, small)
	}
}

func TestDurationSecondsRoundTrip(t *testing.T) {
	d := FromSeconds(2.0)
	if got := d.Seconds(); got != 2.0 {
		t.Errorf("Seconds() = %v, want 2.0", got)
	}
}
