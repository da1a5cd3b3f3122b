package motion

import (
	"testing"
	"time"
)

type fakeWaypoint struct {
	at time.Time
	id int
}

func (w fakeWaypoint) Time() time.Time { return w.at }

func wp(seconds int, id int) fakeWaypoint {
	return fakeWaypoint{at: time.Unix(int64(seconds), 0), id: id}
}

func TestNewTrajectoryRejectsTooFew(t *testing.T) {
	if _, err := NewTrajectory([]fakeWaypoint{wp(0, 0)}); err != ErrTooFewWaypoints {
		t.Errorf("err = %v, want ErrTooFewWaypoints", err)
	}
}

func TestNewTrajectoryRejectsNonMonotonic(t *testing.T) {
	waypoints := []fakeWaypoint{wp(0, 0), wp(0, 1)}
	if _, err := NewTrajectory(waypoints); err != ErrNonMonotonicTime {
		t.Errorf("err = %v, want ErrNonMonotonicTime", err)
	}

	waypoints = []fakeWaypoint{wp(5, 0), wp(1, 1)}
	if _, err := NewTrajectory(waypoints); err != ErrNonMonotonicTime {
		t.Errorf("err = %v, want ErrNonMonotonicTime", err)
	}
}

func TestTrajectoryFirstLastDuration(t *testing.T) {
	traj, err := NewTrajectory([]fakeWaypoint{wp(0, 0), wp(1, 1), wp(3, 2)})
	if err != nil {
		t.Fatalf("NewTrajectory() error = %v", err)
	}
	if traj.First().id != 0 {
		t.Errorf("First().id = %d, want 0", traj.First().id)
	}
	if traj.Last().id != 2 {
		t.Errorf("Last().id = %d, want 2", traj.Last().id)
	}
	if traj.Duration() != 3*time.Second {
		t.Errorf("Duration() = %v, want 3s", traj.Duration())
	}
}

func TestConcatDroppingSharedBoundary(t *testing.T) {
	first, err := NewTrajectory([]fakeWaypoint{wp(0, 0), wp(1, 1)})
	if err != nil {
		t.Fatalf("NewTrajectory(first) error = %v", err)
	}
	second, err := NewTrajectory([]fakeWaypoint{wp(1, 1), wp(2, 2)})
	if err != nil {
		t.Fatalf("NewTrajectory(second) error = %v", err)
	}

	merged, err := first.ConcatDroppingSharedBoundary(second)
	if err != nil {
		t.Fatalf("ConcatDroppingSharedBoundary() error = %v", err)
	}

	waypoints := merged.Waypoints()
	if len(waypoints) != 3 {
		t.Fatalf("merged waypoints = %d, want 3", len(waypoints))
	}
	for i := 1; i < len(waypoints); i++ {
		if !waypoints[i].Time().After(waypoints[i-1].Time()) {
			t.Errorf("merged trajectory is not strictly monotone at index %d", i)
		}
	}
	ids := []int{waypoints[0].id, waypoints[1].id, waypoints[2].id}
	want := []int{0, 1, 2}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("merged ids = %v, want %v", ids, want)
		}
	}
}
