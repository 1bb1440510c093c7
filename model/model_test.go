package model

import (
	"testing"
	"time"
)

func TestSelfDestruction(t *testing.T) {
	base := time.Date(2022, 9, 1, 12, 0, 0, 0, time.UTC)
	type testcase struct {
		name      string
		timeout   time.Duration
		calls     int
		started   int
		expectSet bool
	}
	for _, tc := range []testcase{
		{
			name:    "regular message never starts",
			calls:   2,
			started: 0,
		},
		{
			name:      "ephemeral message starts once",
			timeout:   time.Minute,
			calls:     3,
			started:   1,
			expectSet: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			now := base
			m := New(Text, "alice", base)
			m.Timeout = tc.timeout
			m.Now = func() time.Time { return now }
			started := 0
			for i := 0; i < tc.calls; i++ {
				if m.StartSelfDestructionIfNeeded() {
					started++
				}
				now = now.Add(time.Second)
			}
			if started != tc.started {
				t.Errorf("expected %d countdown starts, got %d", tc.started, started)
			}
			at, ok := m.DestructAt()
			if ok != tc.expectSet {
				t.Fatalf("expected countdown started=%v, got %v", tc.expectSet, ok)
			}
			if ok && !at.Equal(base.Add(tc.timeout)) {
				t.Errorf("expected deadline %v, got %v", base.Add(tc.timeout), at)
			}
		})
	}
}

func TestRemaining(t *testing.T) {
	base := time.Date(2022, 9, 1, 12, 0, 0, 0, time.UTC)
	m := New(Image, "bob", base)
	m.Timeout = 10 * time.Second
	m.Now = func() time.Time { return base }

	if r := m.Remaining(base); r != 0 {
		t.Errorf("countdown not started, expected no time remaining, got %v", r)
	}
	m.StartSelfDestructionIfNeeded()
	if r := m.Remaining(base.Add(4 * time.Second)); r != 6*time.Second {
		t.Errorf("expected 6s remaining, got %v", r)
	}
	if m.Expired(base.Add(9 * time.Second)) {
		t.Errorf("message should not have expired yet")
	}
	if !m.Expired(base.Add(10 * time.Second)) {
		t.Errorf("message should have expired")
	}
	if r := m.Remaining(base.Add(time.Minute)); r != 0 {
		t.Errorf("expired message should have no time remaining, got %v", r)
	}
}

func TestNewAssignsUniqueIDs(t *testing.T) {
	a := New(Text, "alice", time.Now())
	b := New(Text, "alice", time.Now())
	if a.ID == b.ID {
		t.Errorf("expected distinct message ids, both were %v", a.ID)
	}
}
