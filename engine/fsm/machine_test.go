package fsm

import (
	"strings"
	"testing"
	"time"
)

const (
	stIdle StateID = iota + 2
	stActive
	stActiveA
	stActiveB
	stDone
)

const (
	evStart Event = iota + 1
	evNext
	evStop
)

type recorder struct {
	log   []string
	allow bool
}

func (r *recorder) add(s string) { r.log = append(r.log, s) }

func buildMachine(t *testing.T) *Machine[*recorder] {
	t.Helper()
	m := NewMachine[*recorder]()

	m.AddState(StateRoot, "Root", StateNone)
	idle := m.AddState(stIdle, "Idle", StateRoot)
	active := m.AddState(stActive, "Active", StateRoot)
	a := m.AddState(stActiveA, "A", stActive)
	b := m.AddState(stActiveB, "B", stActive)
	done := m.AddState(stDone, "Done", StateRoot)

	idle.OnExit = append(idle.OnExit, func(r *recorder) { r.add("exit Idle") })
	active.OnEnter = append(active.OnEnter, func(r *recorder) { r.add("enter Active") })
	active.OnExit = append(active.OnExit, func(r *recorder) { r.add("exit Active") })
	a.OnEnter = append(a.OnEnter, func(r *recorder) { r.add("enter A") })
	a.OnExit = append(a.OnExit, func(r *recorder) { r.add("exit A") })
	b.OnEnter = append(b.OnEnter, func(r *recorder) { r.add("enter B") })
	b.OnUpdate = append(b.OnUpdate, func(r *recorder) { r.add("update B") })
	done.OnEnter = append(done.OnEnter, func(r *recorder) { r.add("enter Done") })

	m.On(stIdle, evStart, stActiveA, func(r *recorder) bool { return r.allow })
	m.On(stActiveA, evNext, stActiveB, nil)
	m.After(stActiveB, 100*time.Millisecond, stActiveA)
	m.On(stActive, evStop, stDone, nil)

	m.InitialStateID = stIdle
	if err := m.CompilePaths(); err != nil {
		t.Fatalf("CompilePaths failed: %v", err)
	}
	return m
}

func TestGuardBlocksEvent(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{}
	if err := m.Init(r); err != nil {
		t.Fatal(err)
	}

	if m.HandleEvent(r, evStart) {
		t.Error("Expected guarded transition to be rejected")
	}
	if m.Current() != stIdle {
		t.Errorf("Expected Idle, got %s", m.CurrentName())
	}

	r.allow = true
	if !m.HandleEvent(r, evStart) {
		t.Fatal("Expected transition once guard passes")
	}
	want := "exit Idle,enter Active,enter A"
	if got := strings.Join(r.log, ","); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSiblingTransitionKeepsParent(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{allow: true}
	_ = m.Init(r)
	m.HandleEvent(r, evStart)
	r.log = nil

	m.HandleEvent(r, evNext)
	want := "exit A,enter B"
	if got := strings.Join(r.log, ","); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if !m.IsIn(stActive) || !m.IsIn(stActiveB) {
		t.Error("Expected active path to contain Active and B")
	}
}

func TestEventBubblesToParent(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{allow: true}
	_ = m.Init(r)
	m.HandleEvent(r, evStart)
	m.HandleEvent(r, evNext)
	r.log = nil

	if !m.HandleEvent(r, evStop) {
		t.Fatal("Expected parent transition to handle evStop")
	}
	if m.Current() != stDone {
		t.Errorf("Expected Done, got %s", m.CurrentName())
	}
	if m.IsIn(stActive) {
		t.Error("Expected Active to be exited")
	}
}

func TestTimedTransition(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{allow: true}
	_ = m.Init(r)
	m.HandleEvent(r, evStart)
	m.HandleEvent(r, evNext)

	m.Update(r, 60*time.Millisecond)
	if m.Current() != stActiveB {
		t.Fatalf("Expected B before timeout, got %s", m.CurrentName())
	}
	if m.TimeInState() != 60*time.Millisecond {
		t.Errorf("Expected 60ms in state, got %v", m.TimeInState())
	}

	m.Update(r, 40*time.Millisecond)
	if m.Current() != stActiveA {
		t.Errorf("Expected A after timeout, got %s", m.CurrentName())
	}
	if m.TimeInState() != 0 {
		t.Errorf("Expected time reset on transition, got %v", m.TimeInState())
	}
}

func TestUpdateStopsWhenActionTransitions(t *testing.T) {
	m := NewMachine[*recorder]()
	m.AddState(StateRoot, "Root", StateNone)
	run := m.AddState(stIdle, "Run", StateRoot)
	m.AddState(stDone, "Done", StateRoot)
	m.AddState(stActive, "Other", StateRoot)
	m.On(stIdle, evStop, stDone, nil)
	m.After(stDone, 0, stActive)

	run.OnUpdate = append(run.OnUpdate,
		func(r *recorder) { m.HandleEvent(r, evStop) },
		func(r *recorder) { r.add("second action") },
	)
	m.InitialStateID = stIdle
	if err := m.CompilePaths(); err != nil {
		t.Fatal(err)
	}
	r := &recorder{}
	_ = m.Init(r)

	m.Update(r, time.Millisecond)
	if m.Current() != stDone {
		t.Errorf("Expected Done without chained tick transition, got %s", m.CurrentName())
	}
	if len(r.log) != 0 {
		t.Errorf("Expected remaining actions skipped, got %v", r.log)
	}
}

func TestCompilePathsMissingParent(t *testing.T) {
	m := NewMachine[*recorder]()
	m.AddState(StateRoot, "Root", StateNone)
	m.AddState(stIdle, "Orphan", StateID(99))
	if err := m.CompilePaths(); err == nil {
		t.Error("Expected error for missing parent")
	}
}

func TestOnTransitionObserver(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{allow: true}
	var seen []string
	m.OnTransition = func(from, to StateID) {
		seen = append(seen, m.StateName(from)+"->"+m.StateName(to))
	}
	_ = m.Init(r)
	m.HandleEvent(r, evStart)
	if len(seen) != 1 || seen[0] != "Idle->A" {
		t.Errorf("Expected [Idle->A], got %v", seen)
	}
}

func TestReset(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{allow: true}
	_ = m.Init(r)
	m.HandleEvent(r, evStart)
	if err := m.Reset(r); err != nil {
		t.Fatal(err)
	}
	if m.Current() != stIdle {
		t.Errorf("Expected Idle after reset, got %s", m.CurrentName())
	}
}
