package ui

import (
	"errors"
	"fmt"
	"testing"
)

func TestStateStatusClearsError(t *testing.T) {
	s := NewState()
	s.SetError(errors.New("boom"))
	if s.Snapshot().LastError == nil {
		t.Fatal("SetError not recorded")
	}
	s.SetStatus("3 walls")
	snap := s.Snapshot()
	if snap.LastError != nil || snap.Status != "3 walls" {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestStateLogLimit(t *testing.T) {
	s := NewState()
	for i := 0; i < 250; i++ {
		s.AppendLog(fmt.Sprintf("msg %d", i))
	}
	logs := s.Snapshot().Logs
	if len(logs) != 200 {
		t.Fatalf("len(logs) = %d, want 200", len(logs))
	}
	if logs[0] != "msg 50" || logs[199] != "msg 249" {
		t.Errorf("logs kept %q..%q", logs[0], logs[199])
	}
}

func TestStateSnapshotIsCopy(t *testing.T) {
	s := NewState()
	s.AppendLog("one")
	snap := s.Snapshot()
	snap.Logs[0] = "changed"
	if s.Snapshot().Logs[0] != "one" {
		t.Error("snapshot logs alias the state")
	}
}
