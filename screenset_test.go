package vtscreen

import "testing"

func TestScreenSetRemovePrimaryForbidden(t *testing.T) {
	ss := NewScreenSet(4, 10, 50, 100)
	if err := ss.Remove(ScreenPrimary); err == nil {
		t.Fatal("Remove(ScreenPrimary) should be forbidden")
	}
}

func TestScreenSetSwitchToUninitializedForbidden(t *testing.T) {
	ss := NewScreenSet(4, 10, 50, 100)
	if err := ss.SwitchTo(ScreenAlternate); err == nil {
		t.Fatal("SwitchTo(uninitialized alternate) should error")
	}
}

func TestScreenSetGetUninitializedReturnsFalse(t *testing.T) {
	ss := NewScreenSet(4, 10, 50, 100)
	if _, ok := ss.Get(ScreenAlternate); ok {
		t.Fatal("Get(ScreenAlternate) before GetInit should report false")
	}
}

func TestScreenSetLazyAlternateAndSwitch(t *testing.T) {
	ss := NewScreenSet(4, 10, 50, 100)
	alt := ss.GetInit(ScreenAlternate, 4, 10, 50)
	if alt == nil {
		t.Fatal("GetInit should allocate the alternate")
	}
	if err := ss.SwitchTo(ScreenAlternate); err != nil {
		t.Fatalf("SwitchTo(ScreenAlternate): %v", err)
	}
	if ss.Active() != alt || ss.ActiveKey() != ScreenAlternate {
		t.Fatal("Active()/ActiveKey() should reflect the switch")
	}
}

func TestScreenSetRemoveAlternateFallsBackToPrimary(t *testing.T) {
	ss := NewScreenSet(4, 10, 50, 100)
	ss.GetInit(ScreenAlternate, 4, 10, 50)
	ss.SwitchTo(ScreenAlternate)
	if err := ss.Remove(ScreenAlternate); err != nil {
		t.Fatalf("Remove(ScreenAlternate): %v", err)
	}
	if ss.ActiveKey() != ScreenPrimary {
		t.Fatal("removing the active alternate should fall back to primary")
	}
}
