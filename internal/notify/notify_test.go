package notify

import (
	"testing"
	"time"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
)

func TestNotifyReplacesPendingToast(t *testing.T) {
	n := New(time.Minute)

	n.Notify("primero", models.NotifySuccess)
	n.Notify("segundo", models.NotifyInfo)

	toast := n.Current()
	if toast == nil {
		t.Fatal("expected a pending toast")
	}
	if toast.Message != "segundo" || toast.Kind != models.NotifyInfo {
		t.Errorf("toast = %+v", toast)
	}
}

func TestToastExpires(t *testing.T) {
	n := New(30 * time.Millisecond)
	n.Notify("adiós", models.NotifySuccess)

	if n.Current() == nil {
		t.Fatal("toast should be visible before expiry")
	}
	time.Sleep(80 * time.Millisecond)
	if toast := n.Current(); toast != nil {
		t.Errorf("toast should have expired, got %q", toast.Message)
	}
}

// A rapid second toast must get its own full lifetime; the first
// toast's timer may not clear it early.
func TestStaleTimerCannotClearNewerToast(t *testing.T) {
	n := New(80 * time.Millisecond)

	n.Notify("viejo", models.NotifySuccess)
	time.Sleep(50 * time.Millisecond)
	n.Notify("nuevo", models.NotifySuccess)

	// The first timer would have fired by now if it were still armed.
	time.Sleep(50 * time.Millisecond)
	toast := n.Current()
	if toast == nil || toast.Message != "nuevo" {
		t.Fatalf("newer toast cleared early: %+v", toast)
	}

	time.Sleep(60 * time.Millisecond)
	if n.Current() != nil {
		t.Error("newer toast should expire on its own schedule")
	}
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	n := New(0)
	if n.ttl != DefaultTTL {
		t.Errorf("ttl = %s, want %s", n.ttl, DefaultTTL)
	}
}
