package tracking

import "testing"

func TestNotification_Lifecycle(t *testing.T) {
	t.Parallel()

	n := NewNotification()
	if _, open := n.Current(); open {
		t.Fatalf("expected new notification to be closed")
	}

	n.Deliver(UploadResult{Succeeded: false, Message: "disk full"})
	result, open := n.Current()
	if !open {
		t.Fatalf("expected delivery to open the notification")
	}
	if result.Succeeded || result.Message != "disk full" {
		t.Fatalf("unexpected result: %+v", result)
	}

	n.Acknowledge()
	if _, open := n.Current(); open {
		t.Fatalf("expected acknowledge to close the notification")
	}
}

func TestNotification_AcknowledgeWhenClosedIsNoOp(t *testing.T) {
	t.Parallel()

	n := NewNotification()
	n.Acknowledge()
	if _, open := n.Current(); open {
		t.Fatalf("expected notification to stay closed")
	}
}

func TestNotification_LastDeliveryWins(t *testing.T) {
	t.Parallel()

	n := NewNotification()
	n.Deliver(UploadResult{Succeeded: true, Message: "stocks uploaded"})
	n.Deliver(UploadResult{Succeeded: false, Message: "sales rejected"})

	result, open := n.Current()
	if !open {
		t.Fatalf("expected notification to be open")
	}
	if result.Message != "sales rejected" {
		t.Fatalf("expected the latest result to win, got %q", result.Message)
	}
}
