package tracking

import "sync"

// Notification drives the upload-result modal: Closed until a completed
// attempt delivers a result, Open until the operator acknowledges it.
// There is no auto-close. Acknowledging while Closed is a no-op, and a new
// result always replaces the visible one (last completion wins).
type Notification struct {
	mu     sync.Mutex
	open   bool
	result UploadResult
}

func NewNotification() *Notification {
	return &Notification{}
}

// Deliver transitions the notification to Open with the given result.
func (n *Notification) Deliver(result UploadResult) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.open = true
	n.result = result
}

// Acknowledge transitions Open to Closed and discards the held result.
func (n *Notification) Acknowledge() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.open = false
	n.result = UploadResult{}
}

// Current returns the held result and whether the notification is Open.
func (n *Notification) Current() (UploadResult, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.result, n.open
}
