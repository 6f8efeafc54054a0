package socket

import "testing"

func TestEventRoom(t *testing.T) {
	if got := EventRoom("event-1"); got != "event:event-1" {
		t.Errorf("unexpected room name: %s", got)
	}
}
