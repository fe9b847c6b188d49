package actor

import (
	"testing"
	"time"
)

func TestMessagesHandledInOrder(t *testing.T) {
	var got []int
	a := NewActor[int]("numbers", func(n int) bool {
		got = append(got, n)
		return true
	})
	for i := 0; i < 100; i++ {
		a.Send(i)
	}
	a.Stop()
	if len(got) != 100 {
		t.Fatalf("handled %d messages", len(got))
	}
	for i, n := range got {
		if n != i {
			t.Fatalf("message %d handled as %d", i, n)
		}
	}
}

func TestHandlerStopsActor(t *testing.T) {
	a := NewActor[string]("words", func(s string) bool {
		return s != "quit"
	})
	a.Send("hello")
	a.Send("quit")
	select {
	case <-a.Done():
	case <-time.After(time.Second):
		t.Fatal("actor did not stop")
	}
	if a.Send("late") {
		t.Error("stopped actor accepted a message")
	}
	a.Stop()
}
