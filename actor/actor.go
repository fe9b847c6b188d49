package actor

import (
	"curtain/stream"
	"log"
)

// Actor runs its handler on one goroutine, one message at a time, in send order.
type Actor[T any] interface {
	Send(message T) bool
	Stop()
	Done() <-chan struct{}
}

// Handler processes one message; returning false stops the actor.
type Handler[T any] func(T) bool

func NewActor[T any](name string, handler Handler[T]) Actor[T] {
	a := &actor[T]{
		handler: handler,
		pending: stream.NewStream[T](name),
		done:    make(chan struct{}),
	}
	go a.run()
	return a
}

type actor[T any] struct {
	handler Handler[T]
	pending *stream.Stream[T]
	done    chan struct{}
}

// Send queues msg. It reports false once the actor has stopped accepting messages.
func (a *actor[T]) Send(msg T) bool {
	return a.pending.Push(msg)
}

// Stop lets the actor finish what is already queued and waits for it.
func (a *actor[T]) Stop() {
	a.pending.Close()
	<-a.done
}

func (a *actor[T]) Done() <-chan struct{} {
	return a.done
}

func (a *actor[T]) run() {
	defer close(a.done)
	for {
		msg, ok := a.pending.Pull()
		if !ok {
			return
		}
		if !a.handler(msg) {
			a.pending.Close()
			log.Printf("actor %s: stopped by its handler", a.pending.Name())
			return
		}
	}
}
