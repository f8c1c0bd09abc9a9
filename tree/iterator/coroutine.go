package iterator

// Coroutine is returned from Co and abstracts
// communication with the iterating goroutine.
type Coroutine[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns a channel on which the items from the iterator
// will be sent. It is closed when the iterator runs out or
// after Stop.
func (c Coroutine[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
func (c Coroutine[T]) Stop() {
	close(c.stop)
}

// Co starts coroutine-style iteration over it.
// The usage is as follows:
//
//	co := Co[T](someTree.PreorderIterator())
//	for e := range co.Items() {
//		... do stuff with e ...
//		if e meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Co starts a goroutine, which exits when either Stop is called
// or the iteration is finished. The goroutine drives it, so the
// tree must not be changed until the Items channel is closed.
func Co[T any](it Iterator[T]) Coroutine[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := Coroutine[T]{
		items: out,
		stop:  stop,
	}

	if it == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, it Iterator[T]) {
		defer close(out)
		for it.Next() {
			select {
			case out <- it.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, it)

	return co
}
