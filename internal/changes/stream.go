// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package changes

// Stream is a flat stream of elements derived from a diff subscription.
type Stream[T any] struct {
	ch   chan T
	sub  *Subscription[Diff[T]]
	done chan struct{}
}

// Insertions follows sub and emits every inserted element, one diff at a
// time: the next diff is only requested once all insertions of the current
// one have been received. An element whose fingerprint changed shows up as
// an insertion too, so the stream reports every record that newly matches
// the query.
func Insertions[T any](sub *Subscription[Diff[T]]) *Stream[T] {
	s := &Stream[T]{
		ch:   make(chan T),
		sub:  sub,
		done: make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		defer close(s.ch)

		sub.Request(1)
		for d := range sub.Values() {
			for _, ins := range d.Insertions {
				select {
				case s.ch <- ins.Element:
				case <-sub.Done():
					return
				}
			}
			sub.Request(1)
		}
	}()

	return s
}

// C returns the element channel. It is closed when the stream ends.
func (s *Stream[T]) C() <-chan T {
	return s.ch
}

// Err returns the terminal failure of the underlying subscription.
func (s *Stream[T]) Err() error {
	return s.sub.Err()
}

// Cancel stops the stream and waits for it to wind down.
func (s *Stream[T]) Cancel() {
	s.sub.Cancel()
	<-s.done
}
