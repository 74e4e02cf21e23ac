// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package changes

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-mage/models"
)

// Notification announces a committed store write and the entities it
// touched.
type Notification struct {
	Entities []models.Entity
}

// Touches reports whether the notification concerns any of entities. An
// empty entities list matches every notification.
func (n Notification) Touches(entities ...models.Entity) bool {
	if len(entities) == 0 {
		return true
	}
	for _, e := range n.Entities {
		if slices.Contains(entities, e) {
			return true
		}
	}
	return false
}

type listener struct {
	entities []models.Entity
	wake     chan struct{}
}

// Notifier fans store "did save" notifications out to listeners.
//
// Wake-ups are coalesced: a listener that has not consumed its previous
// wake-up receives nothing extra, which is enough because listeners always
// re-read the current state of the store.
type Notifier struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[int]listener
}

func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]listener)}
}

// Listen registers interest in writes touching any of entities and returns
// the wake-up channel and a func that unregisters the listener.
func (n *Notifier) Listen(entities ...models.Entity) (<-chan struct{}, func()) {
	l := listener{
		entities: slices.Clone(entities),
		wake:     make(chan struct{}, 1),
	}

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = l
	n.mu.Unlock()

	var once sync.Once
	return l.wake, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

// Notify wakes every listener interested in the notification. It never
// blocks.
func (n *Notifier) Notify(note Notification) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, l := range n.listeners {
		if !note.Touches(l.entities...) {
			continue
		}
		select {
		case l.wake <- struct{}{}:
		default:
		}
	}
}

// Len returns the number of registered listeners.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}
