package state

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrOutOfRange is returned by Remove for a position outside the list.
var ErrOutOfRange = errors.New("position out of range")

// TodoList is an ordered, in-memory to-do list.
type TodoList struct {
	items []TodoItem
	ids   Clock
	mu    sync.RWMutex

	// OnChange is called after every successful mutation, outside the lock.
	OnChange func()
}

func NewTodoList() *TodoList {
	return &TodoList{items: make([]TodoItem, 0)}
}

// Add appends a new open item. Blank titles are rejected.
func (l *TodoList) Add(title string) (TodoItem, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return TodoItem{}, false
	}

	l.mu.Lock()
	// ids start at 0 like the list positions they originally mirrored
	item := TodoItem{ID: int(l.ids.Tick()) - 1, Title: title}
	l.items = append(l.items, item)
	l.mu.Unlock()

	debugf("[TODO] Added #%d %q", item.ID, item.Title)
	l.notify()
	return item, true
}

// Toggle flips the done flag of the item with the given id.
func (l *TodoList) Toggle(id int) bool {
	l.mu.Lock()
	i := l.indexOf(id)
	if i < 0 {
		l.mu.Unlock()
		return false
	}
	l.items[i].Done = !l.items[i].Done
	done := l.items[i].Done
	l.mu.Unlock()

	debugf("[TODO] Toggled #%d done=%t", id, done)
	l.notify()
	return true
}

// Update replaces the stored item that has item.ID. Blank titles keep the
// old title.
func (l *TodoList) Update(item TodoItem) bool {
	l.mu.Lock()
	i := l.indexOf(item.ID)
	if i < 0 {
		l.mu.Unlock()
		return false
	}
	if t := strings.TrimSpace(item.Title); t != "" {
		l.items[i].Title = t
	}
	l.items[i].Done = item.Done
	l.mu.Unlock()

	l.notify()
	return true
}

// Remove deletes the item at position pos.
func (l *TodoList) Remove(pos int) (TodoItem, error) {
	l.mu.Lock()
	if pos < 0 || pos >= len(l.items) {
		n := len(l.items)
		l.mu.Unlock()
		return TodoItem{}, fmt.Errorf("remove %d of %d: %w", pos, n, ErrOutOfRange)
	}
	removed := l.items[pos]
	l.items = append(l.items[:pos], l.items[pos+1:]...)
	l.mu.Unlock()

	debugf("[TODO] Removed #%d %q", removed.ID, removed.Title)
	l.notify()
	return removed, nil
}

// Items returns a copy of the list in insertion order.
func (l *TodoList) Items() []TodoItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]TodoItem, len(l.items))
	copy(out, l.items)
	return out
}

// At returns the item at position pos.
func (l *TodoList) At(pos int) (TodoItem, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if pos < 0 || pos >= len(l.items) {
		return TodoItem{}, false
	}
	return l.items[pos], true
}

func (l *TodoList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

func (l *TodoList) CompletedCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, it := range l.items {
		if it.Done {
			n++
		}
	}
	return n
}

func (l *TodoList) RemainingCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, it := range l.items {
		if !it.Done {
			n++
		}
	}
	return n
}

// must hold l.mu
func (l *TodoList) indexOf(id int) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (l *TodoList) notify() {
	if l.OnChange != nil {
		l.OnChange()
	}
}
