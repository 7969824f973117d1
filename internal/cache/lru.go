package cache

// node links one key into the recency list.
type node[K comparable] struct {
	key        K
	prev, next *node[K]
}

// recency is a doubly-linked list ordered from most to least recently used.
// It is not synchronized; Cache guards it with its mutex.
type recency[K comparable] struct {
	head, tail *node[K]
	len        int
}

// pushFront inserts key as the most recently used entry.
func (l *recency[K]) pushFront(key K) *node[K] {
	n := &node[K]{key: key, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.len++
	return n
}

// touch marks n as the most recently used entry.
func (l *recency[K]) touch(n *node[K]) {
	if n == l.head {
		return
	}
	l.unlink(n)
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.len++
}

// popBack removes the least recently used entry.
func (l *recency[K]) popBack() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	n := l.tail
	l.unlink(n)
	return n.key, true
}

func (l *recency[K]) unlink(n *node[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
