package skel

import "container/heap"

// eventHeap is a container/heap min-heap over events ordered by
// distance, with a monotonic insertion sequence as a secondary key so
// that equal-distance events pop in the order they were pushed.
type eventHeap []event

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].distance() != h[j].distance() {
		return h[i].distance() < h[j].distance()
	}
	return eventSeq(h[i]) < eventSeq(h[j])
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(event))
}
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func eventSeq(e event) uint64 {
	switch ev := e.(type) {
	case *edgeEvent:
		return ev.seq
	case *splitEvent:
		return ev.seq
	default:
		return 0
	}
}

func setEventSeq(e event, seq uint64) {
	switch ev := e.(type) {
	case *edgeEvent:
		ev.seq = seq
	case *splitEvent:
		ev.seq = seq
	}
}

// eventQueue is a min-heap of pending events keyed by distance.
type eventQueue struct {
	data eventHeap
	next uint64
}

func newEventQueue() *eventQueue {
	q := &eventQueue{}
	heap.Init(&q.data)
	return q
}

// push adds ev to the queue. A nil event (no candidate) is a no-op,
// mirroring the reference queue's put().
func (q *eventQueue) push(ev event) {
	if ev == nil {
		return
	}
	setEventSeq(ev, q.next)
	q.next++
	heap.Push(&q.data, ev)
}

func (q *eventQueue) pushAll(evs []event) {
	for _, ev := range evs {
		q.push(ev)
	}
}

func (q *eventQueue) pop() event {
	return heap.Pop(&q.data).(event)
}

func (q *eventQueue) empty() bool { return q.data.Len() == 0 }
