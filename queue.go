package hufftext

import (
	"container/heap"
)

// queueEntry is an entry in freqQueue.  The freq field is used only for
// ordering.
type queueEntry struct {
	freq uint64
	seq  uint64
	node Node
}

// freqQueue is a min-priority queue of Nodes keyed by frequency.  Entries
// with equal frequencies come out in the order they went in.
type freqQueue struct {
	list    []queueEntry
	nextSeq uint64
}

// Insert adds node to the queue with the given frequency.
func (q *freqQueue) Insert(freq uint64, node Node) {
	heap.Push(q, queueEntry{freq: freq, seq: q.nextSeq, node: node})
	q.nextSeq++
}

// ExtractMin removes and returns the entry with the smallest frequency.  The
// second return value is false if the queue is empty.
func (q *freqQueue) ExtractMin() (queueEntry, bool) {
	if q.IsEmpty() {
		return queueEntry{}, false
	}
	return heap.Pop(q).(queueEntry), true
}

func (q *freqQueue) IsEmpty() bool {
	return len(q.list) == 0
}

func (q *freqQueue) Len() int {
	return len(q.list)
}

func (q *freqQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *freqQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (q *freqQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queueEntry))
}

func (q *freqQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list[last] = queueEntry{}
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*freqQueue)(nil)
