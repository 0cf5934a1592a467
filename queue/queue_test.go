package queue

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

type item struct {
	id  int
	key int
}

func byKey(a, b *item) int {
	return a.key - b.key
}

// QueueTestSuite covers offer/peek/poll/at/remove ordering and
// stability guarantees against the generic Queue[T].
type QueueTestSuite struct {
	suite.Suite
}

func TestQueueTestSuite(t *testing.T) {
	suite.Run(t, new(QueueTestSuite))
}

func ids(items []*item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}

func (ts *QueueTestSuite) TestOfferOrdersByComparator() {
	q := New[*item](byKey)
	q.Offer(&item{id: 1, key: 5})
	q.Offer(&item{id: 2, key: 1})
	q.Offer(&item{id: 3, key: 3})

	if diff := cmp.Diff([]int{2, 3, 1}, ids(q.Snapshot())); diff != "" {
		ts.Failf("queue order mismatch", "(-want +got):\n%s", diff)
	}
}

func (ts *QueueTestSuite) TestOfferIsStableAtEqualKeys() {
	q := New[*item](byKey)
	a := &item{id: 1, key: 0}
	b := &item{id: 2, key: 0}
	c := &item{id: 3, key: 0}
	q.Offer(a)
	q.Offer(b)
	q.Offer(c)

	if diff := cmp.Diff([]int{1, 2, 3}, ids(q.Snapshot())); diff != "" {
		ts.Failf("stability violated", "(-want +got):\n%s", diff)
	}
}

func (ts *QueueTestSuite) TestOfferReturnsInsertionIndex() {
	q := New[*item](byKey)
	ts.Equal(0, q.Offer(&item{id: 1, key: 5}))
	ts.Equal(0, q.Offer(&item{id: 2, key: 1}))
	ts.Equal(2, q.Offer(&item{id: 3, key: 5}))
}

func (ts *QueueTestSuite) TestPeekDoesNotRemove() {
	q := New[*item](byKey)
	q.Offer(&item{id: 1, key: 1})

	v, ok := q.Peek()
	ts.True(ok)
	ts.Equal(1, v.id)
	ts.Equal(1, q.Size())
}

func (ts *QueueTestSuite) TestPeekPollEmptyQueueReturnsAbsent() {
	q := New[*item](byKey)
	_, ok := q.Peek()
	ts.False(ok)
	_, ok = q.Poll()
	ts.False(ok)
}

func (ts *QueueTestSuite) TestAtOutOfRange() {
	q := New[*item](byKey)
	q.Offer(&item{id: 1, key: 1})
	_, ok := q.At(5)
	ts.False(ok)
	_, ok = q.At(-1)
	ts.False(ok)
}

func (ts *QueueTestSuite) TestRemoveByIdentityUsesReferenceNotComparator() {
	q := New[*item](byKey)
	a := &item{id: 1, key: 0}
	b := &item{id: 2, key: 0} // ties with a under comparator
	q.Offer(a)
	q.Offer(b)

	removed := q.RemoveByIdentity(a)
	ts.Equal(1, removed)
	ts.Equal(1, q.Size())
	v, _ := q.Peek()
	ts.Same(b, v)
}

func (ts *QueueTestSuite) TestOfferThenRemoveByIdentityRoundTrips() {
	q := New[*item](byKey)
	a := &item{id: 1, key: 3}
	before := q.Size()
	q.Offer(a)
	q.RemoveByIdentity(a)

	ts.Equal(before, q.Size())
}

func (ts *QueueTestSuite) TestOfferThenPollOnEmptyQueueReturnsSameJob() {
	q := New[*item](byKey)
	a := &item{id: 1, key: 3}
	q.Offer(a)

	v, ok := q.Poll()
	ts.True(ok)
	ts.Same(a, v)
}

func (ts *QueueTestSuite) TestRemoveAt() {
	q := New[*item](byKey)
	q.Offer(&item{id: 1, key: 1})
	q.Offer(&item{id: 2, key: 2})
	q.Offer(&item{id: 3, key: 3})

	v, ok := q.RemoveAt(1)
	ts.True(ok)
	ts.Equal(2, v.id)
	ts.Equal(2, q.Size())

	if diff := cmp.Diff([]int{1, 3}, ids(q.Snapshot())); diff != "" {
		ts.Failf("remaining order mismatch", "(-want +got):\n%s", diff)
	}
}

func (ts *QueueTestSuite) TestDrainEmptiesQueueInOrder() {
	q := New[*item](byKey)
	q.Offer(&item{id: 1, key: 2})
	q.Offer(&item{id: 2, key: 1})

	drained := q.Drain()
	if diff := cmp.Diff([]int{2, 1}, ids(drained)); diff != "" {
		ts.Failf("drain order mismatch", "(-want +got):\n%s", diff)
	}
	ts.True(q.IsEmpty())
}
