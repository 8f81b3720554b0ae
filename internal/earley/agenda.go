package earley

// Column is the agenda of items associated with one position in the input:
// a FIFO worklist with duplicate detection that also remembers every item
// it has ever held, even after that item has been popped, since ATTACH
// needs to scan a column's full history for customers and ill-timed weight
// improvements need to re-enqueue items that were already processed.
//
// A Column is not safe for concurrent use; each sentence gets its own chart
// of columns, and parsing one sentence is single-threaded (spec. §5).
type Column struct {
	items []Item         // every item ever pushed, in push order
	index map[Item]int   // item -> position in items
	tips  map[Item]Tip   // item -> best tip found so far
	next  int            // index of the first item not yet popped
}

// NewColumn returns an empty column.
func NewColumn() *Column {
	return &Column{
		index: make(map[Item]int),
		tips:  make(map[Item]Tip),
	}
}

// Len returns the number of items still waiting to be popped.
func (c *Column) Len() int {
	return len(c.items) - c.next
}

// Push adds item to the column unless it was already pushed at some point
// (including if it has already been popped). It returns whether the item
// existed before this call.
func (c *Column) Push(item Item) (existedBefore bool) {
	if _, ok := c.index[item]; ok {
		return true
	}
	c.index[item] = len(c.items)
	c.items = append(c.items, item)
	return false
}

// Pop returns the next pending item and advances past it. It panics if the
// column has no pending items; callers are expected to guard with Len.
func (c *Column) Pop() Item {
	if c.Len() == 0 {
		panic("earley: pop on empty agenda")
	}
	item := c.items[c.next]
	c.next++
	return item
}

// All returns every item ever pushed into the column, processed and
// pending alike, in the order they were first pushed.
func (c *Column) All() []Item {
	return c.items
}

// FindTip returns the tip recorded for item. The second return value is
// false if item has never had a tip installed, which is a programmer error
// for any item that has been pushed (callers always install a tip in the
// same step that pushes an item).
func (c *Column) FindTip(item Item) (Tip, bool) {
	t, ok := c.tips[item]
	return t, ok
}

// UpdateTip installs candidate as item's tip if no tip exists yet, or
// replaces the existing tip when candidate's weight is less than or equal
// to the stored weight. The comparison is deliberately non-strict (spec.
// §9, "permissive" tie-breaking): on a tie the newest derivation wins,
// which is what forces reprocessing of ties to propagate consistently.
//
// It returns whether the stored tip was replaced (false the first time a
// tip is installed for item).
func (c *Column) UpdateTip(item Item, candidate Tip) (improved bool) {
	old, ok := c.tips[item]
	if !ok {
		c.tips[item] = candidate
		return false
	}
	if candidate.Weight <= old.Weight {
		c.tips[item] = candidate
		return true
	}
	return false
}

// MoveDown re-enqueues an already-processed item so the driver will pop and
// reprocess it. If item is still pending (not yet popped), this is a no-op.
// It panics if item was never pushed into this column.
func (c *Column) MoveDown(item Item) {
	idx, ok := c.index[item]
	if !ok {
		panic("earley: move-down on an item absent from this column")
	}
	if idx >= c.next {
		return // still pending, nothing to do
	}

	// Remove item from its current slot and append it at the end, shifting
	// every item after it left by one position.
	copy(c.items[idx:], c.items[idx+1:])
	c.items[len(c.items)-1] = item
	for it, i := range c.index {
		if i > idx {
			c.index[it] = i - 1
		}
	}
	c.index[item] = len(c.items) - 1
	c.next--
}
