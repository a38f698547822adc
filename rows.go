package vlist

// RowRecord is one measured row: the slice of items it holds and its
// rectangle in content-local coordinates (y=0 at the top of the list,
// independent of scrolling).
type RowRecord struct {
	Items Range
	Rect  Rect
}

// rowCache stores measured rows in order. Row i+1 always starts at the
// item where row i ended, so the covered item range is contiguous from
// item 0.
type rowCache struct {
	rows []RowRecord
}

// len returns the number of cached rows.
func (c *rowCache) len() int {
	return len(c.rows)
}

// at returns the cached row at index i.
func (c *rowCache) at(i int) RowRecord {
	return c.rows[i]
}

// itemsCovered returns the index one past the last cached item, i.e.
// the first item not covered by any cached row.
func (c *rowCache) itemsCovered() int {
	if len(c.rows) == 0 {
		return 0
	}
	return c.rows[len(c.rows)-1].Items.End
}

// upsert overwrites the row at index i, or appends when i is the next
// free slot. Returns true when the row was newly appended.
func (c *rowCache) upsert(i int, rec RowRecord) bool {
	if i < len(c.rows) {
		c.rows[i] = rec
		return false
	}
	c.rows = append(c.rows, rec)
	return true
}

// truncate drops all rows from index i on.
func (c *rowCache) truncate(i int) {
	if i < len(c.rows) {
		c.rows = c.rows[:i]
	}
}

// clear drops all cached rows, keeping capacity.
func (c *rowCache) clear() {
	c.rows = c.rows[:0]
}
