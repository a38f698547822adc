package vlist_test

import (
	"testing"

	"github.com/go-theft-auto/vlist"
)

func TestListClipperBasic(t *testing.T) {
	// 1000 items, 20 units each, 200 unit viewport, scrolled to 400.
	c := vlist.NewListClipper(1000, 20, 200, 400)

	if c.StartIdx != 20 {
		t.Errorf("StartIdx = %d, want 20", c.StartIdx)
	}
	// 10 fully visible + 2 for partial rows at the edges
	if c.EndIdx != 32 {
		t.Errorf("EndIdx = %d, want 32", c.EndIdx)
	}
	if got := c.Range(); got != (vlist.Range{Start: 20, End: 32}) {
		t.Errorf("Range() = %v, want [20,32)", got)
	}
	if c.VisibleCount() != 12 {
		t.Errorf("VisibleCount = %d, want 12", c.VisibleCount())
	}
}

func TestListClipperClampsToLength(t *testing.T) {
	c := vlist.NewListClipper(5, 20, 200, 0)
	if c.StartIdx != 0 || c.EndIdx != 5 {
		t.Errorf("range = [%d,%d), want [0,5)", c.StartIdx, c.EndIdx)
	}

	c = vlist.NewListClipper(5, 20, 200, 10000)
	if c.StartIdx != 5 || c.EndIdx != 5 {
		t.Errorf("over-scrolled range = [%d,%d), want [5,5)", c.StartIdx, c.EndIdx)
	}
}

func TestListClipperEmpty(t *testing.T) {
	c := vlist.NewListClipper(0, 20, 200, 0)
	if c.VisibleCount() != 0 {
		t.Errorf("VisibleCount = %d for empty list, want 0", c.VisibleCount())
	}
	if c.ShouldRender(0) {
		t.Error("ShouldRender(0) = true for empty list")
	}
}

func TestListClipperItemY(t *testing.T) {
	c := vlist.NewListClipper(100, 20, 200, 100)

	// Item 5 starts at content y=100, exactly the scroll offset.
	if got := c.ItemY(5, 50, 100); got != 50 {
		t.Errorf("ItemY(5) = %v, want 50", got)
	}
	if got := c.ItemY(6, 50, 100); got != 70 {
		t.Errorf("ItemY(6) = %v, want 70", got)
	}
}

func TestListClipperContentHeight(t *testing.T) {
	c := vlist.NewListClipper(100, 20, 200, 0)

	if c.ContentHeight() != 2000 {
		t.Errorf("ContentHeight = %v, want 2000", c.ContentHeight())
	}
	if c.MaxScroll(200) != 1800 {
		t.Errorf("MaxScroll = %v, want 1800", c.MaxScroll(200))
	}
	if c.MaxScroll(5000) != 0 {
		t.Errorf("MaxScroll with oversized viewport = %v, want 0", c.MaxScroll(5000))
	}
}

func TestListClipperScrollToItem(t *testing.T) {
	c := vlist.NewListClipper(100, 20, 200, 0)

	// Already visible: unchanged.
	if got := c.ScrollToItem(3, 0, 200); got != 0 {
		t.Errorf("ScrollToItem(3) = %v, want 0", got)
	}
	// Below the viewport: scroll so its bottom edge lands at the bottom.
	if got := c.ScrollToItem(50, 0, 200); got != 820 {
		t.Errorf("ScrollToItem(50) = %v, want 820", got)
	}
	// Above the viewport: scroll so its top edge lands at the top.
	if got := c.ScrollToItem(10, 820, 200); got != 200 {
		t.Errorf("ScrollToItem(10) = %v, want 200", got)
	}
	// Out of bounds: unchanged.
	if got := c.ScrollToItem(-1, 300, 200); got != 300 {
		t.Errorf("ScrollToItem(-1) = %v, want 300", got)
	}
}
