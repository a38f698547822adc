package vlist

import "testing"

func TestIDFromIntDistinct(t *testing.T) {
	ctx := NewContext()
	a := ctx.GetIDFromInt(1)
	b := ctx.GetIDFromInt(2)
	if a == b {
		t.Errorf("ids for distinct ints collide: %v", a)
	}
}

// The same label inside two different item scopes must not collide.
func TestPushIDIntScopesLabels(t *testing.T) {
	ctx := NewContext()

	ctx.PushIDInt(0)
	a := ctx.GetID("row")
	ctx.PopID()

	ctx.PushIDInt(1)
	b := ctx.GetID("row")
	ctx.PopID()

	if a == b {
		t.Errorf("same label in different item scopes collides: %v", a)
	}
}
