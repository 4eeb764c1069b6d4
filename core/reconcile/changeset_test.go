package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeSet_Missing(t *testing.T) {
	cs := NewChangeSet()

	cs.EnsureMissing("a").EnsureMissing("b").EnsureMissing("a")
	assert.Equal(t, []string{"a", "b"}, cs.Missing)
	assert.True(t, cs.IsMissing("a"))

	cs.RemoveMissing("a").RemoveMissing("zzz")
	assert.Equal(t, []string{"b"}, cs.Missing)
	assert.False(t, cs.IsMissing("a"))
}

func TestChangeSet_HasChanges(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ChangeSet)
		expect bool
	}{
		{name: "empty", modify: func(*ChangeSet) {}, expect: false},
		{name: "missing only", modify: func(c *ChangeSet) { c.EnsureMissing("a") }, expect: false},
		{name: "duplicated only", modify: func(c *ChangeSet) { c.AddDuplicated("a") }, expect: false},
		{name: "created", modify: func(c *ChangeSet) { c.AddCreated("a") }, expect: true},
		{name: "updated", modify: func(c *ChangeSet) { c.AddUpdated("a") }, expect: true},
		{name: "deleted", modify: func(c *ChangeSet) { c.AddDeleted("a") }, expect: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewChangeSet()
			tt.modify(cs)
			assert.Equal(t, tt.expect, cs.HasChanges())
		})
	}
}

func TestChangeSet_String(t *testing.T) {
	cs := NewChangeSet().AddCreated("Acme Corp").AddDuplicated("Jane Doe")
	cs.Unnamed = 1

	assert.JSONEq(t,
		`{"created":["Acme Corp"],"updated":[],"deleted":[],"missing":[],"duplicated":["Jane Doe"],"unnamed":1}`,
		cs.String())
}
