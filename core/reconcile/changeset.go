package reconcile

import "encoding/json"

// ChangeSet accumulates the outcome of one side of a reconciliation run.
// Each list holds correlation names.
type ChangeSet struct {
	// Created lists names that gained this side's identifier during the run.
	Created []string `json:"created"`

	// Updated lists names whose identifier value changed, or whose record now
	// derives a different name than the entry it is correlated with.
	Updated []string `json:"updated"`

	// Deleted lists names that lost this side's identifier during the run.
	Deleted []string `json:"deleted"`

	// Missing lists names correlated only on the other side, i.e. records
	// that still have to be created on this side. Recomputed at the end of
	// every run from the final map.
	Missing []string `json:"missing"`

	// Duplicated lists names produced by a second (or later) record in this
	// run's input. Those records were skipped.
	Duplicated []string `json:"duplicated"`

	// Unnamed counts records whose derived name was empty. They were skipped.
	Unnamed int `json:"unnamed"`
}

// NewChangeSet returns an empty change set with non-nil lists.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{
		Created:    []string{},
		Updated:    []string{},
		Deleted:    []string{},
		Missing:    []string{},
		Duplicated: []string{},
	}
}

func (c *ChangeSet) AddCreated(name string) *ChangeSet {
	c.Created = append(c.Created, name)
	return c
}

func (c *ChangeSet) AddUpdated(name string) *ChangeSet {
	c.Updated = append(c.Updated, name)
	return c
}

func (c *ChangeSet) AddDeleted(name string) *ChangeSet {
	c.Deleted = append(c.Deleted, name)
	return c
}

func (c *ChangeSet) AddDuplicated(name string) *ChangeSet {
	c.Duplicated = append(c.Duplicated, name)
	return c
}

// EnsureMissing adds name to Missing unless it is already listed.
func (c *ChangeSet) EnsureMissing(name string) *ChangeSet {
	if !contains(c.Missing, name) {
		c.Missing = append(c.Missing, name)
	}
	return c
}

// RemoveMissing drops every occurrence of name from Missing.
func (c *ChangeSet) RemoveMissing(name string) *ChangeSet {
	c.Missing = without(c.Missing, name)
	return c
}

// IsMissing reports whether name is listed in Missing.
func (c *ChangeSet) IsMissing(name string) bool {
	return contains(c.Missing, name)
}

// HasChanges reports whether anything was created, updated or deleted.
func (c *ChangeSet) HasChanges() bool {
	return len(c.Created) > 0 || len(c.Updated) > 0 || len(c.Deleted) > 0
}

// String renders the change set as JSON.
func (c *ChangeSet) String() string {
	data, err := json.Marshal(c)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func contains(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}

func without(list []string, name string) []string {
	out := list[:0]
	for _, item := range list {
		if item != name {
			out = append(out, item)
		}
	}
	return out
}
