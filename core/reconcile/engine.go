package reconcile

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mvqn/ucrm-plugin-xero/core/utils"

	"go.uber.org/zap"
)

// Engine correlates two sides against a persisted correlation map.
// Runs on one engine are serialized.
type Engine struct {
	mu     sync.Mutex
	store  MapStore
	logger *zap.Logger
}

// NewEngine creates an engine. A nil store disables persistence: every run
// starts from an empty map and nothing is written.
func NewEngine(store MapStore, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: store, logger: logger}
}

// Reconcile runs one full reconciliation: it loads the map, applies the
// source side, then the destination side, recomputes the missing lists,
// prunes entries with neither identifier and saves the result.
//
// A structural error (type mismatch, unencodable value, unreadable map)
// aborts the run and nothing is written. When only the final save fails the
// in-memory result is returned together with the error.
func (e *Engine) Reconcile(ctx context.Context, source, destination Side) (*Result, error) {
	if err := validateSides(source, destination); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.load(ctx)
	if err != nil {
		return nil, err
	}

	run := &runState{pinned: map[string]bool{}, claimed: map[string]bool{}}

	src := NewChangeSet()
	if err := run.apply(source, m, src, e.logger); err != nil {
		return nil, err
	}

	// Only names claimed by the source pass protect entries from being moved
	// by the destination pass.
	run.protect = run.claimed
	run.claimed = map[string]bool{}

	dst := NewChangeSet()
	if err := run.apply(destination, m, dst, e.logger); err != nil {
		return nil, err
	}

	resolveMissing(m, source.idField, destination.idField, src, dst)

	result := &Result{Map: m, Source: src, Destination: dst}

	e.logger.Info("Reconciliation completed",
		zap.Int("entries", len(m)),
		zap.Int("source_created", len(src.Created)),
		zap.Int("source_updated", len(src.Updated)),
		zap.Int("source_deleted", len(src.Deleted)),
		zap.Int("destination_created", len(dst.Created)),
		zap.Int("destination_updated", len(dst.Updated)),
		zap.Int("destination_deleted", len(dst.Deleted)),
		zap.Strings("source_missing", src.Missing),
		zap.Strings("destination_missing", dst.Missing))

	if e.store == nil {
		return result, nil
	}

	if err := e.store.Save(ctx, m); err != nil {
		e.logger.Error("Failed to persist correlation map",
			zap.String("location", e.store.Location()),
			zap.Error(err))
		return result, fmt.Errorf("save correlation map: %w", err)
	}
	Invalidate(e.store.Location())

	return result, nil
}

func (e *Engine) load(ctx context.Context) (Map, error) {
	if e.store == nil {
		return Map{}, nil
	}
	m, err := e.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load correlation map: %w", err)
	}
	if m == nil {
		m = Map{}
	}
	return m, nil
}

func validateSides(source, destination Side) error {
	if source.inspect == nil || destination.inspect == nil {
		return fmt.Errorf("%w: unbound side", ErrInvalidDefinition)
	}
	if source.idField == destination.idField {
		return fmt.Errorf("%w: both sides use ID field %q", ErrInvalidDefinition, source.idField)
	}
	return nil
}

// runState carries bookkeeping between the two passes of one run.
type runState struct {
	// pinned holds names an entry was renamed to during this run.
	pinned map[string]bool

	// claimed holds names the current pass matched a record to.
	claimed map[string]bool

	// protect holds names claimed by the previous pass. Entries under those
	// names are never moved.
	protect map[string]bool
}

// drift is a record whose identifier sits on a protected entry stored under
// a different name.
type drift struct {
	name  string
	value any
	key   string
}

// apply runs the single-side pass for side against m, recording into cs.
func (r *runState) apply(side Side, m Map, cs *ChangeSet, logger *zap.Logger) error {
	idField := side.idField
	logger = logger.With(zap.String("side", side.label), zap.String("id_field", idField))

	handled := make(map[string]bool, len(m))
	for name := range m {
		handled[name] = true
	}
	index := buildIndex(m, idField)
	seen := make(map[string]bool, side.count)
	drifted := make(map[string]drift)

	markUpdated := func(name string) {
		if !contains(cs.Updated, name) {
			cs.AddUpdated(name)
		}
	}

	for i := 0; i < side.count; i++ {
		name, value, err := side.inspect(i)
		if err != nil {
			return err
		}
		key := utils.CanonicalString(value)
		// Keys must survive a JSON round trip unchanged.
		name = strings.ToValidUTF8(name, "\uFFFD")

		if name == "" {
			cs.Unnamed++
			// Keep the entry the record is already correlated to, if any.
			if owner, ok := index[key]; ok {
				delete(handled, owner)
			}
			logger.Warn("Skipping record with empty correlation name", zap.Int("record", i))
			continue
		}

		if seen[name] {
			cs.AddDuplicated(name)
			logger.Warn("Duplicate correlation name", zap.String("name", name))
			continue
		}
		seen[name] = true

		entry, exists := m[name]
		switch {
		case exists && entry.Has(idField):
			stored := utils.CanonicalString(entry[idField])
			if stored != key {
				if d, ok := drifted[name]; ok && d.key == stored {
					// The record named exactly like the entry takes it over; the
					// drifted record falls back to an entry of its own.
					delete(drifted, name)
					if _, taken := m[d.name]; !taken {
						m[d.name] = Entry{idField: d.value}
						index[d.key] = d.name
						r.claimed[d.name] = true
						cs.AddCreated(d.name)
					}
				}
				if index[stored] == name {
					delete(index, stored)
				}
				entry[idField] = value
				index[key] = name
				markUpdated(name)
			}
			delete(handled, name)
			r.claimed[name] = true

		case exists:
			entry[idField] = value
			index[key] = name
			cs.AddCreated(name)
			delete(handled, name)
			r.claimed[name] = true

		default:
			old, renamed := index[key]
			if renamed && r.claimed[old] {
				// Another record of this side already owns the identifier.
				renamed = false
			}
			if renamed && r.protect[old] {
				// The entry keeps its name; this record drifted from it.
				delete(handled, old)
				r.claimed[old] = true
				drifted[old] = drift{name: name, value: value, key: key}
				if r.pinned[old] {
					markUpdated(old)
				}
				logger.Debug("Record name differs from its correlation name",
					zap.String("name", name),
					zap.String("correlation", old))
				continue
			}

			if renamed {
				m[name] = m[old]
				delete(m, old)
				delete(handled, old)
				index[key] = name
				r.pinned[name] = true
				cs.AddDeleted(old)
				cs.AddCreated(name)
				logger.Info("Correlation renamed", zap.String("from", old), zap.String("to", name))
			} else {
				m[name] = Entry{idField: value}
				index[key] = name
				cs.AddCreated(name)
			}
			delete(handled, name)
			r.claimed[name] = true
		}
	}

	for _, name := range sortedKeys(handled) {
		entry, ok := m[name]
		if !ok || !entry.Has(idField) {
			continue
		}
		delete(entry, idField)
		cs.AddDeleted(name)
	}

	return nil
}

// buildIndex maps each canonical identifier value under idField to the first
// name (in sorted order) storing it.
func buildIndex(m Map, idField string) map[string]string {
	index := make(map[string]string, len(m))
	for _, name := range m.Names() {
		value, ok := m[name][idField]
		if !ok {
			continue
		}
		key := utils.CanonicalString(value)
		if _, taken := index[key]; !taken {
			index[key] = name
		}
	}
	return index
}

// resolveMissing recomputes both missing lists from the final map and prunes
// entries that carry neither identifier. Running it twice gives the same lists.
func resolveMissing(m Map, sourceField, destinationField string, src, dst *ChangeSet) {
	for _, name := range m.Names() {
		entry := m[name]
		hasSource := entry.Has(sourceField)
		hasDestination := entry.Has(destinationField)

		switch {
		case !hasSource && !hasDestination:
			delete(m, name)
			src.RemoveMissing(name)
			dst.RemoveMissing(name)
		case hasSource && hasDestination:
			src.RemoveMissing(name)
			dst.RemoveMissing(name)
		case hasSource:
			dst.EnsureMissing(name)
			src.RemoveMissing(name)
		default:
			src.EnsureMissing(name)
			dst.RemoveMissing(name)
		}
	}
}

func sortedKeys(set map[string]bool) []string {
	m := make(Map, len(set))
	for name := range set {
		m[name] = nil
	}
	return m.Names()
}
