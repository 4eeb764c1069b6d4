package reconcile

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mvqn/ucrm-plugin-xero/core/utils"
)

var (
	// ErrUnresolvableDefinition is returned when a definition's record type
	// cannot be resolved to a concrete type.
	ErrUnresolvableDefinition = errors.New("unresolvable record type")

	// ErrInvalidDefinition is returned when a definition lacks a namer or an ID field.
	ErrInvalidDefinition = errors.New("invalid correlation definition")

	// ErrMissingAccessor is returned when a compare field has no accessor.
	ErrMissingAccessor = errors.New("missing accessor for compare field")

	// ErrTypeMismatch is returned when a record's runtime type differs from
	// the type its definition declares.
	ErrTypeMismatch = errors.New("record type mismatch")
)

// Namer derives the correlation name of one record. Implementations must be
// pure: the same record always yields the same name.
type Namer[T any] interface {
	Name(record T) string
}

// NamerFunc adapts a plain function to Namer.
type NamerFunc[T any] func(record T) string

// Name calls f(record).
func (f NamerFunc[T]) Name(record T) string {
	return f(record)
}

// Accessor reads the compare field's value from a record.
type Accessor[T any] func(record T) any

// DefinitionConfig describes how one side is correlated.
type DefinitionConfig[T any] struct {
	// RecordType is the concrete runtime type of every record. Optional when
	// T itself is concrete; required when T is an interface.
	RecordType reflect.Type

	// Namer derives the correlation name.
	Namer Namer[T]

	// IDField is the entry field that holds this side's identifier (e.g. "ucrmId").
	IDField string

	// CompareField names the record field whose value is stored under IDField.
	// Empty means the whole record, flattened to JSON form, is stored.
	CompareField string

	// Compare reads CompareField from a record. Required when CompareField is set.
	Compare Accessor[T]
}

// Definition describes one side of a reconciliation. It is immutable.
type Definition[T any] struct {
	recordType   reflect.Type
	namer        Namer[T]
	idField      string
	compareField string
	compare      Accessor[T]
}

// NewDefinition validates cfg and returns the definition.
func NewDefinition[T any](cfg DefinitionConfig[T]) (*Definition[T], error) {
	declared := reflect.TypeFor[T]()

	recordType := cfg.RecordType
	if recordType == nil {
		recordType = declared
	}
	if recordType.Kind() == reflect.Interface {
		return nil, fmt.Errorf("%w: %s is not a concrete type", ErrUnresolvableDefinition, recordType)
	}
	if !recordType.AssignableTo(declared) {
		return nil, fmt.Errorf("%w: %s cannot be used as %s", ErrUnresolvableDefinition, recordType, declared)
	}

	if cfg.Namer == nil {
		return nil, fmt.Errorf("%w: no namer for %s", ErrInvalidDefinition, recordType)
	}
	if cfg.IDField == "" {
		return nil, fmt.Errorf("%w: empty ID field for %s", ErrInvalidDefinition, recordType)
	}
	if cfg.CompareField != "" && cfg.Compare == nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrMissingAccessor, recordType, cfg.CompareField)
	}

	return &Definition[T]{
		recordType:   recordType,
		namer:        cfg.Namer,
		idField:      cfg.IDField,
		compareField: cfg.CompareField,
		compare:      cfg.Compare,
	}, nil
}

// GenerateName derives the correlation name of record.
func (d *Definition[T]) GenerateName(record T) string {
	return d.namer.Name(record)
}

// RecordType returns the concrete type every record must have.
func (d *Definition[T]) RecordType() reflect.Type {
	return d.recordType
}

// IDField returns the entry field holding this side's identifier.
func (d *Definition[T]) IDField() string {
	return d.idField
}

// CompareField returns the record field stored under IDField, or "" for the whole record.
func (d *Definition[T]) CompareField() string {
	return d.compareField
}

// value returns the JSON-normalized value stored under IDField for record.
func (d *Definition[T]) value(record T) (any, error) {
	if actual := reflect.TypeOf(any(record)); actual != d.recordType {
		return nil, fmt.Errorf("%w: got %v, want %s", ErrTypeMismatch, actual, d.recordType)
	}

	var raw any = record
	if d.compareField != "" {
		raw = d.compare(record)
	}

	value, err := utils.ToJSONValue(raw)
	if err != nil {
		return nil, fmt.Errorf("field %q of %s: %w", d.compareField, d.recordType, err)
	}
	return value, nil
}

// Side is one side's records bound to their definition, ready for the engine.
type Side struct {
	label   string
	idField string
	count   int
	inspect func(i int) (name string, value any, err error)
}

// Bind pairs records with def. label names the side in logs ("source", "destination").
func Bind[T any](label string, def *Definition[T], records []T) Side {
	return Side{
		label:   label,
		idField: def.idField,
		count:   len(records),
		inspect: func(i int) (string, any, error) {
			value, err := def.value(records[i])
			if err != nil {
				return "", nil, fmt.Errorf("%s record %d: %w", label, i, err)
			}
			return def.GenerateName(records[i]), value, nil
		},
	}
}

// IDField returns the entry field this side writes.
func (s Side) IDField() string {
	return s.idField
}

// Len returns the number of bound records.
func (s Side) Len() int {
	return s.count
}
