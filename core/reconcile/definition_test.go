package reconcile

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unrelated struct{}

func TestNewDefinition(t *testing.T) {
	namer := NamerFunc[record](func(r record) string { return r.Label() })

	tests := []struct {
		name      string
		cfg       DefinitionConfig[record]
		expectErr error
	}{
		{
			name:      "interface without record type",
			cfg:       DefinitionConfig[record]{Namer: namer, IDField: "ucrmId"},
			expectErr: ErrUnresolvableDefinition,
		},
		{
			name:      "record type is an interface",
			cfg:       DefinitionConfig[record]{RecordType: reflect.TypeFor[record](), Namer: namer, IDField: "ucrmId"},
			expectErr: ErrUnresolvableDefinition,
		},
		{
			name:      "record type does not implement",
			cfg:       DefinitionConfig[record]{RecordType: reflect.TypeOf(unrelated{}), Namer: namer, IDField: "ucrmId"},
			expectErr: ErrUnresolvableDefinition,
		},
		{
			name:      "missing namer",
			cfg:       DefinitionConfig[record]{RecordType: reflect.TypeOf(ucrmClient{}), IDField: "ucrmId"},
			expectErr: ErrInvalidDefinition,
		},
		{
			name:      "missing id field",
			cfg:       DefinitionConfig[record]{RecordType: reflect.TypeOf(ucrmClient{}), Namer: namer},
			expectErr: ErrInvalidDefinition,
		},
		{
			name:      "compare field without accessor",
			cfg:       DefinitionConfig[record]{RecordType: reflect.TypeOf(ucrmClient{}), Namer: namer, IDField: "ucrmId", CompareField: "id"},
			expectErr: ErrMissingAccessor,
		},
		{
			name: "valid",
			cfg:  DefinitionConfig[record]{RecordType: reflect.TypeOf(ucrmClient{}), Namer: namer, IDField: "ucrmId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := NewDefinition(tt.cfg)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, def)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, reflect.TypeOf(ucrmClient{}), def.RecordType())
		})
	}
}

func TestDefinition_Accessors(t *testing.T) {
	def := sourceDefinition(t)

	assert.Equal(t, reflect.TypeOf(ucrmClient{}), def.RecordType())
	assert.Equal(t, "ucrmId", def.IDField())
	assert.Equal(t, "id", def.CompareField())
	assert.Equal(t, "Jane Doe", def.GenerateName(ucrmClient{ID: 1, Name: "Jane Doe"}))
}

func TestBind(t *testing.T) {
	side := Bind("source", sourceDefinition(t), []ucrmClient{{ID: 4, Name: "Ann"}})

	assert.Equal(t, "ucrmId", side.IDField())
	assert.Equal(t, 1, side.Len())

	name, value, err := side.inspect(0)
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)
	assert.Equal(t, json.Number("4"), value)
}
