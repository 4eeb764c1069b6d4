package reconcile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_Helpers(t *testing.T) {
	m := Map{
		"Acme Corp": Entry{"ucrmId": json.Number("7"), "xeroId": "G-1"},
		"Beta":      Entry{"ucrmId": json.Number("8")},
		"Gamma":     Entry{"xeroId": "G-3"},
	}

	assert.Equal(t, []string{"Acme Corp", "Beta", "Gamma"}, m.Names())

	name, ok := m.Lookup("ucrmId", 7)
	assert.True(t, ok)
	assert.Equal(t, "Acme Corp", name)

	_, ok = m.Lookup("ucrmId", "7")
	assert.False(t, ok, "string and number identifiers differ")

	counterpart, ok := m.Counterpart("ucrmId", 7, "xeroId")
	assert.True(t, ok)
	assert.Equal(t, "G-1", counterpart)

	_, ok = m.Counterpart("ucrmId", 8, "xeroId")
	assert.False(t, ok)

	assert.Equal(t, []string{"Beta"}, m.Pending("ucrmId", "xeroId"))
	assert.Equal(t, []string{"Gamma"}, m.Pending("xeroId", "ucrmId"))
	assert.Equal(t, []string{}, Map{}.Pending("ucrmId", "xeroId"))
}

func TestMap_Clone(t *testing.T) {
	m := Map{"A": Entry{"ucrmId": 1}}
	clone := m.Clone()
	clone["A"]["xeroId"] = "x"

	assert.False(t, m["A"].Has("xeroId"))
	assert.True(t, clone["A"].Has("xeroId"))
}
