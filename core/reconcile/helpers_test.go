package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type ucrmClient struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type xeroContact struct {
	ContactID string `json:"contactId"`
	Name      string `json:"name"`
}

func sourceDefinition(t *testing.T) *Definition[ucrmClient] {
	t.Helper()
	def, err := NewDefinition(DefinitionConfig[ucrmClient]{
		Namer:        NamerFunc[ucrmClient](func(c ucrmClient) string { return c.Name }),
		IDField:      "ucrmId",
		CompareField: "id",
		Compare:      func(c ucrmClient) any { return c.ID },
	})
	require.NoError(t, err)
	return def
}

func destinationDefinition(t *testing.T) *Definition[xeroContact] {
	t.Helper()
	def, err := NewDefinition(DefinitionConfig[xeroContact]{
		Namer:        NamerFunc[xeroContact](func(c xeroContact) string { return c.Name }),
		IDField:      "xeroId",
		CompareField: "contactId",
		Compare:      func(c xeroContact) any { return c.ContactID },
	})
	require.NoError(t, err)
	return def
}

// stubStore is an in-memory MapStore that can be told to fail.
type stubStore struct {
	m       Map
	loadErr error
	saveErr error
	loads   int
	saves   int
	where   string
}

func (s *stubStore) Load(_ context.Context) (Map, error) {
	s.loads++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.m.Clone(), nil
}

func (s *stubStore) Save(_ context.Context, m Map) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.m = m.Clone()
	return nil
}

func (s *stubStore) Location() string {
	if s.where == "" {
		return "stub"
	}
	return s.where
}

var errBoom = errors.New("boom")
