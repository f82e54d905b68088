//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips v through JSON so a test can tamper with the wire shape.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets or, when value is nil, deletes a key in a DtoMap.
// Dotted keys walk nested objects, e.g. "selections.2025-05-01".
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		path := strings.Split(key, ".")
		for _, p := range path[:len(path)-1] {
			next, ok := m[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				m[p] = next
			}
			m = next
		}
		last := path[len(path)-1]
		if value == nil {
			delete(m, last)
		} else {
			m[last] = value
		}
	}
}
