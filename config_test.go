package lrumap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "default is valid",
			cfg:  DefaultConfig(),
		},
		{
			name: "all policies on",
			cfg: Config{
				Capacity:    4,
				Locking:     true,
				Timestamps:  true,
				HitCounting: true,
				Events:      "all",
			},
		},
		{
			name: "empty events means none",
			cfg:  Config{Capacity: 1},
		},
		{
			name:    "zero capacity",
			cfg:     Config{Capacity: 0},
			wantErr: "capacity must be at least 1",
		},
		{
			name:    "negative capacity",
			cfg:     Config{Capacity: -5},
			wantErr: "capacity must be at least 1",
		},
		{
			name:    "unknown event mode",
			cfg:     Config{Capacity: 1, Events: "verbose"},
			wantErr: `unknown event mode "verbose"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	m, err := NewFromConfig[string, int](Config{
		Capacity:    2,
		Timestamps:  true,
		HitCounting: true,
	})
	require.NoError(t, err)

	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("c", 3)

	assert.Equal(t, 2, m.Size())
	assert.False(t, m.Exists("a"))
	assert.True(t, m.Valid())

	require.NotNil(t, m.Find("b"))
	e := m.order.Front().Value.(*entry[string, int])
	assert.Equal(t, int64(1), e.hits)
	assert.Positive(t, e.accessMicros)
}

func TestNewFromConfigInvalid(t *testing.T) {
	_, err := NewFromConfig[string, int](Config{Capacity: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lrumap: invalid config")
}

func TestNewFromConfigEvents(t *testing.T) {
	rec := &recordEmitter{}
	m, err := NewFromConfig[string, int](
		Config{Capacity: 1, Events: "overflow"},
		WithEventLog[string, int](EventsOverflow, rec),
	)
	require.NoError(t, err)

	m.Insert("a", 1)
	m.Insert("b", 2)

	require.Len(t, rec.events, 1)
	assert.Equal(t, "overflow", rec.events[0])
}

func TestConfigJSONRoundTrip(t *testing.T) {
	in := Config{Capacity: 16, Locking: true, Events: "overflow"}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"capacity": 16,
		"locking": true,
		"timestamps": false,
		"hit_counting": false,
		"events": "overflow"
	}`, string(raw))

	var out Config
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}
