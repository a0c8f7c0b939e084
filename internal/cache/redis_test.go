package cache

import (
	"context"
	"testing"
)

func TestNamespaceKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "simple key",
			key:      "test",
			expected: "pulse:test",
		},
		{
			name:     "resolution key",
			key:      "resolve:twitter:jack",
			expected: "pulse:resolve:twitter:jack",
		},
		{
			name:     "empty key",
			key:      "",
			expected: "pulse:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NamespaceKey(tt.key); got != tt.expected {
				t.Errorf("NamespaceKey(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestDisabledCache(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	if _, err := c.GetResolvedID(ctx, "twitter", "jack"); err != ErrCacheDisabled {
		t.Errorf("GetResolvedID on nil cache = %v, want ErrCacheDisabled", err)
	}
	if err := c.SetResolvedID(ctx, "twitter", "jack", "12"); err != ErrCacheDisabled {
		t.Errorf("SetResolvedID on nil cache = %v, want ErrCacheDisabled", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil cache should be a no-op, got %v", err)
	}
}
