package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldTraceRequest(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/healthz", want: false},
		{path: " /HEALTHZ ", want: false},
		{path: "/readyz", want: false},
		{path: "/openapi.yaml", want: false},
		{path: "/docs", want: true},
		{path: "/v1/tournaments/nationals-2026/schedule", want: true},
		{path: "/v1/console/matches/4/score", want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shouldTraceRequest(tt.path), "path %q", tt.path)
	}
}
