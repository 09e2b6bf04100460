package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/boards/internal/boards/domain"
	"github.com/stretchr/testify/require"
)

func TestDeriveCompletion(t *testing.T) {
	done := domain.Todo{IsCompleted: true}
	open := domain.Todo{}

	tests := []struct {
		name  string
		todos []domain.Todo
		want  bool
	}{
		{"no todos", nil, false},
		{"one open", []domain.Todo{open}, false},
		{"one done", []domain.Todo{done}, true},
		{"mixed", []domain.Todo{done, open, done}, false},
		{"all done", []domain.Todo{done, done, done}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.DeriveCompletion(tt.todos))
		})
	}
}
