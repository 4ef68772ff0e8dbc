package main

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "Sem erro", err: nil, expected: exitOK},
		{name: "Configuração", err: domain.NewConfigurationError(domain.CodeMissingVariable, "variável FIELDS ausente"), expected: exitConfiguration},
		{name: "Renovação", err: domain.NewRefreshError(domain.CodeRefreshExhausted, "500", nil), expected: exitRefresh},
		{
			name:     "Renovação embrulhada",
			err:      pkgerrors.Wrap(domain.NewRefreshError(domain.CodeRefreshRejected, "400", nil), "falha ao renovar token"),
			expected: exitRefresh,
		},
		{name: "Paginação", err: domain.NewFetchError(domain.CodeFetchRejected, "act_1", "400", nil), expected: exitFetch},
		{
			name:     "Tentativas esgotadas",
			err:      pkgerrors.Wrapf(domain.NewRetriesExhaustedError("act_1", 5, "{}"), "conta %s", "act_1"),
			expected: exitExhausted,
		},
		{name: "Cancelado", err: context.Canceled, expected: exitFailure},
		{name: "Desconhecido", err: errors.New("disk full"), expected: exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCode(tt.err))
		})
	}
}
