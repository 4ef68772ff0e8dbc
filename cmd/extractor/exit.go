package main

import (
	"errors"

	"github.com/vfg2006/meta-ads-extractor/internal/domain"
)

// Códigos de saída do processo
const (
	exitOK            = 0
	exitFailure       = 1
	exitConfiguration = 2
	exitRefresh       = 3
	exitFetch         = 4
	exitExhausted     = 5
)

// exitCode traduz o tipo do erro no código de saída.
// ErrRetriesExhausted é verificado antes de ErrFetch.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrConfiguration):
		return exitConfiguration
	case errors.Is(err, domain.ErrRefresh):
		return exitRefresh
	case errors.Is(err, domain.ErrRetriesExhausted):
		return exitExhausted
	case errors.Is(err, domain.ErrFetch):
		return exitFetch
	default:
		return exitFailure
	}
}
