package domain

import (
	"errors"
	"fmt"
)

// Tipos de falha de uma extração. Todos são fatais para a execução.
var (
	ErrConfiguration    = errors.New("configuration error")
	ErrRefresh          = errors.New("token refresh error")
	ErrFetch            = errors.New("fetch error")
	ErrRetriesExhausted = errors.New("retries exhausted")
)

// Códigos de erro para operadores
const (
	// Configuração e armazenamento de credencial
	CodeMissingVariable      = "CFG_001" // Variável obrigatória ausente
	CodeInvalidVariable      = "CFG_002" // Variável com formato inválido
	CodeCredentialMissing    = "CFG_003" // Armazenamento de credencial ausente
	CodeCredentialEmpty      = "CFG_004" // Armazenamento de credencial sem linha de dados
	CodeCredentialIncomplete = "CFG_005" // Token, client_id ou client_secret em branco

	// Renovação de token
	CodeRefreshRejected  = "REFRESH_001" // Resposta não recuperável da API
	CodeRefreshExhausted = "REFRESH_002" // Erro 500 em todas as tentativas
	CodeRefreshPersist   = "REFRESH_003" // Token novo não pôde ser salvo

	// Paginação de anúncios
	CodeFetchRejected  = "FETCH_001" // Resposta não recuperável da API
	CodeFetchExhausted = "FETCH_002" // Limite da API em todas as tentativas
	CodeFetchDecode    = "FETCH_003" // Corpo da resposta inválido
	CodeFetchTransport = "FETCH_004" // Falha de rede
)

// ExtractionError é um erro com contexto adicional da extração
type ExtractionError struct {
	Err       error  // Tipo do erro (ErrConfiguration, ErrRefresh, ...)
	Code      string // Código de erro para o operador
	AccountID string // Conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais, inclusive o corpo da resposta
	Cause     error  // Erro subjacente (quando houver)
}

// Error implementa a interface error
func (e *ExtractionError) Error() string {
	msg := e.Err.Error()
	if e.Code != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Code)
	}
	if e.AccountID != "" {
		msg = fmt.Sprintf("%s account=%s", msg, e.AccountID)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap permite que errors.Is encontre tanto o tipo quanto a causa
func (e *ExtractionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewConfigurationError cria um erro de configuração
func NewConfigurationError(code, details string) *ExtractionError {
	return &ExtractionError{Err: ErrConfiguration, Code: code, Details: details}
}

// NewRefreshError cria um erro de renovação de token
func NewRefreshError(code, details string, cause error) *ExtractionError {
	return &ExtractionError{Err: ErrRefresh, Code: code, Details: details, Cause: cause}
}

// NewFetchError cria um erro de paginação para uma conta
func NewFetchError(code, accountID, details string, cause error) *ExtractionError {
	return &ExtractionError{Err: ErrFetch, Code: code, AccountID: accountID, Details: details, Cause: cause}
}

// NewRetriesExhaustedError sinaliza que o limite transitório persistiu em todas as tentativas
func NewRetriesExhaustedError(accountID string, attempts int, lastBody string) *ExtractionError {
	return &ExtractionError{
		Err:       ErrRetriesExhausted,
		Code:      CodeFetchExhausted,
		AccountID: accountID,
		Details:   fmt.Sprintf("%d tentativas, última resposta: %s", attempts, lastBody),
	}
}
