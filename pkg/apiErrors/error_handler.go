package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro do servidor de status
const (
	// Erros de autenticação
	ErrMissingToken = "AUTH_001" // Cabeçalho Authorization ausente
	ErrInvalidToken = "AUTH_002" // Token inválido ou expirado
	ErrAuthDisabled = "AUTH_003" // Nenhum segredo configurado para validar tokens

	// Erros de execução
	ErrSyncRunning = "SYNC_001" // Extração já em andamento

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrNotFound       = "SRV_002" // Rota inexistente
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingToken:   http.StatusUnauthorized,
	ErrInvalidToken:   http.StatusUnauthorized,
	ErrAuthDisabled:   http.StatusForbidden,
	ErrSyncRunning:    http.StatusConflict,
	ErrInternalServer: http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP do código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
