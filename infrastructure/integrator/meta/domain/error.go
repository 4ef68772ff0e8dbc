package metadomain

import "strings"

// Códigos da Graph API que indicam limite temporário ou inconsistência do lado da Meta
const (
	CodeAdAccountRateLimit = 80004   // Muitas chamadas para a conta de anúncio
	CodeUserRequestLimit   = 17      // Limite de requisições do usuário
	SubcodeAsyncNotReady   = 2446079 // Dados ainda não consistentes, tente novamente
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTransient indica um erro de limite que passa sozinho após uma espera.
// A Meta às vezes só informa o código 80004 no texto da mensagem, como "(#80004)".
func (e *ErrorResponse) IsTransient() bool {
	return e.Error.Code == CodeAdAccountRateLimit ||
		e.Error.Code == CodeUserRequestLimit ||
		e.Error.ErrorSubcode == SubcodeAsyncNotReady ||
		strings.Contains(e.Error.Message, "#80004")
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 é "token inválido/expirado"; 460, 463 e 467 são subcódigos de sessão
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}
