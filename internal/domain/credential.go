package domain

import (
	"errors"
	"strings"
	"time"
)

// RefreshedAtLayout é o formato de refreshed_at no armazenamento (horário local)
const RefreshedAtLayout = "2006-01-02 15:04:05"

// ErrNeverRefreshed indica que a credencial não tem data de renovação
var ErrNeverRefreshed = errors.New("refreshed_at is empty")

// Credential é o token de longa duração da Meta e o app que o emitiu
type Credential struct {
	AccessToken  string `json:"access_token"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RefreshedAt  string `json:"refreshed_at"`
}

// Validate garante que token, client_id e client_secret estão preenchidos
func (c *Credential) Validate() error {
	if strings.TrimSpace(c.AccessToken) == "" ||
		strings.TrimSpace(c.ClientID) == "" ||
		strings.TrimSpace(c.ClientSecret) == "" {
		return NewConfigurationError(CodeCredentialIncomplete, "access_token, client_id ou client_secret ausente no armazenamento de credencial")
	}
	return nil
}

// LastRefresh retorna o momento da última renovação.
// Retorna ErrNeverRefreshed quando vazio, ou o erro de parse quando inválido.
func (c *Credential) LastRefresh() (time.Time, error) {
	raw := strings.TrimSpace(c.RefreshedAt)
	if raw == "" {
		return time.Time{}, ErrNeverRefreshed
	}
	return time.ParseInLocation(RefreshedAtLayout, raw, time.Local)
}

// Refreshed devolve uma cópia com o novo token e a data de renovação
func (c *Credential) Refreshed(token string, at time.Time) *Credential {
	return &Credential{
		AccessToken:  token,
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RefreshedAt:  at.In(time.Local).Format(RefreshedAtLayout),
	}
}
