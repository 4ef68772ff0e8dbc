package credentialing

import (
	"errors"
	"math"
	"time"

	"github.com/vfg2006/meta-ads-extractor/internal/domain"
	"github.com/vfg2006/meta-ads-extractor/pkg/log"
)

type Reason string

const (
	ReasonFresh            Reason = "fresh"
	ReasonExpired          Reason = "expired"
	ReasonNeverRefreshed   Reason = "never_refreshed"
	ReasonInvalidTimestamp Reason = "invalid_timestamp"
	ReasonForced           Reason = "forced"
)

// Decision diz se o token deve ser renovado nesta execução
type Decision struct {
	Refresh       bool
	Reason        Reason
	AgeDays       int
	RemainingDays int
}

// Decide aplica a regra de idade: renova quando a idade em dias completos
// chega a maxAgeDays. Data ausente ou inválida também renova, e force
// renova sempre.
func Decide(cred *domain.Credential, now time.Time, force bool, maxAgeDays int) Decision {
	logger := log.L.WithField("max_age_days", maxAgeDays)
	decision := Decision{Refresh: true}

	lastRefresh, err := cred.LastRefresh()
	switch {
	case errors.Is(err, domain.ErrNeverRefreshed):
		decision.Reason = ReasonNeverRefreshed
		logger.Warn("refreshed_at vazio: token nunca foi renovado e será renovado agora")
	case err != nil:
		decision.Reason = ReasonInvalidTimestamp
		logger.WithField("refreshed_at", cred.RefreshedAt).Warn("refreshed_at inválido: token será renovado")
	default:
		decision.AgeDays = int(math.Floor(now.Sub(lastRefresh).Hours() / 24))
		decision.RemainingDays = max(0, maxAgeDays-decision.AgeDays)
		decision.Refresh = decision.AgeDays >= maxAgeDays
		decision.Reason = ReasonFresh
		if decision.Refresh {
			decision.Reason = ReasonExpired
		}
		logger.WithFields(log.Fields{
			"age_days":       decision.AgeDays,
			"remaining_days": decision.RemainingDays,
		}).Infof("Idade do token: %d dias, faltam %d dias para renovar", decision.AgeDays, decision.RemainingDays)
	}

	if force {
		decision.Refresh = true
		decision.Reason = ReasonForced
		logger.Info("FORCE_REFRESH ativo: token será renovado independente da idade")
	}

	return decision
}
