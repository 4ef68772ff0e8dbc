package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-extractor/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ExtractionScheduler é o agendador exposto pela API de status
type ExtractionScheduler interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// GetExtractionStatus retorna o estado do agendador e da última execução
func GetExtractionStatus(scheduler ExtractionScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(scheduler.GetStatus()); err != nil {
			logrus.WithError(err).Error("Erro ao serializar status da extração")
		}
	}
}

// RunExtraction dispara uma extração manual
func RunExtraction(scheduler ExtractionScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !scheduler.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncRunning, "Extração já em andamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Extração iniciada",
		})
	}
}
