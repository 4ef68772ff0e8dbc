package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
)

const (
	// AccountPrefix é o prefixo exigido pela Graph API para contas de anúncio
	AccountPrefix = "act_"

	// LastNDaysPlaceholder é substituído pelo timestamp de corte calculado com DAYS_BACK
	LastNDaysPlaceholder = "__LAST_N_DAYS__"

	secondsPerDay = 86400
)

// ParseAccountIDs separa a lista por vírgulas, descarta entradas sem o prefixo
// act_ e remove duplicadas mantendo a ordem da primeira ocorrência.
func ParseAccountIDs(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.NewConfigurationError(domain.CodeMissingVariable, "variável ACCOUNT_IDS ausente")
	}

	seen := make(map[string]struct{})
	accounts := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		acc := strings.TrimSpace(part)
		if !strings.HasPrefix(acc, AccountPrefix) {
			if acc != "" {
				logrus.WithField("account_id", acc).Warn("Conta ignorada: sem o prefixo act_")
			}
			continue
		}
		if _, ok := seen[acc]; ok {
			continue
		}
		seen[acc] = struct{}{}
		accounts = append(accounts, acc)
	}

	if len(accounts) == 0 {
		return nil, domain.NewConfigurationError(domain.CodeInvalidVariable, "nenhuma conta válida com prefixo act_ em ACCOUNT_IDS")
	}

	logrus.WithField("accounts", accounts).Info("Contas carregadas de ACCOUNT_IDS")

	return accounts, nil
}

// BuildFiltering valida o JSON de FILTERING e troca cada value igual a
// __LAST_N_DAYS__ pelo timestamp Unix de now menos daysBack dias.
// FILTERING vazio retorna "" (sem filtro). O resultado é JSON compacto.
func BuildFiltering(raw, daysBack string, now time.Time) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		logrus.Info("FILTERING não informado, nenhum filtro será aplicado")
		return "", nil
	}

	if !gjson.Valid(raw) {
		return "", domain.NewConfigurationError(domain.CodeInvalidVariable, "FILTERING não é um JSON válido")
	}

	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return "", domain.NewConfigurationError(domain.CodeInvalidVariable, "FILTERING não é um array JSON")
	}

	out := raw
	var err error
	for i, filter := range parsed.Array() {
		value := filter.Get("value")
		if value.Type != gjson.String || value.Str != LastNDaysPlaceholder {
			continue
		}

		days, convErr := parseDaysBack(daysBack)
		if convErr != nil {
			return "", convErr
		}

		cutoff := now.Unix() - int64(days)*secondsPerDay
		out, err = sjson.Set(out, fmt.Sprintf("%d.value", i), cutoff)
		if err != nil {
			return "", domain.NewConfigurationError(domain.CodeInvalidVariable, fmt.Sprintf("erro ao substituir %s: %v", LastNDaysPlaceholder, err))
		}

		logrus.WithFields(logrus.Fields{
			"days_back": days,
			"cutoff":    cutoff,
		}).Infof("%s substituído pelo timestamp de corte", LastNDaysPlaceholder)
	}

	filtering := string(pretty.Ugly([]byte(out)))
	logrus.WithField("filtering", filtering).Info("Usando FILTERING")

	return filtering, nil
}

func parseDaysBack(daysBack string) (int, error) {
	daysBack = strings.TrimSpace(daysBack)
	if daysBack == "" || strings.TrimLeft(daysBack, "0123456789") != "" {
		return 0, domain.NewConfigurationError(domain.CodeInvalidVariable, "DAYS_BACK ausente ou inválido (deve ser um inteiro)")
	}

	days, err := strconv.Atoi(daysBack)
	if err != nil {
		return 0, domain.NewConfigurationError(domain.CodeInvalidVariable, "DAYS_BACK fora do intervalo")
	}
	return days, nil
}

// OutputPath junta o diretório de saída e o nome do arquivo, garantindo a extensão .csv
func OutputPath(dir, file string) (string, error) {
	file = strings.TrimSpace(file)
	if file == "" {
		return "", domain.NewConfigurationError(domain.CodeMissingVariable, "variável OUTPUT_FILE ausente")
	}
	if !strings.HasSuffix(file, ".csv") {
		file += ".csv"
	}
	return filepath.Join(dir, file), nil
}

func requireVariable(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewConfigurationError(domain.CodeMissingVariable, fmt.Sprintf("variável %s ausente", name))
	}
	return nil
}

func invalidVariable(name, details string) error {
	return domain.NewConfigurationError(domain.CodeInvalidVariable, fmt.Sprintf("%s inválida: %s", name, details))
}
