package domain

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// AdRowColumns é a ordem das colunas do arquivo de saída
var AdRowColumns = []string{
	"id",
	"created_time",
	"updated_time",
	"name",
	"call_to_action_types",
	"website_urls",
	"effective_status",
	"account_id",
}

const listSeparator = ", "

// RawAd é um anúncio como retornado pela API, marcado com a conta de origem
type RawAd struct {
	AccountID string
	Payload   json.RawMessage
}

// ID retorna o id do anúncio, ou "N/A" quando ausente
func (a RawAd) ID() string {
	id := gjson.GetBytes(a.Payload, "id")
	if !id.Exists() {
		return "N/A"
	}
	return id.String()
}

// AdRow é a linha normalizada do arquivo de saída
type AdRow struct {
	ID                string
	CreatedTime       string
	UpdatedTime       string
	Name              string
	CallToActionTypes string
	WebsiteURLs       string
	EffectiveStatus   string
	AccountID         string
}

// Values retorna os campos na ordem de AdRowColumns
func (r AdRow) Values() []string {
	return []string{
		r.ID,
		r.CreatedTime,
		r.UpdatedTime,
		r.Name,
		r.CallToActionTypes,
		r.WebsiteURLs,
		r.EffectiveStatus,
		r.AccountID,
	}
}

// NormalizeAd achata um anúncio bruto na linha de saída
func NormalizeAd(ad RawAd) AdRow {
	payload := gjson.ParseBytes(ad.Payload)
	spec := payload.Get("creative.asset_feed_spec")

	ctaTypes := make([]string, 0)
	spec.Get("call_to_action_types").ForEach(func(_, v gjson.Result) bool {
		ctaTypes = append(ctaTypes, v.String())
		return true
	})

	websiteURLs := make([]string, 0)
	spec.Get("link_urls").ForEach(func(_, link gjson.Result) bool {
		if u := link.Get("website_url"); u.Exists() {
			websiteURLs = append(websiteURLs, u.String())
		}
		return true
	})

	return AdRow{
		ID:                payload.Get("id").String(),
		CreatedTime:       payload.Get("created_time").String(),
		UpdatedTime:       payload.Get("updated_time").String(),
		Name:              payload.Get("name").String(),
		CallToActionTypes: strings.Join(ctaTypes, listSeparator),
		WebsiteURLs:       strings.Join(websiteURLs, listSeparator),
		EffectiveStatus:   payload.Get("effective_status").String(),
		AccountID:         ad.AccountID,
	}
}

// NormalizeAds normaliza todos os anúncios preservando a ordem
func NormalizeAds(ads []RawAd) []AdRow {
	rows := make([]AdRow, 0, len(ads))
	for _, ad := range ads {
		rows = append(rows, NormalizeAd(ad))
	}
	return rows
}
