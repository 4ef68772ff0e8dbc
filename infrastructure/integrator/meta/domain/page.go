package metadomain

import "encoding/json"

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// AdsPage é uma página da listagem /{account}/ads.
// Os anúncios ficam brutos porque os campos dependem de FIELDS.
type AdsPage struct {
	Data   []json.RawMessage `json:"data"`
	Paging Paging            `json:"paging"`
}

// HasNext indica se há uma próxima página
func (p *AdsPage) HasNext() bool {
	return p.Paging.Next != ""
}
