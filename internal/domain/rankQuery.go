package domain

import "strings"

// Device representa o dispositivo simulado na consulta ao buscador
type Device string

const (
	DeviceDesktop     Device = "desktop"
	DeviceMobile      Device = "mobile"
	DeviceGoogleLocal Device = "google_local"
)

// Buscadores suportados no campo SearchEngine
const (
	SearchEngineGoogle      = "google"
	SearchEngineGoogleLocal = "google_local"
	SearchEngineGoogleAI    = "google_ai"
)

// RankQuery é a identidade de um ranking monitorado. A tupla completa
// (UserID, Keyword, FilteredDomain, Device, Location) é a chave natural
// de deduplicação e de busca do snapshot vigente.
type RankQuery struct {
	UserID         int    `json:"user_id"`
	Keyword        string `json:"keyword"`
	FilteredDomain string `json:"filtered_domain"`
	Device         Device `json:"device"`
	SearchEngine   string `json:"search_engine"`
	Location       string `json:"location"`
}

// NormalizeLocation reduz localização ausente e string vazia ao mesmo valor
func NormalizeLocation(location string) string {
	return strings.TrimSpace(location)
}

// EffectiveKeyword retorna o termo enviado ao buscador, sufixado com a
// localização quando informada
func (q RankQuery) EffectiveKeyword() string {
	if q.Location == "" {
		return q.Keyword
	}
	return q.Keyword + " " + q.Location
}

// HasLocation indica se a consulta possui localização
func (q RankQuery) HasLocation() bool {
	return q.Location != ""
}

// TrackedQuery é uma identidade distinta de consulta agregada entre todos os
// usuários que monitoram a mesma combinação
type TrackedQuery struct {
	Keyword        string
	FilteredDomain string
	Device         Device
	SearchEngine   string
	Location       string
	UserIDs        []int
}

// Query materializa a RankQuery da identidade sem usuário. A resolução no
// buscador não depende do usuário, então o lote resolve com esta forma e
// replica o resultado com QueryFor.
func (t TrackedQuery) Query() RankQuery {
	return t.QueryFor(0)
}

// QueryFor materializa a RankQuery de um usuário específico desta identidade
func (t TrackedQuery) QueryFor(userID int) RankQuery {
	return RankQuery{
		UserID:         userID,
		Keyword:        t.Keyword,
		FilteredDomain: t.FilteredDomain,
		Device:         t.Device,
		SearchEngine:   t.SearchEngine,
		Location:       t.Location,
	}
}
