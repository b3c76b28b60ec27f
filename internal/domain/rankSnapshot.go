package domain

import "time"

// TrendBaselines guarda as posições de referência pré-computadas de cada
// janela de tendência e o instante em que cada janela rolou pela última vez.
// Baseline nulo significa "sem dado" para a janela.
type TrendBaselines struct {
	Baseline24h   *int       `json:"baseline_24h"`
	Baseline7d    *int       `json:"baseline_7d"`
	Baseline30d   *int       `json:"baseline_30d"`
	Baseline24hAt *time.Time `json:"baseline_24h_at"`
	Baseline7dAt  *time.Time `json:"baseline_7d_at"`
	Baseline30dAt *time.Time `json:"baseline_30d_at"`
}

// RankSnapshot é uma observação persistida de posição. Existe exatamente um
// registro vivo por identidade de RankQuery (upsert por identidade).
type RankSnapshot struct {
	ID             string         `json:"id"`
	UserID         int            `json:"user_id"`
	Keyword        string         `json:"keyword"`
	FilteredDomain string         `json:"filtered_domain"`
	Device         Device         `json:"device"`
	SearchEngine   string         `json:"search_engine"`
	Location       string         `json:"location"`
	Position       int            `json:"position"`
	MatchedDomain  string         `json:"matched_domain"`
	Rating         *float64       `json:"rating"`
	Reviews        *int           `json:"reviews"`
	Trends         TrendBaselines `json:"trends"`
	ObservedAt     time.Time      `json:"observed_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Query reconstrói a identidade deste snapshot
func (s *RankSnapshot) Query() RankQuery {
	return RankQuery{
		UserID:         s.UserID,
		Keyword:        s.Keyword,
		FilteredDomain: s.FilteredDomain,
		Device:         s.Device,
		SearchEngine:   s.SearchEngine,
		Location:       s.Location,
	}
}

// RankResolution é o resultado de uma resolução de posição para uma
// identidade. Position 0 significa "não encontrado" na profundidade varrida.
type RankResolution struct {
	Position      int      `json:"position"`
	MatchedDomain string   `json:"matched_domain"`
	Rating        *float64 `json:"rating"`
	Reviews       *int     `json:"reviews"`
}

// Found indica se a resolução localizou o domínio alvo
func (r RankResolution) Found() bool {
	return r.Position > 0
}

// BaselineRoller decide as novas referências de tendência a partir do
// snapshot anterior (nil na primeira observação da identidade). É executado
// dentro da transação de upsert para não perder atualizações concorrentes.
type BaselineRoller func(prev *RankSnapshot) TrendBaselines
