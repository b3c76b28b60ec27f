package domain

import "time"

// SearchRequest é o corpo da busca interativa de palavras-chave. Keywords
// aceita múltiplos termos separados por vírgula ou quebra de linha.
type SearchRequest struct {
	Keywords     string   `json:"keywords"`
	Domain       string   `json:"domain"`
	Location     string   `json:"location"`
	SearchEngine string   `json:"search_engine"`
	Devices      []Device `json:"devices"`
}

// SearchResultEntry é um resultado encontrado e persistido na busca interativa
type SearchResultEntry struct {
	Keyword  string   `json:"keyword"`
	Domain   string   `json:"domain"`
	Position int      `json:"position"`
	Device   Device   `json:"device"`
	Location string   `json:"location,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Reviews  *int     `json:"reviews,omitempty"`
}

type SearchResponse struct {
	Results      []SearchResultEntry `json:"results"`
	KeywordsUsed int                 `json:"keywords_used"`
}

// AISearchRequest é o corpo da busca no modo IA do Google
type AISearchRequest struct {
	Keywords string `json:"keywords"`
	Business string `json:"business"`
	Domain   string `json:"domain"`
}

// AISearchResult resume a análise da resposta de IA para um negócio/domínio
type AISearchResult struct {
	Keywords         string `json:"keywords"`
	Domain           string `json:"domain"`
	Business         string `json:"business"`
	DomainPosition   *int   `json:"domain_position"`
	BusinessPosition *int   `json:"business_position"`
	FinalPosition    *int   `json:"final_position"`
}

// StatRow é uma linha do painel de estatísticas com as tendências derivadas
type StatRow struct {
	SnapshotID   string    `json:"snapshot_id"`
	Keyword      string    `json:"keyword"`
	Domain       string    `json:"domain"`
	Position     int       `json:"position"`
	SearchEngine string    `json:"search_engine"`
	Device       Device    `json:"device"`
	Location     string    `json:"location,omitempty"`
	Rating       *float64  `json:"rating,omitempty"`
	Reviews      *int      `json:"reviews,omitempty"`
	Trend24h     Trend     `json:"trend_24h"`
	Trend7d      Trend     `json:"trend_7d"`
	Trend30d     Trend     `json:"trend_30d"`
	ObservedAt   time.Time `json:"observed_at"`
}

// DomainImprovement agrega a melhora absoluta de 24h de um domínio
type DomainImprovement struct {
	Domain          string `json:"domain"`
	AbsoluteGain    int    `json:"absolute_gain"`
	TrackedKeywords int    `json:"tracked_keywords"`
}

type StatsResponse struct {
	TotalDomains    int                 `json:"total_domains"`
	TotalKeywords   int                 `json:"total_keywords"`
	AveragePosition float64             `json:"average_position"`
	Improved24h     int                 `json:"improved_24h"`
	Worsened24h     int                 `json:"worsened_24h"`
	Detailed        []StatRow           `json:"detailed"`
	TopDomains      []DomainImprovement `json:"top_domains"`
	LastUpdate      time.Time           `json:"last_update"`
}

// HistoryOptions lista os valores distintos disponíveis para filtros do painel
type HistoryOptions struct {
	Domains  []string `json:"domains"`
	Keywords []string `json:"keywords"`
}
