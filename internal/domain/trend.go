package domain

// TrendDirection classifica a variação de posição de uma janela
type TrendDirection string

const (
	TrendImproved  TrendDirection = "improved"
	TrendWorsened  TrendDirection = "worsened"
	TrendUnchanged TrendDirection = "unchanged"
	TrendNoData    TrendDirection = "no_data"
)

// Trend é a derivação de exibição de uma janela de tendência. Não é
// persistida; é recalculada a partir da baseline armazenada.
type Trend struct {
	PreviousPosition *int           `json:"previous_position"`
	Diff             *int           `json:"diff"`
	Direction        TrendDirection `json:"direction"`
	Symbol           string         `json:"symbol"`
	Color            string         `json:"color"`
}

// CalculateTrend deriva a tendência de exibição comparando a posição atual
// com a baseline da janela. Convenção de sinal: diff = baseline - atual,
// positivo significa melhora (posição numericamente menor é melhor).
func CalculateTrend(currentPosition int, baseline *int) Trend {
	trend := Trend{
		Direction: TrendNoData,
		Color:     "gray",
		Symbol:    "—",
	}

	if baseline == nil || *baseline <= 0 {
		return trend
	}

	diff := *baseline - currentPosition
	trend.PreviousPosition = baseline
	trend.Diff = &diff

	switch {
	case diff > 0:
		trend.Direction = TrendImproved
		trend.Color = "green"
		trend.Symbol = "▲"
	case diff < 0:
		trend.Direction = TrendWorsened
		trend.Color = "red"
		trend.Symbol = "▼"
	default:
		trend.Direction = TrendUnchanged
		trend.Color = "yellow"
		trend.Symbol = "●"
	}

	return trend
}
