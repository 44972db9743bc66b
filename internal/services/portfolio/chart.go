package portfolio

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/foliolab/folio/internal/models"
)

// RenderChart renders a PNG bar chart of per-position gain/loss for an
// enriched portfolio. Gains draw green, losses red. Returns raw PNG bytes.
func (s *Service) RenderChart(positions []models.EnrichedPosition) ([]byte, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: no portfolio data provided", models.ErrValidation)
	}

	gainColor := drawing.ColorFromHex("16a34a")  // green-600
	lossColor := drawing.ColorFromHex("dc2626")  // red-600

	bars := make([]chart.Value, len(positions))
	for i, p := range positions {
		gain := p.GainValue()
		color := gainColor
		if gain < 0 {
			color = lossColor
		}
		bars[i] = chart.Value{
			Label: models.NormalizeTicker(p.Ticker),
			Value: gain,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
			},
		}
	}

	graph := chart.BarChart{
		Title:    "Gain / Loss by Position",
		Width:    900,
		Height:   400,
		BarWidth: 48,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
