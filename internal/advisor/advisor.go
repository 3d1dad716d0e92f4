// Package advisor turns analytics results into operator-facing guidance.
// The rule-based message always works; an OpenAI-backed enrichment kicks in
// when an API key is configured and falls back silently on any failure.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"agridash/internal/analytics"
	"agridash/internal/logger"
)

// Advisor produces the dashboard insight message and the report briefing
type Advisor struct {
	llm *openAIClient
	log *logger.Logger
}

// New builds an Advisor. An empty API key disables LLM enrichment.
func New(apiKey, model string) *Advisor {
	a := &Advisor{
		log: logger.GetGlobalLogger().WithComponent("advisor"),
	}
	if apiKey != "" {
		a.llm = newOpenAIClient(apiKey, model)
	}
	return a
}

// AnomalousFields extracts the names of flagged fields, in input order
func AnomalousFields(flags []analytics.AnomalyFlag) []string {
	var fields []string
	for _, f := range flags {
		if f.Anomalous {
			fields = append(fields, f.Field)
		}
	}
	return fields
}

// RuleMessage is the deterministic insight line shown on the dashboard
func RuleMessage(flags []analytics.AnomalyFlag) string {
	if fields := AnomalousFields(flags); len(fields) > 0 {
		return fmt.Sprintf("⚠️ Anomaly detected in %s. Check sensors/equipment.", strings.Join(fields, ", "))
	}
	return "✅ All fields operating normally. Optimal irrigation schedule."
}

// Recommendation returns the insight message, enriched by the LLM when
// available. Enrichment failures degrade to the rule-based message.
func (a *Advisor) Recommendation(ctx context.Context, flags []analytics.AnomalyFlag) string {
	base := RuleMessage(flags)
	if a.llm == nil {
		return base
	}

	enriched, err := a.llm.Advise(ctx, AnomalousFields(flags))
	if err != nil {
		a.log.Warn("LLM advisory failed, using rule-based message", map[string]interface{}{
			"error": err.Error(),
		})
		return base
	}
	return enriched
}

// Briefing renders a markdown situation summary for the report page
func (a *Advisor) Briefing(aggs []analytics.FieldAggregate, flags []analytics.AnomalyFlag, forecast []float64) string {
	var b strings.Builder

	b.WriteString("## Field Conditions\n\n")
	for _, agg := range aggs {
		b.WriteString(fmt.Sprintf("- **%s**: %.1f °C, soil moisture %.0f%%, mean yield %.0f kg/ha\n",
			agg.Field, agg.Temperature, agg.SoilMoisture, agg.CropYield))
	}

	b.WriteString("\n## Advisory\n\n")
	b.WriteString(RuleMessage(flags))
	b.WriteString("\n")

	if len(forecast) > 0 {
		b.WriteString(fmt.Sprintf("\n## Yield Outlook\n\nProjected yield over the next %d days ranges %.0f to %.0f kg/ha.\n",
			len(forecast), minOf(forecast), maxOf(forecast)))
	}
	return b.String()
}

func minOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
