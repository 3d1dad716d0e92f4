// Package reports renders the server-side farm overview page: interactive
// charts plus the advisor briefing converted from markdown.
package reports

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"agridash/internal/advisor"
	"agridash/internal/analytics"
	"agridash/internal/dataset"
	"agridash/internal/logger"
)

const reportForecastHorizon = 30

// Renderer builds the overview report from the current dataset
type Renderer struct {
	advisor  *advisor.Advisor
	goldmark goldmark.Markdown
	log      *logger.Logger
}

// NewRenderer creates a report renderer backed by the given advisor
func NewRenderer(adv *advisor.Advisor) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &Renderer{
		advisor:  adv,
		goldmark: md,
		log:      logger.GetGlobalLogger().WithComponent("reports"),
	}
}

// RenderOverview writes the complete overview HTML page. Analytics failures
// degrade to a page without the affected chart, never to an error response.
func (r *Renderer) RenderOverview(w io.Writer, ds dataset.Dataset) error {
	aggs, err := analytics.AggregateByField(ds)
	if err != nil {
		r.log.Warnf("aggregation unavailable for report: %v", err)
	}

	var flags []analytics.AnomalyFlag
	if len(aggs) > 0 {
		if flags, err = analytics.DetectOutliers(aggs); err != nil {
			r.log.Warnf("outlier detection unavailable for report: %v", err)
		}
	}

	forecast, err := analytics.ForecastYield(ds.YieldSeries(), reportForecastHorizon)
	if err != nil {
		r.log.Warnf("forecast unavailable for report: %v", err)
	}

	page := components.NewPage()
	page.PageTitle = "Farm Overview"

	if line := yieldLineChart(ds); line != nil {
		page.AddCharts(line)
	}
	if bar := fieldYieldBarChart(aggs); bar != nil {
		page.AddCharts(bar)
	}
	if projection := forecastLineChart(forecast); projection != nil {
		page.AddCharts(projection)
	}

	var pageBuf bytes.Buffer
	if err := page.Render(&pageBuf); err != nil {
		return fmt.Errorf("failed to render report page: %w", err)
	}

	briefingHTML, err := r.briefingHTML(aggs, flags, forecast)
	if err != nil {
		r.log.Warnf("briefing render failed: %v", err)
		briefingHTML = ""
	}

	final := strings.Replace(pageBuf.String(), "</body>", briefingHTML+"\n</body>", 1)
	_, err = io.WriteString(w, final)
	return err
}

// briefingHTML converts the advisor's markdown briefing into an HTML block
func (r *Renderer) briefingHTML(aggs []analytics.FieldAggregate, flags []analytics.AnomalyFlag, forecast []float64) (string, error) {
	markdown := r.advisor.Briefing(aggs, flags, forecast)

	var buf bytes.Buffer
	if err := r.goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert briefing markdown: %w", err)
	}
	return `<div class="briefing" style="max-width:900px;margin:2rem auto;font-family:sans-serif;">` +
		buf.String() + `</div>`, nil
}
