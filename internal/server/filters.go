package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"agridash/internal/dataset"
)

const dateLayout = "2006-01-02"

// parseFilters extracts the dataset filter set from request query values.
// Missing farm falls back to the configured default; malformed dates are
// ignored and leave the bound open.
func (s *Server) parseFilters(r *http.Request) dataset.Filters {
	q := r.URL.Query()

	f := dataset.Filters{
		Farm: q.Get("farm"),
	}
	if f.Farm == "" {
		f.Farm = s.cfg.DefaultFarm
	}

	if raw := q.Get("crops"); raw != "" {
		for _, crop := range strings.Split(raw, ",") {
			if crop = strings.TrimSpace(crop); crop != "" {
				f.Crops = append(f.Crops, crop)
			}
		}
	}

	if raw := q.Get("start_date"); raw != "" {
		if t, err := time.Parse(dateLayout, raw); err == nil {
			f.Start = t
		} else {
			s.log.Warnf("ignoring malformed start_date %q", raw)
		}
	}
	if raw := q.Get("end_date"); raw != "" {
		if t, err := time.Parse(dateLayout, raw); err == nil {
			f.End = t
		} else {
			s.log.Warnf("ignoring malformed end_date %q", raw)
		}
	}

	return f
}

// parsePage reads the forecast page number, defaulting to 1
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
