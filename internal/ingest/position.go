package ingest

import (
	"strings"

	"tripload/internal/model"
	"tripload/internal/normalize"
	"tripload/internal/validate"
)

// positionReport renders the operator-facing "date | position" composite for
// a staged row. The position is replaced by the sentinel marker when it
// carries no new information: a scheduled trip still reported at its shipper
// or origin city, an in-transit trip already reported at its destination, or
// no reported position at all.
func positionReport(s *model.StagingRow) string {
	pos := strings.TrimSpace(derefStr(s.LastPosition))
	posNorm := normalize.NormalizeText(pos)

	noLocal := posNorm == ""
	switch {
	case s.StatusNorm == "PROGRAMADO":
		shipper := normalize.NormalizeText(derefStr(s.Shipper))
		origin := normalize.NormalizeText(derefStr(s.OriginCity))
		if (shipper != "" && strings.Contains(posNorm, shipper)) ||
			(origin != "" && strings.Contains(posNorm, origin)) {
			noLocal = true
		}
	case strings.Contains(s.StatusNorm, "TRANSITO"):
		dest := normalize.NormalizeText(derefStr(s.DestinationCity))
		if dest != "" && strings.Contains(posNorm, dest) {
			noLocal = true
		}
	}

	if noLocal {
		return s.LoadDate + " | " + validate.SentinelMarker
	}
	return s.LoadDate + " | " + pos
}
