package ingest

import (
	"testing"

	"tripload/internal/model"
)

func TestPositionReport(t *testing.T) {
	cases := []struct {
		name string
		row  model.StagingRow
		want string
	}{
		{
			name: "in transit with a fresh position",
			row: model.StagingRow{
				StatusNorm: "EM TRANSITO", LoadDate: "09/02/2026",
				DestinationCity: strp("Paulínia"), LastPosition: strp("Rod. SP-310"),
			},
			want: "09/02/2026 | Rod. SP-310",
		},
		{
			name: "in transit already reported at destination",
			row: model.StagingRow{
				StatusNorm: "EM TRANSITO", LoadDate: "09/02/2026",
				DestinationCity: strp("Paulínia"), LastPosition: strp("Chegada Paulínia"),
			},
			want: "09/02/2026 | NO LOCAL",
		},
		{
			name: "scheduled still at origin city",
			row: model.StagingRow{
				StatusNorm: "PROGRAMADO", LoadDate: "05/02/2026",
				OriginCity: strp("Araraquara"), LastPosition: strp("Pátio Araraquara"),
			},
			want: "05/02/2026 | NO LOCAL",
		},
		{
			name: "scheduled still at shipper",
			row: model.StagingRow{
				StatusNorm: "PROGRAMADO", LoadDate: "05/02/2026",
				Shipper: strp("Usina A"), LastPosition: strp("Carregando Usina A"),
			},
			want: "05/02/2026 | NO LOCAL",
		},
		{
			name: "no reported position",
			row: model.StagingRow{
				StatusNorm: "DESCARREGADO", LoadDate: "05/02/2026",
			},
			want: "05/02/2026 | NO LOCAL",
		},
		{
			name: "other status passes the position through",
			row: model.StagingRow{
				StatusNorm: "AGUARDANDO DESCARGA", LoadDate: "07/02/2026",
				DestinationCity: strp("Santos"), LastPosition: strp("Santos"),
			},
			want: "07/02/2026 | Santos",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := positionReport(&tc.row); got != tc.want {
				t.Errorf("positionReport = %q, want %q", got, tc.want)
			}
		})
	}
}
