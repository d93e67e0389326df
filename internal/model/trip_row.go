package model

// TripRow mirrors one line of a transport-trip export. The same column
// names serve as Parquet field tags and as the expected XLSX header row.
// Everything arrives as text; dates are cleaned during staging.
type TripRow struct {
	Status  string `parquet:"status"`
	Product string `parquet:"produto"`

	Plate   *string `parquet:"cavalo,optional"`
	Invoice *string `parquet:"nfe,optional"`

	Shipper         *string `parquet:"expedidor,optional"`
	OriginCity      *string `parquet:"cidade_origem,optional"`
	DestinationCity *string `parquet:"cidade_destino,optional"`
	LastPosition    *string `parquet:"ultima_posicao,optional"`

	// Raw date cells, exactly as exported (may carry time-of-day and
	// weekday suffixes, serial artifacts, or nothing at all).
	LoadDate      *string `parquet:"data_carregamento,optional"`
	ArrivalDate   *string `parquet:"data_chegada,optional"`
	DischargeDate *string `parquet:"data_descarga,optional"`
}

// Columns returns the export column names in canonical order, shared by the
// XLSX header validator and the fixture generator.
func Columns() []string {
	return []string{
		"status",
		"produto",
		"cavalo",
		"nfe",
		"expedidor",
		"cidade_origem",
		"cidade_destino",
		"ultima_posicao",
		"data_carregamento",
		"data_chegada",
		"data_descarga",
	}
}
