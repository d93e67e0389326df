package model

// DateColumn describes one date-bearing column of the trip export and
// whether an empty value there is a legitimate business state.
type DateColumn struct {
	Name             string // export column name, e.g. "data_chegada"
	Label            string // operator-facing label used in diagnostics
	SentinelExpected bool   // empty is a normal lifecycle stage, not an error
}

// DefaultDateColumns lists the date columns of the trip export in canonical
// order. Arrival and discharge stay empty until the vehicle reaches the
// corresponding stage, so emptiness there is expected; a trip with no load
// date is a data-entry error.
var DefaultDateColumns = []DateColumn{
	{Name: "data_carregamento", Label: "data_carregamento", SentinelExpected: false},
	{Name: "data_chegada", Label: "data_chegada", SentinelExpected: true},
	{Name: "data_descarga", Label: "data_descarga", SentinelExpected: true},
}

// DateColumnByName returns the DateColumn for the given name, or ok=false.
func DateColumnByName(cols []DateColumn, name string) (DateColumn, bool) {
	for _, dc := range cols {
		if dc.Name == name {
			return dc, true
		}
	}
	return DateColumn{}, false
}
