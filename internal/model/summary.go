package model

import "time"

// LoadSummary captures metrics from a single file load run.
type LoadSummary struct {
	FilePath       string
	FileSHA256     string
	SourceFileID   int64
	IngestBatchID  string
	RowsRead       int64
	RowsStaged     int64
	RowsRejected   int64
	RowsServing    int64
	DatesSanitized int64
	DatesSentinel  int64
	DatesRecovered int64
	DurationStage  time.Duration
	DurationTotal  time.Duration
}
