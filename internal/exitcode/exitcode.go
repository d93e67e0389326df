package exitcode

// Process exit codes, one per failure class of the load pipeline.
const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	CopyError       = 4
	TransformError  = 5
	PartialSuccess  = 6
)
