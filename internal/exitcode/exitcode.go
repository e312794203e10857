package exitcode

const (
	Success     = 0
	UsageError  = 1
	InputError  = 2
	DBConnError = 3
	IngestError = 4
	ServerError = 5
)
