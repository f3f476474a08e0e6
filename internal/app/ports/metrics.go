package ports

// CommandMetrics records per-command KPIs for the ops endpoint.
type CommandMetrics interface {
	RecordCommand(verb string)
	RecordCompletion()
	RecordFailure()
}
