package worker

// Log messages for stats worker operations
const (
	LogMsgStatsRefreshFailed    = "Stock gauge refresh failed"
	LogMsgStatsWorkerStarted    = "Stats worker started"
	LogMsgStatsShutdownComplete = "Stats worker shutdown complete"
	LogMsgStatsShutdownTimeout  = "Stats worker shutdown timeout"
)
