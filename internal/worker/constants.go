package worker

import "time"

// Log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobDropped  = "Worker queue full, job dropped"
	LogMsgWorkerJobFinished = "Worker job finished"
)

// DefaultJobTimeout bounds a single job run.
const DefaultJobTimeout = 5 * time.Minute
