package tasks

// TaskSchedulerInterface defines the interface for task scheduling
// operations. Used by the main application and the admin API to manage
// background snapshot processing.
// Example usage:
//
//	scheduler := NewScheduler(configCache, snapshotStore, httpClient)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewRefreshSnapshotTask(...))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
	EnqueueRefresh() error
}
