// Package jobs provides scheduled background tasks for the parcel service.
//
// Jobs are implemented with github.com/robfig/cron/v3 and managed through
// JobManager, which offers a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(getUnassignedParcelsHandler, publisher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The rebroadcast job periodically republishes parcels still searching for
// a collection rider to the parcel events channel, so rider apps that
// missed the original notification keep seeing open pickup jobs.
package jobs
