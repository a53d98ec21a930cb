// Package jobs provides scheduled background tasks for the order bot.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// SessionExpiryJob cancels and removes order sessions that have been idle
// longer than SESSION_IDLE_TTL. A user whose session expired gets
// "No active order." on the next item line. The chat conversation itself is
// forgotten once it has been idle for twice the TTL, which also clears users
// who sent /start and never answered.
//
// # Usage
//
//	expiry := jobs.NewSessionExpiryJob(handler, controller, "0 */5 * * * *", 2*time.Hour, logger)
//	jobManager := jobs.NewJobManager(expiry)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field, so the
// default "0 */5 * * * *" sweeps every five minutes.
package jobs
