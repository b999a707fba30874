/*
scheduler.go - Daily summary scheduler

PURPOSE:
  Optionally generates the top-up report once a day on a cron schedule
  and logs the summary, so the number is in the morning logs before
  anyone asks the endpoint. Each run performs a full fresh fetch; the
  result is logged and discarded, never cached for requests.

CONFIGURATION:
  DAILY_SUMMARY_CRON, a standard 5-field cron spec (e.g. "0 7 * * 1-5").
  Empty disables the scheduler.
*/
package api

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/warp/lunch-engine/report"
)

// Scheduler runs the daily summary job.
type Scheduler struct {
	Service *report.Service
	Spec    string

	cron *cron.Cron
}

// NewScheduler creates a scheduler; an empty spec disables it.
func NewScheduler(service *report.Service, spec string) *Scheduler {
	return &Scheduler{Service: service, Spec: spec, cron: cron.New()}
}

// Start registers and starts the daily job. Returns an error only for a
// malformed cron spec.
func (s *Scheduler) Start() error {
	if s.Spec == "" {
		log.Println("[scheduler] no DAILY_SUMMARY_CRON, daily summary disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.Spec, s.logSummary); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[scheduler] daily summary scheduled: %q", s.Spec)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) logSummary() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	rep, err := s.Service.Generate(ctx, time.Now())
	if err != nil {
		log.Printf("[scheduler] daily summary failed: %v", err)
		return
	}
	log.Printf("[scheduler] balance %s %s covers %d meals; %d weekdays until payday; top-up needed: %s %s",
		rep.CurrentBalance, rep.CurrencyUnit, rep.BalanceInMeals,
		rep.WeekdaysUntilPay, rep.TopupNeeded, rep.CurrencyUnit)
}
