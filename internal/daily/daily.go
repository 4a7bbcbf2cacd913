// Package daily serves the verse of the day: a deterministic, date-seeded
// pick from the corpus, cached and refreshed on a cron schedule so the date
// rollover does not depend on request traffic.
package daily

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"versekeeper/internal/corpus"
)

// Service caches the current verse of the day.
type Service struct {
	corpus *corpus.Corpus
	cron   *cron.Cron

	mu      sync.RWMutex
	current corpus.VersePick
	date    string // YYYY-MM-DD of the cached pick
}

func NewService(c *corpus.Corpus) *Service {
	return &Service{corpus: c}
}

// Current returns the verse for today, recomputing if the cached pick is
// stale. Safe to call before Start.
func (s *Service) Current() corpus.VersePick {
	now := time.Now()
	today := now.Format("2006-01-02")

	s.mu.RLock()
	if s.date == today {
		pick := s.current
		s.mu.RUnlock()
		return pick
	}
	s.mu.RUnlock()

	return s.refresh(now)
}

// Start schedules the daily refresh. The schedule is standard cron format;
// the default configuration fires at midnight.
func (s *Service) Start(schedule string) error {
	s.refresh(time.Now())

	s.cron = cron.New()
	_, err := s.cron.AddFunc(schedule, func() {
		pick := s.refresh(time.Now())
		log.Printf("Verse of the day: %s", pick.Reference)
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Daily verse scheduler started (schedule: %s)", schedule)
	return nil
}

// Stop halts the scheduler. Blocks until a running job completes.
func (s *Service) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Service) refresh(now time.Time) corpus.VersePick {
	pick := s.corpus.VerseOfTheDay(now)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = pick
	s.date = now.Format("2006-01-02")
	return pick
}
