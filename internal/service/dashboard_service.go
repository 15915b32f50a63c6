package service

import (
	"sync"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

// DashboardCounts aggregates per-entity row counts for the admin landing page.
type DashboardCounts struct {
	Programs        int64 `json:"programs"`
	Facilities      int64 `json:"facilities"`
	Achievements    int64 `json:"achievements"`
	News            int64 `json:"news"`
	GalleryPhotos   int64 `json:"gallery_photos"`
	GalleryVideos   int64 `json:"gallery_videos"`
	ContactMessages int64 `json:"contact_messages"`
}

// DashboardService issues the count queries concurrently and joins them.
// If any one fails the whole aggregate fails; the page shows an error rather
// than partial counts.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a DashboardService instance.
func NewDashboardService(gdb *gorm.DB) *DashboardService {
	return &DashboardService{db: gdb}
}

// Counts fetches all entity counts, all-or-nothing.
func (s *DashboardService) Counts() (DashboardCounts, error) {
	var counts DashboardCounts

	jobs := []struct {
		dest  *int64
		count func() (int64, error)
	}{
		{&counts.Programs, repo.New[db.Program](s.db).Count},
		{&counts.Facilities, repo.New[db.Facility](s.db).Count},
		{&counts.Achievements, repo.New[db.Achievement](s.db).Count},
		{&counts.News, repo.New[db.News](s.db).Count},
		{&counts.GalleryPhotos, repo.New[db.GalleryPhoto](s.db).Count},
		{&counts.GalleryVideos, repo.New[db.GalleryVideo](s.db).Count},
		{&counts.ContactMessages, repo.New[db.ContactMessage](s.db).Count},
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, job := range jobs {
		wg.Add(1)
		go func(dest *int64, count func() (int64, error)) {
			defer wg.Done()
			n, err := count()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			*dest = n
		}(job.dest, job.count)
	}
	wg.Wait()

	if firstErr != nil {
		return DashboardCounts{}, firstErr
	}
	return counts, nil
}
