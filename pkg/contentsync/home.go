package contentsync

import (
	"context"
	"net/url"
	"sort"
	"time"

	"github.com/changil/changilweb-server/internal/models"
	"golang.org/x/sync/errgroup"
)

// maxDawnSermons is how many dawn prayer videos the home page lists.
const maxDawnSermons = 3

// HomeSnapshot is everything the home page shows.
type HomeSnapshot struct {
	SundaySermon *models.Sermon
	DawnSermons  []models.Sermon
	Events       []models.Event
	GalleryPosts []models.GalleryPost
	Popup        *models.Popup
}

// Home fetches the home page content concurrently. Each part falls back
// independently, so the snapshot is always complete.
func (c *Client) Home(ctx context.Context) *HomeSnapshot {
	snap := &HomeSnapshot{}
	var sermons []models.Sermon

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.SundaySermon = FetchOne[models.Sermon](gctx, c, "/sermons/type/"+url.PathEscape(string(models.SermonTypeSunday)))
		return nil
	})
	g.Go(func() error {
		sermons = FetchList[models.Sermon](gctx, c, "/sermons")
		return nil
	})
	g.Go(func() error {
		snap.Events = FetchList[models.Event](gctx, c, "/events")
		return nil
	})
	g.Go(func() error {
		snap.GalleryPosts = FetchList[models.GalleryPost](gctx, c, "/gallery-posts/latest")
		return nil
	})
	g.Go(func() error {
		snap.Popup = FetchOne[models.Popup](gctx, c, "/popups/active")
		return nil
	})
	_ = g.Wait()

	snap.DawnSermons = DawnSermons(sermons)
	return snap
}

// DawnSermons picks up to three dawn prayer sermons, keeping their order.
// Both the current and the legacy type name count.
func DawnSermons(sermons []models.Sermon) []models.Sermon {
	out := []models.Sermon{}
	for _, s := range sermons {
		if s.Type != models.SermonTypeDawn && s.Type != models.SermonTypeDawnLegacy {
			continue
		}
		out = append(out, s)
		if len(out) == maxDawnSermons {
			break
		}
	}
	return out
}

// SortSermonsForAdmin orders sermons newest first by date, falling back to
// the creation time. Sermons with neither come last. Duplicate IDs keep
// their first occurrence.
func SortSermonsForAdmin(sermons []models.Sermon) []models.Sermon {
	seen := make(map[string]bool, len(sermons))
	out := make([]models.Sermon, 0, len(sermons))
	for _, s := range sermons {
		key := s.ID.Hex()
		if !s.ID.IsZero() && seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortTime(out[i]), sortTime(out[j])
		switch {
		case a.IsZero():
			return false
		case b.IsZero():
			return true
		}
		return a.After(b)
	})
	return out
}

func sortTime(s models.Sermon) time.Time {
	if !s.Date.IsZero() {
		return s.Date
	}
	return s.CreatedAt
}
