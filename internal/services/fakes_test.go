package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory stand-in for a Mongo collection. Updates go
// through bson so field names match the real repositories.
type memStore[T any] struct {
	mu   sync.Mutex
	docs []*T
	id   func(*T) primitive.ObjectID
}

func newMemStore[T any](id func(*T) primitive.ObjectID) *memStore[T] {
	return &memStore[T]{id: id}
}

func (m *memStore[T]) add(doc *T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, doc)
}

func (m *memStore[T]) byID(id primitive.ObjectID) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.docs {
		if m.id(d) == id {
			return d, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memStore[T]) filter(keep func(*T) bool) []*T {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*T{}
	for _, d := range m.docs {
		if keep == nil || keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func (m *memStore[T]) update(id primitive.ObjectID, fields repositories.Fields) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs {
		if m.id(d) != id {
			continue
		}
		raw, err := bson.Marshal(d)
		if err != nil {
			return nil, err
		}
		var doc bson.M
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		for k, v := range fields {
			doc[k] = v
		}
		raw, err = bson.Marshal(doc)
		if err != nil {
			return nil, err
		}
		updated := new(T)
		if err := bson.Unmarshal(raw, updated); err != nil {
			return nil, err
		}
		m.docs[i] = updated
		return updated, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *memStore[T]) delete(id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs {
		if m.id(d) == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func newID() primitive.ObjectID { return primitive.NewObjectID() }

type fakeSermonRepo struct{ *memStore[models.Sermon] }

func newFakeSermonRepo() *fakeSermonRepo {
	return &fakeSermonRepo{newMemStore(func(s *models.Sermon) primitive.ObjectID { return s.ID })}
}

func (r *fakeSermonRepo) Create(_ context.Context, s *models.Sermon) error {
	s.ID, s.CreatedAt = newID(), time.Now()
	r.add(s)
	return nil
}

func (r *fakeSermonRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Sermon, error) {
	return r.byID(id)
}

func (r *fakeSermonRepo) FindAll(context.Context) ([]*models.Sermon, error) {
	return r.filter(nil), nil
}

func (r *fakeSermonRepo) FindLatestByType(_ context.Context, t models.SermonType) (*models.Sermon, error) {
	found := r.filter(func(s *models.Sermon) bool { return s.Type == t })
	if len(found) == 0 {
		return nil, repositories.ErrNotFound
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].Date.After(found[j].Date) })
	return found[0], nil
}

func (r *fakeSermonRepo) ExistsByYoutubeID(_ context.Context, id string) (bool, error) {
	return len(r.filter(func(s *models.Sermon) bool { return s.YoutubeID == id })) > 0, nil
}

func (r *fakeSermonRepo) Update(_ context.Context, id primitive.ObjectID, f repositories.Fields) (*models.Sermon, error) {
	return r.update(id, f)
}

func (r *fakeSermonRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.delete(id)
}

type fakeBulletinRepo struct{ *memStore[models.Bulletin] }

func newFakeBulletinRepo() *fakeBulletinRepo {
	return &fakeBulletinRepo{newMemStore(func(b *models.Bulletin) primitive.ObjectID { return b.ID })}
}

func (r *fakeBulletinRepo) Create(_ context.Context, b *models.Bulletin) error {
	b.ID = newID()
	r.add(b)
	return nil
}

func (r *fakeBulletinRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Bulletin, error) {
	return r.byID(id)
}

func (r *fakeBulletinRepo) FindAll(context.Context) ([]*models.Bulletin, error) {
	return r.filter(nil), nil
}

func (r *fakeBulletinRepo) FindLatest(context.Context) (*models.Bulletin, error) {
	all := r.filter(nil)
	if len(all) == 0 {
		return nil, repositories.ErrNotFound
	}
	return all[len(all)-1], nil
}

func (r *fakeBulletinRepo) Update(_ context.Context, id primitive.ObjectID, f repositories.Fields) (*models.Bulletin, error) {
	return r.update(id, f)
}

func (r *fakeBulletinRepo) IncrementViews(_ context.Context, id primitive.ObjectID) (int, error) {
	b, err := r.byID(id)
	if err != nil {
		return 0, err
	}
	b.Views++
	return b.Views, nil
}

func (r *fakeBulletinRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.delete(id)
}

type fakeEventRepo struct{ *memStore[models.Event] }

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{newMemStore(func(e *models.Event) primitive.ObjectID { return e.ID })}
}

func (r *fakeEventRepo) Create(_ context.Context, e *models.Event) error {
	e.ID = newID()
	r.add(e)
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Event, error) {
	return r.byID(id)
}

func (r *fakeEventRepo) FindAll(context.Context) ([]*models.Event, error) {
	return r.filter(nil), nil
}

func (r *fakeEventRepo) FindActive(_ context.Context, limit int) ([]*models.Event, error) {
	active := r.filter(func(e *models.Event) bool { return e.IsActive })
	if limit > 0 && len(active) > limit {
		active = active[:limit]
	}
	return active, nil
}

func (r *fakeEventRepo) Update(_ context.Context, id primitive.ObjectID, f repositories.Fields) (*models.Event, error) {
	return r.update(id, f)
}

func (r *fakeEventRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.delete(id)
}

type fakeGalleryRepo struct{ *memStore[models.GalleryImage] }

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{newMemStore(func(g *models.GalleryImage) primitive.ObjectID { return g.ID })}
}

func (r *fakeGalleryRepo) Create(_ context.Context, g *models.GalleryImage) error {
	g.ID = newID()
	r.add(g)
	return nil
}

func (r *fakeGalleryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.GalleryImage, error) {
	return r.byID(id)
}

func (r *fakeGalleryRepo) FindActive(_ context.Context, limit int) ([]*models.GalleryImage, error) {
	active := r.filter(func(g *models.GalleryImage) bool { return g.IsActive })
	if limit > 0 && len(active) > limit {
		active = active[:limit]
	}
	return active, nil
}

func (r *fakeGalleryRepo) FindActiveByTitle(_ context.Context, title string) ([]*models.GalleryImage, error) {
	return r.filter(func(g *models.GalleryImage) bool { return g.IsActive && g.Title == title }), nil
}

func (r *fakeGalleryRepo) Update(_ context.Context, id primitive.ObjectID, f repositories.Fields) (*models.GalleryImage, error) {
	return r.update(id, f)
}

func (r *fakeGalleryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.delete(id)
}

type fakePostRepo struct{ *memStore[models.GalleryPost] }

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{newMemStore(func(p *models.GalleryPost) primitive.ObjectID { return p.ID })}
}

func (r *fakePostRepo) Create(_ context.Context, p *models.GalleryPost) error {
	p.ID = newID()
	r.add(p)
	return nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.GalleryPost, error) {
	return r.byID(id)
}

func (r *fakePostRepo) FindActive(_ context.Context, limit int) ([]*models.GalleryPost, error) {
	active := r.filter(func(p *models.GalleryPost) bool { return p.IsActive })
	if limit > 0 && len(active) > limit {
		active = active[:limit]
	}
	return active, nil
}

func (r *fakePostRepo) Update(_ context.Context, id primitive.ObjectID, f repositories.Fields) (*models.GalleryPost, error) {
	return r.update(id, f)
}

func (r *fakePostRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.delete(id)
}

type fakePopupRepo struct{ *memStore[models.Popup] }

func newFakePopupRepo() *fakePopupRepo {
	return &fakePopupRepo{newMemStore(func(p *models.Popup) primitive.ObjectID { return p.ID })}
}

func (r *fakePopupRepo) Create(_ context.Context, p *models.Popup) error {
	p.ID = newID()
	r.add(p)
	return nil
}

func (r *fakePopupRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Popup, error) {
	return r.byID(id)
}

func (r *fakePopupRepo) FindAll(context.Context) ([]*models.Popup, error) {
	return r.filter(nil), nil
}

func (r *fakePopupRepo) FindActiveAt(_ context.Context, t time.Time) ([]*models.Popup, error) {
	return r.filter(func(p *models.Popup) bool { return p.ActiveAt(t) }), nil
}

func (r *fakePopupRepo) Update(_ context.Context, id primitive.ObjectID, f repositories.Fields) (*models.Popup, error) {
	return r.update(id, f)
}

func (r *fakePopupRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.delete(id)
}

type fakeScheduleRepo struct{ *memStore[models.PastorSchedule] }

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{newMemStore(func(s *models.PastorSchedule) primitive.ObjectID { return s.ID })}
}

func (r *fakeScheduleRepo) Create(_ context.Context, s *models.PastorSchedule) error {
	s.ID = newID()
	r.add(s)
	return nil
}

func (r *fakeScheduleRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.PastorSchedule, error) {
	return r.byID(id)
}

func (r *fakeScheduleRepo) FindActive(context.Context) ([]*models.PastorSchedule, error) {
	return r.filter(func(s *models.PastorSchedule) bool { return s.IsActive }), nil
}

func (r *fakeScheduleRepo) FindActiveOverlapping(_ context.Context, start, end time.Time) ([]*models.PastorSchedule, error) {
	return r.filter(func(s *models.PastorSchedule) bool {
		return s.IsActive && !s.StartDate.After(end) && !s.LastDay().Before(start)
	}), nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, id primitive.ObjectID, f repositories.Fields) (*models.PastorSchedule, error) {
	return r.update(id, f)
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.delete(id)
}

type fakeReceiptRepo struct{ *memStore[models.DonationReceipt] }

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{newMemStore(func(r *models.DonationReceipt) primitive.ObjectID { return r.ID })}
}

func (r *fakeReceiptRepo) Create(_ context.Context, d *models.DonationReceipt) error {
	d.ID = newID()
	r.add(d)
	return nil
}

func (r *fakeReceiptRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.DonationReceipt, error) {
	return r.byID(id)
}

func (r *fakeReceiptRepo) FindAll(context.Context) ([]*models.DonationReceipt, error) {
	return r.filter(nil), nil
}

func (r *fakeReceiptRepo) Update(_ context.Context, id primitive.ObjectID, f repositories.Fields) (*models.DonationReceipt, error) {
	return r.update(id, f)
}

func (r *fakeReceiptRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.delete(id)
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }
