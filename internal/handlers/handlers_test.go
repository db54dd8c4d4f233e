package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/changil/changilweb-server/api/routes"
	"github.com/changil/changilweb-server/internal/config"
	"github.com/changil/changilweb-server/internal/handlers"
	"github.com/changil/changilweb-server/internal/middleware"
	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/repositories"
	"github.com/changil/changilweb-server/internal/services"
	"github.com/changil/changilweb-server/internal/session"
	"github.com/changil/changilweb-server/internal/siteroute"
	"github.com/changil/changilweb-server/pkg/jwt"
	"github.com/changil/changilweb-server/pkg/objectstore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Fake repositories embed the interface; calling a method a test does not
// override panics.

type eventRepo struct {
	repositories.EventRepository
	events []*models.Event
}

func (r *eventRepo) Create(_ context.Context, e *models.Event) error {
	e.ID = primitive.NewObjectID()
	r.events = append(r.events, e)
	return nil
}

func (r *eventRepo) FindActive(_ context.Context, _ int) ([]*models.Event, error) {
	out := []*models.Event{}
	for _, e := range r.events {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

type sermonRepo struct {
	repositories.SermonRepository
	sermons []*models.Sermon
}

func (r *sermonRepo) Create(_ context.Context, s *models.Sermon) error {
	s.ID = primitive.NewObjectID()
	r.sermons = append(r.sermons, s)
	return nil
}

func (r *sermonRepo) ExistsByYoutubeID(_ context.Context, youtubeID string) (bool, error) {
	for _, s := range r.sermons {
		if s.YoutubeID == youtubeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *sermonRepo) FindLatestByType(_ context.Context, t models.SermonType) (*models.Sermon, error) {
	for i := len(r.sermons) - 1; i >= 0; i-- {
		if r.sermons[i].Type == t {
			return r.sermons[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

type bulletinRepo struct {
	repositories.BulletinRepository
	views map[primitive.ObjectID]int
}

func (r *bulletinRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.views[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.views, id)
	return nil
}

func (r *bulletinRepo) IncrementViews(_ context.Context, id primitive.ObjectID) (int, error) {
	v, ok := r.views[id]
	if !ok {
		return 0, repositories.ErrNotFound
	}
	r.views[id] = v + 1
	return v + 1, nil
}

type popupRepo struct {
	repositories.PopupRepository
	popups []*models.Popup
}

func (r *popupRepo) FindActiveAt(context.Context, time.Time) ([]*models.Popup, error) {
	return r.popups, nil
}

type galleryRepo struct {
	repositories.GalleryImageRepository
	images []*models.GalleryImage
}

func (r *galleryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.GalleryImage, error) {
	for _, img := range r.images {
		if img.ID == id {
			return img, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *galleryRepo) FindActiveByTitle(_ context.Context, title string) ([]*models.GalleryImage, error) {
	out := []*models.GalleryImage{}
	for _, img := range r.images {
		if img.IsActive && img.Title == title {
			out = append(out, img)
		}
	}
	return out, nil
}

type scheduleRepo struct {
	repositories.PastorScheduleRepository
	schedules []*models.PastorSchedule
}

func (r *scheduleRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.PastorSchedule, error) {
	for _, s := range r.schedules {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *scheduleRepo) FindActive(context.Context) ([]*models.PastorSchedule, error) {
	return r.schedules, nil
}

func (r *scheduleRepo) FindActiveOverlapping(_ context.Context, start, end time.Time) ([]*models.PastorSchedule, error) {
	out := []*models.PastorSchedule{}
	for _, s := range r.schedules {
		if !s.StartDate.After(end) && !s.LastDay().Before(start) {
			out = append(out, s)
		}
	}
	return out, nil
}

type receiptRepo struct {
	repositories.DonationReceiptRepository
	receipts []*models.DonationReceipt
}

func (r *receiptRepo) Create(_ context.Context, d *models.DonationReceipt) error {
	d.ID = primitive.NewObjectID()
	r.receipts = append(r.receipts, d)
	return nil
}

func (r *receiptRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.DonationReceipt, error) {
	for _, d := range r.receipts {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *receiptRepo) Update(ctx context.Context, id primitive.ObjectID, f repositories.Fields) (*models.DonationReceipt, error) {
	d, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v, ok := f["status"].(models.ReceiptStatus); ok {
		d.Status = v
	}
	if v, ok := f["notes"].(string); ok {
		d.Notes = v
	}
	return d, nil
}

type fakeStorage struct{}

func (fakeStorage) SignUpload(_ context.Context, bucket, objectPath string) (*objectstore.SignedUpload, error) {
	return &objectstore.SignedUpload{UploadURL: "https://storage.test/upload/" + bucket + "/" + objectPath, Token: "tok"}, nil
}

func (fakeStorage) PublicURL(bucket, objectPath string) string {
	return "https://storage.test/public/" + bucket + "/" + objectPath
}

const (
	adminUser     = "admin"
	adminPassword = "s3cret"
)

type testServer struct {
	router    *gin.Engine
	sermons   *sermonRepo
	events    *eventRepo
	bulletin  *bulletinRepo
	gallery   *galleryRepo
	popups    *popupRepo
	schedules *scheduleRepo
	receipts  *receiptRepo
	tokens    *jwt.TokenService
}

func newTestServer(t *testing.T, opts ...func(*routes.HandlerDependencies)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:    config.EnvProduction,
		Server: config.ServerConfig{AllowedOrigins: []string{"http://localhost:3001"}},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := &testServer{
		sermons:   &sermonRepo{},
		events:    &eventRepo{},
		bulletin:  &bulletinRepo{views: map[primitive.ObjectID]int{}},
		gallery:   &galleryRepo{},
		popups:    &popupRepo{},
		schedules: &scheduleRepo{},
		receipts:  &receiptRepo{},
		tokens:    jwt.NewTokenService("test-secret", 24*time.Hour),
	}

	authService := services.NewAuthService(adminUser, string(hash), ts.tokens)
	cookies := session.NewCookieStore("0123456789abcdef0123456789abcdef", "test_session", false)
	guard := session.NewGuard()

	deps := routes.HandlerDependencies{
		Logger:          logger,
		AdminAuth:       middleware.AdminAuthMiddleware(authService, cookies, guard, logger),
		SermonHandler:   handlers.NewSermonHandler(services.NewSermonService(ts.sermons)),
		BulletinHandler: handlers.NewBulletinHandler(services.NewBulletinService(ts.bulletin)),
		EventHandler:    handlers.NewEventHandler(services.NewEventService(ts.events)),
		GalleryHandler:  handlers.NewGalleryHandler(services.NewGalleryService(ts.gallery), nil),
		PopupHandler:    handlers.NewPopupHandler(services.NewPopupService(ts.popups), cookies, logger),
		PastorScheduleHandler: handlers.NewPastorScheduleHandler(
			services.NewPastorScheduleService(ts.schedules, time.UTC), time.UTC),
		DonationReceiptHandler: handlers.NewDonationReceiptHandler(services.NewDonationReceiptService(ts.receipts)),
		AuthHandler:            handlers.NewAuthHandler(authService, cookies, guard, logger),
		SiteHandler: handlers.NewSiteHandler(siteroute.NewResolver(), cookies, models.SiteConfig{
			LogoPath:    "/images/logo.png",
			ImageBucket: "gallery-images",
		}),
		UploadHandler: handlers.NewUploadHandler(services.NewUploadService(fakeStorage{}, "gallery-images", "bulletins")),
	}
	for _, opt := range opts {
		opt(&deps)
	}
	ts.router = routes.SetupRouter(cfg, deps)
	return ts
}

func (ts *testServer) do(method, target string, body any, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) adminToken(t *testing.T) func(*http.Request) {
	token, _, err := ts.tokens.Issue(adminUser)
	require.NoError(t, err)
	return bearer(token)
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withCookies(cookies []*http.Cookie) func(*http.Request) {
	return func(r *http.Request) {
		for _, c := range cookies {
			r.AddCookie(c)
		}
	}
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestWelcomeAndHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Changilweb API", message(t, rec))

	rec = ts.do(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK","message":"API is healthy"}`, rec.Body.String())

	rec = ts.do(http.MethodGet, "/api/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", message(t, rec))
}

func TestHealthReportsDatabase(t *testing.T) {
	healthy := newTestServer(t, func(d *routes.HandlerDependencies) {
		d.HealthCheck = func(context.Context) error { return nil }
	})
	rec := healthy.do(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	down := newTestServer(t, func(d *routes.HandlerDependencies) {
		d.HealthCheck = func(context.Context) error { return errors.New("server selection timeout") }
	})
	rec = down.do(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"ERROR","message":"Database unavailable"}`, rec.Body.String())
}

func TestCreateEvent(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/events", map[string]string{"imageUrl": "https://cdn.example.com/poster.jpg"}, ts.adminToken(t))
	require.Equal(t, http.StatusCreated, rec.Code)

	var event models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &event))
	assert.True(t, event.IsActive)
	assert.Equal(t, 0, event.Order)
	assert.False(t, event.ID.IsZero())

	rec = ts.do(http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var events []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	assert.Len(t, events, 1)
}

func TestCreateEventValidation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/events", map[string]string{"title": "no image"}, ts.adminToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "이미지 URL은 필수입니다.", message(t, rec))

	rec = ts.do(http.MethodPost, "/api/events", map[string]string{"imageUrl": "a.jpg", "eventDate": "not a date"}, ts.adminToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLatestSermonByTypeEmpty(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/sermons/type/"+url.PathEscape("주일예배"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestCreateSermonDuplicateVideo(t *testing.T) {
	ts := newTestServer(t)
	body := map[string]string{"title": "주일 설교", "type": "주일예배", "youtubeUrl": "https://youtu.be/abcdefghijk"}

	rec := ts.do(http.MethodPost, "/api/sermons", body, ts.adminToken(t))
	require.Equal(t, http.StatusCreated, rec.Code)
	var sermon models.Sermon
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sermon))
	assert.Equal(t, "abcdefghijk", sermon.YoutubeID)

	body["youtubeUrl"] = "https://www.youtube.com/watch?v=abcdefghijk"
	rec = ts.do(http.MethodPost, "/api/sermons", body, ts.adminToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "이미 같은 YouTube 영상의 설교가 등록되어 있습니다.", message(t, rec))
	assert.Len(t, ts.sermons.sermons, 1)

	rec = ts.do(http.MethodGet, "/api/sermons/type/"+url.PathEscape("주일예배"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sermon))
	assert.Equal(t, "주일 설교", sermon.Title)
}

func TestBulletinRoutes(t *testing.T) {
	ts := newTestServer(t)
	id := primitive.NewObjectID()
	ts.bulletin.views[id] = 7

	rec := ts.do(http.MethodPost, "/api/bulletins/"+id.Hex()+"/view", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"views":8}`, rec.Body.String())

	rec = ts.do(http.MethodDelete, "/api/bulletins/"+primitive.NewObjectID().Hex(), nil, ts.adminToken(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "주보를 찾을 수 없습니다.", message(t, rec))

	rec = ts.do(http.MethodDelete, "/api/bulletins/not-an-id", nil, ts.adminToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodDelete, "/api/bulletins/"+id.Hex(), nil, ts.adminToken(t))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "주보가 삭제되었습니다.", message(t, rec))
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	ts := newTestServer(t)
	body := map[string]string{"imageUrl": "a.jpg"}

	rec := ts.do(http.MethodPost, "/api/events", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "로그인이 필요합니다.", message(t, rec))

	expired, _, err := jwt.NewTokenService("test-secret", -time.Hour).Issue(adminUser)
	require.NoError(t, err)
	rec = ts.do(http.MethodPost, "/api/events", body, bearer(expired))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "세션이 만료되었습니다. 다시 로그인해주세요.", message(t, rec))

	forged, _, err := jwt.NewTokenService("other-secret", time.Hour).Issue(adminUser)
	require.NoError(t, err)
	rec = ts.do(http.MethodPost, "/api/events", body, bearer(forged))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(http.MethodPost, "/api/events", body, func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") })
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Empty(t, ts.events.events)
}

func TestLoginSession(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/auth/login", models.LoginRequest{Username: adminUser, Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "아이디 또는 비밀번호가 올바르지 않습니다.", message(t, rec))

	rec = ts.do(http.MethodPost, "/api/auth/login", models.LoginRequest{Username: adminUser, Password: adminPassword})
	require.Equal(t, http.StatusOK, rec.Code)
	var login models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = ts.do(http.MethodGet, "/api/auth/session", nil, withCookies(cookies))
	require.Equal(t, http.StatusOK, rec.Code)
	var status models.SessionStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.LoggedIn)
	require.NotNil(t, status.ExpiresAt)

	rec = ts.do(http.MethodPost, "/api/events", map[string]string{"imageUrl": "a.jpg"}, withCookies(cookies))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(http.MethodGet, "/api/site/resolve?path=/admin", nil, withCookies(cookies))
	require.Equal(t, http.StatusOK, rec.Code)
	var page models.PageResolution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, string(siteroute.PageAdmin), page.Page)
	assert.Empty(t, page.Redirect)

	rec = ts.do(http.MethodPost, "/api/auth/logout", nil, withCookies(cookies))
	require.Equal(t, http.StatusOK, rec.Code)
	loggedOut := rec.Result().Cookies()

	rec = ts.do(http.MethodGet, "/api/auth/session", nil, withCookies(loggedOut))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.LoggedIn)
}

func TestSiteResolve(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/site/resolve?path=/admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page models.PageResolution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, string(siteroute.PageLogin), page.Page)
	assert.Equal(t, "/login", page.Redirect)

	rec = ts.do(http.MethodGet, "/api/site/resolve?path="+url.QueryEscape("/bulletin/abc?x=1"), nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, string(siteroute.PageBulletinDetail), page.Page)
	assert.Equal(t, "abc", page.Params["id"])

	rec = ts.do(http.MethodGet, "/api/site/config", nil)
	assert.JSONEq(t, `{"logoPath":"/images/logo.png","imageBucket":"gallery-images","bulletinBucket":""}`, rec.Body.String())
}

func TestPopupDismissal(t *testing.T) {
	ts := newTestServer(t)
	start := time.Now().Add(-time.Hour)
	first := &models.Popup{ID: primitive.NewObjectID(), Title: "first", IsActive: true, StartDate: start}
	second := &models.Popup{ID: primitive.NewObjectID(), Title: "second", IsActive: true, StartDate: start}
	ts.popups.popups = []*models.Popup{first, second}

	rec := ts.do(http.MethodGet, "/api/popups/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var popup models.Popup
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &popup))
	assert.Equal(t, "first", popup.Title)

	rec = ts.do(http.MethodPost, "/api/popups/"+first.ID.Hex()+"/dismiss", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()

	rec = ts.do(http.MethodGet, "/api/popups/active", nil, withCookies(cookies))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &popup))
	assert.Equal(t, "second", popup.Title)
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodOptions, "/api/events", nil, func(r *http.Request) { r.Header.Set("Origin", "http://localhost:3001") })
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3001", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = ts.do(http.MethodGet, "/api/health", nil, func(r *http.Request) { r.Header.Set("Origin", "https://evil.example") })
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestGalleryRoutes(t *testing.T) {
	ts := newTestServer(t)
	easter := &models.GalleryImage{ID: primitive.NewObjectID(), ImageURL: "a.jpg", Title: "부활절", IsActive: true}
	christmas := &models.GalleryImage{ID: primitive.NewObjectID(), ImageURL: "b.jpg", Title: "성탄절", IsActive: true}
	ts.gallery.images = []*models.GalleryImage{easter, christmas}

	rec := ts.do(http.MethodGet, "/api/gallery/title/"+url.PathEscape("부활절"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var images []models.GalleryImage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &images))
	require.Len(t, images, 1)
	assert.Equal(t, easter.ID, images[0].ID)

	rec = ts.do(http.MethodGet, "/api/gallery/"+christmas.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var image models.GalleryImage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &image))
	assert.Equal(t, "성탄절", image.Title)

	rec = ts.do(http.MethodGet, "/api/gallery/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "갤러리 이미지를 찾을 수 없습니다.", message(t, rec))

	rec = ts.do(http.MethodGet, "/api/gallery/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPastorScheduleRoutes(t *testing.T) {
	ts := newTestServer(t)
	end := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	retreat := &models.PastorSchedule{
		ID:        primitive.NewObjectID(),
		Title:     "수련회",
		StartDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		IsActive:  true,
	}
	ts.schedules.schedules = []*models.PastorSchedule{retreat}

	rec := ts.do(http.MethodGet, "/api/pastor-schedules?year=2024&month=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var schedules []models.PastorSchedule
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schedules))
	assert.Len(t, schedules, 1)

	rec = ts.do(http.MethodGet, "/api/pastor-schedules?year=2024&month=4", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schedules))
	assert.Empty(t, schedules)

	rec = ts.do(http.MethodGet, "/api/pastor-schedules/calendar?year=2024&month=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var grid struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Days  []struct {
			Day       int               `json:"day"`
			Schedules []json.RawMessage `json:"schedules"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grid))
	assert.Equal(t, 2024, grid.Year)
	assert.Equal(t, 3, grid.Month)
	assert.Len(t, grid.Days, 42)
	var placed int
	for _, d := range grid.Days {
		placed += len(d.Schedules)
	}
	assert.Equal(t, 3, placed)

	for _, query := range []string{"year=2024&month=13", "year=2024", "month=3", "year=abc&month=3"} {
		rec = ts.do(http.MethodGet, "/api/pastor-schedules/calendar?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		assert.Equal(t, "유효하지 않은 연도 또는 월입니다.", message(t, rec))
	}
	rec = ts.do(http.MethodGet, "/api/pastor-schedules?year=2024&month=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/api/pastor-schedules/"+retreat.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var schedule models.PastorSchedule
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schedule))
	assert.Equal(t, "수련회", schedule.Title)

	rec = ts.do(http.MethodGet, "/api/pastor-schedules/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "목회일정을 찾을 수 없습니다.", message(t, rec))

	rec = ts.do(http.MethodPut, "/api/pastor-schedules/"+retreat.ID.Hex(), map[string]string{"endDate": "2024-03-01"}, ts.adminToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "종료일은 시작일보다 빠를 수 없습니다.", message(t, rec))
}

func TestDonationReceiptRoutes(t *testing.T) {
	ts := newTestServer(t)
	form := map[string]string{
		"type":           "개인",
		"name":           "홍길동",
		"contact":        "010-0000-0000",
		"email":          "hong@example.com",
		"residentNumber": "900101-1234567",
		"address":        "서울",
	}

	rec := ts.do(http.MethodPost, "/api/donation-receipts", form)
	require.Equal(t, http.StatusCreated, rec.Code)
	var submitted map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitted))
	assert.Equal(t, "", submitted["residentNumber"])
	assert.Equal(t, "대기", submitted["status"])
	require.Len(t, ts.receipts.receipts, 1)
	id := ts.receipts.receipts[0].ID.Hex()

	rec = ts.do(http.MethodPost, "/api/donation-receipts", map[string]string{"type": "개인", "name": "홍길동"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "필수 정보가 누락되었습니다.", message(t, rec))

	rec = ts.do(http.MethodGet, "/api/donation-receipts/"+id, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(http.MethodGet, "/api/donation-receipts/"+id, nil, ts.adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	var receipt models.DonationReceipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, "900101-1234567", receipt.ResidentNumber)

	rec = ts.do(http.MethodPut, "/api/donation-receipts/"+id, map[string]string{"status": "보류"}, ts.adminToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "유효하지 않은 처리 상태입니다.", message(t, rec))

	rec = ts.do(http.MethodPut, "/api/donation-receipts/"+id, map[string]string{"status": "완료", "notes": "우편 발송"}, ts.adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, models.ReceiptDone, receipt.Status)
	assert.Equal(t, "우편 발송", receipt.Notes)

	rec = ts.do(http.MethodPut, "/api/donation-receipts/"+primitive.NewObjectID().Hex(), map[string]string{"status": "완료"}, ts.adminToken(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadSign(t *testing.T) {
	ts := newTestServer(t)
	body := map[string]string{"bucket": "image", "fileName": "Poster.JPG"}

	rec := ts.do(http.MethodPost, "/api/uploads/sign", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(http.MethodPost, "/api/uploads/sign", body, ts.adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	var ticket models.UploadTicket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ticket))
	assert.Equal(t, "gallery-images", ticket.Bucket)
	assert.Regexp(t, `^\d{4}/\d{2}/[0-9a-f-]{36}\.jpg$`, ticket.Path)
	assert.Equal(t, "https://storage.test/public/gallery-images/"+ticket.Path, ticket.PublicURL)

	rec = ts.do(http.MethodPost, "/api/uploads/sign", map[string]string{"bucket": "videos", "fileName": "a.mp4"}, ts.adminToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "지원하지 않는 업로드 위치입니다.", message(t, rec))

	rec = ts.do(http.MethodPost, "/api/uploads/sign", map[string]string{"bucket": "image"}, ts.adminToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
