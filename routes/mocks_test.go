package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"weddingapi/middlewares"
	"weddingapi/models"
	"weddingapi/utils"
)

/* ---------- in-memory repositories ---------- */

type MockUserRepo struct{ Users map[string]models.User } // key: email

func (m *MockUserRepo) Create(u *models.User) error {
	if _, ok := m.Users[u.Email]; ok {
		return errors.New("dup")
	}
	u.ID = int64(len(m.Users) + 1)
	u.UID = fmt.Sprintf("uid-%d", u.ID)
	m.Users[u.Email] = *u
	return nil
}

func (m *MockUserRepo) ValidateCredentials(email, plain string) (models.User, error) {
	u, ok := m.Users[email]
	if !ok || u.Password != plain {
		return models.User{}, errors.New("bad credentials")
	}
	return u, nil
}

func (m *MockUserRepo) GetByID(id int64) (models.User, error) {
	for _, u := range m.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, errors.New("not found")
}

type MockEventRepo struct{ Items map[string]models.Event }

func (m *MockEventRepo) GetAll() ([]models.Event, error) {
	out := make([]models.Event, 0, len(m.Items))
	for _, e := range m.Items {
		out = append(out, e)
	}
	return out, nil
}

func (m *MockEventRepo) GetByID(id string) (models.Event, error) {
	e, ok := m.Items[id]
	if !ok {
		return models.Event{}, errors.New("not found")
	}
	return e, nil
}

func (m *MockEventRepo) Create(e *models.Event) error { m.Items[e.ID] = *e; return nil }
func (m *MockEventRepo) Delete(id string) error       { delete(m.Items, id); return nil }

// Watch sends the current snapshot once and closes.
func (m *MockEventRepo) Watch(ctx context.Context) (<-chan []models.Event, error) {
	ch := make(chan []models.Event, 1)
	snap, _ := m.GetAll()
	ch <- snap
	close(ch)
	return ch, nil
}

type MockGuestRepo struct{ Items map[string]models.Guest }

func (m *MockGuestRepo) GetAll() ([]models.Guest, error) {
	out := make([]models.Guest, 0, len(m.Items))
	for _, g := range m.Items {
		out = append(out, g)
	}
	return out, nil
}

func (m *MockGuestRepo) CountMatching(firstName, lastName, email string) (int64, error) {
	var n int64
	for _, g := range m.Items {
		if g.FirstName == firstName && g.LastName == lastName && g.Email == email {
			n++
		}
	}
	return n, nil
}

func (m *MockGuestRepo) Create(g *models.Guest) error { m.Items[g.ID] = *g; return nil }
func (m *MockGuestRepo) Delete(id string) error       { delete(m.Items, id); return nil }

func (m *MockGuestRepo) Watch(ctx context.Context) (<-chan []models.Guest, error) {
	ch := make(chan []models.Guest, 1)
	snap, _ := m.GetAll()
	ch <- snap
	close(ch)
	return ch, nil
}

type MockBudgetRepo struct{ Items []models.Budget }

func (m *MockBudgetRepo) GetAll() ([]models.Budget, error) { return m.Items, nil }

type MockRegistryRepo struct{ Codes []int64 }

func (m *MockRegistryRepo) Add(code int64) error {
	m.Codes = append(m.Codes, code)
	return nil
}

/* ---------- server setup ---------- */

type testServer struct {
	s  *gin.Engine
	ur *MockUserRepo
	er *MockEventRepo
	gr *MockGuestRepo
	br *MockBudgetRepo
	ei *MockRegistryRepo
	gi *MockRegistryRepo
}

func newMocks(t *testing.T) (*testServer, *redis.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	t.Cleanup(func() { mr.Close() })
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	ts := &testServer{
		s:  gin.New(),
		ur: &MockUserRepo{Users: map[string]models.User{}},
		er: &MockEventRepo{Items: map[string]models.Event{}},
		gr: &MockGuestRepo{Items: map[string]models.Guest{}},
		br: &MockBudgetRepo{},
		ei: &MockRegistryRepo{},
		gi: &MockRegistryRepo{},
	}
	return ts, rdb
}

func (ts *testServer) register(rdb *redis.Client) {
	RegisterRoutes(ts.s, &Deps{
		Users:      ts.ur,
		Events:     ts.er,
		Guests:     ts.gr,
		Budgets:    ts.br,
		EventIDs:   ts.ei,
		GuestIDs:   ts.gi,
		EventCodes: utils.NewCodeSequence(),
		GuestCodes: utils.NewCodeSequence(),
		RDB:        rdb,
		Inv:        utils.NewCacheInvalidator(rdb),
	})
}

func setupServer(t *testing.T) *testServer {
	ts, rdb := newMocks(t)
	ts.register(rdb)
	return ts
}

// setupCachedServer wires the engine the way main does, with the response
// cache installed in front of the whole router.
func setupCachedServer(t *testing.T) *testServer {
	ts, rdb := newMocks(t)
	ts.s.Use(middlewares.ResponseCache(rdb, 30*time.Second))
	ts.register(rdb)
	return ts
}

func authToken(t *testing.T, userId int64) string {
	t.Helper()
	token, err := utils.GenerateToken("test@example.com", userId, fmt.Sprintf("uid-%d", userId))
	if err != nil {
		t.Fatalf("gen token: %v", err)
	}
	return token
}

// closeNotifyRecorder adds the http.CloseNotifier implementation that
// gin's c.Stream requires but httptest.ResponseRecorder lacks.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool { return r.closed }

func doReq(s *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	w := &closeNotifyRecorder{rec, make(chan bool, 1)}
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	s.ServeHTTP(w, req)
	return rec
}
