package user

import (
	"context"
	"sync"
	"testing"
	"time"

	"salonbook/database/repository"
	guestRepo "salonbook/database/repository/guest"
	userRepo "salonbook/database/repository/user"
	"salonbook/models"
	"salonbook/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]*models.User{}} }

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return userRepo.ErrDuplicateEmail
		}
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUsers) find(match func(*models.User) bool) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (m *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.ID == id })
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.Email == email })
}

func (m *memUsers) GetByTokenHash(_ context.Context, h string) (*models.User, error) {
	if h == "" {
		return nil, userRepo.ErrNotFound
	}
	return m.find(func(u *models.User) bool { return u.TokenHash == h })
}

func (m *memUsers) UpdateSetDocument(_ context.Context, id string, doc map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	for k, v := range doc {
		switch k {
		case "fullName":
			u.FullName = v.(string)
		case "phone":
			u.Phone = v.(string)
		case "gender":
			u.Gender = v.(models.Gender)
		case "age":
			u.Age = v.(int)
		case "hairLength":
			u.HairLength = v.(string)
		case "tokenHash":
			u.TokenHash = v.(string)
		case "role":
			u.Role = v.(models.Role)
		}
	}
	return nil
}

func (m *memUsers) SetTokenHash(ctx context.Context, id, h string) error {
	return m.UpdateSetDocument(ctx, id, map[string]interface{}{"tokenHash": h})
}

func (m *memUsers) SetRole(ctx context.Context, id string, role models.Role) error {
	return m.UpdateSetDocument(ctx, id, map[string]interface{}{"role": role})
}

type memGuests struct {
	guests map[string]models.Guest
}

func (m *memGuests) Create(_ context.Context, g *models.Guest) error {
	m.guests[g.ID] = *g
	return nil
}

func (m *memGuests) GetByID(_ context.Context, id string) (*models.Guest, error) {
	g, ok := m.guests[id]
	if !ok {
		return nil, guestRepo.ErrNotFound
	}
	return &g, nil
}

func (m *memGuests) ListByOwner(_ context.Context, ownerID string) ([]models.Guest, error) {
	out := []models.Guest{}
	for _, g := range m.guests {
		if g.OwnerID == ownerID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memGuests) Delete(_ context.Context, ownerID, id string) error {
	g, ok := m.guests[id]
	if !ok || g.OwnerID != ownerID {
		return guestRepo.ErrNotFound
	}
	delete(m.guests, id)
	return nil
}

// cancelRecorder records CancelFutureForGuest calls; other methods are unused here.
type cancelRecorder struct {
	repository.AppointmentRepository
	guestID   string
	cutoff    repository.Cutoff
	cancelled []models.Appointment
}

func (c *cancelRecorder) CancelFutureForGuest(_ context.Context, guestID string, cutoff repository.Cutoff) ([]models.Appointment, error) {
	c.guestID = guestID
	c.cutoff = cutoff
	return c.cancelled, nil
}

// dayRecorder collects the salon days whose cached availability was dropped.
type dayRecorder struct {
	days []string
}

func (d *dayRecorder) Invalidate(_ context.Context, salonID, date string) error {
	d.days = append(d.days, salonID+" "+date)
	return nil
}

func newService(t *testing.T) (*DefaultUserService, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	return &DefaultUserService{
		Repo:     newMemUsers(),
		Guests:   &memGuests{guests: map[string]models.Guest{}},
		Sessions: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		TokenTTL: time.Hour,
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC) },
	}, mr
}

func signUp(t *testing.T, s *DefaultUserService) *models.AuthResponse {
	resp, err := s.SignUp(context.Background(), models.SignUpRequest{
		Email:    " Ada@Example.com ",
		Password: "correct-horse",
		FullName: "Ada Lovelace",
		Gender:   models.GenderFemale,
		Age:      36,
	})
	require.NoError(t, err)
	return resp
}

func TestSignUpIssuesTokenAndHidesSecrets(t *testing.T) {
	s, mr := newService(t)
	resp := signUp(t, s)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, models.RoleCustomer, resp.User.Role)
	assert.Empty(t, resp.User.PasswordHash)
	assert.True(t, mr.Exists(utils.AuthCachePrefix+utils.HashToken(resp.Token)))

	stored, err := s.Repo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
}

func TestSignUpRejectsDuplicatesAndBadInput(t *testing.T) {
	s, _ := newService(t)
	signUp(t, s)

	_, err := s.SignUp(context.Background(), models.SignUpRequest{Email: "ADA@example.com", Password: "whatever123", FullName: "Other"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = s.SignUp(context.Background(), models.SignUpRequest{Email: "x@example.com", Password: "short", FullName: "X"})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)

	_, err = s.SignUp(context.Background(), models.SignUpRequest{Email: "x@example.com", Password: "long-enough", FullName: "X", Gender: "other"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "gender", verr.Field)
}

func TestSignInRotatesToken(t *testing.T) {
	s, mr := newService(t)
	first := signUp(t, s)
	ctx := context.Background()

	_, err := s.SignIn(ctx, models.SignInRequest{Email: "ada@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.SignIn(ctx, models.SignInRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	second, err := s.SignIn(ctx, models.SignInRequest{Email: "ADA@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)
	assert.False(t, mr.Exists(utils.AuthCachePrefix+utils.HashToken(first.Token)))

	_, err = s.Authenticate(ctx, first.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	session, err := s.Authenticate(ctx, second.Token)
	require.NoError(t, err)
	assert.Equal(t, second.User.ID, session.UserID)
}

func TestAuthenticateFallsBackToStore(t *testing.T) {
	s, mr := newService(t)
	resp := signUp(t, s)
	mr.FlushAll()

	session, err := s.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "customer", session.Role)
	assert.True(t, mr.Exists(utils.AuthCachePrefix+utils.HashToken(resp.Token)))

	_, err = s.Authenticate(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSignOutInvalidatesToken(t *testing.T) {
	s, _ := newService(t)
	resp := signUp(t, s)
	ctx := context.Background()

	require.NoError(t, s.SignOut(ctx, resp.User.ID, utils.HashToken(resp.Token)))
	_, err := s.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.ErrorIs(t, s.SignOut(ctx, "missing", ""), ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	s, _ := newService(t)
	resp := signUp(t, s)
	ctx := context.Background()

	name := "Ada King"
	length := "long"
	u, err := s.UpdateProfile(ctx, resp.User.ID, models.UpdateProfileRequest{FullName: &name, HairLength: &length})
	require.NoError(t, err)
	assert.Equal(t, "Ada King", u.FullName)
	assert.Equal(t, "long", u.HairLength)
	assert.Equal(t, models.GenderFemale, u.Gender)

	age := 200
	_, err = s.UpdateProfile(ctx, resp.User.ID, models.UpdateProfileRequest{Age: &age})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "age", verr.Field)

	_, err = s.UpdateProfile(ctx, "missing", models.UpdateProfileRequest{FullName: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGuestsLifecycle(t *testing.T) {
	s, _ := newService(t)
	rec := &cancelRecorder{}
	s.Appointments = rec
	days := &dayRecorder{}
	s.Availability = days
	ctx := context.Background()

	_, err := s.AddGuest(ctx, "owner", models.CreateGuestRequest{FullName: "Kid", Gender: "robot"})
	assert.Error(t, err)

	g, err := s.AddGuest(ctx, "owner", models.CreateGuestRequest{FullName: "Kid", Gender: models.GenderMale, Age: 8})
	require.NoError(t, err)

	list, err := s.ListGuests(ctx, "owner")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, s.DeleteGuest(ctx, "someone-else", g.ID), ErrGuestNotFound)

	require.NoError(t, s.DeleteGuest(ctx, "owner", g.ID))
	assert.Equal(t, g.ID, rec.guestID)
	assert.Equal(t, repository.Cutoff{Date: "2026-10-19", Minute: 12*60 + 30}, rec.cutoff)

	list, err = s.ListGuests(ctx, "owner")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, days.days)
}

func TestDeleteGuestInvalidatesFreedDays(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()
	days := &dayRecorder{}
	s.Availability = days
	s.Appointments = &cancelRecorder{cancelled: []models.Appointment{
		{ID: "a1", SalonID: "s1", Date: "2026-10-20"},
		{ID: "a2", SalonID: "s1", Date: "2026-10-20"},
		{ID: "a3", SalonID: "s2", Date: "2026-10-22"},
	}}

	g, err := s.AddGuest(ctx, "owner", models.CreateGuestRequest{FullName: "Kid", Gender: models.GenderMale, Age: 8})
	require.NoError(t, err)
	require.NoError(t, s.DeleteGuest(ctx, "owner", g.ID))

	assert.Equal(t, []string{"s1 2026-10-20", "s2 2026-10-22"}, days.days)
}

func TestChangeRoleRefreshesCachedSession(t *testing.T) {
	s, mr := newService(t)
	resp := signUp(t, s)
	ctx := context.Background()

	session, err := s.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "customer", session.Role)

	require.NoError(t, s.ChangeRole(ctx, resp.User.ID, models.RoleDesigner))
	assert.False(t, mr.Exists(utils.AuthCachePrefix+utils.HashToken(resp.Token)))

	session, err = s.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleDesigner), session.Role)

	assert.ErrorIs(t, s.ChangeRole(ctx, "missing", models.RoleDesigner), ErrUserNotFound)
}
