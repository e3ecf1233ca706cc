package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/jwt"
)

type fakeUserRepository struct {
	users    map[uuid.UUID]*entities.User
	sessions map[uuid.UUID]*entities.AuthSession
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:    map[uuid.UUID]*entities.User{},
		sessions: map[uuid.UUID]*entities.AuthSession{},
	}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, id string, updates map[string]interface{}) error {
	user, ok := f.users[uuid.MustParse(id)]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["name"].(string); ok {
		user.Name = v
	}
	if v, ok := updates["phone"].(string); ok {
		user.Phone = v
	}
	if v, ok := updates["address"].(string); ok {
		user.Address = v
	}
	return nil
}

func (f *fakeUserRepository) CreateSession(_ context.Context, session *entities.AuthSession) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeUserRepository) GetSessionByID(_ context.Context, jti string) (*entities.AuthSession, error) {
	id, err := uuid.Parse(jti)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	session, ok := f.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return session, nil
}

func (f *fakeUserRepository) RevokeSession(_ context.Context, jti string) error {
	session, ok := f.sessions[uuid.MustParse(jti)]
	if ok && session.RevokedAt == nil {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func newTestUserService() (UserService, *fakeUserRepository) {
	repo := newFakeUserRepository()
	return NewUserService(repo, jwt.NewJWTService()), repo
}

func registerRequest(email string) domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:     "Jane",
		Email:    email,
		Password: "longenough",
		Role:     domain.RoleDonor,
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, repo := newTestUserService()

	res, err := svc.Register(context.Background(), registerRequest("jane@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, domain.RoleDonor, res.User.Role)
	assert.Len(t, repo.sessions, 1)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Register(context.Background(), registerRequest("jane@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest("jane@example.com"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterNeverStoresPlaintextPassword(t *testing.T) {
	svc, repo := newTestUserService()

	res, err := svc.Register(context.Background(), registerRequest("jane@example.com"))
	require.NoError(t, err)

	stored := repo.users[uuid.MustParse(res.User.ID)]
	assert.NotEqual(t, "longenough", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Register(context.Background(), registerRequest("jane@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Email: "jane@example.com", Password: "wrongpass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogoutRevokesOnlyThatSession(t *testing.T) {
	svc, repo := newTestUserService()

	_, err := svc.Register(context.Background(), registerRequest("jane@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Email: "jane@example.com", Password: "longenough"})
	require.NoError(t, err)

	require.Len(t, repo.sessions, 2)
	var jtis []string
	for id := range repo.sessions {
		jtis = append(jtis, id.String())
	}

	require.NoError(t, svc.Logout(context.Background(), jtis[0]))

	active, err := svc.IsSessionActive(context.Background(), jtis[0])
	require.NoError(t, err)
	assert.False(t, active)

	active, err = svc.IsSessionActive(context.Background(), jtis[1])
	require.NoError(t, err)
	assert.True(t, active)
}

func TestIsSessionActiveUnknownJTI(t *testing.T) {
	svc, _ := newTestUserService()

	active, err := svc.IsSessionActive(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.False(t, active)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _ := newTestUserService()

	res, err := svc.Register(context.Background(), registerRequest("jane@example.com"))
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), res.User.ID, domain.UpdateProfileRequest{Phone: "0700123456"})
	require.NoError(t, err)
	assert.Equal(t, "0700123456", updated.Phone)
	assert.Equal(t, "Jane", updated.Name)
}
