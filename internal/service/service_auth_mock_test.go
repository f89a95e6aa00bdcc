package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/mock"
	"github.com/MKhiriev/ar-fit/internal/service"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/models"
)

func TestAuthService_Login_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	users.EXPECT().
		FindByEmailAndPassword(gomock.Any(), "ann@example.com", "secret").
		Return(models.User{}, kv.ErrUnavailable)

	svc := service.NewAuthService(users, logger.Nop())
	_, err := svc.Login(context.Background(), service.NewSession(sessions, users), "ann@example.com", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, kv.ErrUnavailable)
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_Login_WritesFlagThenSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	found := models.User{ID: "u-1", Email: "ann@example.com", Password: "secret"}
	loggedIn := found
	loggedIn.LoggedIn = true

	gomock.InOrder(
		users.EXPECT().FindByEmailAndPassword(gomock.Any(), "ann@example.com", "secret").Return(found, nil),
		sessions.EXPECT().Current(gomock.Any()).Return(models.User{}, store.ErrNoSession),
		users.EXPECT().Update(gomock.Any(), "u-1", store.Fields{"loggedIn": true}).Return(loggedIn, nil),
		users.EXPECT().FindByID(gomock.Any(), "u-1").Return(loggedIn, nil),
		sessions.EXPECT().SetCurrent(gomock.Any(), loggedIn).Return(nil),
	)

	svc := service.NewAuthService(users, logger.Nop())
	got, err := svc.Login(context.Background(), service.NewSession(sessions, users), "ann@example.com", "secret")

	require.NoError(t, err)
	assert.True(t, got.LoggedIn)
}

func TestAuthService_Login_ConflictOnFlagWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	users.EXPECT().FindByEmailAndPassword(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{ID: "u-1"}, nil)
	sessions.EXPECT().Current(gomock.Any()).Return(models.User{}, store.ErrNoSession)
	users.EXPECT().Update(gomock.Any(), "u-1", gomock.Any()).
		Return(models.User{}, store.ErrConflict)

	svc := service.NewAuthService(users, logger.Nop())
	session := service.NewSession(sessions, users)
	_, err := svc.Login(context.Background(), session, "a@b.c", "x")

	assert.ErrorIs(t, err, store.ErrConflict)
	assert.False(t, session.IsAuthenticated())
}

func TestAuthService_Login_LogsOutPreviousSessionUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	previous := models.User{ID: "u-1", Email: "ann@example.com", LoggedIn: true}
	found := models.User{ID: "u-2", Email: "bob@example.com"}
	loggedIn := found
	loggedIn.LoggedIn = true

	gomock.InOrder(
		users.EXPECT().FindByEmailAndPassword(gomock.Any(), "bob@example.com", "pw").Return(found, nil),
		sessions.EXPECT().Current(gomock.Any()).Return(previous, nil),
		users.EXPECT().Update(gomock.Any(), "u-1", store.Fields{"loggedIn": false}).Return(models.User{ID: "u-1"}, nil),
		users.EXPECT().Update(gomock.Any(), "u-2", store.Fields{"loggedIn": true}).Return(loggedIn, nil),
		users.EXPECT().FindByID(gomock.Any(), "u-2").Return(loggedIn, nil),
		sessions.EXPECT().SetCurrent(gomock.Any(), loggedIn).Return(nil),
	)

	svc := service.NewAuthService(users, logger.Nop())
	got, err := svc.Login(context.Background(), service.NewSession(sessions, users), "bob@example.com", "pw")

	require.NoError(t, err)
	assert.Equal(t, "u-2", got.ID)
}

func TestAuthService_Login_PreviousUserWriteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	users.EXPECT().FindByEmailAndPassword(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{ID: "u-2"}, nil)
	sessions.EXPECT().Current(gomock.Any()).Return(models.User{ID: "u-1"}, nil)
	users.EXPECT().Update(gomock.Any(), "u-1", store.Fields{"loggedIn": false}).
		Return(models.User{}, store.ErrConflict)

	svc := service.NewAuthService(users, logger.Nop())
	session := service.NewSession(sessions, users)
	_, err := svc.Login(context.Background(), session, "bob@example.com", "pw")

	assert.ErrorIs(t, err, store.ErrConflict)
	user, ok := session.User()
	require.True(t, ok)
	assert.Equal(t, "u-1", user.ID)
}

func TestAuthService_Logout_StoreFailureKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	sessions.EXPECT().Current(gomock.Any()).Return(models.User{ID: "u-1"}, nil)
	users.EXPECT().Update(gomock.Any(), "u-1", store.Fields{"loggedIn": false}).
		Return(models.User{}, errors.New("disk gone"))

	svc := service.NewAuthService(users, logger.Nop())
	session := service.NewSession(sessions, users)

	err := svc.Logout(context.Background(), session)
	require.Error(t, err)
	assert.True(t, session.IsAuthenticated())
}
