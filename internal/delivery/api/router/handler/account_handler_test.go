package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dac-os/auth/internal/domain/entity"
	domainerrors "github.com/dac-os/auth/internal/domain/errors"
	mockUsecase "github.com/dac-os/auth/internal/mocks/usecase"
	"github.com/dac-os/auth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountHandlerFixtures struct {
	echo      *echo.Echo
	handler   *AccountHandler
	accountUC *mockUsecase.MockAccountUsecase
	sessionUC *mockUsecase.MockSessionUsecase
}

func createTestAccountHandler(t *testing.T, session *entity.Account) accountHandlerFixtures {
	f := accountHandlerFixtures{
		echo:      newTestEcho(),
		accountUC: mockUsecase.NewMockAccountUsecase(t),
		sessionUC: mockUsecase.NewMockSessionUsecase(t),
	}
	f.handler = NewAccountHandler(AccountHandlerParams{
		AccountUC: f.accountUC,
		SessionUC: f.sessionUC,
		Logger:    newDiscardLogger(),
	})

	g := f.echo.Group("/users", withSession(session))
	g.POST("", f.handler.Create)
	g.GET("", f.handler.List)
	g.GET("/me", f.handler.GetMe)
	g.PUT("/me", f.handler.UpdateMe)
	g.POST("/me/session", f.handler.Login)
	g.GET("/:registry", f.handler.Get)

	return f
}

func basicAuth(user, password string) map[string]string {
	return map[string]string{
		echo.HeaderAuthorization: "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password)),
	}
}

func TestAccountHandler_Create(t *testing.T) {
	f := createTestAccountHandler(t, nil)

	f.accountUC.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(in usecase.CreateAccountInput) bool {
			return in.Password == "secret" && in.ProfileSlug == "professor" && in.Name == "Ada" && len(in.Phones) == 1
		})).
		Return(&entity.Account{ID: uuid.New(), Registry: "2026000014"}, nil)

	rec := doRequest(f.echo, http.MethodPost, "/users",
		`{"password":"secret","profile":"professor","name":"Ada","phones":["5511999990000"]}`, nil)

	requireStatus(t, rec, http.StatusCreated)
	var data CreateAccountResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, "2026000014", data.AcademicRegistry)
}

func TestAccountHandler_Create_ValidationFailure(t *testing.T) {
	f := createTestAccountHandler(t, nil)

	rec := doRequest(f.echo, http.MethodPost, "/users", `{"name":"Ada","email":"nope"}`, nil)

	requireStatus(t, rec, http.StatusBadRequest)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"password": "required", "email": "email"}, env.Error.Details)
}

func TestAccountHandler_Create_RegistryConflict(t *testing.T) {
	f := createTestAccountHandler(t, nil)
	f.accountUC.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrIdentifierConflict.WrapMessage("gave up"))

	rec := doRequest(f.echo, http.MethodPost, "/users", `{"password":"secret"}`, nil)

	requireStatus(t, rec, http.StatusConflict)
	assert.Equal(t, "IDENTIFIER_CONFLICT", decodeEnvelope(t, rec).Error.Code)
}

func TestAccountHandler_List_PassesPage(t *testing.T) {
	f := createTestAccountHandler(t, nil)
	f.accountUC.EXPECT().List(mock.Anything, 3).Return([]*entity.Account{{Registry: "2026000014", PasswordHash: "secret-hash"}}, nil)

	rec := doRequest(f.echo, http.MethodGet, "/users?page=3", "", nil)

	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `"academicRegistry":"2026000014"`)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestAccountHandler_Get_NotFound(t *testing.T) {
	f := createTestAccountHandler(t, nil)
	f.accountUC.EXPECT().GetByRegistry(mock.Anything, "abc").Return(nil, domainerrors.ErrAccountNotFound)

	rec := doRequest(f.echo, http.MethodGet, "/users/abc", "", nil)

	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestAccountHandler_GetMe(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := createTestAccountHandler(t, nil)

		rec := doRequest(f.echo, http.MethodGet, "/users/me", "", nil)

		requireStatus(t, rec, http.StatusForbidden)
	})

	t.Run("session account", func(t *testing.T) {
		professor := &entity.Profile{Name: "Professor", Slug: "professor", Permissions: []string{"changeGrades"}}
		f := createTestAccountHandler(t, &entity.Account{Registry: "2026000014", Name: "Ada", Profile: professor})

		rec := doRequest(f.echo, http.MethodGet, "/users/me", "", nil)

		requireStatus(t, rec, http.StatusOK)
		var data AccountResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
		assert.Equal(t, "2026000014", data.AcademicRegistry)
		require.NotNil(t, data.Profile)
		assert.Equal(t, "professor", data.Profile.Slug)
	})
}

func TestAccountHandler_UpdateMe(t *testing.T) {
	me := &entity.Account{ID: uuid.New(), Registry: "2026000014"}
	f := createTestAccountHandler(t, me)

	f.accountUC.EXPECT().
		UpdateMe(mock.Anything, me, mock.MatchedBy(func(in usecase.UpdateAccountInput) bool {
			return in.Name == "Ada Lovelace" && in.Password == ""
		})).
		Return(&entity.Account{ID: me.ID, Registry: "2026000014", Name: "Ada Lovelace"}, nil)

	rec := doRequest(f.echo, http.MethodPut, "/users/me", `{"name":"Ada Lovelace","academicRegistry":"2026999998"}`, nil)

	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `"academicRegistry":"2026000014"`)
}

func TestAccountHandler_Login(t *testing.T) {
	t.Run("valid credentials return a bare token", func(t *testing.T) {
		f := createTestAccountHandler(t, nil)
		f.sessionUC.EXPECT().
			Login(mock.Anything, usecase.LoginInput{Registry: "2026000014", Password: "secret"}).
			Return("afe924ee6c6ea3368b2ab4332676078fe883311c", nil)

		rec := doRequest(f.echo, http.MethodPost, "/users/me/session", "", basicAuth("2026000014", "secret"))

		requireStatus(t, rec, http.StatusCreated)
		assert.JSONEq(t, `{"token":"afe924ee6c6ea3368b2ab4332676078fe883311c"}`, rec.Body.String())
	})

	t.Run("wrong credentials", func(t *testing.T) {
		f := createTestAccountHandler(t, nil)
		f.sessionUC.EXPECT().Login(mock.Anything, mock.Anything).Return("", domainerrors.ErrInvalidCredentials)

		rec := doRequest(f.echo, http.MethodPost, "/users/me/session", "", basicAuth("2026000014", "guess"))

		requireStatus(t, rec, http.StatusUnauthorized)
	})

	t.Run("missing header", func(t *testing.T) {
		f := createTestAccountHandler(t, nil)

		rec := doRequest(f.echo, http.MethodPost, "/users/me/session", "", nil)

		requireStatus(t, rec, http.StatusUnauthorized)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderWWWAuthenticate))
	})
}
