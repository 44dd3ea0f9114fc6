package impl

import (
	"context"
	"testing"

	"github.com/dac-os/auth/internal/domain/entity"
	domainerrors "github.com/dac-os/auth/internal/domain/errors"
	"github.com/dac-os/auth/internal/domain/repository"
	"github.com/dac-os/auth/internal/domain/service"
	mockRepo "github.com/dac-os/auth/internal/mocks/repository"
	mockService "github.com/dac-os/auth/internal/mocks/service"
	"github.com/dac-os/auth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	profileRepo *mockRepo.MockProfileRepository
	publisher   *mockService.MockEventPublisher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	f := profileServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}
	f.service = NewProfileService(ProfileServiceParams{
		TxManager: f.txManager,
		Publisher: f.publisher,
		Clock:     newFixedClock(t, testNow),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Maybe()
	f.factory.EXPECT().AccountRepo().Return(f.accountRepo).Maybe()
	f.factory.EXPECT().ProfileRepo().Return(f.profileRepo).Maybe()

	return f
}

func TestProfileService_Create_DerivesSlug(t *testing.T) {
	f := createTestProfileService(t)

	f.profileRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.Name == "Head Professor" && p.Slug == "head-professor"
		})).
		Return(nil)

	profile, err := f.service.Create(context.Background(), usecase.ProfileInput{
		Name:        "Head Professor",
		Permissions: []string{"changeGrades", "changeGrades", "changeUser"},
	})

	require.NoError(t, err)
	assert.Equal(t, "head-professor", profile.Slug)
	assert.Equal(t, []string{"changeGrades", "changeUser"}, profile.Permissions)
}

func TestProfileService_Create_Conflict(t *testing.T) {
	f := createTestProfileService(t)

	f.profileRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(errors.Wrap(repository.ErrProfileConflict, "profile professor"))

	_, err := f.service.Create(context.Background(), usecase.ProfileInput{Name: "Professor"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestProfileService_Create_RejectsNameWithoutSlug(t *testing.T) {
	f := createTestProfileService(t)

	_, err := f.service.Create(context.Background(), usecase.ProfileInput{Name: " -- "})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_Get_NotFound(t *testing.T) {
	f := createTestProfileService(t)
	f.profileRepo.EXPECT().FindBySlug(mock.Anything, "ghost").Return(nil, repository.ErrProfileNotFound)

	_, err := f.service.Get(context.Background(), "ghost")

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_List_UsesZeroBasedPages(t *testing.T) {
	f := createTestProfileService(t)
	want := []*entity.Profile{{Slug: "professor"}}
	f.profileRepo.EXPECT().List(mock.Anything, 0, 20).Return(want, nil)

	got, err := f.service.List(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileService_Update_RederivesSlug(t *testing.T) {
	f := createTestProfileService(t)
	stored := &entity.Profile{ID: uuid.New(), Name: "Professor", Slug: "professor"}

	f.profileRepo.EXPECT().FindBySlug(mock.Anything, "professor").Return(stored, nil)
	f.profileRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.ID == stored.ID && p.Slug == "substitute-professor"
		})).
		Return(nil)

	updated, err := f.service.Update(context.Background(), "professor", usecase.ProfileInput{
		Name:        "Substitute Professor",
		Permissions: []string{"changeGrades"},
	})

	require.NoError(t, err)
	assert.Equal(t, "substitute-professor", updated.Slug)
	assert.Equal(t, []string{"changeGrades"}, updated.Permissions)
}

func TestProfileService_Update_SlugConflict(t *testing.T) {
	f := createTestProfileService(t)
	stored := &entity.Profile{ID: uuid.New(), Name: "Professor", Slug: "professor"}

	f.profileRepo.EXPECT().FindBySlug(mock.Anything, "professor").Return(stored, nil)
	f.profileRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(errors.Wrap(repository.ErrProfileConflict, "profile admin"))

	_, err := f.service.Update(context.Background(), "professor", usecase.ProfileInput{Name: "Admin"})

	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestProfileService_Delete_DetachesAccountsFirst(t *testing.T) {
	f := createTestProfileService(t)
	stored := &entity.Profile{ID: uuid.New(), Name: "Professor", Slug: "professor"}

	var order []string
	f.profileRepo.EXPECT().FindBySlug(mock.Anything, "professor").Return(stored, nil)
	f.accountRepo.EXPECT().
		ClearProfile(mock.Anything, stored.ID).
		Run(func(context.Context, uuid.UUID) { order = append(order, "clear") }).
		Return(3, nil)
	f.profileRepo.EXPECT().
		Delete(mock.Anything, stored.ID).
		Run(func(context.Context, uuid.UUID) { order = append(order, "delete") }).
		Return(nil)
	f.publisher.EXPECT().
		PublishDirectoryEvent(mock.Anything, mock.MatchedBy(func(event *service.DirectoryEvent) bool {
			return event.Type == service.EventProfileDeleted && event.ProfileSlug == "professor" && event.DetachedAccounts == 3
		})).
		Return(nil)

	err := f.service.Delete(context.Background(), "professor")

	require.NoError(t, err)
	assert.Equal(t, []string{"clear", "delete"}, order)
}

func TestProfileService_Delete_NotFound(t *testing.T) {
	f := createTestProfileService(t)
	f.profileRepo.EXPECT().FindBySlug(mock.Anything, "ghost").Return(nil, repository.ErrProfileNotFound)

	err := f.service.Delete(context.Background(), "ghost")

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	f.accountRepo.AssertNotCalled(t, "ClearProfile", mock.Anything, mock.Anything)
}

func TestProfileService_Delete_DetachFailureAbortsDelete(t *testing.T) {
	f := createTestProfileService(t)
	stored := &entity.Profile{ID: uuid.New(), Slug: "professor"}

	f.profileRepo.EXPECT().FindBySlug(mock.Anything, "professor").Return(stored, nil)
	f.accountRepo.EXPECT().ClearProfile(mock.Anything, stored.ID).Return(0, errors.New("deadlock detected"))

	err := f.service.Delete(context.Background(), "professor")

	require.Error(t, err)
	f.profileRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishDirectoryEvent", mock.Anything, mock.Anything)
}
