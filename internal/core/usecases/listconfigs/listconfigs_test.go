package listconfigs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/core/entities/machine"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/core/usecases/listconfigs"
	"github.com/sergeii/enigma/internal/testutils/factories/configfactory"
)

type MockConfigRepository struct {
	mock.Mock
	repositories.ConfigRepository
}

func (m *MockConfigRepository) List(ctx context.Context) ([]machine.Config, error) {
	args := m.Called(ctx)
	return args.Get(0).([]machine.Config), args.Error(1) // nolint: forcetypeassert
}

func TestListConfigsUseCase_OK(t *testing.T) {
	ctx := context.TODO()

	items := []machine.Config{
		configfactory.Build(configfactory.WithName("first")),
		configfactory.Build(configfactory.WithName("second")),
	}

	mockRepo := new(MockConfigRepository)
	mockRepo.On("List", ctx).Return(items, nil)

	uc := listconfigs.New(mockRepo)
	got, err := uc.Execute(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)

	mockRepo.AssertExpectations(t)
}

func TestListConfigsUseCase_Empty(t *testing.T) {
	ctx := context.TODO()

	mockRepo := new(MockConfigRepository)
	mockRepo.On("List", ctx).Return([]machine.Config{}, nil)

	uc := listconfigs.New(mockRepo)
	got, err := uc.Execute(ctx)

	require.NoError(t, err)
	assert.Empty(t, got)

	mockRepo.AssertExpectations(t)
}

func TestListConfigsUseCase_RepoError(t *testing.T) {
	ctx := context.TODO()

	repoErr := errors.New("permission denied")
	mockRepo := new(MockConfigRepository)
	mockRepo.On("List", ctx).Return([]machine.Config(nil), repoErr)

	uc := listconfigs.New(mockRepo)
	_, err := uc.Execute(ctx)

	assert.ErrorIs(t, err, listconfigs.ErrUnableToListConfigs)
	assert.ErrorIs(t, err, repoErr)

	mockRepo.AssertExpectations(t)
}
