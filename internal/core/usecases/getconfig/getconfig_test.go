package getconfig_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sergeii/enigma/internal/core/entities/machine"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/core/usecases/getconfig"
	"github.com/sergeii/enigma/internal/testutils/factories/configfactory"
)

type MockConfigRepository struct {
	mock.Mock
	repositories.ConfigRepository
}

func (m *MockConfigRepository) Get(ctx context.Context, name string) (machine.Config, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(machine.Config), args.Error(1) // nolint: forcetypeassert
}

func TestGetConfigUseCase_OK(t *testing.T) {
	ctx := context.TODO()

	cfg := configfactory.Build(configfactory.WithName("daily"))

	mockRepo := new(MockConfigRepository)
	mockRepo.On("Get", ctx, "daily").Return(cfg, nil)

	uc := getconfig.New(mockRepo)
	got, err := uc.Execute(ctx, "daily")

	assert.NoError(t, err)
	assert.Equal(t, "daily", got.Name)
	assert.Equal(t, []int{7, 5, 3}, got.Rotors)
	assert.Equal(t, []int{18, 10, 12}, got.RotorInit)
	assert.Equal(t, []int{1, 1, 5}, got.RotorSetting)
	assert.Equal(t, "B", got.ReflectorLetter)
	assert.Len(t, got.PlugboardSettings, 10)

	mockRepo.AssertExpectations(t)
}

func TestGetConfigUseCase_NotFound(t *testing.T) {
	ctx := context.TODO()

	mockRepo := new(MockConfigRepository)
	mockRepo.On("Get", ctx, "unknown").Return(machine.Blank, repositories.ErrConfigNotFound)

	uc := getconfig.New(mockRepo)
	_, err := uc.Execute(ctx, "unknown")

	assert.ErrorIs(t, err, getconfig.ErrConfigNotFound)

	mockRepo.AssertExpectations(t)
}

func TestGetConfigUseCase_RepoError(t *testing.T) {
	ctx := context.TODO()

	mockRepo := new(MockConfigRepository)
	mockRepo.On("Get", ctx, "daily").Return(machine.Blank, errors.New("connection refused"))

	uc := getconfig.New(mockRepo)
	_, err := uc.Execute(ctx, "daily")

	assert.ErrorIs(t, err, getconfig.ErrUnableToObtainConfig)

	mockRepo.AssertExpectations(t)
}
