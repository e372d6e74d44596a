package configs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/core/entities/machine"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/persistence/file/configs"
	tu "github.com/sergeii/enigma/internal/testutils"
	"github.com/sergeii/enigma/internal/testutils/factories/configfactory"
)

func TestConfigsFileRepo_Save_WritesStoredFormat(t *testing.T) {
	ctx := context.TODO()
	dir := t.TempDir()
	c := clockwork.NewFakeClock()
	repo := configs.New(dir, c)

	cfg := configfactory.Build(configfactory.WithName("test"))
	saved, err := repo.Save(ctx, cfg)
	require.NoError(t, err)
	assert.True(t, c.Now().Equal(saved.SavedAt))

	// the file uses the field names understood by every enigma tool
	data, err := os.ReadFile(filepath.Join(dir, "enigma_test"))
	require.NoError(t, err)
	var stored map[string]any
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, []any{7.0, 5.0, 3.0}, stored["rotors"])
	assert.Equal(t, []any{18.0, 10.0, 12.0}, stored["rotor_init"])
	assert.Equal(t, []any{1.0, 1.0, 5.0}, stored["rotor_setting"])
	assert.Equal(t, "B", stored["reflector_letter"])
	assert.Equal(t, "Q", stored["plugboard_settings"].(map[string]any)["B"]) // nolint: forcetypeassert
	assert.Equal(t, "test", stored["name"])

	// no temporary files are left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestConfigsFileRepo_Get(t *testing.T) {
	ctx := context.TODO()
	c := clockwork.NewFakeClock()
	repo := configs.New(t.TempDir(), c)

	cfg := configfactory.Build(configfactory.WithName("test"))
	tu.Must(repo.Save(ctx, cfg))

	got, err := repo.Get(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, "test", got.Name)
	assert.Equal(t, cfg.Rotors, got.Rotors)
	assert.Equal(t, cfg.RotorInit, got.RotorInit)
	assert.Equal(t, cfg.RotorSetting, got.RotorSetting)
	assert.Equal(t, cfg.ReflectorLetter, got.ReflectorLetter)
	assert.Equal(t, cfg.PlugboardSettings, got.PlugboardSettings)
	assert.True(t, c.Now().Equal(got.SavedAt))
}

func TestConfigsFileRepo_Get_KeepsPlugboardOrder(t *testing.T) {
	ctx := context.TODO()
	dir := t.TempDir()
	repo := configs.New(dir, clockwork.NewFakeClock())

	tu.Must(repo.Save(ctx, configfactory.Build(configfactory.WithPlugboard("CA", "AB"))))

	data, err := os.ReadFile(filepath.Join(dir, "enigma_test"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"plugboard_settings":{"C":"A","A":"B"}`)

	got, err := repo.Get(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, machine.Plugboard{{From: "C", To: "A"}, {From: "A", To: "B"}}, got.PlugboardSettings)
}

func TestConfigsFileRepo_Get_NotFound(t *testing.T) {
	repo := configs.New(t.TempDir(), clockwork.NewFakeClock())
	_, err := repo.Get(context.TODO(), "unknown")
	assert.ErrorIs(t, err, repositories.ErrConfigNotFound)
}

func TestConfigsFileRepo_Get_Legacy(t *testing.T) {
	ctx := context.TODO()
	dir := t.TempDir()
	repo := configs.New(dir, clockwork.NewFakeClock())

	legacy := `{"rotors": [7, 5, 3], "rotor_init": [18, 10, 12], "rotor_setting": [1, 1, 5], ` +
		`"reflector_letter": "B", "plugboard_settings": {"B": "Q", "C": "R"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enigma_old"), []byte(legacy), 0o600))

	got, err := repo.Get(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, "old", got.Name)
	assert.Equal(t, []int{7, 5, 3}, got.Rotors)
	assert.Equal(t, machine.Plugboard{{From: "B", To: "Q"}, {From: "C", To: "R"}}, got.PlugboardSettings)
	assert.False(t, got.SavedAt.IsZero())
}

func TestConfigsFileRepo_Get_Corrupted(t *testing.T) {
	dir := t.TempDir()
	repo := configs.New(dir, clockwork.NewFakeClock())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enigma_bad"), []byte("{"), 0o600))

	_, err := repo.Get(context.TODO(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repositories.ErrConfigNotFound)
}

func TestConfigsFileRepo_Save_Replaces(t *testing.T) {
	ctx := context.TODO()
	repo := configs.New(t.TempDir(), clockwork.NewFakeClock())

	tu.Must(repo.Save(ctx, configfactory.Build(configfactory.WithName("test"), configfactory.WithReflector("B"))))
	tu.Must(repo.Save(ctx, configfactory.Build(configfactory.WithName("test"), configfactory.WithReflector("C"))))

	got, err := repo.Get(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, "C", got.ReflectorLetter)
	assert.Equal(t, 1, tu.Must(repo.Count(ctx)))
}

func TestConfigsFileRepo_Save_CreatesDir(t *testing.T) {
	ctx := context.TODO()
	dir := filepath.Join(t.TempDir(), "nested", "configs")
	repo := configs.New(dir, clockwork.NewFakeClock())

	_, err := repo.Save(ctx, configfactory.Build(configfactory.WithName("test")))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "enigma_test"))
	assert.NoError(t, err)
}

func TestConfigsFileRepo_Save_SluggifiesName(t *testing.T) {
	ctx := context.TODO()
	dir := t.TempDir()
	repo := configs.New(dir, clockwork.NewFakeClock())

	tu.Must(repo.Save(ctx, configfactory.Build(configfactory.WithName("../Daily Key"))))

	_, err := os.Stat(filepath.Join(dir, "enigma_daily-key"))
	require.NoError(t, err)

	got, err := repo.Get(ctx, "../Daily Key")
	require.NoError(t, err)
	assert.Equal(t, "../Daily Key", got.Name)
}

func TestConfigsFileRepo_Remove(t *testing.T) {
	ctx := context.TODO()
	repo := configs.New(t.TempDir(), clockwork.NewFakeClock())

	tu.Must(repo.Save(ctx, configfactory.Build(configfactory.WithName("test"))))

	err := repo.Remove(ctx, "test")
	require.NoError(t, err)

	_, err = repo.Get(ctx, "test")
	assert.ErrorIs(t, err, repositories.ErrConfigNotFound)

	err = repo.Remove(ctx, "test")
	assert.ErrorIs(t, err, repositories.ErrConfigNotFound)
}

func TestConfigsFileRepo_List(t *testing.T) {
	ctx := context.TODO()
	dir := t.TempDir()
	c := clockwork.NewFakeClock()
	repo := configs.New(dir, c)

	tu.Must(repo.Save(ctx, configfactory.Build(configfactory.WithName("zulu"))))
	c.Advance(time.Second)
	tu.Must(repo.Save(ctx, configfactory.Build(configfactory.WithName("alpha"))))
	c.Advance(time.Second)
	tu.Must(repo.Save(ctx, configfactory.Build(configfactory.WithName("mike"))))

	// files that are not configs are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enigma_broken"), []byte("nope"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "enigma_dir"), 0o700))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, names)
	assert.Equal(t, 3, tu.Must(repo.Count(ctx)))
}

func TestConfigsFileRepo_List_MissingDir(t *testing.T) {
	repo := configs.New(filepath.Join(t.TempDir(), "missing"), clockwork.NewFakeClock())
	items, err := repo.List(context.TODO())
	require.NoError(t, err)
	assert.Empty(t, items)
}
