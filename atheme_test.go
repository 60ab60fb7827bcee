package atheme_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiortechnologyinc/atheme"
	"github.com/interiortechnologyinc/atheme/core/locale"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupCatalog builds a catalog directory with one German catalog file and
// returns its path.
func setupCatalog(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "de"), 0o755))

	content := `"Channel is frozen" = "Kanal ist eingefroren"` + "\n" +
		`'Channel \2%s\2 is not registered.' = 'Kanal \2%s\2 ist nicht registriert.'` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de", "messages.toml"), []byte(content), 0o644))

	return dir
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("assembles a working core with defaults", func(t *testing.T) {
		t.Parallel()

		core, err := atheme.NewFromConfig(atheme.Config{AppName: "test", Env: "development"},
			atheme.WithLogger(quietLogger()))
		require.NoError(t, err)

		require.NotNil(t, core.InternalTable())
		require.NotNil(t, core.LanguageTable())
		require.NotNil(t, core.Languages())

		lang, ok := core.Languages().Find(locale.DefaultLanguage)
		require.True(t, ok)
		assert.True(t, lang.Valid())

		assert.Equal(t, "untouched", core.Translate("untouched"))
	})

	t.Run("discovers languages from the catalog dir", func(t *testing.T) {
		t.Parallel()

		dir := setupCatalog(t)
		core, err := atheme.NewFromConfig(atheme.Config{
			Locale: locale.Config{CatalogDir: dir},
		}, atheme.WithLogger(quietLogger()))
		require.NoError(t, err)

		lang, ok := core.Languages().Find("de")
		require.True(t, ok)
		assert.True(t, lang.Valid())
		assert.Equal(t, "en de", core.Languages().ValidNames())
	})

	t.Run("loads the startup language catalog", func(t *testing.T) {
		t.Parallel()

		dir := setupCatalog(t)
		core, err := atheme.NewFromConfig(atheme.Config{
			Language: "de",
			Locale:   locale.Config{CatalogDir: dir},
		}, atheme.WithLogger(quietLogger()))
		require.NoError(t, err)

		assert.Equal(t, "Kanal ist eingefroren", core.Translate("Channel is frozen"))
		assert.Equal(t, "Kanal \x02%s\x02 ist nicht registriert.",
			core.Translate("Channel \x02%s\x02 is not registered."))
	})

	t.Run("builtin startup language loads nothing", func(t *testing.T) {
		t.Parallel()

		core, err := atheme.NewFromConfig(atheme.Config{Language: locale.DefaultLanguage},
			atheme.WithLogger(quietLogger()))
		require.NoError(t, err)
		assert.Equal(t, 0, core.LanguageTable().Len())
	})

	t.Run("unknown startup language fails construction", func(t *testing.T) {
		t.Parallel()

		_, err := atheme.NewFromConfig(atheme.Config{Language: "xx"},
			atheme.WithLogger(quietLogger()))
		require.Error(t, err)
		assert.ErrorIs(t, err, atheme.ErrUnknownLanguage)
	})

	t.Run("custom registry overrides discovery", func(t *testing.T) {
		t.Parallel()

		registry, err := locale.New()
		require.NoError(t, err)
		registry.Add("tok")

		core, err := atheme.NewFromConfig(atheme.Config{},
			atheme.WithLogger(quietLogger()),
			atheme.WithRegistry(registry))
		require.NoError(t, err)

		assert.Same(t, registry, core.Languages())
		_, ok := core.Languages().Find("tok")
		assert.True(t, ok)
	})

	t.Run("custom logger is used as is", func(t *testing.T) {
		t.Parallel()

		log := quietLogger()
		core, err := atheme.NewFromConfig(atheme.Config{}, atheme.WithLogger(log))
		require.NoError(t, err)
		assert.Same(t, log, core.Logger())
	})

	t.Run("rejects nil option values", func(t *testing.T) {
		t.Parallel()

		_, err := atheme.NewFromConfig(atheme.Config{}, atheme.WithLogger(nil))
		assert.Error(t, err)

		_, err = atheme.NewFromConfig(atheme.Config{}, atheme.WithRegistry(nil))
		assert.Error(t, err)

		_, err = atheme.NewFromConfig(atheme.Config{}, atheme.WithLoader(nil))
		assert.Error(t, err)
	})
}

func TestCoreTranslate(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *atheme.Core {
		t.Helper()
		core, err := atheme.NewFromConfig(atheme.Config{}, atheme.WithLogger(quietLogger()))
		require.NoError(t, err)
		return core
	}

	t.Run("resolves internal identifiers through the language table", func(t *testing.T) {
		t.Parallel()

		core := setup(t)
		core.InternalTable().Set("CMD_FREEZE", "Channel is frozen")
		core.LanguageTable().Set("Channel is frozen", "Kanal ist eingefroren")

		assert.Equal(t, "Kanal ist eingefroren", core.Translate("CMD_FREEZE"))
	})

	t.Run("returns input when only the internal stage matches", func(t *testing.T) {
		t.Parallel()

		core := setup(t)
		core.InternalTable().Set("CMD_FREEZE", "Channel is frozen")

		assert.Equal(t, "CMD_FREEZE", core.Translate("CMD_FREEZE"))
	})

	t.Run("language table decodes escapes on insert", func(t *testing.T) {
		t.Parallel()

		core := setup(t)
		core.LanguageTable().Set(`Use \2HELP\2 for help`, `Benutze \2HELP\2 fuer Hilfe`)

		assert.Equal(t, "Benutze \x02HELP\x02 fuer Hilfe",
			core.Translate("Use \x02HELP\x02 for help"))
	})
}

func TestLoadLanguage(t *testing.T) {
	t.Parallel()

	t.Run("loads a valid language on demand", func(t *testing.T) {
		t.Parallel()

		dir := setupCatalog(t)
		core, err := atheme.NewFromConfig(atheme.Config{
			Locale: locale.Config{CatalogDir: dir},
		}, atheme.WithLogger(quietLogger()))
		require.NoError(t, err)

		require.Equal(t, 0, core.LanguageTable().Len())
		require.NoError(t, core.LoadLanguage("de"))
		assert.Equal(t, 2, core.LanguageTable().Len())
		assert.Equal(t, "Kanal ist eingefroren", core.Translate("Channel is frozen"))
	})

	t.Run("rejects unregistered language", func(t *testing.T) {
		t.Parallel()

		core, err := atheme.NewFromConfig(atheme.Config{}, atheme.WithLogger(quietLogger()))
		require.NoError(t, err)

		assert.ErrorIs(t, core.LoadLanguage("xx"), atheme.ErrUnknownLanguage)
	})

	t.Run("rejects language without a catalog", func(t *testing.T) {
		t.Parallel()

		core, err := atheme.NewFromConfig(atheme.Config{}, atheme.WithLogger(quietLogger()))
		require.NoError(t, err)

		core.Languages().Add("tok")
		assert.ErrorIs(t, core.LoadLanguage("tok"), atheme.ErrNoCatalog)
	})

	t.Run("rejects load without a configured catalog dir", func(t *testing.T) {
		t.Parallel()

		dir := setupCatalog(t)
		registry, err := locale.New(locale.WithCatalogDir(dir))
		require.NoError(t, err)

		core, err := atheme.NewFromConfig(atheme.Config{},
			atheme.WithLogger(quietLogger()),
			atheme.WithRegistry(registry))
		require.NoError(t, err)

		assert.ErrorIs(t, core.LoadLanguage("de"), atheme.ErrNoCatalogDir)
	})

	t.Run("reports broken catalog files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "de"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "de", "broken.toml"),
			[]byte("= not toml\n"), 0o644))

		core, err := atheme.NewFromConfig(atheme.Config{
			Locale: locale.Config{CatalogDir: dir},
		}, atheme.WithLogger(quietLogger()))
		require.NoError(t, err)

		err = core.LoadLanguage("de")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load language de")
	})
}

func TestNew(t *testing.T) {
	// New loads Config from the process environment, so this test must not
	// run in parallel with anything mutating it.
	dir := setupCatalog(t)
	t.Setenv("APP_NAME", "atheme-test")
	t.Setenv("APP_ENV", "development")
	t.Setenv("APP_LANGUAGE", "de")
	t.Setenv("LOCALE_CATALOG_DIR", dir)

	core, err := atheme.New(atheme.WithLogger(quietLogger()))
	require.NoError(t, err)

	lang, ok := core.Languages().Find("de")
	require.True(t, ok)
	assert.True(t, lang.Valid())
	assert.Equal(t, "Kanal ist eingefroren", core.Translate("Channel is frozen"))
}
