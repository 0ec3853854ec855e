package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"booksy-collection/internal/catalog"
	"booksy-collection/internal/config"
	"booksy-collection/internal/navigation"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	dir := t.TempDir()
	return config.Config{
		DataFile:     filepath.Join(dir, "data.json"),
		Background:   filepath.Join(dir, "images", "bg.jpg"),
		SplashDelay:  5 * time.Second,
		WindowWidth:  700,
		WindowHeight: 600,
		LogLevel:     "info",
	}
}

func newTestApplication(t *testing.T, cfg config.Config) (*Application, *[]func()) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	var pending []func()
	application, err := NewApplicationWithApp(a, cfg, nil, func(_ time.Duration, fn func()) {
		pending = append(pending, fn)
	})
	require.NoError(t, err)
	return application, &pending
}

func TestNewApplicationStartsOnSplash(t *testing.T) {
	application, pending := newTestApplication(t, testConfig(t))

	assert.Equal(t, WindowName, application.Window().Title())
	require.NoError(t, application.Start())
	assert.Equal(t, navigation.Splash, application.Controller().State().Screen)
	require.Len(t, *pending, 1)

	(*pending)[0]()
	assert.Equal(t, navigation.LanguageSelect, application.Controller().State().Screen)
}

func TestNewApplicationLoadsExistingCatalog(t *testing.T) {
	cfg := testConfig(t)
	store := catalog.NewStore(cfg.DataFile, nil)
	c := catalog.New()
	require.NoError(t, store.Submit(c, "Non-Fiction", "Memoir", catalog.Book{Title: "Educated"}))

	application, _ := newTestApplication(t, cfg)
	assert.Equal(t, 1, application.Controller().Catalog().Count())
	assert.Contains(t, application.aboutText(), "Books: 1")
}

func TestNewApplicationRejectsCorruptCatalog(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.DataFile, []byte("{broken"), 0644))

	a := test.NewApp()
	defer a.Quit()
	_, err := NewApplicationWithApp(a, cfg, nil, func(time.Duration, func()) {})
	assert.Error(t, err)
}

func TestLifecycleShutdownOnce(t *testing.T) {
	application, _ := newTestApplication(t, testConfig(t))
	l := application.Lifecycle()

	assert.False(t, l.IsShutdown())
	l.Shutdown()
	l.Shutdown()
	assert.True(t, l.IsShutdown())
}

func TestMenus(t *testing.T) {
	application, _ := newTestApplication(t, testConfig(t))
	menu := application.Window().MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 2)
	assert.Equal(t, "File", menu.Items[0].Label)
	assert.Equal(t, "Help", menu.Items[1].Label)
}
