package dashboard

import (
	"context"
	"strings"
	"testing"

	"nativoseo/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (b *fakeBackend) activate(ids ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, id := range ids {
		b.active[id] = client.ActiveLocation{AccountID: "acc-1", LocationID: id}
	}
}

func loadedLocations(t *testing.T, h *harness) *LocationsPage {
	t.Helper()

	page := h.app.Locations("accounts/acc-1")
	require.NoError(t, page.Load(context.Background()))

	return page
}

func TestLocationsPage_ActivateThenDeactivateRestoresActiveSet(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.activate("loc-2")

	page := loadedLocations(t, h)
	before := h.store.ActiveLocations()
	require.Equal(t, []string{"loc-2"}, before)

	require.NoError(t, page.Activate(context.Background(), "loc-1"))
	assert.Equal(t, []string{"loc-1", "loc-2"}, h.store.ActiveLocations())
	assert.Equal(t, msgLocationActivated, page.Notice.Text)

	require.NoError(t, page.Deactivate(context.Background(), "loc-1"))
	assert.Equal(t, before, h.store.ActiveLocations())
	assert.ElementsMatch(t, []string{"loc-2"}, h.backend.ActiveIDs())
	assert.Equal(t, msgLocationDeactivated, page.Notice.Text)
}

func TestLocationsPage_OneActiveCardOfTwo(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.activate("loc-1")

	page := loadedLocations(t, h)
	require.Len(t, page.Cards, 2)

	assert.True(t, page.Cards[0].Active)
	assert.True(t, page.Cards[0].ActionsEnabled())
	assert.Equal(t, "Abierto", page.Cards[0].StatusLabel)

	assert.False(t, page.Cards[1].Active)
	assert.False(t, page.Cards[1].ActionsEnabled())
	assert.Equal(t, "Cerrado temporalmente", page.Cards[1].StatusLabel)

	var out strings.Builder
	page.Render(&out)
	assert.Equal(t, 1, strings.Count(out.String(), "[Activa]"))
	assert.Equal(t, 1, strings.Count(out.String(), "[Inactiva]"))
}

func TestLocationsPage_FailedWriteKeepsState(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.failLocations["loc-1"] = true

	page := loadedLocations(t, h)

	err := page.Activate(context.Background(), "loc-1")
	require.Error(t, err)

	assert.False(t, page.Cards[0].Active)
	assert.Empty(t, h.store.ActiveLocations())
	assert.Equal(t, msgLocationFailed, page.Notice.Text)
}

func TestLocationsPage_ActivateAllKeepsOnlyAcknowledged(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.failLocations["loc-2"] = true

	page := loadedLocations(t, h)

	err := page.ActivateAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loc-2")

	assert.Equal(t, []string{"loc-1"}, h.store.ActiveLocations())
	assert.True(t, page.Cards[0].Active)
	assert.False(t, page.Cards[1].Active)
	assert.Equal(t, msgSomeFailed, page.Notice.Text)
}

func TestLocationsPage_DeactivateAll(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.activate("loc-1", "loc-2")

	page := loadedLocations(t, h)
	require.NoError(t, page.DeactivateAll(context.Background()))

	assert.Empty(t, h.store.ActiveLocations())
	assert.Empty(t, h.backend.ActiveIDs())
	assert.False(t, page.Cards[0].Active)
	assert.False(t, page.Cards[1].Active)
	assert.Equal(t, msgAllDeactivated, page.Notice.Text)
}

func TestLocationsPage_UnknownLocation(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	page := loadedLocations(t, h)

	assert.Error(t, page.Activate(context.Background(), "loc-404"))
	assert.Nil(t, page.Notice)
}

func TestActiveSet_LoadUsesMirrorWhenBackendFails(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	require.NoError(t, h.store.SetActiveLocations([]string{"loc-9"}))
	h.backend.Fail("GET /locations/active", 503)

	active, err := h.app.Active().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"loc-9": true}, active)

	h.backend.Recover("GET /locations/active")
	h.backend.activate("loc-1")

	active, err = h.app.Active().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"loc-1": true}, active)
	assert.Equal(t, []string{"loc-1"}, h.store.ActiveLocations())
}
