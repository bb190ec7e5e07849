package viewstate

import (
	"testing"

	"github.com/MovieMaker93/landscape2/pkg/models"
)

func TestStorePatchProducesNewState(t *testing.T) {
	store := NewStore(models.DefaultViewState())
	before := store.Current()

	query := "envoy"
	after := store.Patch(models.StatePatch{Query: &query})

	if after.Filters.Query != "envoy" {
		t.Errorf("patch not applied: %+v", after)
	}
	if before.Filters.Query != "" {
		t.Error("patching must not mutate the previous state value")
	}
	if !store.Current().Equal(after) {
		t.Error("store must hold the patched state")
	}
}

func TestStoreNotifiesSubscribers(t *testing.T) {
	store := NewStore(models.DefaultViewState())

	var got []models.ViewState
	store.Subscribe(func(s models.ViewState) {
		got = append(got, s)
	})

	zoom := models.ZoomLarge
	store.Patch(models.StatePatch{Zoom: &zoom})
	if len(got) != 1 || got[0].Zoom != models.ZoomLarge {
		t.Fatalf("expected one notification with the new state, got %v", got)
	}

	// A patch that changes nothing stays silent.
	store.Patch(models.StatePatch{Zoom: &zoom})
	if len(got) != 1 {
		t.Errorf("no-op patch must not notify, got %d notifications", len(got))
	}
}

func TestStoreReplace(t *testing.T) {
	store := NewStore(models.DefaultViewState())

	restored, _ := Decode("q=mesh&zoom=compact")
	store.Replace(restored)

	current := store.Current()
	if current.Filters.Query != "mesh" || current.Zoom != models.ZoomCompact {
		t.Errorf("replace not applied: %+v", current)
	}
}
