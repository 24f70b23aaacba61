package assets

import (
	"testing"

	"storystream-pipeline-server/modules/common/model"
)

func asset(kind model.AssetKind) *model.Asset {
	return &model.Asset{Kind: kind, MimeType: "application/octet-stream", Data: []byte{1}}
}

func TestBundleCompleteness(t *testing.T) {
	store := NewStore()
	session := "s1"

	if store.Ready(session) {
		t.Error("empty bundle should not be ready")
	}

	store.Set(session, asset(model.AssetAudio))
	store.Set(session, asset(model.AssetImage))
	if store.Ready(session) {
		t.Error("bundle with audio and thumbnail only should not be ready")
	}

	store.Set(session, asset(model.AssetVideo))
	if !store.Ready(session) {
		t.Error("bundle with all three kinds should be ready")
	}

	if kinds := store.Kinds(session); len(kinds) != 3 {
		t.Errorf("Kinds = %v, want all three", kinds)
	}
}

func TestBundleIsolationBetweenSessions(t *testing.T) {
	store := NewStore()

	store.Set("a", asset(model.AssetAudio))
	store.Set("a", asset(model.AssetVideo))
	store.Set("a", asset(model.AssetImage))
	store.Set("b", asset(model.AssetAudio))

	if !store.Ready("a") {
		t.Error("session a should be ready")
	}
	if store.Ready("b") {
		t.Error("session b should not be ready")
	}
}

func TestSetOverwritesKindSlot(t *testing.T) {
	store := NewStore()

	first := &model.Asset{Kind: model.AssetAudio, Data: []byte{1}}
	second := &model.Asset{Kind: model.AssetAudio, Data: []byte{2, 3}}
	store.Set("s", first)
	store.Set("s", second)

	got, ok := store.Get("s", model.AssetAudio)
	if !ok || len(got.Data) != 2 {
		t.Errorf("Get returned %+v, want the overwritten asset", got)
	}
}

func TestClear(t *testing.T) {
	store := NewStore()
	store.Set("s", asset(model.AssetAudio))
	store.Clear("s")

	if _, ok := store.Get("s", model.AssetAudio); ok {
		t.Error("cleared bundle should be empty")
	}
}
