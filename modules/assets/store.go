package assets

import (
	"sync"

	"storystream-pipeline-server/modules/common/model"
)

// Store keeps the per-session Asset Bundle in memory. Each generation
// operation writes only its own kind slot; readiness is recomputed on
// every query, never cached.
type Store struct {
	mu      sync.RWMutex
	bundles map[string]map[model.AssetKind]*model.Asset
}

func NewStore() *Store {
	return &Store{
		bundles: make(map[string]map[model.AssetKind]*model.Asset),
	}
}

// Set attaches an asset to the session's bundle under its kind.
func (s *Store) Set(sessionID string, asset *model.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle, ok := s.bundles[sessionID]
	if !ok {
		bundle = make(map[model.AssetKind]*model.Asset)
		s.bundles[sessionID] = bundle
	}
	bundle[asset.Kind] = asset
}

// Get returns the session's asset of the given kind.
func (s *Store) Get(sessionID string, kind model.AssetKind) (*model.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bundle, ok := s.bundles[sessionID]
	if !ok {
		return nil, false
	}
	asset, ok := bundle[kind]
	return asset, ok
}

// Ready reports whether all three asset kinds are present for the
// session, which is the publish precondition.
func (s *Store) Ready(sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bundle, ok := s.bundles[sessionID]
	if !ok {
		return false
	}
	for _, kind := range []model.AssetKind{model.AssetAudio, model.AssetVideo, model.AssetImage} {
		if bundle[kind] == nil {
			return false
		}
	}
	return true
}

// Kinds lists the asset kinds currently present for the session.
func (s *Store) Kinds(sessionID string) []model.AssetKind {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kinds := make([]model.AssetKind, 0, 3)
	for _, kind := range []model.AssetKind{model.AssetAudio, model.AssetVideo, model.AssetImage} {
		if s.bundles[sessionID][kind] != nil {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// Clear drops the session's bundle.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bundles, sessionID)
}
