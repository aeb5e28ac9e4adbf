package mapview

import (
	"sync"

	"github.com/tourism-registry/internal/domain"
	"go.uber.org/zap"
)

// TileLayer describes the third-party base layer handed to the map client:
// a tile URL template and its required attribution string.
type TileLayer struct {
	URLTemplate string `json:"url_template"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"max_zoom"`
}

// Default view shown when the marker set is empty: the regency seat.
var (
	DefaultCenter = domain.Point{Lat: -7.1, Lon: 110.92}
)

const (
	DefaultZoom = 11
	// FitPadding is the fixed margin, in screen pixels, applied when
	// fitting the viewport to marker bounds.
	FitPadding = 40
)

// Viewport is the camera state of the surface. When Fitted is true the
// client fits Bounds with Padding; otherwise it centers on Center at Zoom.
type Viewport struct {
	Fitted  bool                `json:"fitted"`
	Bounds  *domain.BoundingBox `json:"bounds,omitempty"`
	Padding int                 `json:"padding,omitempty"`
	Center  domain.Point        `json:"center"`
	Zoom    int                 `json:"zoom"`
}

// State is a read-only snapshot of the surface.
type State struct {
	Mounted  bool            `json:"mounted"`
	Layer    TileLayer       `json:"layer"`
	Markers  []domain.Marker `json:"markers"`
	Viewport Viewport        `json:"viewport"`
}

// Surface owns the dashboard map: the mounted base layer, the current
// marker set, and the viewport. It has two states, unmounted and mounted;
// Sync only acts while mounted.
//
// Sync replaces the full marker set on every call rather than diffing.
// That guarantees no stale or duplicate markers however the record list
// changed, and makes Sync idempotent for a given list.
type Surface struct {
	mu       sync.Mutex
	mounted  bool
	layer    TileLayer
	markers  []domain.Marker
	viewport Viewport
	logger   *zap.Logger
}

// NewSurface creates an unmounted surface.
func NewSurface(logger *zap.Logger) *Surface {
	return &Surface{
		logger:   logger,
		viewport: defaultViewport(),
	}
}

// Mount attaches the base layer and transitions to mounted. Mounting an
// already mounted surface is a no-op.
func (s *Surface) Mount(layer TileLayer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mounted {
		s.logger.Debug("Map surface already mounted")
		return
	}

	s.mounted = true
	s.layer = layer
	s.viewport = defaultViewport()
	s.logger.Info("Map surface mounted",
		zap.String("tile_url", layer.URLTemplate),
	)
}

// Teardown releases markers and the base layer and transitions back to
// unmounted.
func (s *Surface) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mounted {
		return
	}

	s.mounted = false
	s.layer = TileLayer{}
	s.markers = nil
	s.viewport = defaultViewport()
	s.logger.Info("Map surface torn down")
}

// Mounted reports the surface state.
func (s *Surface) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

// Sync recomputes the marker set and viewport from the record list. A call
// on an unmounted surface does nothing.
func (s *Surface) Sync(sites []domain.TouristSite) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked(sites)
}

// SyncAndSnapshot syncs against the record list and returns the resulting
// state in one critical section, so a concurrent Sync for another record
// list can never land between the two.
func (s *Surface) SyncAndSnapshot(sites []domain.TouristSite) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked(sites)
	return s.snapshotLocked()
}

func (s *Surface) syncLocked(sites []domain.TouristSite) {
	if !s.mounted {
		s.logger.Debug("Sync called on unmounted surface, skipping")
		return
	}

	// Remove everything, then place the new set.
	s.markers = domain.ResolveMarkers(sites)

	points := make([]domain.Point, 0, len(s.markers))
	for _, m := range s.markers {
		points = append(points, m.Point)
	}

	if box, ok := domain.BoundsOf(points); ok {
		s.viewport = Viewport{
			Fitted:  true,
			Bounds:  &box,
			Padding: FitPadding,
			Center: domain.Point{
				Lat: (box.MinLat + box.MaxLat) / 2,
				Lon: (box.MinLon + box.MaxLon) / 2,
			},
			Zoom: DefaultZoom,
		}
	} else {
		s.viewport = defaultViewport()
	}

	s.logger.Debug("Map surface synced",
		zap.Int("sites", len(sites)),
		zap.Int("markers", len(s.markers)),
	)
}

// Snapshot returns a copy of the current surface state.
func (s *Surface) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Surface) snapshotLocked() State {
	markers := make([]domain.Marker, len(s.markers))
	copy(markers, s.markers)

	viewport := s.viewport
	if s.viewport.Bounds != nil {
		box := *s.viewport.Bounds
		viewport.Bounds = &box
	}

	return State{
		Mounted:  s.mounted,
		Layer:    s.layer,
		Markers:  markers,
		Viewport: viewport,
	}
}

func defaultViewport() Viewport {
	return Viewport{
		Center: DefaultCenter,
		Zoom:   DefaultZoom,
	}
}
