package worker

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/wanderplan/wanderplan/pkg/models"
)

// PlaceInfo is the enrichment payload for one place lookup.
type PlaceInfo struct {
	Name             string
	PlaceID          string
	FormattedAddress string
	Coordinates      models.Coordinates
	Hours            []string
	PhotoURLs        []string
}

// PlacesClient resolves a free-text place query near a destination. The
// production deployment wires a geocoding API behind this; OfflinePlacesClient
// is the keyless fallback.
type PlacesClient interface {
	Lookup(ctx context.Context, query, near string) (*PlaceInfo, error)
}

// OfflinePlacesClient is a deterministic, network-free PlacesClient. The same
// query near the same destination always resolves to the same synthetic place,
// which keeps enrichment reproducible in development and tests.
type OfflinePlacesClient struct{}

// Lookup implements PlacesClient.
func (OfflinePlacesClient) Lookup(_ context.Context, query, near string) (*PlaceInfo, error) {
	if query == "" {
		return nil, fmt.Errorf("place query is empty")
	}
	base := hash32(near)
	h := hash32(query + "|" + near)

	// City center derived from the destination hash, node scattered within
	// roughly a 10km box around it. Latitudes stay well inside ±90.
	centerLat := float64(base%120000)/1000.0 - 60.0
	centerLng := float64((base/7)%358000)/1000.0 - 179.0
	lat := centerLat + float64(h%100)/1000.0 - 0.05
	lng := centerLng + float64((h/101)%100)/1000.0 - 0.05

	return &PlaceInfo{
		Name:             query,
		PlaceID:          fmt.Sprintf("offline-%08x", h),
		FormattedAddress: fmt.Sprintf("%s, %s", query, near),
		Coordinates:      models.Coordinates{Lat: lat, Lng: lng},
		Hours:            []string{"Mon-Sun 09:00-18:00"},
	}, nil
}

func hash32(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
