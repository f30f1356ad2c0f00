package usecase

import (
	"sort"

	"github.com/mmcloughlin/geohash"

	"github.com/commute-map/internal/domain"
)

const (
	minClusterPrecision = 1
	maxClusterPrecision = 9
)

// ClusterPrecision maps a map zoom level onto a geohash precision
func ClusterPrecision(zoom int) uint {
	p := zoom / 2
	if p < minClusterPrecision {
		p = minClusterPrecision
	}
	if p > maxClusterPrecision {
		p = maxClusterPrecision
	}
	return uint(p)
}

// ClusterMarkers groups houses sharing a geohash cell. Output is ordered by cell hash.
func ClusterMarkers(houses []domain.House, zoom int) []domain.Cluster {
	precision := ClusterPrecision(zoom)

	byHash := make(map[string]*domain.Cluster)
	for _, h := range houses {
		hash := geohash.EncodeWithPrecision(h.Position.Lat, h.Position.Lng, precision)
		c, ok := byHash[hash]
		if !ok {
			c = &domain.Cluster{Hash: hash}
			byHash[hash] = c
		}
		// running sums, divided below
		c.Center.Lat += h.Position.Lat
		c.Center.Lng += h.Position.Lng
		c.Count++
		c.HouseIDs = append(c.HouseIDs, h.ID)
	}

	clusters := make([]domain.Cluster, 0, len(byHash))
	for _, c := range byHash {
		c.Center.Lat /= float64(c.Count)
		c.Center.Lng /= float64(c.Count)
		clusters = append(clusters, *c)
	}

	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].Hash < clusters[j].Hash
	})

	return clusters
}
