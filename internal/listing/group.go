package listing

import (
	"cmp"
	"slices"
	"strings"

	"scholarportal/internal/domain/models"
)

// NoCollectionKey is the bucket key for resources without a collection.
const NoCollectionKey = "no-collection"

// Group is one bucket of GroupByCollection.
type Group struct {
	Key            string                      `json:"key"`
	CollectionID   *string                     `json:"collection_id"`
	CollectionName string                      `json:"collection_name,omitempty"`
	Items          []models.PositionedResource `json:"items"`
}

// GroupByCollection partitions items by collection id. Each bucket is sorted
// oldest first and numbered from 1. Buckets are ordered by collection name,
// with the NoCollectionKey bucket last. Every input item lands in exactly one
// bucket.
func GroupByCollection(items []models.Resource) []Group {
	buckets := make(map[string][]models.Resource)
	var order []string
	for _, r := range items {
		key := r.CollectionKey()
		if key == "" {
			key = NoCollectionKey
		}
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], r)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		members := buckets[key]
		g := Group{Key: key, Items: Positioned(members)}
		if key != NoCollectionKey {
			id := key
			g.CollectionID = &id
			g.CollectionName = collectionName(members)
		}
		groups = append(groups, g)
	}

	slices.SortStableFunc(groups, func(a, b Group) int {
		if (a.Key == NoCollectionKey) != (b.Key == NoCollectionKey) {
			if a.Key == NoCollectionKey {
				return 1
			}
			return -1
		}
		if c := cmp.Compare(strings.ToLower(a.CollectionName), strings.ToLower(b.CollectionName)); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return groups
}

// Positioned returns a copy of items sorted by created_at ascending (ties by
// id) with 1-based positions assigned in that order.
func Positioned(items []models.Resource) []models.PositionedResource {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, compareCreated)
	out := make([]models.PositionedResource, len(sorted))
	for i, r := range sorted {
		out[i] = models.PositionedResource{Resource: r, Position: i + 1}
	}
	return out
}

// PositionInCollection returns target's 1-based position among all resources
// of its collection, or 0 when target has no collection or is not in all.
func PositionInCollection(all []models.Resource, target *models.Resource) int {
	key := target.CollectionKey()
	if key == "" {
		return 0
	}
	var members []models.Resource
	for _, r := range all {
		if r.CollectionKey() == key {
			members = append(members, r)
		}
	}
	for _, p := range Positioned(members) {
		if p.ID == target.ID {
			return p.Position
		}
	}
	return 0
}

func compareCreated(a, b models.Resource) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func collectionName(members []models.Resource) string {
	for _, r := range members {
		if r.Collection != nil && r.Collection.Name != "" {
			return r.Collection.Name
		}
	}
	return ""
}
