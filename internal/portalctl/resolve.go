package portalctl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"scholarportal/internal/domain/models"
)

// AmbiguousError lists the candidates of a query that matched more than one
// collection equally well.
type AmbiguousError struct {
	Query      string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%q matches several collections: %s", e.Query, strings.Join(e.Candidates, ", "))
}

// ResolveCollection finds the collection meant by query. An exact id or a
// case-insensitive exact name wins outright; otherwise the closest fuzzy name
// match is used, and a tie between distinct names is an error.
func ResolveCollection(collections []models.Collection, query string) (*models.Collection, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("collection query is empty")
	}

	for i := range collections {
		if collections[i].ID == query {
			return &collections[i], nil
		}
	}

	var exact []int
	for i := range collections {
		if strings.EqualFold(collections[i].Name, query) {
			exact = append(exact, i)
		}
	}
	if len(exact) == 1 {
		return &collections[exact[0]], nil
	}
	if len(exact) > 1 {
		return nil, ambiguous(query, collections, exact)
	}

	names := make([]string, len(collections))
	for i, c := range collections {
		names[i] = c.Name
	}
	ranks := fuzzy.RankFindFold(query, names)
	if ranks.Len() == 0 {
		return nil, fmt.Errorf("no collection matches %q", query)
	}
	sort.Sort(ranks)

	best := ranks[0].Distance
	var tied []int
	for _, r := range ranks {
		if r.Distance == best {
			tied = append(tied, r.OriginalIndex)
		}
	}
	if len(tied) > 1 {
		return nil, ambiguous(query, collections, tied)
	}
	return &collections[tied[0]], nil
}

func ambiguous(query string, collections []models.Collection, idx []int) error {
	candidates := make([]string, len(idx))
	for i, j := range idx {
		candidates[i] = fmt.Sprintf("%s [%s] (%s)", collections[j].Name, collections[j].ContentType, collections[j].ID)
	}
	sort.Strings(candidates)
	return &AmbiguousError{Query: query, Candidates: candidates}
}
