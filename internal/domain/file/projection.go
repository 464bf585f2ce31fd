package file

import (
	"fmt"
	"sort"
)

// Scope selects which subset of an owner's records a view shows.
type Scope string

const (
	ScopeActive  Scope = "active"
	ScopeTrashed Scope = "trash"
)

func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeActive, "":
		return ScopeActive, nil
	case ScopeTrashed:
		return ScopeTrashed, nil
	}
	return "", fmt.Errorf("unknown scope %q", s)
}

// Project reduces a raw snapshot to the filtered, ordered projection for a
// scope. The active view excludes trashed records here, not in the store
// query, so the exclusion holds on every snapshot push. The input slice is
// not modified.
func Project(records Records, scope Scope) Records {
	out := make(Records, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		switch scope {
		case ScopeTrashed:
			if r.IsTrashed {
				out = append(out, r)
			}
		default:
			if !r.IsTrashed {
				out = append(out, r)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if scope == ScopeTrashed {
			ti, tj := out[i].TrashedAt, out[j].TrashedAt
			if ti == nil || tj == nil {
				return tj == nil && ti != nil
			}
			return ti.After(*tj)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}
