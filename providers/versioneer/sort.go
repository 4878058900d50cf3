package versioneer

import "sort"

// Collection is a list of versions sortable by precedence (ascending).
type Collection []Version

func (c Collection) Len() int           { return len(c) }
func (c Collection) Less(i, j int) bool { return Precedes(c[i], c[j]) }
func (c Collection) Swap(i, j int)      { c[i], c[j] = c[j], c[i] }

// Sort orders versions by ascending precedence in place.
// The sort is stable, so versions differing only in build metadata keep their input order.
func Sort(vs []Version) {
	sort.Stable(Collection(vs))
}

// Max returns the version with the highest precedence, false for an empty list.
// Among equal candidates the first one wins.
func Max(vs ...Version) (Version, bool) {
	if len(vs) == 0 {
		return Version{}, false
	}
	best := vs[0]
	for _, v := range vs[1:] {
		if Precedes(best, v) {
			best = v
		}
	}
	return best, true
}

// Latest returns the highest version, skipping prereleases unless includePrerelease is set.
func Latest(vs []Version, includePrerelease bool) (Version, bool) {
	var (
		latest Version
		found  bool
	)
	for _, v := range vs {
		if v.IsPrerelease() && !includePrerelease {
			continue
		}
		if !found || Precedes(latest, v) {
			latest, found = v, true
		}
	}
	return latest, found
}
