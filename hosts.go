package vega

import (
	"sort"
	"strings"
)

// HostRanker ranks URLs by which known final-host domain they match. The
// ordered host list is the sole authority for choosing among multiple final
// links for the same item and quality.
type HostRanker struct {
	hosts []string
}

// NewHostRanker creates a ranker over the given ordered host-domain
// substrings. A nil or empty list falls back to DefaultHostPriority.
func NewHostRanker(hosts []string) *HostRanker {
	if len(hosts) == 0 {
		hosts = DefaultHostPriority()
	}
	lowered := make([]string, len(hosts))
	for i, h := range hosts {
		lowered[i] = strings.ToLower(h)
	}
	return &HostRanker{hosts: lowered}
}

// Classify returns the rank of the first host substring matching the URL
// (lower is better) and whether any host matched. Non-matching URLs rank
// after all known hosts.
func (r *HostRanker) Classify(rawURL string) (rank int, ok bool) {
	low := strings.ToLower(rawURL)
	for i, h := range r.hosts {
		if strings.Contains(low, h) {
			return i, true
		}
	}
	return len(r.hosts), false
}

// Rank returns the URLs stably sorted by rank. Non-matching URLs sort last;
// ties keep their original discovery order.
func (r *HostRanker) Rank(urls []string) []string {
	out := make([]string, len(urls))
	copy(out, urls)
	sort.SliceStable(out, func(i, j int) bool {
		ri, _ := r.Classify(out[i])
		rj, _ := r.Classify(out[j])
		return ri < rj
	})
	return out
}

// SelectBest returns the highest-priority URL among urls. The second return
// is false when urls is empty or none of them matches a known host.
func (r *HostRanker) SelectBest(urls []string) (string, bool) {
	ranked := r.Rank(urls)
	if len(ranked) == 0 {
		return "", false
	}
	if _, ok := r.Classify(ranked[0]); !ok {
		return "", false
	}
	return ranked[0], true
}
