package vega

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// NormalizerRules are the ordered data tables that drive title cleanup and
// episode detection. They are plain data so deployments can extend the
// release-metadata vocabulary without code changes.
type NormalizerRules struct {
	// Extensions stripped from the end of a raw title (without the dot).
	Extensions []string

	// JunkTokens removed case-insensitively as whole words after separator
	// replacement. Multi-word tokens are written space-separated.
	JunkTokens []string

	// EpisodePatterns mark text as per-episode rather than whole-batch.
	EpisodePatterns []string
}

// DefaultNormalizerRules returns the vocabulary observed on the target
// catalog sites: resolutions, rip/encoder tags, language tags and site
// branding.
func DefaultNormalizerRules() NormalizerRules {
	return NormalizerRules{
		Extensions: []string{"mkv", "mp4", "avi", "webm", "zip", "rar", "7z"},
		JunkTokens: []string{
			"2160p", "1080p", "720p", "480p", "360p", "4k", "uhd",
			"bluray", "blu ray", "brrip", "webrip", "hdrip", "web dl", "webdl",
			"dvdrip", "hdtc", "hdts", "camrip", "hdcam",
			"hindi", "english", "tamil", "telugu", "dual audio", "multi audio", "dubbed",
			"esub", "esubs", "msubs",
			"x264", "x265", "hevc", "h264", "h265", "10bit", "aac", "ddp5 1", "dd5 1",
			"download", "full movie", "free", "vegamovies",
		},
		EpisodePatterns: []string{
			`(?i)\bs\d{1,2}\s*ep?\d{1,3}\b`,
			`(?i)\bep(isode)?s?\b`,
			`(?i)^\s*seasons?\s*\d+(\s*[-&,]\s*\d+)*\s*$`,
		},
	}
}

// qualityPattern matches known quality tags; first match left-to-right wins.
var qualityPattern = regexp.MustCompile(`(?i)(2160p|1080p|720p|480p|360p)`)

// yearPattern matches a plausible release year.
var yearPattern = regexp.MustCompile(`^(19|20)\d{2}$`)

// Normalizer turns noisy release strings into canonical titles and quality
// tags. All methods are pure; a Normalizer is safe for concurrent use.
type Normalizer struct {
	ext        *regexp.Regexp
	brackets   *regexp.Regexp
	separators *regexp.Regexp
	junk       *regexp.Regexp
	episode    []*regexp.Regexp
}

// NewNormalizer compiles the given rules. Zero-value rule slices fall back
// to the defaults.
func NewNormalizer(rules NormalizerRules) *Normalizer {
	if rules.Extensions == nil && rules.JunkTokens == nil && rules.EpisodePatterns == nil {
		rules = DefaultNormalizerRules()
	}

	var episode []*regexp.Regexp
	for _, p := range rules.EpisodePatterns {
		episode = append(episode, regexp.MustCompile(p))
	}

	return &Normalizer{
		ext:        compileAlternation(`(?i)\.(?:%s)$`, rules.Extensions),
		brackets:   regexp.MustCompile(`[(\[{][^()\[\]{}]*[)\]}]`),
		separators: regexp.MustCompile(`[._|\-]+`),
		junk:       compileAlternation(`(?i)\b(?:%s)\b`, rules.JunkTokens),
		episode:    episode,
	}
}

// compileAlternation builds a single regexp from literal tokens, longest
// first so multi-word tokens win over their prefixes.
func compileAlternation(format string, tokens []string) *regexp.Regexp {
	if len(tokens) == 0 {
		// Matches nothing.
		return regexp.MustCompile(`\z.`)
	}
	escaped := make([]string, len(tokens))
	copy(escaped, tokens)
	sort.SliceStable(escaped, func(i, j int) bool { return len(escaped[i]) > len(escaped[j]) })
	for i, t := range escaped {
		escaped[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(strings.ReplaceAll(format, "%s", strings.Join(escaped, "|")))
}

// NormalizeTitle strips file extensions, bracketed annotations (keeping
// 4-digit years in parentheses), separator characters and release-metadata
// tokens, collapses whitespace and applies display case. It never fails:
// input that cleans down to nothing returns "Unknown". NormalizeTitle is
// idempotent.
func (n *Normalizer) NormalizeTitle(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "Unknown"
	}

	s = n.ext.ReplaceAllString(s, "")

	s = n.brackets.ReplaceAllStringFunc(s, func(m string) string {
		inner := strings.TrimSpace(m[1 : len(m)-1])
		if yearPattern.MatchString(inner) {
			return "(" + inner + ")"
		}
		return " "
	})

	s = n.separators.ReplaceAllString(s, " ")
	s = n.junk.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")

	if s == "" {
		return "Unknown"
	}
	return displayCase(s)
}

// ExtractQuality returns the first quality tag found in text, or
// QualityUnknown if none matches.
func (n *Normalizer) ExtractQuality(text string) Quality {
	m := qualityPattern.FindString(text)
	if m == "" {
		return QualityUnknown
	}
	return Quality(strings.ToLower(m))
}

// ExtractQualities returns every distinct quality tag in text, in order of
// first appearance. The resolver consumes this list positionally for final
// links it cannot attribute a quality to directly.
func (n *Normalizer) ExtractQualities(text string) []Quality {
	var out []Quality
	seen := make(map[Quality]bool)
	for _, m := range qualityPattern.FindAllString(text, -1) {
		q := Quality(strings.ToLower(m))
		if !seen[q] {
			seen[q] = true
			out = append(out, q)
		}
	}
	return out
}

// IsEpisodeLike reports whether text carries per-episode indicators
// (ep/episode markers, SxxExx tags, or a bare season marker). The pipeline
// targets whole-batch content, so episode-like links are excluded at every
// hop.
func (n *Normalizer) IsEpisodeLike(text string) bool {
	for _, re := range n.episode {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// displayCase upper-cases the first letter of each word and lower-cases the
// rest. Unlike strings.Title it is stable under repeated application.
func displayCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		for j := range r {
			if j == 0 {
				r[j] = unicode.ToUpper(r[j])
			} else {
				r[j] = unicode.ToLower(r[j])
			}
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
