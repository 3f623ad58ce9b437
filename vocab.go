package vega

// Default vocabularies for the catalog sites this pipeline targets. All of
// them are plain data passed into the normalizer, ranker and extractors, so
// a deployment tracking a different site family can swap them out without
// touching any logic.

// DefaultHostPriority returns the ordered list of final-host domain
// substrings. Earlier entries win when one item resolves to several hosts.
func DefaultHostPriority() []string {
	return []string{"gdtot", "gdflix", "hubcloud", "v-cloud", "drive.google", "gdrive", "gdlink"}
}

// DefaultIntermediaryMarkers returns href substrings identifying
// link-aggregator (intermediary) pages on detail pages.
func DefaultIntermediaryMarkers() []string {
	return []string{"vgml", "vgmlink"}
}

// DefaultAcceptLabels returns anchor-text substrings that qualify an
// intermediary link as a whole-batch download entry point.
func DefaultAcceptLabels() []string {
	return []string{"batch", "zip", "download", "v-cloud", "vcloud", "download now"}
}

// DefaultRejectLabels returns anchor-text substrings that disqualify a link
// regardless of any other match: site navigation, help and social chrome.
func DefaultRejectLabels() []string {
	return []string{
		"how to download", "join us", "telegram channel", "login", "register",
		"home", "contact", "dmca", "disclaimer", "trailer", "watch online",
	}
}

// DefaultBlockPatterns returns URL substrings for the request-interception
// blocklist: ad networks, trackers and JS shorteners. Requests matching any
// of these are aborted before they load.
func DefaultBlockPatterns() []string {
	return []string{
		"m.vdrive", "short", "clicksfly", "shrink", "adfly", "adsby",
		"trk.", "tracking", "analytics", "adservice", "googlesyndication",
		"boost.ink", "ouo.io", "cutt.ly", "mdrive",
	}
}

// DefaultShortenerPatterns returns URL substrings identifying gate pages
// that require interaction (continue buttons, countdowns) before revealing
// their destination. These get the interactive bypass treatment instead of
// a plain render.
func DefaultShortenerPatterns() []string {
	return []string{
		"short", "shrink", "adfly", "ouo.io", "cutt.ly", "boost.ink",
		"clicksfly", "gplinks", "droplink", "linkvertise",
	}
}

// DefaultContinueLabels returns the button/anchor text patterns clicked
// during shortener bypass, in attempt order.
func DefaultContinueLabels() []string {
	return []string{"continue", "click here", "get link", "go to link", "verify"}
}
