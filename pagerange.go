package vega

import (
	"strconv"
	"strings"
)

// PageRange is an inclusive range of listing page numbers.
type PageRange struct {
	Start int
	End   int
}

// ParsePageRange parses a page-range expression: "N" for a single page or
// "N-M" for an inclusive range. A malformed expression is the only fatal
// configuration error in the pipeline.
func ParsePageRange(s string) (PageRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PageRange{}, Errorf(EINVALID, "page range required")
	}

	if a, b, found := strings.Cut(s, "-"); found {
		start, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return PageRange{}, Errorf(EINVALID, "invalid page range %q", s)
		}
		end, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			return PageRange{}, Errorf(EINVALID, "invalid page range %q", s)
		}
		if start < 1 || end < start {
			return PageRange{}, Errorf(EINVALID, "invalid page range %q", s)
		}
		return PageRange{Start: start, End: end}, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return PageRange{}, Errorf(EINVALID, "invalid page range %q", s)
	}
	return PageRange{Start: n, End: n}, nil
}

// Pages expands the range into the ordered page numbers it covers.
func (r PageRange) Pages() []int {
	pages := make([]int, 0, r.End-r.Start+1)
	for p := r.Start; p <= r.End; p++ {
		pages = append(pages, p)
	}
	return pages
}
