package collect

import (
	"strings"
)

// Accepted URL prefixes
var AcceptedPrefixes = []string{
	"https://www.tiktok.com",
	"https://tiktok.com",
	"https://vm.tiktok.com",
}

// Result is the outcome of parsing pasted text
type Result struct {
	URLs       []string // valid URLs in input order
	TotalLines int      // non-empty lines after trimming
}

// ValidLines returns the number of accepted URLs
func (r Result) ValidLines() int {
	return len(r.URLs)
}

// Empty reports whether no URL was accepted
func (r Result) Empty() bool {
	return len(r.URLs) == 0
}

// Parse splits text into lines and keeps the accepted ones
func Parse(text string) Result {
	var res Result
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		res.TotalLines++
		if IsAccepted(line) {
			res.URLs = append(res.URLs, line)
		}
	}
	return res
}

// URLs returns only the accepted URLs of text
func URLs(text string) []string {
	return Parse(text).URLs
}

// IsAccepted checks the URL against the prefix allowlist
func IsAccepted(url string) bool {
	for _, prefix := range AcceptedPrefixes {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}
