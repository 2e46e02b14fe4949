package collect

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantURLs  []string
		wantTotal int
	}{
		{
			name:      "empty input",
			input:     "",
			wantURLs:  nil,
			wantTotal: 0,
		},
		{
			name:      "whitespace only",
			input:     "  \n\t\n   ",
			wantURLs:  nil,
			wantTotal: 0,
		},
		{
			name: "mixed lines keep order",
			input: "https://vm.tiktok.com/ZM1/\n" +
				"not a url\n" +
				"   https://www.tiktok.com/@a/video/1  \n" +
				"\n" +
				"https://youtube.com/watch?v=x\n" +
				"https://tiktok.com/@b/video/2",
			wantURLs: []string{
				"https://vm.tiktok.com/ZM1/",
				"https://www.tiktok.com/@a/video/1",
				"https://tiktok.com/@b/video/2",
			},
			wantTotal: 5,
		},
		{
			name:      "duplicates are kept",
			input:     "https://tiktok.com/@b/video/2\nhttps://tiktok.com/@b/video/2",
			wantURLs:  []string{"https://tiktok.com/@b/video/2", "https://tiktok.com/@b/video/2"},
			wantTotal: 2,
		},
		{
			name:      "windows line endings",
			input:     "https://vm.tiktok.com/A/\r\nhttps://vm.tiktok.com/B/\r\n",
			wantURLs:  []string{"https://vm.tiktok.com/A/", "https://vm.tiktok.com/B/"},
			wantTotal: 2,
		},
		{
			name:      "http scheme is rejected",
			input:     "http://www.tiktok.com/@a/video/1",
			wantURLs:  nil,
			wantTotal: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.input)
			if !reflect.DeepEqual(res.URLs, tt.wantURLs) {
				t.Errorf("URLs = %#v, want %#v", res.URLs, tt.wantURLs)
			}
			if res.TotalLines != tt.wantTotal {
				t.Errorf("TotalLines = %d, want %d", res.TotalLines, tt.wantTotal)
			}
			if res.ValidLines() != len(tt.wantURLs) {
				t.Errorf("ValidLines = %d, want %d", res.ValidLines(), len(tt.wantURLs))
			}
			if res.Empty() != (len(tt.wantURLs) == 0) {
				t.Errorf("Empty = %v", res.Empty())
			}
		})
	}
}

func TestIsAccepted(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://www.tiktok.com/@user/video/123", true},
		{"https://tiktok.com/@user/video/123", true},
		{"https://vm.tiktok.com/ZMabc/", true},
		{"https://m.tiktok.com/v/123", false},
		{"www.tiktok.com/@user", false},
		{" https://tiktok.com/@user", false},
	}

	for _, test := range tests {
		if got := IsAccepted(test.url); got != test.expected {
			t.Errorf("IsAccepted(%q) = %v, expected %v", test.url, got, test.expected)
		}
	}
}

func TestURLs(t *testing.T) {
	got := URLs("junk\nhttps://vm.tiktok.com/A/")
	if len(got) != 1 || got[0] != "https://vm.tiktok.com/A/" {
		t.Errorf("URLs() = %#v", got)
	}
}
