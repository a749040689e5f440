package overleaf_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/olsync/olpull/pkg/infra/overleaf"
)

func TestNormalizeCookie(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare decoded value",
			raw:  "s:abc.def",
			want: "overleaf.sid=s:abc.def",
		},
		{
			name: "bare percent-encoded value",
			raw:  "s%3Aabc.def",
			want: "overleaf.sid=s:abc.def",
		},
		{
			name: "full pair with decoded value",
			raw:  "overleaf.sid=s:abc.def",
			want: "overleaf.sid=s:abc.def",
		},
		{
			name: "full pair with encoded value",
			raw:  "overleaf.sid=s%3Aabc.def",
			want: "overleaf.sid=s:abc.def",
		},
		{
			name: "cookie name matched case-insensitively",
			raw:  "Overleaf.SID=s%3Aabc.def",
			want: "overleaf.sid=s:abc.def",
		},
		{
			name: "surrounding whitespace stripped",
			raw:  "  s%3Aabc.def\n",
			want: "overleaf.sid=s:abc.def",
		},
		{
			name: "at most one decode pass",
			raw:  "s%253Aabc",
			want: "overleaf.sid=s%3Aabc",
		},
		{
			name: "invalid escape kept verbatim",
			raw:  "s:abc%zzdef",
			want: "overleaf.sid=s:abc%zzdef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, overleaf.NormalizeCookie(tt.raw)).Equal(tt.want)
		})
	}
}

func TestNormalizeCookie_Invariant(t *testing.T) {
	// The three equivalent credential forms must normalize identically
	forms := []string{
		"s%3Aabc",
		"overleaf.sid=s%3Aabc",
		"overleaf.sid=s:abc",
	}
	for _, form := range forms {
		gt.Value(t, overleaf.NormalizeCookie(form)).Equal("overleaf.sid=s:abc")
	}
}
