// deprecation/deprecation_test.go
package deprecation

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHeader_NoDeprecationHeader(t *testing.T) {
	h := http.Header{}
	h.Add("Link", `<https://developer.example.com/deprecation>; rel="deprecation"`)

	assert.Nil(t, FromHeader(h), "no Deprecation header means no result, Link headers notwithstanding")
}

func TestFromHeader_Flag(t *testing.T) {
	h := http.Header{}
	h.Add("Deprecation", "true")

	d := FromHeader(h)
	require.NotNil(t, d)
	assert.Nil(t, d.Timestamp)
	assert.Empty(t, d.Link)
}

func TestFromHeader_Date(t *testing.T) {
	h := http.Header{}
	h.Add("Deprecation", "Thu, 01 Jan 1970 00:00:00 +0000")

	d := FromHeader(h)
	require.NotNil(t, d)
	require.NotNil(t, d.Timestamp)
	assert.True(t, d.Timestamp.Equal(time.Unix(0, 0)), "timestamp should be the Unix epoch")
	assert.Empty(t, d.Link)
}

func TestFromHeader_InvalidDate(t *testing.T) {
	// ISO 8601 is not a valid RFC 2822 date; deprecation is still recognised.
	h := http.Header{}
	h.Add("Deprecation", "2021-01-01T10:00:13Z")

	d := FromHeader(h)
	require.NotNil(t, d)
	assert.Nil(t, d.Timestamp)
	assert.Empty(t, d.Link)
}

func TestFromHeader_Link(t *testing.T) {
	h := http.Header{}
	h.Add("Deprecation", "true")
	h.Add("Link", `<https://developer.example.com/deprecation>; rel="deprecation"; type="text/html"`)

	d := FromHeader(h)
	require.NotNil(t, d)
	assert.Nil(t, d.Timestamp)
	assert.Equal(t, "https://developer.example.com/deprecation", d.Link)
}

func TestFromHeader_MultipleLinks(t *testing.T) {
	h := http.Header{}
	h.Add("Deprecation", "true")
	h.Add("Link", `<https://example.com>; rel="alternate"`)
	h.Add("Link", `<https://developer.example.com/deprecation>; rel="deprecation"; type="text/html"`)

	d := FromHeader(h)
	require.NotNil(t, d)
	assert.Equal(t, "https://developer.example.com/deprecation", d.Link)
}

func TestFromHeader_FirstMatchingLinkWins(t *testing.T) {
	h := http.Header{}
	h.Add("Deprecation", "true")
	h.Add("Link", `<https://first.example.com>; rel="deprecation"`)
	h.Add("Link", `<https://second.example.com>; rel="deprecation"`)

	d := FromHeader(h)
	require.NotNil(t, d)
	assert.Equal(t, "https://first.example.com", d.Link)
}

func TestFromHeader_DateAndLink(t *testing.T) {
	h := http.Header{}
	h.Add("Deprecation", "Fri, 11 Nov 2022 23:59:59 GMT")
	h.Add("Link", `<https://developer.example.com/deprecation>; rel="deprecation"`)

	d := FromHeader(h)
	require.NotNil(t, d)
	require.NotNil(t, d.Timestamp)
	assert.Equal(t, time.Date(2022, time.November, 11, 23, 59, 59, 0, time.UTC).Unix(), d.Timestamp.Unix())
	assert.Equal(t, "https://developer.example.com/deprecation", d.Link)
}

func TestFromHeader_CaseSensitiveFlag(t *testing.T) {
	// "True" is neither the flag form nor a date; the record survives with
	// no timestamp.
	h := http.Header{}
	h.Add("Deprecation", "True")

	d := FromHeader(h)
	require.NotNil(t, d)
	assert.Nil(t, d.Timestamp)
}

func TestFromHeader_MalformedLinkIgnored(t *testing.T) {
	h := http.Header{}
	h.Add("Deprecation", "true")
	h.Add("Link", `<https://example.com>; deprecation`)

	d := FromHeader(h)
	require.NotNil(t, d)
	assert.Empty(t, d.Link, "a malformed Link header must not fail the extraction")
}

func TestFromResponse(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
	}
	resp.Header.Add("Deprecation", "true")
	resp.Header.Add("Link", `<https://developer.example.com/deprecation>; rel="deprecation"`)

	d := FromResponse(resp)
	require.NotNil(t, d)
	assert.Equal(t, "https://developer.example.com/deprecation", d.Link)
}

func TestFromResponse_NilResponse(t *testing.T) {
	assert.Nil(t, FromResponse(nil))
}

func Test_parseRFC2822(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   time.Time
		wantOk bool
	}{
		{
			name:   "numeric zone",
			value:  "Thu, 01 Jan 1970 00:00:00 +0000",
			want:   time.Unix(0, 0),
			wantOk: true,
		},
		{
			name:   "zone name",
			value:  "Mon, 02 Jan 2006 15:04:05 GMT",
			want:   time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC),
			wantOk: true,
		},
		{
			name:   "obsolete zone with nonzero offset",
			value:  "Mon, 02 Jan 2006 15:04:05 EST",
			want:   time.Date(2006, time.January, 2, 15, 4, 5, 0, time.FixedZone("", -5*60*60)),
			wantOk: true,
		},
		{
			name:   "obsolete zone without weekday",
			value:  "2 Jan 2006 15:04:05 PDT",
			want:   time.Date(2006, time.January, 2, 15, 4, 5, 0, time.FixedZone("", -7*60*60)),
			wantOk: true,
		},
		{
			name:  "unknown zone abbreviation",
			value: "Mon, 02 Jan 2006 15:04:05 XST",
		},
		{
			name:  "military zone",
			value: "Mon, 02 Jan 2006 15:04:05 K",
		},
		{
			name:   "single digit day",
			value:  "Tue, 3 Jun 2008 11:05:30 +0200",
			want:   time.Date(2008, time.June, 3, 11, 5, 30, 0, time.FixedZone("", 2*60*60)),
			wantOk: true,
		},
		{
			name:   "no seconds",
			value:  "Thu, 01 Jan 1970 00:00 +0000",
			want:   time.Unix(0, 0),
			wantOk: true,
		},
		{
			name:  "iso 8601",
			value: "2021-01-01T10:00:13Z",
		},
		{
			name:  "flag value",
			value: "true",
		},
		{
			name:  "empty",
			value: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotOk := parseRFC2822(tt.value)
			if gotOk != tt.wantOk {
				t.Fatalf("parseRFC2822() gotOk = %v, want %v", gotOk, tt.wantOk)
			}
			if tt.wantOk && !got.Equal(tt.want) {
				t.Errorf("parseRFC2822() got = %v, want %v", got, tt.want)
			}
		})
	}
}
