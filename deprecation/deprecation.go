// deprecation/deprecation.go
/* Responsible for extracting structured deprecation metadata from HTTP response
headers. Servers signal deprecation with the Deprecation header (either the
literal flag "true" or an RFC 2822 date) and may point at documentation with a
Link header carrying the "deprecation" relation. */
package deprecation

import (
	"net/http"
	"strings"
	"time"
)

// HeaderName is the response header that signals resource deprecation.
const HeaderName = "Deprecation"

// flagValue is the boolean form of the Deprecation header. The comparison is
// case-sensitive: anything other than the exact ASCII token goes through date
// parsing instead.
const flagValue = "true"

// rfc2822Layouts covers the date shapes RFC 2822 permits: weekday optional,
// seconds optional. Go's "2" day-of-month token also matches the zero-padded
// form, so one layout per shape suffices. Only numeric zones appear here;
// named zones go through the obsZones table first, because an "MST"-style
// layout makes time.Parse accept any abbreviation at offset zero.
var rfc2822Layouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04 -0700",
}

// obsZones is the RFC 2822 section 4.3 obsolete zone table. Other
// abbreviations (including the single-letter military zones, whose meaning
// the RFC declares unknowable) report no timestamp.
var obsZones = map[string]string{
	"UT":  "+0000",
	"GMT": "+0000",
	"EST": "-0500",
	"EDT": "-0400",
	"CST": "-0600",
	"CDT": "-0500",
	"MST": "-0700",
	"MDT": "-0600",
	"PST": "-0800",
	"PDT": "-0700",
}

// Deprecation describes a server-signalled deprecation of the requested
// resource. Records are plain values: constructed fresh on each extraction,
// owned by the caller, and interchangeable when their fields are equal.
type Deprecation struct {
	// Timestamp is the point at which the deprecation takes (or took) effect,
	// parsed from the Deprecation header's RFC 2822 date form. Nil when the
	// header carried the flag form "true" or a value that does not parse as
	// an RFC 2822 date.
	Timestamp *time.Time

	// Link points at information about the deprecated resource, extracted
	// from a Link header with the relation "deprecation". Empty when no such
	// link was present.
	Link string
}

// FromResponse derives deprecation metadata from a received HTTP response.
// It returns nil when the response carries no Deprecation header.
func FromResponse(resp *http.Response) *Deprecation {
	if resp == nil {
		return nil
	}
	return FromHeader(resp.Header)
}

// FromHeader derives deprecation metadata from a response header set.
//
// The Deprecation header's presence is the authoritative signal: a record is
// returned whenever the header exists, and every malformed value (a date that
// fails to parse, a Link header with broken parameters) degrades to an unset
// field rather than an error. When several Link headers are present, the
// first one carrying the "deprecation" relation wins, in header order.
func FromHeader(h http.Header) *Deprecation {
	values := h.Values(HeaderName)
	if len(values) == 0 {
		return nil
	}
	value := values[0]

	d := &Deprecation{}

	for _, link := range h.Values("Link") {
		if url, ok := parseDeprecationLink(link); ok {
			d.Link = url
			break
		}
	}

	if value == flagValue {
		return d
	}

	if ts, ok := parseRFC2822(value); ok {
		d.Timestamp = &ts
	}
	return d
}

// parseRFC2822 attempts each accepted RFC 2822 layout in turn. Non-conforming
// values (ISO 8601 dates included) simply report no timestamp.
func parseRFC2822(value string) (time.Time, bool) {
	for _, layout := range rfc2822Layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}

	// Dates ending in a named zone are retried with the zone's numeric
	// offset substituted. The substituted value no longer ends in a known
	// name, so the recursion is a single step.
	if i := strings.LastIndexByte(value, ' '); i >= 0 {
		if offset, ok := obsZones[value[i+1:]]; ok {
			return parseRFC2822(value[:i+1] + offset)
		}
	}
	return time.Time{}, false
}
