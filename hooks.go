// FILE: lixenwraith/ini/hooks.go
package ini

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// registerBuiltins installs converters for standard library types that have
// no text hook of their own.
func registerBuiltins(r *Registry) {
	_ = Register(r, parseDuration)
	_ = Register(r, parseIPNet)
	_ = Register(r, parseURL)
	_ = Register(r, parseLocation)
	_ = Register(r, parseFileMode)
	_ = Register(r, parseRegexp)
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(unwrapString(s))
}

// parseIPNet handles net.IPNet conversion
func parseIPNet(s string) (net.IPNet, error) {
	str := unwrapString(s)
	if len(str) > 49 { // Max IPv6 CIDR length
		return net.IPNet{}, fmt.Errorf("invalid CIDR length: %d", len(str))
	}
	_, ipnet, err := net.ParseCIDR(str)
	if err != nil {
		return net.IPNet{}, fmt.Errorf("invalid CIDR: %w", err)
	}
	return *ipnet, nil
}

// parseURL handles url.URL conversion
func parseURL(s string) (url.URL, error) {
	str := unwrapString(s)
	if len(str) > 2048 {
		return url.URL{}, fmt.Errorf("URL too long: %d bytes", len(str))
	}
	u, err := url.Parse(str)
	if err != nil {
		return url.URL{}, fmt.Errorf("invalid URL: %w", err)
	}
	return *u, nil
}

func parseLocation(s string) (*time.Location, error) {
	return time.LoadLocation(unwrapString(s))
}

// parseFileMode reads permission bits written in octal, as in "0644".
func parseFileMode(s string) (os.FileMode, error) {
	m, err := strconv.ParseUint(unwrapString(s), 8, 32)
	if err != nil {
		return 0, err
	}
	return os.FileMode(m), nil
}

func parseRegexp(s string) (*regexp.Regexp, error) {
	return regexp.Compile(unwrapString(s))
}

// DateTime is a point in time written as a TOML date-time literal. Besides
// RFC 3339 offset date-times it accepts local date-times
// ("1979-05-27T07:32:00"), local dates ("1979-05-27") and local times
// ("07:32:00"); those carry a zero-offset zone named after their form.
type DateTime struct {
	time.Time
}

// UnmarshalText parses a TOML date-time literal, optionally quoted.
func (d *DateTime) UnmarshalText(text []byte) error {
	var doc struct {
		V time.Time `toml:"v"`
	}
	md, err := toml.Decode("v = "+unwrapString(string(text)), &doc)
	if err != nil {
		return fmt.Errorf("invalid date-time %q: %w", text, err)
	}
	if len(md.Undecoded()) > 0 {
		return fmt.Errorf("invalid date-time %q", text)
	}
	d.Time = doc.V
	return nil
}
