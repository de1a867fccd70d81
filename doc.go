// FILE: lixenwraith/ini/doc.go

// Package ini reads INI-style configuration text into a read-only document
// and converts stored values into Go types on demand.
//
// Syntax:
//
//	; comment
//	[section]
//	key = value            ; trailing comment
//	other: "quoted \"text\""
//	list := [1, 2, "three, four"]
//
// Section and key names are ASCII identifiers. The operators '=', ':' and
// ':=' are equivalent. Values are stored as raw text; nothing is converted
// while parsing.
//
// Quick Start:
//
//	f, err := ini.Load("app.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	srv, _ := f.Section("server")
//	port, err := ini.Get(srv, "port", 8080)
//	hosts, err := ini.Get(srv, "hosts", []string{"localhost"})
//
// Conversion order (first match wins, resolved once per type):
//  1. string: quoted literals are unquoted and unescaped, others trimmed
//  2. Value: the raw text is kept for later conversion
//  3. predeclared bool, integer, float and complex types (strconv, whole text)
//  4. types implementing encoding.TextUnmarshaler
//  5. types with a FromString(string) (T, error) method
//  6. converters in the Registry (time.Duration, net.IPNet, url.URL, ...)
//  7. pointers, converted through their element type
//  8. slices and arrays, from a bracketed array literal
//
// Named types of a basic kind with none of the above parse like their
// underlying type. Any other type fails with ErrNoConversion, which Supports
// reports without reading data.
//
// Thread Safety:
// A parsed File is immutable and may be read from many goroutines. Parsing
// into a File that is being read requires external locking. Converters and
// registries are safe for concurrent use.
package ini
