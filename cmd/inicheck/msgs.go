// FILE: lixenwraith/ini/cmd/inicheck/msgs.go
package main

// Command descriptions
const (
	MsgRootShort = "Validate and inspect INI configuration files"
	MsgRootLong  = `inicheck parses INI configuration files and reports the first structural
error with its line number. It can also list a document's sections and keys,
and read a single value converted to a given type.

Without a FILE argument, --app NAME locates <NAME>.ini, .conf or .cfg in the
current directory and the XDG config directories, or in $<NAME>_CONFIG.`
	MsgValidateShort = "Check that files parse"
	MsgListShort     = "List sections and keys of a file"
	MsgGetShort      = "Print one value converted to a type"
)

// Output formats
const (
	MsgValidOK       = "%s: ok\n"
	MsgValidFailed   = "%s: %v\n"
	MsgSectionHeader = "[%s]\n"
	MsgKeyItem       = "  %s = %s\n"
)

// Errors
const (
	MsgErrNoCommand    = "no command specified"
	MsgErrNoFile       = "no file given and --app not set"
	MsgErrDiscover     = "failed to locate config for %q: %w"
	MsgErrValidate     = "%d of %d files failed validation"
	MsgErrKeyNotFound  = "key not found: %s.%s"
	MsgErrInvalidName  = "invalid section or key name %q"
	MsgErrUnknownType  = "unknown type %q"
	MsgErrConvertValue = "failed to convert %s.%s: %w"
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG)"
	MsgFlagMaxSize = "Maximum file size in bytes (0 disables the limit)"
	MsgFlagApp     = "Locate the config file of this application"
	MsgFlagType    = "Value type: string, int, float, bool, duration, strings, datetime"
	MsgFlagDefault = "Value printed when the key is absent or empty"
)
