// FILE: lixenwraith/ini/cmd/inicheck/commands.go
package main

import (
	"fmt"
	"time"

	"github.com/lixenwraith/ini"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE...]",
		Short: MsgValidateShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				path, err := opts.discover()
				if err != nil {
					return err
				}
				paths = []string{path}
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range paths {
				if _, err := opts.load(path); err != nil {
					failed++
					opts.logger.Debug().Err(err).Str("path", path).Msg("Validation failed")
					fmt.Fprintf(out, MsgValidFailed, path, err)
					continue
				}
				fmt.Fprintf(out, MsgValidOK, path)
			}

			if failed > 0 {
				return fmt.Errorf(MsgErrValidate, failed, len(paths))
			}
			return nil
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [FILE]",
		Short: MsgListShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := pathArg(opts, args)
			if err != nil {
				return err
			}
			f, err := opts.load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for name, s := range f.All() {
				fmt.Fprintf(out, MsgSectionHeader, name)
				for key, v := range s.All() {
					fmt.Fprintf(out, MsgKeyItem, key, v.Raw())
				}
			}
			return nil
		},
	}
}

func newGetCmd(opts *options) *cobra.Command {
	var (
		typeName string
		def      string
	)

	cmd := &cobra.Command{
		Use:   "get [FILE] SECTION KEY",
		Short: MsgGetShort,
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			convert, ok := valueTypes[typeName]
			if !ok {
				return fmt.Errorf(MsgErrUnknownType, typeName)
			}

			path, err := pathArg(opts, args[:len(args)-2])
			if err != nil {
				return err
			}
			section, key := args[len(args)-2], args[len(args)-1]
			for _, name := range []string{section, key} {
				if !ini.IsValidName(name) {
					return fmt.Errorf(MsgErrInvalidName, name)
				}
			}

			f, err := opts.load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s, _ := f.Section(section)
			v, found := s.Value(key)
			if !found || v.IsEmpty() {
				if cmd.Flags().Changed("default") {
					fmt.Fprintln(out, def)
					return nil
				}
				if !found {
					return fmt.Errorf(MsgErrKeyNotFound, section, key)
				}
			}

			res, err := convert(v)
			if err != nil {
				return fmt.Errorf(MsgErrConvertValue, section, key, err)
			}
			printValue(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "string", MsgFlagType)
	cmd.Flags().StringVar(&def, "default", "", MsgFlagDefault)
	return cmd
}

// pathArg returns the single FILE argument, or the discovered file when
// none is given
func pathArg(opts *options, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return opts.discover()
}

// valueTypes maps --type names to conversions
var valueTypes = map[string]func(ini.Value) (any, error){
	"string":   func(v ini.Value) (any, error) { return ini.As[string](v) },
	"int":      func(v ini.Value) (any, error) { return ini.As[int64](v) },
	"float":    func(v ini.Value) (any, error) { return ini.As[float64](v) },
	"bool":     func(v ini.Value) (any, error) { return ini.As[bool](v) },
	"duration": func(v ini.Value) (any, error) { return ini.As[time.Duration](v) },
	"strings":  func(v ini.Value) (any, error) { return ini.As[[]string](v) },
	"datetime": func(v ini.Value) (any, error) {
		dt, err := ini.As[ini.DateTime](v)
		if err != nil {
			return nil, err
		}
		return dt.Format(time.RFC3339), nil
	},
}

// printValue writes one result per line; lists print one element per line
func printValue(cmd *cobra.Command, v any) {
	out := cmd.OutOrStdout()
	if list, ok := v.([]string); ok {
		for _, s := range list {
			fmt.Fprintln(out, s)
		}
		return
	}
	fmt.Fprintln(out, v)
}
