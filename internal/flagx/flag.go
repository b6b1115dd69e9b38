// Package flagx lets several loaders share one command line: each loader
// picks out the flags it owns and ignores the rest.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the flags named in allowed, together with their
// values. Both "-f value" and "-f=value" forms are recognised; a token that
// starts with "-" is never consumed as a value.
func FilterArgs(args []string, allowed ...string) []string {
	names := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		names[f] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, keep := names[name]; keep {
				out = append(out, arg)
			}
			continue
		}

		if _, keep := names[arg]; !keep {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// StringFlag returns the value of the string flag known under any of names
// (without dashes, e.g. "c", "config"). When the flag is repeated the last
// occurrence wins. Missing or malformed flags yield "".
func StringFlag(args []string, names ...string) string {
	dashed := make([]string, 0, len(names)*2)
	for _, n := range names {
		dashed = append(dashed, "-"+n, "--"+n)
	}

	var value string
	fs := flag.NewFlagSet("flagx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	if err := fs.Parse(FilterArgs(args, dashed...)); err != nil {
		return ""
	}
	return value
}

// JSONConfigPath returns the path given with -c or -config.
func JSONConfigPath(args []string) string {
	return StringFlag(args, "c", "config")
}

// EnvFilePath returns the path given with -e or -env.
func EnvFilePath(args []string) string {
	return StringFlag(args, "e", "env")
}
