// This file is part of Stackscope.
//
// Stackscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Stackscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Stackscope.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// helpWriter formats the help message for a single mode.
type helpWriter struct {
	banner         string
	subModes       []string
	additionalHelp string
}

// zero values of the flag types are not shown as defaults.
func isZeroDefault(f *flag.Flag) bool {
	switch f.DefValue {
	case "", "0", "false", "0s":
		return true
	}
	return false
}

func isString(f *flag.Flag) bool {
	if g, ok := f.Value.(flag.Getter); ok {
		_, ok = g.Get().(string)
		return ok
	}
	return false
}

func (hw helpWriter) write(output io.Writer, flags *flag.FlagSet) {
	var b strings.Builder

	var numFlags int
	flags.VisitAll(func(f *flag.Flag) {
		numFlags++

		typ, usage := flag.UnquoteUsage(f)
		if typ == "" {
			fmt.Fprintf(&b, "  -%s\n", f.Name)
		} else {
			fmt.Fprintf(&b, "  -%s %s\n", f.Name, typ)
		}

		fmt.Fprintf(&b, "    \t%s", usage)
		if !isZeroDefault(f) {
			if isString(f) {
				fmt.Fprintf(&b, " (default %q)", f.DefValue)
			} else {
				fmt.Fprintf(&b, " (default %s)", f.DefValue)
			}
		}
		b.WriteString("\n")
	})

	if numFlags == 0 && len(hw.subModes) == 0 {
		if hw.banner != "" {
			fmt.Fprintf(output, "No help available for %s\n", hw.banner)
		} else {
			fmt.Fprintf(output, "No help available\n")
		}
		return
	}

	if hw.banner != "" {
		fmt.Fprintf(output, "Usage for %s mode:\n", hw.banner)
	} else {
		fmt.Fprintf(output, "Usage:\n")
	}

	io.WriteString(output, b.String())

	if len(hw.subModes) > 0 {
		if numFlags > 0 {
			io.WriteString(output, "\n")
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(hw.subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", hw.subModes[0])
	}

	if hw.additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", hw.additionalHelp)
	}
}
