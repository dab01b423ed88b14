package properties

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// unescape resolves the backslash escapes of the properties format.
func unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			if i+4 < len(s) {
				if r, err := strconv.ParseUint(s[i+1:i+5], 16, 16); err == nil {
					units := []uint16{uint16(r)}
					// Surrogate pairs arrive as two consecutive escapes.
					if utf16.IsSurrogate(rune(r)) && i+10 < len(s) && s[i+5] == '\\' && s[i+6] == 'u' {
						if low, err := strconv.ParseUint(s[i+7:i+11], 16, 16); err == nil {
							units = append(units, uint16(low))
							i += 6
						}
					}
					b.WriteString(string(utf16.Decode(units)))
					i += 4
					continue
				}
			}
			b.WriteByte('u')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func escapeKey(s string) string {
	return escape(s, true)
}

func escapeValue(s string) string {
	return escape(s, false)
}

// escape renders s for the properties format. Characters outside printable
// ASCII are written as \uXXXX since Gradle reads the file as ISO-8859-1.
func escape(s string, key bool) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\f':
			b.WriteString(`\f`)
		case r == ' ' && (key || i == 0):
			b.WriteString(`\ `)
		case (r == '=' || r == ':' || r == '#' || r == '!') && key:
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r > 0x7e:
			for _, unit := range utf16.Encode([]rune{r}) {
				fmt.Fprintf(&b, `\u%04X`, unit)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
