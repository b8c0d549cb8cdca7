package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
)

// Option keys.
const (
	OptAngle       = "Degrees or Radians"
	OptWindowSize  = "Window Size"
	OptPlaces      = "Decimal Places to Show"
	OptReplicating = "Use Replicating Stack"
	OptBase        = "Select Base"
	OptThousands   = "Show Thousands Separator"
)

// Options returns the option metadata.
func (c *Calculator) Options() []grid.OptionEntry {
	return append([]grid.OptionEntry(nil), c.t.options...)
}

// ToggleOption advances an option to its next value.
func (c *Calculator) ToggleOption(key string) ErrorCode {
	switch key {
	case OptAngle:
		c.radians = !c.radians
	case OptWindowSize:
		if c.windowSize == "large" {
			c.windowSize = "small"
		} else {
			c.windowSize = "large"
		}
	case OptPlaces:
		c.places = (c.places + 1) % 10
	case OptReplicating:
		c.st.setReplicating(!c.st.replicate)
	case OptBase:
		c.base = (c.base + 1) % 4
	case OptThousands:
		c.thousands = !c.thousands
	default:
		return UnknownCommand
	}
	return NoError
}

// OptionValue returns the label of an option's current setting.
func (c *Calculator) OptionValue(key string) string {
	switch key {
	case OptAngle:
		if c.radians {
			return "radians"
		}
		return "degrees"
	case OptWindowSize:
		return c.windowSize
	case OptPlaces:
		return strconv.Itoa(c.places)
	case OptReplicating:
		return onOff(c.st.replicate)
	case OptBase:
		return strings.ToLower(c.base.String())
	case OptThousands:
		return onOff(c.thousands)
	default:
		return ""
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Display returns the entry line (or formatted X) and the rest of the
// stack, nearest first.
func (c *Calculator) Display() Display {
	d := Display{}
	vals := c.st.vals
	if c.entering {
		d.Primary = c.entry
	} else {
		d.Primary = c.format(c.st.peek())
		if len(vals) > 0 {
			vals = vals[:len(vals)-1]
		}
	}
	for i := len(vals) - 1; i >= 0; i-- {
		d.Stack = append(d.Stack, c.format(vals[i]))
	}
	if c.base != Decimal && !c.entering {
		d.AltBase = formatBase(c.st.peek(), c.base)
	}
	return d
}

// Status returns the mode line.
func (c *Calculator) Status() Status {
	angle := "DEG"
	if c.radians {
		angle = "RAD"
	}
	return Status{Exponent: "STD", Angle: angle, Base: c.base.String()}
}

func (c *Calculator) format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	a := math.Abs(v)
	if a != 0 && (a >= 1e12 || a < math.Pow(10, -float64(c.places))) {
		return strconv.FormatFloat(v, 'e', c.places, 64)
	}
	s := strconv.FormatFloat(v, 'f', c.places, 64)
	if c.thousands {
		s = groupThousands(s)
	}
	return s
}

// groupThousands inserts commas into the integer part of a decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + s
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + frac
}

// formatBase renders the integer part of v in an alternate base.
func formatBase(v float64, base Base) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1<<63 {
		return base.String() + ": overflow"
	}
	n := int64(math.Trunc(v))
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	var digits string
	switch base {
	case Hexadecimal:
		digits = "0x" + strings.ToUpper(strconv.FormatInt(n, 16))
	case Octal:
		digits = "0o" + strconv.FormatInt(n, 8)
	case Binary:
		digits = "0b" + strconv.FormatInt(n, 2)
	default:
		digits = strconv.FormatInt(n, 10)
	}
	return base.String() + ": " + sign + digits
}
