package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrencyCategory is the conversion category fed by rates tables.
const CurrencyCategory = "Currency"

// RatesTable is an external currency table: units of each currency per
// one unit of Base, as of Date.
type RatesTable struct {
	Date  string             `yaml:"date"`
	Base  string             `yaml:"base"`
	Rates map[string]float64 `yaml:"rates"`
}

// ParseRates decodes and validates a rates table.
func ParseRates(data []byte) (RatesTable, error) {
	var t RatesTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return RatesTable{}, fmt.Errorf("cannot read rates table: %w", err)
	}
	if strings.TrimSpace(t.Date) == "" {
		return RatesTable{}, fmt.Errorf("rates table has no date")
	}
	if strings.TrimSpace(t.Base) == "" {
		return RatesTable{}, fmt.Errorf("rates table has no base currency")
	}
	if len(t.Rates) == 0 {
		return RatesTable{}, fmt.Errorf("rates table has no rates")
	}
	for name, r := range t.Rates {
		if !(r > 0) || math.IsInf(r, 0) {
			return RatesTable{}, fmt.Errorf("invalid rate for %s: %v", name, r)
		}
		if strings.Contains(name, "_") {
			return RatesTable{}, fmt.Errorf("invalid currency name %q", name)
		}
	}
	return t, nil
}

// Category converts the table into a conversion category with the base
// currency first and the rest sorted by name.
func (t RatesTable) Category() Category {
	cat := Category{Name: CurrencyCategory, Units: []Unit{{Name: t.Base, Factor: 1}}}
	names := make([]string, 0, len(t.Rates))
	for name := range t.Rates {
		if name != t.Base {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		cat.Units = append(cat.Units, Unit{Name: name, Factor: 1 / t.Rates[name]})
	}
	return cat
}

// IngestTable replaces the currency category with a new rates table. It
// returns a message for the user when the table is rejected.
func (c *Calculator) IngestTable(data []byte) string {
	t, err := ParseRates(data)
	if err != nil {
		msg := err.Error()
		return strings.ToUpper(msg[:1]) + msg[1:]
	}
	c.currency = t.Category()
	return ""
}

func (c *Calculator) category(name string) (Category, bool) {
	if name == CurrencyCategory {
		return c.currency, len(c.currency.Units) > 0
	}
	for _, cat := range c.t.conversions {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

func findUnit(cat Category, name string) (Unit, bool) {
	for _, u := range cat.Units {
		if u.Name == name {
			return u, true
		}
	}
	return Unit{}, false
}

func (u Unit) toBase(v float64) (float64, ErrorCode) {
	if u.Reciprocal {
		if v == 0 {
			return 0, DivideByZero
		}
		return u.Factor / v, NoError
	}
	return v*u.Factor + u.Offset, NoError
}

func (u Unit) fromBase(b float64) (float64, ErrorCode) {
	if u.Reciprocal {
		if b == 0 {
			return 0, DivideByZero
		}
		return u.Factor / b, NoError
	}
	if u.Factor == 0 {
		return 0, InvalidConversion
	}
	return (b - u.Offset) / u.Factor, NoError
}

// convert replaces X with X converted between two units of a category.
func (c *Calculator) convert(category, from, to string) ErrorCode {
	cat, ok := c.category(category)
	if !ok {
		return UnknownConversion
	}
	fu, ok := findUnit(cat, from)
	if !ok {
		return UnknownConversion
	}
	tu, ok := findUnit(cat, to)
	if !ok {
		return UnknownConversion
	}
	b, ec := fu.toBase(c.st.pop())
	if ec != NoError {
		return ec
	}
	r, ec := tu.fromBase(b)
	if ec != NoError {
		return ec
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return InvalidConversion
	}
	c.st.push(r)
	return NoError
}
