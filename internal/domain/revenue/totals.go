package revenue

import "github.com/shopspring/decimal"

// Totals maps a key to a summed amount and remembers first-seen key order.
type Totals struct {
	keys   []string
	values map[string]decimal.Decimal
}

func NewTotals() *Totals {
	return &Totals{values: make(map[string]decimal.Decimal)}
}

func (t *Totals) Add(key string, amount decimal.Decimal) {
	cur, ok := t.values[key]
	if !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = cur.Add(amount)
}

func (t *Totals) Get(key string) (decimal.Decimal, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns keys in encounter order.
func (t *Totals) Keys() []string {
	return append([]string(nil), t.keys...)
}

func (t *Totals) Len() int {
	return len(t.keys)
}

func (t *Totals) Map() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

func (t *Totals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range t.values {
		sum = sum.Add(v)
	}
	return sum
}

type Line struct {
	Key    string
	Amount decimal.Decimal
}
