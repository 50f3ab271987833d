package calculator

// Epsilon is the tolerance below which a balance or outstanding amount is
// treated as settled. It absorbs floating-point noise from repeated
// division and accumulation.
const Epsilon = 0.01

// Balances is an insertion-ordered mapping from person name to net balance.
// Positive means the person is owed money, negative means they owe money.
//
// The mapping grows dynamically: a name first seen on a bill (rather than in
// the registered people list) gets a zero-initialized entry on first touch.
type Balances struct {
	names  []string
	values map[string]float64
}

// NewBalances creates a Balances with every given name initialized to zero.
func NewBalances(people []string) *Balances {
	b := &Balances{values: make(map[string]float64, len(people))}
	for _, name := range people {
		b.touch(name)
	}
	return b
}

// touch ensures an entry exists for name, preserving first-seen order.
func (b *Balances) touch(name string) {
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
		b.values[name] = 0
	}
}

// Add adds delta to name's balance, creating the entry if needed.
func (b *Balances) Add(name string, delta float64) {
	b.touch(name)
	b.values[name] += delta
}

// Get returns name's balance, or zero if the name has never been seen.
func (b *Balances) Get(name string) float64 {
	return b.values[name]
}

// Names returns every known name in first-seen order.
func (b *Balances) Names() []string {
	return b.names
}

// Map returns the balances as a plain map for serialization.
func (b *Balances) Map() map[string]float64 {
	m := make(map[string]float64, len(b.values))
	for name, v := range b.values {
		m[name] = v
	}
	return m
}
