package domain

import "sort"

type PositionSide string

const (
	PositionSideLong  PositionSide = "long"
	PositionSideShort PositionSide = "short"
)

type Holding struct {
	Symbol string
	Side   PositionSide
	// Age counts completed rebalance cycles since entry. A position
	// is opened at age 0 and aged once per cycle before anything
	// else runs.
	Age int
}

// Book tracks every open position and how many cycles it has been
// held. It is the sole source of truth for "currently held" - a
// symbol absent from the book is assumed flat.
type Book struct {
	holdings map[string]*Holding
}

func NewBook() *Book {
	return &Book{
		holdings: map[string]*Holding{},
	}
}

func (b *Book) Held(symbol string) bool {
	_, ok := b.holdings[symbol]
	return ok
}

func (b *Book) Get(symbol string) (Holding, bool) {
	h, ok := b.holdings[symbol]
	if !ok {
		return Holding{}, false
	}
	return *h, true
}

// Open records a fresh position at age 0. Opening a symbol that is
// already held resets it, but callers are expected to dedup first.
func (b *Book) Open(symbol string, side PositionSide) {
	b.holdings[symbol] = &Holding{
		Symbol: symbol,
		Side:   side,
		Age:    0,
	}
}

// Restore re-creates a holding at a known age, for rebuilding the
// book from persisted state on startup.
func (b *Book) Restore(symbol string, side PositionSide, age int) {
	b.holdings[symbol] = &Holding{
		Symbol: symbol,
		Side:   side,
		Age:    age,
	}
}

func (b *Book) Remove(symbol string) {
	delete(b.holdings, symbol)
}

func (b *Book) IncrementAges() {
	for _, h := range b.holdings {
		h.Age++
	}
}

// Stale returns the symbols whose age has reached maxHoldingPeriod,
// sorted so callers act on them deterministically.
func (b *Book) Stale(maxHoldingPeriod int) []string {
	stale := []string{}
	for symbol, h := range b.holdings {
		if h.Age >= maxHoldingPeriod {
			stale = append(stale, symbol)
		}
	}
	sort.Strings(stale)
	return stale
}

func (b *Book) Symbols() []string {
	symbols := []string{}
	for symbol := range b.holdings {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func (b *Book) Len() int {
	return len(b.holdings)
}
