package plantgen

import "sort"

// Symbol is a single character of the L-system alphabet.
type Symbol rune

func (s Symbol) String() string {
	return string(s)
}

type SymbolSet map[Symbol]struct{}

func (ss SymbolSet) Contains(s Symbol) bool {
	_, exists := ss[s]
	return exists
}

func (ss SymbolSet) Add(s Symbol) {
	ss[s] = struct{}{}
}

// AsSlice returns the members in ascending order.
func (ss SymbolSet) AsSlice() []Symbol {
	slice := make([]Symbol, 0, len(ss))
	for s := range ss {
		slice = append(slice, s)
	}
	sort.Slice(slice, func(i, j int) bool { return slice[i] < slice[j] })
	return slice
}

// SymbolsOf returns the set of distinct symbols in str.
func SymbolsOf(str string) SymbolSet {
	set := make(SymbolSet)
	for _, r := range str {
		set.Add(Symbol(r))
	}
	return set
}
