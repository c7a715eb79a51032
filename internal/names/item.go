package names

// Item is a sealed variant describing a structure to canonicalize.
// Only Leaf, Compound and Pairs implement it.
type Item interface {
	item()
}

// Leaf is plain text.
type Leaf string

func (Leaf) item() {}

// Compound is an ordered list of items. Order is irrelevant to the
// canonical result.
type Compound []Item

func (Compound) item() {}

// Pairs is a mapping reduced to its entries: each entry canonicalizes as
// the compound of its key and its value.
type Pairs map[string]Item

func (Pairs) item() {}

// L creates a Leaf.
func L(s string) Leaf {
	return Leaf(s)
}

// C creates a Compound from items.
func C(items ...Item) Compound {
	return Compound(items)
}

// FromStrings creates a Compound of leaves.
func FromStrings(ss ...string) Compound {
	c := make(Compound, len(ss))
	for i, s := range ss {
		c[i] = Leaf(s)
	}
	return c
}

// FromNames creates a Compound of leaves holding the names as they are,
// without decomposing compound names into their members.
func FromNames(ns ...Name) Compound {
	c := make(Compound, len(ns))
	for i, n := range ns {
		c[i] = Leaf(n)
	}
	return c
}
