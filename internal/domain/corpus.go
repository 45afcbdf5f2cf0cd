package domain

import "slices"

type Corpus []string

func FallbackCorpus() Corpus {
	return Corpus{
		"as if the past were not a thing but a place",
		"the old haunted silence of the south",
		"a monstrous unholy betrayal",
		"like a ghost returning to a house long dead",
		"an inherited curse",
	}
}

func (c Corpus) Clone() Corpus {
	return slices.Clone(c)
}
