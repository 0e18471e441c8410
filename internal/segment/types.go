package segment

// Section is a titled run of non-blank content lines in input order.
type Section struct {
	Title   string
	Content []string
}

// Clause is one enumerable item within a section.
type Clause struct {
	SectionTitle string
	Index        int
	RawText      string
}
