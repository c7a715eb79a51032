package language

// Structural rules shared by every built-in table.
var (
	sentences    = `\s*[?!.](?:\s+|$)`
	sequences    = `\s*[:;](?:\s+|$)`
	articulation = `\s*,(?:\s+|$)`
	parentheses  = `(?:(?:^|\s+)[({\[]+\s*)|(?:\s*[})\]]+(?:$|\s+))`
	digression   = `\s+-+\s+`
	citation     = `["]`
	privateNames = `(?:^|\s+)((?:\p{Lu}\S*(?:\s+|$))+)`
	whiteSpaces  = `\s+`
	hyphens      = `['\\/*+\-#]`
)

// SAT returns the language-neutral table.
func SAT() Table {
	return Table{
		Code: "SAT",
		Rules: []Rule{
			MustRule(sentences),
			MustRule(sequences),
			MustRule(articulation),
			MustRule(parentheses),
			MustRule(digression),
			MustRule(citation),
			MustRule(privateNames),
			MustRule(whiteSpaces),
			MustRule(hyphens),
		},
	}
}

// EN returns the English table: the structural rules, then conjunctions,
// prepositions, articles and pronouns, then the word-level rules.
func EN() Table {
	return Table{
		Code: "EN",
		Rules: []Rule{
			MustRule(sentences),
			MustRule(sequences),
			MustRule(articulation),
			MustRule(parentheses),
			MustRule(digression),
			MustRule(citation),
			// subordinating conjunctions
			Words("after", "although", "because", "before",
				"once", "since", "though", "till", "unless", "until", "when",
				"whenever", "where", "whereas", "wherever", "while",
				"as", "even", "if", "that", "than"),
			// coordinating and correlative conjunctions
			Words("and", "or", "not", "but", "yet",
				"for", "so",
				"both", "either", "nor", "neither", "whether"),
			// locators in time and place
			Words("in", "at", "on", "to"),
			Words("a", "an", "the"),
			Words("it", "I", "you", "he", "she", "we", "they",
				"my", "your", "his", "her", "our", "their",
				"this", "these", "those", "them", "of"),
			MustRule(privateNames),
			MustRule(whiteSpaces),
			MustRule(hyphens),
		},
	}
}
