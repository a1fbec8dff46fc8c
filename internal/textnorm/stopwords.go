// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

// stopwords contains English function words and high-frequency auxiliaries
// that carry no discriminative value for triage scoring. Checked against
// the lowercased token before lemmatization.
var stopwords = map[string]struct{}{
	// Articles and determiners
	"a": {}, "an": {}, "the": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "some": {}, "any": {}, "each": {}, "every": {}, "all": {},
	"both": {}, "few": {}, "many": {}, "much": {}, "more": {}, "most": {},
	"other": {}, "another": {}, "such": {}, "no": {}, "own": {}, "same": {},
	// Pronouns
	"i": {}, "me": {}, "my": {}, "mine": {}, "myself": {},
	"we": {}, "us": {}, "our": {}, "ours": {}, "ourselves": {},
	"you": {}, "your": {}, "yours": {}, "yourself": {},
	"he": {}, "him": {}, "his": {}, "himself": {},
	"she": {}, "her": {}, "hers": {}, "herself": {},
	"it": {}, "its": {}, "itself": {},
	"they": {}, "them": {}, "their": {}, "theirs": {}, "themselves": {},
	"who": {}, "whom": {}, "whose": {}, "which": {}, "what": {},
	"something": {}, "anything": {}, "nothing": {}, "everything": {},
	"someone": {}, "anyone": {}, "everyone": {}, "nobody": {},
	// Auxiliary and copular verbs
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"been": {}, "being": {}, "have": {}, "has": {}, "had": {}, "having": {},
	"do": {}, "does": {}, "did": {}, "doing": {}, "done": {},
	"can": {}, "could": {}, "may": {}, "might": {}, "must": {},
	"shall": {}, "should": {}, "will": {}, "would": {},
	// Conjunctions and complementizers
	"and": {}, "or": {}, "but": {}, "nor": {}, "so": {}, "yet": {},
	"if": {}, "because": {}, "although": {}, "though": {}, "while": {},
	"whereas": {}, "whether": {}, "unless": {}, "since": {}, "until": {},
	"however": {}, "therefore": {}, "thus": {}, "hence": {}, "moreover": {},
	"furthermore": {}, "nevertheless": {}, "meanwhile": {}, "otherwise": {},
	// Prepositions
	"of": {}, "in": {}, "on": {}, "at": {}, "by": {}, "for": {},
	"with": {}, "without": {}, "about": {}, "against": {}, "between": {},
	"among": {}, "into": {}, "onto": {}, "through": {}, "throughout": {},
	"during": {}, "before": {}, "after": {}, "above": {}, "below": {},
	"under": {}, "over": {}, "from": {}, "to": {}, "toward": {},
	"towards": {}, "upon": {}, "within": {}, "across": {}, "along": {},
	"around": {}, "behind": {}, "beside": {}, "besides": {}, "beyond": {},
	"down": {}, "up": {}, "out": {}, "off": {}, "per": {}, "via": {},
	// Adverbs and qualifiers
	"not": {}, "only": {}, "just": {}, "also": {}, "very": {}, "too": {},
	"quite": {}, "rather": {}, "almost": {}, "already": {}, "always": {},
	"never": {}, "often": {}, "sometimes": {}, "usually": {}, "again": {},
	"further": {}, "then": {}, "once": {}, "here": {}, "there": {},
	"where": {}, "when": {}, "why": {}, "how": {}, "now": {}, "well": {},
	"even": {}, "still": {}, "else": {}, "ever": {}, "instead": {},
	"indeed": {}, "perhaps": {}, "really": {}, "together": {},
	// Comparatives and quantity words
	"than": {}, "as": {}, "less": {}, "least": {}, "enough": {},
	"several": {}, "various": {}, "either": {}, "neither": {},
	"first": {}, "second": {}, "third": {}, "last": {}, "next": {},
	"one": {}, "two": {}, "three": {}, "four": {}, "five": {},
	"six": {}, "eight": {}, "nine": {}, "ten": {},
	// Misc high-frequency fillers
	"etc": {}, "eg": {}, "ie": {}, "vs": {}, "using": {}, "used": {},
	"use": {}, "due": {}, "based": {}, "amount": {}, "whence": {},
	"whereby": {}, "wherein": {}, "whatever": {}, "whenever": {},
	"wherever": {}, "whoever": {}, "anyhow": {}, "anyway": {},
	"become": {}, "becomes": {}, "became": {}, "get": {}, "got": {},
	"make": {}, "made": {}, "give": {}, "take": {}, "put": {},
	"say": {}, "said": {}, "see": {}, "seem": {}, "seemed": {},
	"seems": {}, "show": {}, "part": {}, "regarding": {},
}

func isStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
