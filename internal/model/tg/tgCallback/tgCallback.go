package tgCallback

// Callback button uniques. The payload after the unique is the concept id.
const (
	ConceptQuotes  string = "concept_quotes"
	RefreshQuotes  string = "refresh_quotes"
	BackToConcepts string = "back_to_concepts"
)
