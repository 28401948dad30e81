package ai

// Entity is a named entity recognized in text.
type Entity struct {
	// Text is the entity's surface form as it appears in the input.
	Text string

	// Label categorizes the entity. Must match one of the EntityLabels values.
	Label string
}

// Entity labels recognized by taggers. The set follows the usual NER
// conventions: GPE marks geo-political entities (countries, regions, cities).
const (
	LabelGPE    = "GPE"
	LabelPerson = "PERSON"
	LabelOrg    = "ORG"
	LabelDate   = "DATE"
	LabelWork   = "WORK_OF_ART"
)

// EntityLabels defines the valid labels for recognized entities.
// These labels are used by entity taggers to classify mentions.
var EntityLabels = []string{
	LabelGPE,
	LabelPerson,
	LabelOrg,
	LabelDate,
	LabelWork,
}
