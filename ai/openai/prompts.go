package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/cinemind/ai"
)

const taggerResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "entities": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "text": {
            "type": "string"
          },
          "label": {
            "type": "string"
          },
          "start": {
            "type": "integer",
            "minimum": 0
          }
        },
        "required": ["text", "label", "start"],
        "additionalProperties": false
      }
    }
  },
  "required": ["entities"],
  "additionalProperties": false
}`

const taggerPromptTemplate = `Perform named-entity recognition on the given text and return the entities as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "text" is the entity's surface form exactly as it appears in the input, including casing.
- "label" must match exactly one of the listed values: %s.
- GPE marks geo-political entities: countries, regions, states, and cities.
- "start" is the character offset of the entity's first character in the input.
- Report every occurrence of an entity, in order of appearance.
- Include only entities that literally appear in the text. Do not hallucinate.
- If no entities can be identified, return "entities": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.



Example (formal):
Input: "Show me thrillers from South Korea released in 2019."
Output:
{
  "entities": [
    {"text":"South Korea","label":"GPE","start":23}
  ]
}

---  // informal / chat-style examples

Example (missing capitalization, no punctuation):
Input: "any good movies from india"
Output:
{
  "entities": [
    {"text":"india","label":"GPE","start":21}
  ]
}

Example (multiple places, informal):
Input: "something set in france or maybe spain"
Output:
{
  "entities": [
    {"text":"france","label":"GPE","start":17},
    {"text":"spain","label":"GPE","start":33}
  ]
}

Example (person and place):
Input: "films with Tom Hanks made in the United States"
Output:
{
  "entities": [
    {"text":"Tom Hanks","label":"PERSON","start":11},
    {"text":"United States","label":"GPE","start":33}
  ]
}

Example (no entities):
Input: "recommend me something funny"
Output:
{
  "entities": []
}`

// buildTaggerPrompt creates the system prompt with entity labels embedded.
func buildTaggerPrompt() string {
	return fmt.Sprintf(taggerPromptTemplate,
		taggerResponseSchema,
		strings.Join(ai.EntityLabels, ", "))
}
