package llm

import "fmt"

const promptVersion = "v1"

const simplifyPromptTemplate = `
You are an expert Urdu linguist.
Task: Take the following complex Urdu sentence and break it down into multiple, simpler, grammatically correct standalone Urdu sentences.

Complex Sentence: "%s"

Output Requirement:
1. Simplify the vocabulary slightly where appropriate.
2. Return ONLY a valid JSON array of strings. Do not include markdown formatting like ` + "```json" + `.

Example Input: "اگرچہ موسم خراب تھا لیکن وہ سکول گیا اور اس نے اپنا کام مکمل کیا۔"
Example Output: ["موسم خراب تھا۔", "وہ سکول گیا۔", "اس نے اپنا کام مکمل کیا۔"]
`

// BuildSimplifyPrompt embeds sentence verbatim into the instruction prompt.
func BuildSimplifyPrompt(sentence string) string {
	return fmt.Sprintf(simplifyPromptTemplate, sentence)
}
