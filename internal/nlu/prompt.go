package nlu

import "strings"

func BuildCommandPrompt(stageContext string, vocabulary []string, utterance string) string {
	return `
You are a command parser for a food ordering assistant.

Your task:
- Map the user utterance to EXACTLY ONE command from the allowed list.
- Output MUST be a single line.
- Output MUST be one of the allowed command templates with placeholders filled in.
- NO explanations.
- NO markdown.
- NO quotes.
- NO extra text.

If the utterance does not match any command, output exactly:
unknown

Current stage:
` + stageContext + `

Allowed commands:
` + strings.Join(vocabulary, "\n") + `

User utterance:
` + utterance
}

// CleanCommand strips the quoting and markdown noise models add despite the
// prompt, keeping the first non-empty line lower-cased.
func CleanCommand(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, "\"'`")
		if line != "" {
			return strings.ToLower(line)
		}
	}
	return ""
}
