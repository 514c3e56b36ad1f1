package cardgen

import "fmt"

// Instructions appended to either system prompt when the caller wants
// multiple-choice cards.
const multipleChoiceExtraction = `
- For each card, also generate exactly 3 plausible but incorrect answers in a "wrongAnswers" array
- Wrong answers should be believable but clearly incorrect
- Wrong answers should be similar in length and style to the correct answer`

const multipleChoiceGeneration = `
- For each card, also generate exactly 3 plausible but incorrect answers in a "wrongAnswers" array
- Wrong answers should be believable but clearly incorrect to someone who knows the material
- Wrong answers should be similar in length and style to the correct answer
- Make wrong answers tricky enough to test real understanding`

func extractionSystemPrompt(multipleChoice bool) string {
	mcInstructions := ""
	fields := `"question", "answer"`
	if multipleChoice {
		mcInstructions = multipleChoiceExtraction
		fields = `"question", "answer", and "wrongAnswers"`
	}
	return fmt.Sprintf(`You are a flashcard extraction assistant. Given text content, extract meaningful question-answer pairs that would make good flashcards for studying.

Rules:
- Extract 5-15 flashcards depending on content length
- Questions should be clear and specific
- Answers should be concise but complete
- Focus on key concepts, definitions, and important facts
- Avoid overly broad or trivial questions%s

Return a JSON object with a "cards" array containing objects with %s fields.`, mcInstructions, fields)
}

func generationSystemPrompt(count int, multipleChoice bool) string {
	mcInstructions := ""
	fields := `"question", "answer"`
	if multipleChoice {
		mcInstructions = multipleChoiceGeneration
		fields = `"question", "answer", and "wrongAnswers"`
	}
	return fmt.Sprintf(`You are an expert flashcard creator. Generate high-quality flashcards for studying any topic.

Rules:
- Create exactly %d flashcards
- Questions should test understanding, not just memorization
- Mix different question types: definitions, concepts, applications, comparisons
- Answers should be concise (1-3 sentences) but complete
- Include the most important information about the topic
- Progress from basic to more advanced concepts%s

Return a JSON object with a "cards" array containing objects with %s fields.`, count, mcInstructions, fields)
}

func generationUserPrompt(topic string, count int, additionalContext string) string {
	if additionalContext != "" {
		return fmt.Sprintf("Create %d flashcards about: %s\n\nAdditional context/notes:\n%s", count, topic, additionalContext)
	}
	return fmt.Sprintf("Create %d flashcards about: %s", count, topic)
}
