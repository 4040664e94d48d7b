package usecase

import "fmt"

const promptTemplate = `Based on the following website content, answer the question.

Website Content:
%s

Question: %s

Answer:`

// FallbackAnswer is returned when the model produces only whitespace.
const FallbackAnswer = "I couldn't generate a proper answer. Please try rephrasing your question."

// BuildPrompt renders the fixed question-answering prompt.
func BuildPrompt(context, question string) string {
	return fmt.Sprintf(promptTemplate, context, question)
}
