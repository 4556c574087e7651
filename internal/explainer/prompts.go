package explainer

import (
	"fmt"

	"github.com/ziadkadry99/codeexplainer/internal/language"
	"github.com/ziadkadry99/codeexplainer/internal/llm"
)

const systemPrompt = `You are an expert programmer who explains code in a clear, concise manner. Format your response with clear headings and bullet points for easy readability. Use markdown formatting with ## for main headings and * for bullet points. Organize your explanation into distinct sections like "Purpose", "Key Components", "Notable Features", and "Potential Issues". Make your explanations concise and easy to scan.`

// userPrompt builds the user message for code written in lang.
func userPrompt(lang language.Tag, code string) string {
	return fmt.Sprintf("Please explain this %s code in a point-by-point format with clear headings:\n\n%s", lang, code)
}

// EstimateInputTokens approximates the prompt tokens one explain request for
// code would send.
func EstimateInputTokens(lang language.Tag, code string) int {
	return llm.EstimateTokens(systemPrompt) + llm.EstimateTokens(userPrompt(lang, code))
}
