package advisor

import (
	"fmt"
	"strings"
)

const (
	NoInputMessage       = "Please ask a question or upload an image."
	DefaultImageQuestion = "Please analyze this image."
)

func buildPrompt(weatherContext, question, languageName string, withImage bool) string {
	if strings.TrimSpace(question) == "" && withImage {
		question = DefaultImageQuestion
	}

	var b strings.Builder
	b.WriteString("You are an expert agricultural assistant for Indian farmers.\n")
	if weatherContext != "" {
		fmt.Fprintf(&b, "CONTEXT: The user is located where the %s\n", weatherContext)
	} else {
		b.WriteString("CONTEXT: No weather information is available for the user's location.\n")
	}
	fmt.Fprintf(&b, "USER'S QUESTION: %q\n", question)

	if withImage {
		b.WriteString("Analyze the provided image and the user's question. Your tasks:\n")
		b.WriteString("1. Identify the plant and the disease.\n")
		b.WriteString("2. Provide a simple explanation.\n")
		b.WriteString("3. List one organic and one chemical treatment.\n")
		b.WriteString("IMPORTANT: Your advice MUST consider the weather context. For example, warn against spraying pesticides if rain is expected.\n")
	} else {
		b.WriteString("Provide a helpful, concise answer. Your advice MUST consider the weather context.\n")
	}

	fmt.Fprintf(&b, "Use short, simple sentences and Markdown formatting. Respond ONLY in the %s language.", languageName)
	return b.String()
}

// demoAnswer stands in for the model when no AI key is configured.
func demoAnswer(question, languageName string) string {
	return fmt.Sprintf("**[DEMO MODE]**\n\n"+
		"I can see you're asking about: *%s*.\n\n"+
		"Since no AI API key was provided, I am simulating an intelligent response for you in **%s**.\n\n"+
		"**Advice:** check your crops for moisture and ensure proper sunlight. "+
		"(Add a valid key to the backend .env file to get real AI responses).",
		question, languageName)
}
