package ai

import "fmt"

// majorsListMaxTokens bounds the majors list call; four major names never
// need more.
const majorsListMaxTokens = 200

func systemPersona(assistantName string) string {
	return fmt.Sprintf(
		"You are %s, a College Research Assistant. "+
			"When providing information about colleges, stick to factual information. "+
			"If you're not confident about specific details, provide general information "+
			"about the type of institution and suggest what prospective students "+
			"should look for or ask about. Always maintain a helpful and informative tone.",
		assistantName,
	)
}

func majorsListPrompt(careerField string) string {
	return fmt.Sprintf(
		"You must respond with exactly 4 majors related to a career in %s, "+
			"in a simple comma-separated list format. "+
			"Example format: Political Science, International Relations, Public Policy, Economics",
		careerField,
	)
}

func majorsListRetryPrompt() string {
	return "Provide exactly 4 majors separated by commas ONLY. " +
		"Example: Major1, Major2, Major3, Major4"
}
