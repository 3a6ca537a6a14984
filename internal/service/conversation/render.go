package conversation

import (
	"fmt"
	"strings"

	"github.com/clancybot/clancy/backend/internal/model/conversation"
)

// FallbackResponse is the apology the HTTP layer returns when a turn fails
// in a way the state machine could not absorb. It anchors the client back at
// the main menu and leaks no internal detail.
const FallbackResponse = "I apologize, but I encountered an error. Please try again." +
	"<br><strong>[MAIN_MENU]</strong>"

const menuOptions = "• Explore Careers and Majors<br>" +
	"• Research Colleges<br>" +
	"• Get Application Advice"

func greetingResponse(assistantName string) string {
	return fmt.Sprintf(
		"Hello! I'm %s, your College Research Assistant. "+
			"I'm here to help you explore colleges and majors.<br><br>"+
			"Please type your name to begin:",
		assistantName,
	) + conversation.StateAskName.Tag()
}

func askNameReprompt() string {
	return "Please type your name to begin:" + conversation.StateAskName.Tag()
}

func menuGreetingResponse(name string) string {
	return fmt.Sprintf(
		"Nice to meet you, %s!<br><br>"+
			"How can I help you today?<br><br>"+
			"<strong>Options:</strong><br>%s",
		name, menuOptions,
	) + conversation.StateMainMenu.Tag()
}

func menuRepromptResponse() string {
	return "Please select one of these options:<br><br>" + menuOptions +
		conversation.StateMainMenu.Tag()
}

func careerPromptResponse() string {
	return "What career field are you interested in?" + conversation.StateAskCareer.Tag()
}

func careerRetryResponse() string {
	return "I'm having trouble suggesting majors right now. Please try again." +
		conversation.StateAskCareer.Tag()
}

func collegePromptResponse() string {
	return "Which college would you like to learn about?" + conversation.StateAskCollege.Tag()
}

func collegeRetryResponse(college string) string {
	return fmt.Sprintf(
		"I apologize, but I need more information about %s. "+
			"Could you please specify the full name of the institution?",
		college,
	) + conversation.StateAskCollege.Tag()
}

func majorsOfferResponse(majors []string) string {
	return "Here are some majors to consider:<br><br>" + numberedList(majors, "<br>") +
		conversation.StateShowMajors.Tag()
}

func majorsRepromptResponse(majors []string) string {
	return "Please select a major from the list:<br><br>" + numberedList(majors, "<br>") +
		conversation.StateShowMajors.Tag()
}

func majorDetailRetryResponse() string {
	return "I'm having trouble getting information about this major. Please try again." +
		conversation.StateShowMajors.Tag()
}

func majorDetailResponse(sections []string) string {
	return FormatSections(sections) + "<br>What else would you like to know?" +
		conversation.StateMainMenu.Tag()
}

func collegeResponse(sections []string) string {
	return FormatSections(sections) + "<br><br>What else would you like to know?" +
		conversation.StateMainMenu.Tag()
}

func unexpectedStateResponse() string {
	return "I seem to have lost track of our conversation, so let's start from the menu.<br><br>" +
		menuOptions + conversation.StateMainMenu.Tag()
}

func adviceResponse() string {
	sections := []string{
		"<h2>APPLICATION PLANNING</h2>" +
			"• Start Early (Junior Year)<br>" +
			"• Research Schools<br>" +
			"• Create Timeline<br>" +
			"• Gather Materials",
		"<h2>KEY COMPONENTS</h2>" +
			"• Personal Essays<br>" +
			"• Recommendation Letters<br>" +
			"• Test Scores<br>" +
			"• Activities List",
		"<h2>WRITING TIPS</h2>" +
			"• Be Authentic<br>" +
			"• Show, Don't Tell<br>" +
			"• Start Early<br>" +
			"• Get Feedback",
		"<h2>FINAL STEPS</h2>" +
			"• Double Check Everything<br>" +
			"• Meet Deadlines<br>" +
			"• Keep Copies<br>" +
			"• Follow Up",
	}
	return FormatSections(sections) + conversation.StateMainMenu.Tag()
}

func numberedList(items []string, sep string) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	return strings.Join(lines, sep)
}
