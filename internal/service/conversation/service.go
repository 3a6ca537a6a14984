package conversation

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clancybot/clancy/backend/internal/model/conversation"
	"github.com/clancybot/clancy/backend/internal/store"
)

// generateMaxTokens bounds the free-form content calls (major detail,
// college sections).
const generateMaxTokens = 800

var errGeneratorUnavailable = errors.New("generator not configured")

// Generator is the external text-generation capability the state machine
// orchestrates. Implementations must collapse all failure causes into plain
// errors; the machine only ever reacts by re-prompting the same state.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
	GenerateMajorsList(ctx context.Context, careerField string) string
}

// Result is one completed conversational turn.
type Result struct {
	SessionID string
	Response  string
}

// Service is the conversation state machine. It derives the current state
// from the session's last logged interaction, dispatches on it, appends the
// resulting interaction and renders the response with the next-state tag.
type Service struct {
	log  store.InteractionLog
	gen  Generator
	name string
	now  func() time.Time
}

// NewService wires the state machine to its log and generator. A nil
// generator is allowed; generation-backed flows then degrade to retry
// prompts.
func NewService(interactionLog store.InteractionLog, gen Generator, assistantName string) *Service {
	return &Service{
		log:  interactionLog,
		gen:  gen,
		name: assistantName,
		now:  time.Now,
	}
}

// HandleMessage processes one sanitized inbound message. It never fails: any
// storage or generation trouble degrades to a re-prompt, and the returned
// response always carries a state tag.
func (s *Service) HandleMessage(ctx context.Context, sessionID, message string) Result {
	if strings.EqualFold(message, "INIT") {
		id := uuid.NewString()
		s.append(ctx, conversation.InteractionRecord{SessionID: id, State: conversation.StateAskName})
		return Result{SessionID: id, Response: greetingResponse(s.name)}
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	state := conversation.StateAskName
	last, err := s.log.LastFor(ctx, sessionID)
	switch {
	case err == nil:
		state = last.State
	case errors.Is(err, store.ErrSessionNotFound):
		// Brand-new session; ASK_NAME is the initial state.
	default:
		log.Printf("[conversation] reading last interaction for session=%s failed: %v", sessionID, err)
	}

	if !state.Valid() {
		log.Printf("[conversation] session=%s in unrecognized state %q, resetting", sessionID, state)
		s.append(ctx, conversation.InteractionRecord{SessionID: sessionID, State: conversation.StateMainMenu})
		return Result{SessionID: sessionID, Response: unexpectedStateResponse()}
	}

	var response string
	switch state {
	case conversation.StateAskName:
		response = s.handleAskName(ctx, sessionID, message)
	case conversation.StateMainMenu:
		response = s.handleMainMenu(ctx, sessionID, message)
	case conversation.StateAskCareer:
		response = s.handleAskCareer(ctx, sessionID, message)
	case conversation.StateShowMajors:
		response = s.handleShowMajors(ctx, sessionID, message, last.MajorSelected)
	case conversation.StateAskCollege:
		response = s.handleAskCollege(ctx, sessionID, message)
	}

	return Result{SessionID: sessionID, Response: response}
}

func (s *Service) handleAskName(ctx context.Context, sessionID, message string) string {
	if message == "" {
		return askNameReprompt()
	}

	s.append(ctx, conversation.InteractionRecord{
		SessionID: sessionID,
		Name:      message,
		State:     conversation.StateMainMenu,
	})
	return menuGreetingResponse(message)
}

func (s *Service) handleMainMenu(ctx context.Context, sessionID, message string) string {
	switch strings.ToLower(message) {
	case "explore careers and majors":
		s.append(ctx, conversation.InteractionRecord{SessionID: sessionID, State: conversation.StateAskCareer})
		return careerPromptResponse()
	case "research colleges":
		s.append(ctx, conversation.InteractionRecord{SessionID: sessionID, State: conversation.StateAskCollege})
		return collegePromptResponse()
	case "get application advice":
		s.append(ctx, conversation.InteractionRecord{SessionID: sessionID, State: conversation.StateMainMenu})
		return adviceResponse()
	default:
		// Unchanged state; appending here would grow the log without bound
		// on repeated invalid input.
		return menuRepromptResponse()
	}
}

func (s *Service) handleAskCareer(ctx context.Context, sessionID, message string) string {
	if message == "" {
		return careerPromptResponse()
	}

	joined := ""
	if s.gen != nil {
		joined = s.gen.GenerateMajorsList(ctx, message)
	}
	if joined == "" {
		return careerRetryResponse()
	}

	s.append(ctx, conversation.InteractionRecord{
		SessionID:     sessionID,
		State:         conversation.StateShowMajors,
		MajorSelected: joined,
	})
	return majorsOfferResponse(strings.Split(joined, ", "))
}

func (s *Service) handleShowMajors(ctx context.Context, sessionID, message, storedMajors string) string {
	offered := strings.Split(storedMajors, ", ")

	selected := ""
	if index, err := strconv.Atoi(message); err == nil {
		if index >= 1 && index <= len(offered) {
			selected = offered[index-1]
		}
	} else {
		for _, major := range offered {
			if strings.EqualFold(major, message) {
				selected = major
				break
			}
		}
	}

	if selected == "" {
		return majorsRepromptResponse(offered)
	}

	details, err := s.generate(ctx, majorDetailPrompt(selected))
	if err != nil {
		return majorDetailRetryResponse()
	}

	s.append(ctx, conversation.InteractionRecord{
		SessionID:     sessionID,
		State:         conversation.StateMainMenu,
		MajorSelected: selected,
	})
	return majorDetailResponse(splitHeadedSections(details))
}

func (s *Service) handleAskCollege(ctx context.Context, sessionID, message string) string {
	if message == "" {
		return collegePromptResponse()
	}

	college := message
	overview, err := s.generate(ctx, collegeOverviewPrompt(college))
	if err != nil {
		return collegeRetryResponse(college)
	}

	selectedMajors, err := s.log.MajorsFor(ctx, sessionID)
	if err != nil {
		log.Printf("[conversation] reading majors for session=%s failed: %v", sessionID, err)
	}

	s.append(ctx, conversation.InteractionRecord{
		SessionID:         sessionID,
		State:             conversation.StateMainMenu,
		CollegeResearched: college,
	})

	// Sub-calls run sequentially and partial failures are tolerated: a
	// failed section just shortens the composite response.
	sections := []string{overview}
	for _, major := range selectedMajors {
		if info, err := s.generate(ctx, collegeMajorPrompt(major, college)); err == nil {
			sections = append(sections, info)
		}
	}
	if info, err := s.generate(ctx, collegeAdmissionsPrompt(college)); err == nil {
		sections = append(sections, info)
	}

	return collegeResponse(sections)
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	if s.gen == nil {
		return "", errGeneratorUnavailable
	}
	return s.gen.Generate(ctx, prompt, generateMaxTokens)
}

// append writes a record, carrying forward the most recent known name so
// identity is never lost across turns. Storage failures are logged and the
// conversation continues; a missed append degrades the reconstructed state,
// never the current response.
func (s *Service) append(ctx context.Context, record conversation.InteractionRecord) {
	if record.Name == "" {
		if last, err := s.log.LastFor(ctx, record.SessionID); err == nil {
			record.Name = last.Name
		}
	}
	record.Timestamp = s.now().UTC()

	if err := s.log.Append(ctx, record); err != nil {
		log.Printf("[conversation] appending interaction for session=%s failed: %v", record.SessionID, err)
	}
}

// splitHeadedSections turns generated text containing <h2> headings into
// per-heading sections for the formatter.
func splitHeadedSections(text string) []string {
	parts := strings.Split(text, "<h2>")
	sections := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sections = append(sections, "<h2>"+part)
	}
	return sections
}
