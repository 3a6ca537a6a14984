package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/clancybot/clancy/backend/internal/config"
)

// fakeChatModel replays scripted replies, one per Generate call.
type fakeChatModel struct {
	replies []string
	errs    []error
	calls   int
	prompts []string
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	idx := f.calls
	f.calls++
	if len(input) > 0 {
		f.prompts = append(f.prompts, input[len(input)-1].Content)
	}
	if idx < len(f.errs) && f.errs[idx] != nil {
		return nil, f.errs[idx]
	}
	reply := ""
	if idx < len(f.replies) {
		reply = f.replies[idx]
	}
	return schema.AssistantMessage(reply, nil), nil
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func (f *fakeChatModel) BindTools(_ []*schema.ToolInfo) error { return nil }

func newTestService(fake *fakeChatModel, attempts int) *Service {
	return &Service{
		chatModel: fake,
		cfg: config.AIConfig{
			AssistantName:     "Clancy",
			MajorsMaxAttempts: attempts,
		},
	}
}

func TestGenerateCollapsesBackendErrors(t *testing.T) {
	fake := &fakeChatModel{errs: []error{errors.New("quota exceeded")}}
	svc := newTestService(fake, 3)

	if _, err := svc.Generate(context.Background(), "anything", 100); !errors.Is(err, ErrGenerationUnavailable) {
		t.Fatalf("expected ErrGenerationUnavailable, got %v", err)
	}
}

func TestGenerateTreatsEmptyContentAsUnavailable(t *testing.T) {
	fake := &fakeChatModel{replies: []string{"   "}}
	svc := newTestService(fake, 3)

	if _, err := svc.Generate(context.Background(), "anything", 100); !errors.Is(err, ErrGenerationUnavailable) {
		t.Fatalf("expected ErrGenerationUnavailable for blank output, got %v", err)
	}
}

func TestGenerateMajorsListFirstAttempt(t *testing.T) {
	fake := &fakeChatModel{replies: []string{"Biology, Chemistry, Physics, Math"}}
	svc := newTestService(fake, 3)

	got := svc.GenerateMajorsList(context.Background(), "medicine")
	if got != "Biology, Chemistry, Physics, Math" {
		t.Fatalf("unexpected majors list: %q", got)
	}
	if fake.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", fake.calls)
	}
}

func TestGenerateMajorsListRetriesWithCorrectivePrompt(t *testing.T) {
	fake := &fakeChatModel{replies: []string{
		"Sure! Here are some great ideas for you.",
		"1. Biology, 2) Chemistry, - Physics, *Math*",
	}}
	svc := newTestService(fake, 3)

	got := svc.GenerateMajorsList(context.Background(), "science")
	if got != "Biology, Chemistry, Physics, Math" {
		t.Fatalf("unexpected majors list after retry: %q", got)
	}
	if fake.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fake.calls)
	}
	if fake.prompts[1] == fake.prompts[0] {
		t.Fatal("expected the retry to use the corrective prompt")
	}
}

func TestGenerateMajorsListExhaustsBudget(t *testing.T) {
	boom := errors.New("network down")
	fake := &fakeChatModel{errs: []error{boom, boom, boom}}
	svc := newTestService(fake, 3)

	if got := svc.GenerateMajorsList(context.Background(), "law"); got != "" {
		t.Fatalf("expected empty string after exhausting attempts, got %q", got)
	}
	if fake.calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", fake.calls)
	}
}
