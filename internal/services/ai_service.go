package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/markdave123-py/healthsense/internal/core"
	"github.com/markdave123-py/healthsense/internal/models"
)

const weeklySystemPrompt = `You are a supportive wellness assistant.

IMPORTANT RULES:
- You are NOT a doctor.
- Do NOT diagnose diseases.
- Do NOT suggest medicines or treatments.
- Give only general wellness insights.
- Be calm, empathetic, and non-alarming.`

const chatSystemPrompt = `You are a practical AI health assistant named Amigo.

STRICT BEHAVIOR RULES:
- If the user greets (e.g., "hi", "hello", "hey"), respond with a short greeting ONLY.
- Do NOT give health tips unless the user explicitly asks for advice.
- Answer the user's question directly and only what is asked.
- Be concise, clear, and practical.
- Do NOT over-empathize.
- Do NOT ask follow-up questions unless absolutely required.
- Do NOT diagnose or suggest medicines.
- You are not a doctor.

WHEN giving advice:
- Provide 3-5 actionable points
- Use plain, everyday language
- Avoid motivational or fluffy language
- No disclaimers unless medically necessary

Response rules:
- If greeting, a short friendly reply (1 sentence)
- If question, a structured, point-to-point answer
- No unnecessary explanations`

// AIService owns the prompts. The provider behind it is opaque; a nil provider
// means AI is not configured and every call reports ErrAIUnavailable.
type AIService struct {
	llm core.LLMProvider
}

func NewAIService(llm core.LLMProvider) *AIService {
	return &AIService{llm: llm}
}

// WeeklyNarrative asks for a JSON narrative grounded on the rule output. The raw
// reply is returned untouched; extraction happens in aiparse.
func (s *AIService) WeeklyNarrative(ctx context.Context, rules models.RuleInsights) (string, error) {
	var b strings.Builder
	b.WriteString("User health context:\n")
	fmt.Fprintf(&b, "- Risk level: %s\n\n", rules.RiskLevel)
	b.WriteString("Health signals (numeric summaries):\n")
	writeSignals(&b, rules.Signals)
	b.WriteString("\nRule-based observations:\n")
	writeObservations(&b, rules.Observations)
	b.WriteString(`
TASK:
1. Summarize the user's week in 2-3 sentences.
2. Identify key contributing patterns.
3. Provide gentle, general wellness suggestions.

Return your response in STRICT JSON with this format:

{
  "summary": "...",
  "key_patterns": ["...", "..."],
  "suggestions": ["...", "..."]
}
`)
	return s.generate(ctx, weeklySystemPrompt, b.String())
}

// ChatReply answers one user message. memory must be oldest first.
func (s *AIService) ChatReply(ctx context.Context, message, healthContext string, memory []models.ChatMessage) (string, error) {
	var b strings.Builder
	b.WriteString("Conversation memory (for continuity, do not repeat):\n")
	for _, m := range memory {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	b.WriteString("\nUser health context (use ONLY if relevant to the question):\n")
	b.WriteString(healthContext)
	fmt.Fprintf(&b, "\nUser message:\n%q\n", message)
	return s.generate(ctx, chatSystemPrompt, b.String())
}

// HealthContext renders the rule output as the chat's background block.
func HealthContext(rules models.RuleInsights) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Risk level: %s\n", rules.RiskLevel)
	b.WriteString("Signals:\n")
	writeSignals(&b, rules.Signals)
	b.WriteString("Observations:\n")
	writeObservations(&b, rules.Observations)
	return b.String()
}

func (s *AIService) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.llm == nil {
		return "", fmt.Errorf("%w: no model configured", models.ErrAIUnavailable)
	}
	out, err := s.llm.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrAIUnavailable, err)
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("%w: empty completion", models.ErrAIUnavailable)
	}
	return out, nil
}

func writeSignals(b *strings.Builder, s models.Signals) {
	for _, sig := range s.List() {
		fmt.Fprintf(b, "- %s: %d\n", sig.Name, sig.Value)
	}
}

func writeObservations(b *strings.Builder, obs []string) {
	if len(obs) == 0 {
		b.WriteString("- none\n")
		return
	}
	for _, o := range obs {
		fmt.Fprintf(b, "- %s\n", o)
	}
}
