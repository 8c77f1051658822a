package service

import (
	"strings"
	"testing"

	"ayurcare/internal/domain/entity"
)

func TestAyurBotReply(t *testing.T) {
	bot := NewAyurBotService()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"headache", "What helps with a headache?", "Ginger tea"},
		{"cough", "patient has a persistent cough", "Sitopaladi"},
		{"sleep", "trouble with sleep lately", "Nutmeg milk"},
		{"weight loss", "diet plan for weight loss", "Kapha-pacifying"},
		{"acne", "remedies for acne", "Neem"},
		{"hair", "hair fall treatment", "Bhringraj"},
		{"what is vata", "Can you analyze: what is vata?", "energy of movement"},
		{"what is pitta", "dosha question: what is pitta", "energy of transformation"},
		{"what is kapha", "dosha question: what is kapha", "energy of structure"},
		{"analyze hint", "how do I analyze someone", "new analysis"},
		{"stress", "my patient reports stress", "Ashwagandha"},
		{"rice substitute", "substitute for rice?", "Quinoa"},
		{"milk substitute", "what can replace milk", "Coconut milk"},
		{"sugar substitute", "alternative to sugar", "Jaggery"},
		{"substitute generic", "any substitute suggestions", "which ingredient"},
		{"triphala", "tell me about triphala", "tridoshic"},
		{"brahmi", "is brahmi useful", "memory"},
		{"turmeric", "benefits of haldi", "anti-inflammatory"},
		{"greeting", "hello", "Namaste"},
		{"thanks", "thank you", "healing prevail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bot.Reply(tt.message, "", "")
			if !strings.Contains(got, tt.want) {
				t.Errorf("Reply(%q) = %q, want it to contain %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestAyurBotReplyPatientContext(t *testing.T) {
	bot := NewAyurBotService()

	got := bot.Reply("advice for this patient", "Asha Verma", entity.DoshaPitta)
	if !strings.Contains(got, "Asha Verma") || !strings.Contains(got, "pitta") {
		t.Errorf("contextual reply missing patient details: %q", got)
	}
	if !strings.Contains(got, "cooling") {
		t.Errorf("pitta tip missing: %q", got)
	}
}

func TestAyurBotReplyPatientContextWithoutProfile(t *testing.T) {
	bot := NewAyurBotService()

	got := bot.Reply("what about the current patient", "", "")
	if !strings.Contains(got, "run an analysis first") {
		t.Errorf("expected analysis prompt, got %q", got)
	}
}

func TestAyurBotReplyFallback(t *testing.T) {
	bot := NewAyurBotService()

	got := bot.Reply("zzz unrelated question", "", "")
	if !strings.Contains(got, "zzz unrelated question") {
		t.Errorf("fallback should echo the question, got %q", got)
	}
}
