package service

import (
	"fmt"
	"strings"

	"ayurcare/internal/domain/entity"
)

// AyurBotService answers practice questions from a fixed Ayurvedic
// knowledge base. It is the offline assistant; remote generative backends
// are an external collaborator and not called from here.
type AyurBotService struct{}

func NewAyurBotService() *AyurBotService {
	return &AyurBotService{}
}

// Reply produces a response for one chat message. patientName and dosha
// describe the currently selected patient and may be empty.
func (s *AyurBotService) Reply(message, patientName string, dosha entity.Dosha) string {
	q := strings.ToLower(strings.TrimSpace(message))

	// Common ailments
	if strings.Contains(q, "headache") {
		return "For headaches, Ayurveda suggests **Ginger tea** (Kapha/Vata) or **cool milk applied to the temples** (Pitta). Gentle massage with stimulating oils can also help."
	}
	if strings.Contains(q, "cold") || strings.Contains(q, "cough") {
		return "A potent remedy is **Sitopaladi Churna** with honey. Steam inhalation with Eucalyptus oil is excellent for congestion."
	}
	if strings.Contains(q, "insomnia") || strings.Contains(q, "sleep") {
		return "Warm **Nutmeg milk** before bed is a classic sedative. Massaging the feet with warm sesame oil (Padabhyanga) induces deep sleep."
	}
	if strings.Contains(q, "weight loss") {
		return "Focus on a **Kapha-pacifying diet**: warm, light, dry foods. Avoid dairy, sweets, and cold drinks. Triphala and Guggul are supportive herbs."
	}
	if strings.Contains(q, "skin") || strings.Contains(q, "acne") {
		return "Acne is often a Pitta imbalance. Use **Neem** and **Turmeric** internally and externally. Avoid spicy and fried foods."
	}
	if strings.Contains(q, "hair") {
		return "**Bhringraj oil** is the king of herbs for hair growth. Amla is also essential for preventing graying and hair fall."
	}

	if strings.Contains(q, "analyze") || strings.Contains(q, "dosha") {
		switch {
		case strings.Contains(q, "what is vata"):
			return "**Vata** is the energy of movement (Air + Ether). When balanced: creative, energetic. Unbalanced: anxiety, dry skin, constipation."
		case strings.Contains(q, "what is pitta"):
			return "**Pitta** is the energy of transformation (Fire + Water). When balanced: intelligent, sharp. Unbalanced: anger, acid reflux, inflammation."
		case strings.Contains(q, "what is kapha"):
			return "**Kapha** is the energy of structure (Earth + Water). When balanced: calm, strong. Unbalanced: weight gain, lethargy, congestion."
		}
		return "To analyze a dosha, record the patient's intake details through a new analysis. I will handle the math!"
	}

	if strings.Contains(q, "stress") || strings.Contains(q, "anxiety") {
		return "For stress relief, I recommend **Ashwagandha** supplements and practicing Pranayama (breath control). Avoiding caffeine is also crucial for Vata types."
	}

	// Ingredient substitutes
	if strings.Contains(q, "substitute") || strings.Contains(q, "alternative") || strings.Contains(q, "replace") {
		switch {
		case strings.Contains(q, "rice") || strings.Contains(q, "kitchari"):
			return "For Kitchari/Rice, you can substitute with Quinoa or Millet. They are lighter and have a lower glycemic index, good for Kapha types."
		case strings.Contains(q, "milk") || strings.Contains(q, "dairy"):
			return "Coconut milk or Almond milk are great Ayurvedic alternatives. Use warm almond milk for Vata and coconut milk for Pitta."
		case strings.Contains(q, "sugar") || strings.Contains(q, "sweet"):
			return "Jaggery (Gur) or Honey (Kapha only) are better than refined sugar. Stevia is good for diabetics."
		}
		return "I can suggest specific substitutes if you tell me which ingredient you want to replace (e.g., 'substitute for rice')."
	}

	// Herb primers
	if strings.Contains(q, "ashwagandha") {
		return "**Ashwagandha** is an adaptogen that reduces stress and Vata imbalance. It builds strength and immunity (Ojas) but can be heavy for high-Kapha individuals."
	}
	if strings.Contains(q, "triphala") {
		return "**Triphala** is a tridoshic digestive tonic. It gently cleanses the colon, improves eye health, and balances all three doshas. Best taken before bed."
	}
	if strings.Contains(q, "brahmi") {
		return "**Brahmi** is excellent for the mind. It improves memory, reduces anxiety, and is cooling (good for Pitta)."
	}
	if strings.Contains(q, "turmeric") || strings.Contains(q, "haldi") {
		return "**Turmeric** is anti-inflammatory and blood purifying. Always combine with a pinch of black pepper for absorption."
	}

	// Contextual help for the selected patient
	if strings.Contains(q, "this patient") || strings.Contains(q, "current patient") {
		if patientName != "" && dosha != "" {
			return fmt.Sprintf("For **%s** (likely %s), focus on %s.", patientName, dosha, doshaTip(dosha))
		}
		return "Please run an analysis first so I can give specific advice for this patient."
	}

	if strings.Contains(q, "hello") || strings.Contains(q, "hi") {
		return "Namaste! How can I assist with your practice today?"
	}
	if strings.Contains(q, "thank") {
		return "You are welcome! Let healing prevail."
	}

	return fmt.Sprintf("I see you are asking about %q. I can provide general Ayurvedic guidance based on traditional knowledge. Try asking about common ailments like headache, cold, or insomnia!", strings.TrimSpace(message))
}

func doshaTip(d entity.Dosha) string {
	switch d {
	case entity.DoshaPitta:
		return "cooling foods, moderation, and keeping excess heat out of the routine"
	case entity.DoshaKapha:
		return "light, warming foods and regular invigorating exercise"
	default:
		return "warm, grounding routines and regular nourishing meals"
	}
}
