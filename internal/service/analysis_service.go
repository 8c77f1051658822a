package service

import (
	"math"
	"strconv"
	"strings"

	"ayurcare/internal/domain/entity"
)

// Symptom keyword gates. Each set contributes its bonus at most once per
// dosha, no matter how many keywords match.
var doshaKeywords = map[entity.Dosha][]string{
	entity.DoshaVata:  {"pain", "dry", "gas", "anxiety"},
	entity.DoshaPitta: {"burn", "acid", "heat", "anger"},
	entity.DoshaKapha: {"heavy", "cold", "weight", "lazy"},
}

var herbsByDosha = map[entity.Dosha][]string{
	entity.DoshaVata:  {"Ashwagandha", "Brahmi", "Dashamoola"},
	entity.DoshaPitta: {"Amalaki", "Shatavari", "Guduchi"},
	entity.DoshaKapha: {"Trikatu", "Bibhitaki", "Turmeric"},
}

var dietByDosha = map[entity.Dosha][]string{
	entity.DoshaVata:  {"Warm soups", "Ghee", "Cooked grains", "Sweet fruits"},
	entity.DoshaPitta: {"Cooling salads", "Coconut water", "Rice", "Sweet vegetables"},
	entity.DoshaKapha: {"Spicy soups", "Honey", "Millet", "Bitter vegetables"},
}

// Nutrient suggestions are not yet personalized per dosha.
var baseNutrients = []entity.Nutrient{
	{Name: "Magnesium", Reason: "Muscle relaxation", Sources: "Spinach, Almonds"},
	{Name: "Vitamin C", Reason: "Immunity boost", Sources: "Amla, Citrus"},
}

// AnalysisService computes BMI, the dosha profile and the recommendation
// bundle for a validated intake form. All methods are pure.
type AnalysisService struct{}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// CalculateBMI computes weight / (height in meters)^2 rounded to one
// decimal place and the category for that value. Total for any positive
// weight and height.
func (s *AnalysisService) CalculateBMI(weight, height float64) entity.BMI {
	value := roundedBMI(weight, height)

	category := entity.BMINormal
	switch {
	case value < 18.5:
		category = entity.BMIUnderweight
	case value >= 30:
		category = entity.BMIObese
	case value >= 25:
		category = entity.BMIOverweight
	}

	return entity.BMI{
		Value:    strconv.FormatFloat(value, 'f', 1, 64),
		Category: category,
	}
}

// AnalyzeDosha scores the intake form into a dosha profile. Scoring is a
// function of the history keywords, lifestyle tags and the BMI bracket.
func (s *AnalysisService) AnalyzeDosha(form entity.IntakeForm) entity.DoshaProfile {
	symptoms := strings.ToLower(form.History)

	var vata, pitta, kapha int

	if containsAny(symptoms, doshaKeywords[entity.DoshaVata]) {
		vata += 3
	}
	if containsAny(symptoms, doshaKeywords[entity.DoshaPitta]) {
		pitta += 3
	}
	if containsAny(symptoms, doshaKeywords[entity.DoshaKapha]) {
		kapha += 3
	}

	for _, tag := range form.Lifestyle {
		switch tag {
		case entity.LifestyleSmoking:
			pitta++
			vata++
		case entity.LifestyleAlcohol:
			pitta += 2
		case entity.LifestyleSedentary:
			kapha += 2
		}
	}

	// Body type approximation from the rounded BMI value, the same number
	// the caller sees. Exactly 25 lands in the pitta bracket: the kapha
	// bonus requires strictly more.
	bmi := roundedBMI(form.Weight, form.Height)
	if bmi < 18.5 {
		vata += 2
	}
	if bmi > 25 {
		kapha += 2
	}
	if bmi >= 18.5 && bmi <= 25 {
		pitta++
	}

	scores := entity.DoshaScores{Vata: vata, Pitta: pitta, Kapha: kapha}

	total := vata + pitta + kapha
	if total == 0 {
		total = 1 // avoid divide by zero
	}
	percentages := entity.DoshaScores{
		Vata:  percent(vata, total),
		Pitta: percent(pitta, total),
		Kapha: percent(kapha, total),
	}

	dominant := entity.Doshas[0]
	for _, d := range entity.Doshas[1:] {
		if percentages.Get(d) > percentages.Get(dominant) {
			dominant = d
		}
	}

	return entity.DoshaProfile{
		Percentages: percentages,
		Dominant:    dominant,
		Scores:      scores,
	}
}

// Recommendations looks up the herb and diet lists for a dominant dosha.
// An unrecognized label yields empty lists, never an error.
func (s *AnalysisService) Recommendations(dominant entity.Dosha) entity.Recommendations {
	herbs := append([]string{}, herbsByDosha[dominant]...)
	diet := append([]string{}, dietByDosha[dominant]...)
	nutrients := append([]entity.Nutrient{}, baseNutrients...)

	return entity.Recommendations{
		Herbs:     herbs,
		Diet:      diet,
		Nutrients: nutrients,
	}
}

func roundedBMI(weight, height float64) float64 {
	meters := height / 100
	return math.Round(weight/(meters*meters)*10) / 10
}

func percent(score, total int) int {
	return int(math.Round(float64(score) / float64(total) * 100))
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
