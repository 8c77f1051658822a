package entity

import "time"

// Gender values accepted on intake
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Dosha is one of the three constitutional categories.
type Dosha string

const (
	DoshaVata  Dosha = "vata"
	DoshaPitta Dosha = "pitta"
	DoshaKapha Dosha = "kapha"
)

// Doshas is the fixed enumeration order. Dominant-dosha ties resolve to the
// earliest entry; a later dosha takes over only when strictly greater.
var Doshas = []Dosha{DoshaVata, DoshaPitta, DoshaKapha}

// Lifestyle tag vocabulary
const (
	LifestyleSmoking    = "smoking"
	LifestyleAlcohol    = "alcohol"
	LifestyleSedentary  = "sedentary"
	LifestyleVegetarian = "vegetarian"
	LifestyleExercise   = "exercise"
)

// BMI category labels
const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

// IntakeForm is the validated input describing one patient encounter.
// Delivery-layer validation rejects missing name/age/weight/height and
// ages outside [1,120] before any scoring runs.
type IntakeForm struct {
	Name      string
	Age       int
	Gender    string
	Weight    float64 // kg
	Height    float64 // cm
	History   string
	Lifestyle []string
}

// BMI holds the computed body mass index. Value is serialized with exactly
// one decimal place.
type BMI struct {
	Value    string `json:"value"`
	Category string `json:"category"`
}

// DoshaScores is a vata/pitta/kapha integer triple, used both for raw
// scores and for the derived percentages.
type DoshaScores struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

// Get returns the component for the given dosha.
func (s DoshaScores) Get(d Dosha) int {
	switch d {
	case DoshaPitta:
		return s.Pitta
	case DoshaKapha:
		return s.Kapha
	default:
		return s.Vata
	}
}

// DoshaProfile is the scoring result for one patient. Percentages are
// rounded per component, so their sum may drift slightly from 100.
type DoshaProfile struct {
	Percentages DoshaScores `json:"percentages"`
	Dominant    Dosha       `json:"dominant"`
	Scores      DoshaScores `json:"scores"`
}

// Nutrient is one supplement suggestion in a recommendation bundle.
type Nutrient struct {
	Name    string `json:"name"`
	Reason  string `json:"reason"`
	Sources string `json:"sources"`
}

// Recommendations bundles herb, diet and nutrient suggestions keyed off
// the dominant dosha.
type Recommendations struct {
	Herbs     []string   `json:"herbs"`
	Diet      []string   `json:"diet"`
	Nutrients []Nutrient `json:"nutrients"`
}

// Consultation is a follow-up visit entry. Records are created with an
// empty history; the structure is reserved for future use.
type Consultation struct {
	Date  time.Time `json:"date"`
	Notes string    `json:"notes"`
}

// Patient is the persisted record produced by committing an analysis
// result to the store. JSON field names are a stable contract for
// importers, exporters and chat-context builders.
type Patient struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Age             int             `json:"age"`
	Gender          string          `json:"gender"`
	Weight          float64         `json:"weight"`
	Height          float64         `json:"height"`
	History         string          `json:"history"`
	Lifestyle       []string        `json:"lifestyle"`
	BMI             BMI             `json:"bmi"`
	DoshaProfile    *DoshaProfile   `json:"doshaProfile,omitempty"`
	Recommendations Recommendations `json:"recommendations"`
	CreatedAt       time.Time       `json:"createdAt"`
	Consultations   []Consultation  `json:"consultations"`
}

// DominantDosha returns the dominant dosha when a profile is present.
// Imported records may carry no profile at all.
func (p *Patient) DominantDosha() (Dosha, bool) {
	if p.DoshaProfile == nil || p.DoshaProfile.Dominant == "" {
		return "", false
	}
	return p.DoshaProfile.Dominant, true
}
