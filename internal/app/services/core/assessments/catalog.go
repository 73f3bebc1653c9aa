package assessments

// Question is one questionnaire item. Weights maps the exact option text to
// its integer score; an answer outside the map scores zero.
type Question struct {
	ID      string
	Text    string
	Options []string
	Weights map[string]int
}

// Band is one inclusive scoring range. Bands are evaluated in declared
// order, first match wins.
type Band struct {
	Min     int
	Max     int
	Status  string
	Message string
}

// Assessment is a static, code-defined questionnaire. Instruments with
// published cutoffs set FixedMaxScore and band on the raw total; the rest
// derive the maximum from per-question weights and band on the percentage.
type Assessment struct {
	ID            int
	Title         string
	Slug          string
	Description   string
	Category      string
	Questions     []Question
	FixedMaxScore int
	BandsOnRaw    bool
	Bands         []Band
}

func (a *Assessment) MaxScore() int {
	if a.FixedMaxScore > 0 {
		return a.FixedMaxScore
	}
	total := 0
	for _, q := range a.Questions {
		max := 0
		for _, w := range q.Weights {
			if w > max {
				max = w
			}
		}
		total += max
	}
	return total
}

// Catalog holds every assessment definition. It is built once at startup
// and read-only afterwards, so concurrent handler access needs no locking.
type Catalog struct {
	ordered []Assessment
	bySlug  map[string]*Assessment
}

func (c *Catalog) All() []Assessment {
	return c.ordered
}

func (c *Catalog) FindBySlug(slug string) (*Assessment, bool) {
	a, ok := c.bySlug[slug]
	return a, ok
}

func frequencyWeightsDescending() map[string]int {
	return map[string]int{"Never": 3, "Sometimes": 2, "Often": 1, "Always": 0}
}

func frequencyWeightsAscending() map[string]int {
	return map[string]int{"Never": 0, "Sometimes": 1, "Often": 2, "Always": 3}
}

func agreementWeights() map[string]int {
	return map[string]int{"Strongly disagree": 0, "Disagree": 1, "Agree": 2, "Strongly agree": 3}
}

func gad7Weights() map[string]int {
	return map[string]int{
		"Not at all":              0,
		"Several days":            1,
		"More than half the days": 2,
		"Nearly every day":        3,
	}
}

var frequencyOptions = []string{"Never", "Sometimes", "Often", "Always"}
var agreementOptions = []string{"Strongly disagree", "Disagree", "Agree", "Strongly agree"}
var gad7Options = []string{"Not at all", "Several days", "More than half the days", "Nearly every day"}

// NewCatalog returns the full questionnaire set in listing order.
func NewCatalog() *Catalog {
	ordered := []Assessment{
		{
			ID:          1,
			Title:       "Depression Test",
			Slug:        "depression",
			Description: "Understand your mood and mental well-being.",
			Category:    "mental",
			Questions: []Question{
				{ID: "q1", Text: "I feel sad most of the day", Options: frequencyOptions, Weights: frequencyWeightsDescending()},
				{ID: "q2", Text: "I enjoy activities I used to enjoy", Options: []string{"Yes", "No"}, Weights: map[string]int{"Yes": 3, "No": 0}},
				{ID: "q3", Text: "I have trouble sleeping", Options: frequencyOptions, Weights: frequencyWeightsDescending()},
			},
			Bands: []Band{
				{Min: 80, Max: 100, Status: "Low risk", Message: "You show good mental peace. Keep nurturing your well-being!"},
				{Min: 50, Max: 79, Status: "Moderate risk", Message: "Some symptoms of depression noted. Consider self-care or consulting a professional."},
				{Min: 0, Max: 49, Status: "High risk", Message: "Signs of depression detected. It is advisable to seek help from a mental health professional."},
			},
		},
		{
			ID:          2,
			Title:       "Relationship Satisfaction",
			Slug:        "relationship",
			Description: "Evaluate relationship satisfaction and communication.",
			Category:    "social",
			Questions: []Question{
				{ID: "q1", Text: "We communicate openly about feelings", Options: frequencyOptions, Weights: frequencyWeightsAscending()},
				{ID: "q2", Text: "I feel supported by my partner", Options: []string{"Yes", "No"}, Weights: map[string]int{"Yes": 3, "No": 0}},
			},
			Bands: []Band{
				{Min: 80, Max: 100, Status: "Healthy Relationship", Message: "Your relationship communication and support seem strong."},
				{Min: 50, Max: 79, Status: "Some Concerns", Message: "There are some areas to improve. Communication is key."},
				{Min: 0, Max: 49, Status: "High Concern", Message: "Significant issues detected. Consider relationship counseling."},
			},
		},
		{
			ID:          3,
			Title:       "Anxiety Assessment",
			Slug:        "anxiety",
			Description: "Measure your anxiety symptoms and coping strategies.",
			Category:    "mental",
			Questions: []Question{
				{ID: "q1", Text: "I feel restless or keyed up", Options: frequencyOptions, Weights: frequencyWeightsDescending()},
				{ID: "q2", Text: "I worry about many things", Options: frequencyOptions, Weights: frequencyWeightsDescending()},
				{ID: "q3", Text: "I have trouble concentrating due to anxiety", Options: frequencyOptions, Weights: frequencyWeightsDescending()},
			},
			Bands: []Band{
				{Min: 80, Max: 100, Status: "Low Anxiety", Message: "Your anxiety symptoms appear minimal. Keep taking care of yourself!"},
				{Min: 50, Max: 79, Status: "Moderate Anxiety", Message: "You might be experiencing moderate anxiety. Consider relaxation techniques."},
				{Min: 0, Max: 49, Status: "High Anxiety", Message: "High anxiety signs detected. Please consider seeking professional guidance."},
			},
		},
		{
			ID:          4,
			Title:       "Self-Esteem Quiz",
			Slug:        "self-esteem",
			Description: "Discover your self-confidence levels and ways to boost them.",
			Category:    "psychological",
			Questions: []Question{
				{ID: "q1", Text: "I feel confident in my abilities", Options: agreementOptions, Weights: agreementWeights()},
				{ID: "q2", Text: "I accept myself as I am", Options: agreementOptions, Weights: agreementWeights()},
				{ID: "q3", Text: "I avoid comparing myself to others", Options: agreementOptions, Weights: agreementWeights()},
			},
			Bands: []Band{
				{Min: 80, Max: 100, Status: "High Self-Esteem", Message: "You demonstrate healthy confidence and self-acceptance."},
				{Min: 50, Max: 79, Status: "Moderate Self-Esteem", Message: "Your self-esteem could be improved. Try positive affirmations."},
				{Min: 0, Max: 49, Status: "Low Self-Esteem", Message: "Signs of low self-esteem detected. Consider working with a counselor or therapist."},
			},
		},
		{
			ID:          5,
			Title:       "Stress Level Test",
			Slug:        "stress-level",
			Description: "Evaluate how stress affects your daily life and health.",
			Category:    "mental",
			Questions: []Question{
				{ID: "q1", Text: "I feel overwhelmed by responsibilities", Options: frequencyOptions, Weights: frequencyWeightsDescending()},
				{ID: "q2", Text: "I have trouble sleeping due to stress", Options: frequencyOptions, Weights: frequencyWeightsDescending()},
				{ID: "q3", Text: "I find relaxation difficult", Options: frequencyOptions, Weights: frequencyWeightsDescending()},
			},
			Bands: []Band{
				{Min: 80, Max: 100, Status: "Low Stress", Message: "You seem to handle stress well. Keep up your good habits!"},
				{Min: 50, Max: 79, Status: "Moderate Stress", Message: "You experience some stress. Practice coping techniques and self-care."},
				{Min: 0, Max: 49, Status: "High Stress", Message: "High levels of stress detected. Consider professional support."},
			},
		},
		{
			ID:          6,
			Title:       "Generalized Anxiety Disorder (GAD-7)",
			Slug:        "gad7",
			Description: "Standardized seven-item screen for generalized anxiety over the last two weeks.",
			Category:    "clinical",
			Questions: []Question{
				{ID: "q1", Text: "Feeling nervous, anxious, or on edge", Options: gad7Options, Weights: gad7Weights()},
				{ID: "q2", Text: "Not being able to stop or control worrying", Options: gad7Options, Weights: gad7Weights()},
				{ID: "q3", Text: "Worrying too much about different things", Options: gad7Options, Weights: gad7Weights()},
				{ID: "q4", Text: "Trouble relaxing", Options: gad7Options, Weights: gad7Weights()},
				{ID: "q5", Text: "Being so restless that it is hard to sit still", Options: gad7Options, Weights: gad7Weights()},
				{ID: "q6", Text: "Becoming easily annoyed or irritable", Options: gad7Options, Weights: gad7Weights()},
				{ID: "q7", Text: "Feeling afraid as if something awful might happen", Options: gad7Options, Weights: gad7Weights()},
			},
			FixedMaxScore: 21,
			BandsOnRaw:    true,
			Bands: []Band{
				{Min: 0, Max: 4, Status: "Minimal Anxiety", Message: "Your responses suggest minimal anxiety symptoms."},
				{Min: 5, Max: 9, Status: "Mild Anxiety", Message: "Your responses suggest mild anxiety. Monitor how you feel and practice self-care."},
				{Min: 10, Max: 14, Status: "Moderate Anxiety", Message: "Your responses suggest moderate anxiety. Consider talking to a counselor."},
				{Min: 15, Max: 21, Status: "Severe Anxiety", Message: "Your responses suggest severe anxiety. Please seek professional support."},
			},
		},
	}

	bySlug := make(map[string]*Assessment, len(ordered))
	for i := range ordered {
		bySlug[ordered[i].Slug] = &ordered[i]
	}
	return &Catalog{ordered: ordered, bySlug: bySlug}
}
