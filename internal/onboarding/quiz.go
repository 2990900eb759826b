package onboarding

// Question is a multiple-choice question about the license
type Question struct {
	Prompt  string
	Choices []string
	Answer  int
}

// Quiz must be answered perfectly to pass
type Quiz []Question

// Unanswered marks a question the user skipped
const Unanswered = -1

// Grade reports whether every question was answered correctly
func (q Quiz) Grade(answers []int) bool {
	if len(answers) != len(q) {
		return false
	}
	for i, question := range q {
		if answers[i] != question.Answer {
			return false
		}
	}
	return true
}

// LicenseQuiz checks that the EULA was actually read
var LicenseQuiz = Quiz{
	{
		Prompt:  "Which typeface will your text be displayed in?",
		Choices: []string{"Any typeface I choose", "The house typeface", "Wingdings"},
		Answer:  1,
	},
	{
		Prompt:  "What does the Enter key do?",
		Choices: []string{"Inserts a new line silently", "Screams", "Submits my credit card details"},
		Answer:  1,
	},
	{
		Prompt:  "When must you not feed the crocodile?",
		Choices: []string{"Before breakfast", "On public holidays", "After midnight"},
		Answer:  2,
	},
	{
		Prompt:  "Can the troubleshooter be turned off?",
		Choices: []string{"Yes, in Special Tools", "No", "Only in Premium"},
		Answer:  1,
	},
}
