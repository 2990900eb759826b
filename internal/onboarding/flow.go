// Package onboarding gates first use of the editor behind the license quiz.
package onboarding

import (
	"crocpad/internal/logger"
)

// State of the license gate
type State int

const (
	NotAccepted State = iota
	QuizShown
	Accepted
)

func (s State) String() string {
	switch s {
	case NotAccepted:
		return "not accepted"
	case QuizShown:
		return "quiz shown"
	case Accepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Presenter shows the modal license dialogs. Each method returns immediately
// and calls its callback once the user dismisses the dialog.
type Presenter interface {
	ShowLicense(text string, onClose func())
	AskQuiz(quiz Quiz, submit func(answers []int))
}

// Acceptance records the outcome in the user's settings
type Acceptance interface {
	EULAAccepted() bool
	Accept() error
}

// Flow drives NotAccepted → QuizShown → (fail → QuizShown | pass → Accepted).
// There is no retry limit; every failure shows the license and quiz again.
type Flow struct {
	license    string
	quiz       Quiz
	presenter  Presenter
	acceptance Acceptance
	logger     logger.Logger

	state    State
	attempts int
}

func NewFlow(license string, quiz Quiz, presenter Presenter, acceptance Acceptance, log logger.Logger) *Flow {
	state := NotAccepted
	if acceptance.EULAAccepted() {
		state = Accepted
	}
	return &Flow{
		license:    license,
		quiz:       quiz,
		presenter:  presenter,
		acceptance: acceptance,
		logger:     log,
		state:      state,
	}
}

func (f *Flow) State() State {
	return f.state
}

// Attempts counts submitted quizzes
func (f *Flow) Attempts() int {
	return f.attempts
}

// Start runs the gate and calls done once the license is accepted.
// Already-accepted users go straight to done.
func (f *Flow) Start(done func()) {
	if f.state == Accepted {
		done()
		return
	}
	f.offer(done)
}

func (f *Flow) offer(done func()) {
	f.presenter.ShowLicense(f.license, func() {
		f.state = QuizShown
		f.presenter.AskQuiz(f.quiz, func(answers []int) {
			f.submit(answers, done)
		})
	})
}

func (f *Flow) submit(answers []int, done func()) {
	f.attempts++
	if !f.quiz.Grade(answers) {
		f.logger.Info("Onboarding", "license quiz failed", map[string]interface{}{
			"attempt": f.attempts,
		})
		f.offer(done)
		return
	}

	f.state = Accepted
	f.logger.Info("Onboarding", "license accepted", map[string]interface{}{
		"attempts": f.attempts,
	})
	if err := f.acceptance.Accept(); err != nil {
		f.logger.Error("Onboarding", err, map[string]interface{}{
			"step": "persist acceptance",
		})
	}
	done()
}
