package onboarding

import (
	"errors"
	"testing"

	"crocpad/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPresenter dismisses dialogs synchronously and answers quizzes from a script
type scriptedPresenter struct {
	script   [][]int
	licenses int
	quizzes  int
	states   []State
	flow     *Flow
}

func (p *scriptedPresenter) ShowLicense(text string, onClose func()) {
	p.licenses++
	onClose()
}

func (p *scriptedPresenter) AskQuiz(quiz Quiz, submit func([]int)) {
	p.quizzes++
	if p.flow != nil {
		p.states = append(p.states, p.flow.State())
	}
	answers := p.script[0]
	p.script = p.script[1:]
	submit(answers)
}

type memoryAcceptance struct {
	accepted bool
	calls    int
	err      error
}

func (m *memoryAcceptance) EULAAccepted() bool { return m.accepted }

func (m *memoryAcceptance) Accept() error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.accepted = true
	return nil
}

func correctAnswers() []int {
	answers := make([]int, len(LicenseQuiz))
	for i, q := range LicenseQuiz {
		answers[i] = q.Answer
	}
	return answers
}

func TestGrade(t *testing.T) {
	assert.True(t, LicenseQuiz.Grade(correctAnswers()))

	wrong := correctAnswers()
	wrong[0] = (wrong[0] + 1) % len(LicenseQuiz[0].Choices)
	assert.False(t, LicenseQuiz.Grade(wrong))

	skipped := correctAnswers()
	skipped[len(skipped)-1] = Unanswered
	assert.False(t, LicenseQuiz.Grade(skipped))

	assert.False(t, LicenseQuiz.Grade(nil))
	assert.False(t, LicenseQuiz.Grade(append(correctAnswers(), 0)))
}

func TestLicenseQuizAnswersAreValidChoices(t *testing.T) {
	for _, q := range LicenseQuiz {
		assert.GreaterOrEqual(t, q.Answer, 0, q.Prompt)
		assert.Less(t, q.Answer, len(q.Choices), q.Prompt)
	}
}

func TestAcceptedUserSkipsOnboarding(t *testing.T) {
	p := &scriptedPresenter{}
	acc := &memoryAcceptance{accepted: true}
	flow := NewFlow("EULA", LicenseQuiz, p, acc, logger.NoOpLogger{})

	done := false
	flow.Start(func() { done = true })

	assert.True(t, done)
	assert.Zero(t, p.licenses)
	assert.Zero(t, p.quizzes)
	assert.Zero(t, acc.calls)
	assert.Equal(t, Accepted, flow.State())
}

func TestPassFirstTime(t *testing.T) {
	p := &scriptedPresenter{script: [][]int{correctAnswers()}}
	acc := &memoryAcceptance{}
	flow := NewFlow("EULA", LicenseQuiz, p, acc, logger.NoOpLogger{})
	p.flow = flow
	require.Equal(t, NotAccepted, flow.State())

	done := 0
	flow.Start(func() { done++ })

	assert.Equal(t, 1, done)
	assert.Equal(t, Accepted, flow.State())
	assert.True(t, acc.accepted)
	assert.Equal(t, []State{QuizShown}, p.states)
	assert.Equal(t, 1, flow.Attempts())
}

func TestFailuresLoopUntilPass(t *testing.T) {
	wrong := make([]int, len(LicenseQuiz))
	script := [][]int{wrong, {Unanswered}, wrong, wrong, correctAnswers()}
	p := &scriptedPresenter{script: script}
	acc := &memoryAcceptance{}
	flow := NewFlow("EULA", LicenseQuiz, p, acc, logger.NoOpLogger{})
	p.flow = flow

	done := 0
	flow.Start(func() { done++ })

	assert.Equal(t, 1, done)
	assert.Equal(t, 5, p.licenses, "license is re-shown before every quiz")
	assert.Equal(t, 5, p.quizzes)
	assert.Equal(t, 5, flow.Attempts())
	assert.Equal(t, 1, acc.calls, "acceptance only recorded once, after the pass")
	assert.Equal(t, Accepted, flow.State())
	for _, s := range p.states {
		assert.Equal(t, QuizShown, s)
	}
}

func TestNeverAcceptedWithoutPassing(t *testing.T) {
	// a presenter that stops answering after failures leaves the gate closed
	p := &stallingPresenter{failures: 3}
	acc := &memoryAcceptance{}
	flow := NewFlow("EULA", LicenseQuiz, p, acc, logger.NoOpLogger{})

	done := false
	flow.Start(func() { done = true })

	assert.False(t, done)
	assert.False(t, acc.accepted)
	assert.Equal(t, QuizShown, flow.State())
	assert.Equal(t, 4, p.quizzes, "quiz is offered again after every failure")
}

type stallingPresenter struct {
	failures int
	quizzes  int
}

func (p *stallingPresenter) ShowLicense(text string, onClose func()) { onClose() }

func (p *stallingPresenter) AskQuiz(quiz Quiz, submit func([]int)) {
	p.quizzes++
	if p.failures == 0 {
		return
	}
	p.failures--
	submit(nil)
}

func TestPersistFailureStillContinues(t *testing.T) {
	p := &scriptedPresenter{script: [][]int{correctAnswers()}}
	acc := &memoryAcceptance{err: errors.New("read-only filesystem")}
	flow := NewFlow("EULA", LicenseQuiz, p, acc, logger.NoOpLogger{})

	done := false
	flow.Start(func() { done = true })

	assert.True(t, done)
	assert.Equal(t, Accepted, flow.State())
	assert.Equal(t, 1, acc.calls)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not accepted", NotAccepted.String())
	assert.Equal(t, "quiz shown", QuizShown.String())
	assert.Equal(t, "accepted", Accepted.String())
	assert.Equal(t, "unknown", State(42).String())
}
