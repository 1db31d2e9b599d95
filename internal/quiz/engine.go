package quiz

// Question is a single multiple-choice question. Options hold 2-4 choices;
// Answer must match one of them exactly.
type Question struct {
	Text    string
	Answer  string
	Options []string
}

// Engine runs one quiz session over a fixed ordered question set. Question
// order matters for numbering display but not for scoring.
type Engine struct {
	questions  []Question
	resetToken int

	index    int
	selected string
	results  []bool
}

// New creates an Engine for the given questions and reset token.
func New(questions []Question, resetToken int) *Engine {
	return &Engine{questions: questions, resetToken: resetToken}
}

// Questions returns the question set.
func (e *Engine) Questions() []Question {
	return e.questions
}

// Index returns the zero-based index of the current question.
func (e *Engine) Index() int {
	return e.index
}

// Current returns the current question, or nil for an empty quiz.
func (e *Engine) Current() *Question {
	if len(e.questions) == 0 || e.index >= len(e.questions) {
		return nil
	}
	return &e.questions[e.index]
}

// Selected returns the pending selection for the current question
// ("" when nothing is selected).
func (e *Engine) Selected() string {
	return e.selected
}

// Results returns the per-question outcomes recorded so far, in question
// order.
func (e *Engine) Results() []bool {
	return e.results
}

// Select records a pending selection for the current question without
// advancing.
func (e *Engine) Select(option string) {
	e.selected = option
}

// Confirm grades the pending selection and advances. With no selection it
// is a no-op returning (0, false). After the last question it returns the
// final percentage score and done=true. An empty quiz completes immediately
// with score 0.
func (e *Engine) Confirm() (score int, done bool) {
	if len(e.questions) == 0 {
		return 0, true
	}
	if e.selected == "" {
		return 0, false
	}

	q := e.questions[e.index]
	e.results = append(e.results, e.selected == q.Answer)
	e.selected = ""

	if e.index == len(e.questions)-1 {
		return e.FinalScore(), true
	}
	e.index++
	return 0, false
}

// FinalScore computes floor(correct * 100 / total) over the recorded
// results. An empty question set scores 0.
func (e *Engine) FinalScore() int {
	if len(e.questions) == 0 {
		return 0
	}
	correct := 0
	for _, ok := range e.results {
		if ok {
			correct++
		}
	}
	return correct * 100 / len(e.questions)
}

// Reset reinitializes the session when the caller-supplied token changes;
// a matching token is a no-op. Used to restart a quiz in place.
func (e *Engine) Reset(token int) {
	if token == e.resetToken {
		return
	}
	e.resetToken = token
	e.index = 0
	e.selected = ""
	e.results = nil
}

// Done reports whether every question has been answered.
func (e *Engine) Done() bool {
	return len(e.results) >= len(e.questions)
}
