package session

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/skillcheck/internal/adaptive"
	"github.com/abhisek/skillcheck/internal/quizgen"
	"github.com/abhisek/skillcheck/internal/store"
)

// AnswerRecord captures one question's outcome.
type AnswerRecord struct {
	Question *quizgen.Question

	// UserAnswer is the choice the candidate picked. Empty when the
	// question timed out without an answer.
	UserAnswer string

	// Correct is true when UserAnswer matches the question's correct
	// answer exactly. Always false on timeout.
	Correct bool

	// TimedOut is true when the answer window expired.
	TimedOut bool

	// Fallback is true when the question was the built-in fallback.
	Fallback bool

	// TimeTaken is how long the candidate spent on this question.
	TimeTaken time.Duration
}

// Session orchestrates one quiz: it asks the generator for questions at
// the controller's difficulty, scores answers, tracks concepts, and
// produces the final summary.
type Session struct {
	id         string
	config     Config
	service    *quizgen.Service
	controller *adaptive.Controller
	history    ConceptHistory
	records    []AnswerRecord
	events     store.EventRepo

	current       *quizgen.Question
	currentIsFake bool
	questionStart time.Time
	startedAt     time.Time

	// pickStyle is injectable for deterministic tests.
	pickStyle func(styles []quizgen.Style) quizgen.Style
}

// New creates a session from a validated config. The event repo may be
// nil; persistence is best-effort and never blocks the quiz.
func New(cfg Config, service *quizgen.Service, events store.EventRepo) *Session {
	return &Session{
		id:         uuid.NewString(),
		config:     cfg,
		service:    service,
		controller: adaptive.NewController(cfg.InitialDifficulty, cfg.Adaptive),
		events:     events,
		pickStyle: func(styles []quizgen.Style) quizgen.Style {
			return styles[rand.IntN(len(styles))]
		},
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Config returns the session config.
func (s *Session) Config() Config { return s.config }

// Difficulty returns the difficulty the next question will use.
func (s *Session) Difficulty() adaptive.Level { return s.controller.Level() }

// CurrentQuestion returns the question awaiting an answer, or nil.
func (s *Session) CurrentQuestion() *quizgen.Question { return s.current }

// QuestionNumber returns the 1-based index of the question in play (or
// the next one if none is in play).
func (s *Session) QuestionNumber() int { return len(s.records) + 1 }

// Done reports whether all questions have been answered.
func (s *Session) Done() bool { return len(s.records) >= s.config.QuestionCount }

// Start records the session start. Called once before the first question.
func (s *Session) Start(ctx context.Context) {
	s.startedAt = time.Now()
	if s.events != nil {
		_ = s.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:         s.id,
			Action:            "started",
			TestName:          s.config.TestName,
			QuestionCount:     s.config.QuestionCount,
			InitialDifficulty: s.config.InitialDifficulty.String(),
		})
	}
}

// NextQuestion generates the next question at the current difficulty,
// in a randomly picked style, avoiding recently covered concepts. It
// never fails: generation problems degrade to the built-in fallback.
// The answer clock starts when the caller displays the question, not
// here.
func (s *Session) NextQuestion(ctx context.Context) *quizgen.Question {
	style := s.pickStyle(s.config.Styles)

	q, fallback := s.service.Next(ctx, quizgen.GenerateInput{
		Profile:        s.config.Profile,
		Difficulty:     s.controller.Level(),
		Style:          style,
		RecentConcepts: s.history.Recent(),
	})

	s.current = q
	s.currentIsFake = fallback
	s.questionStart = time.Now()
	return q
}

// Submit scores the candidate's answer against the current question and
// advances the session. Scoring is exact string match on the choice text.
func (s *Session) Submit(ctx context.Context, answer string) AnswerRecord {
	correct := s.current != nil && answer == s.current.CorrectAnswer
	return s.record(ctx, answer, correct, false)
}

// Timeout records the current question as expired: no answer, scored
// incorrect, and the difficulty controller treats it as a miss.
func (s *Session) Timeout(ctx context.Context) AnswerRecord {
	return s.record(ctx, "", false, true)
}

func (s *Session) record(ctx context.Context, answer string, correct, timedOut bool) AnswerRecord {
	q := s.current
	rec := AnswerRecord{
		Question:   q,
		UserAnswer: answer,
		Correct:    correct,
		TimedOut:   timedOut,
		Fallback:   s.currentIsFake,
		TimeTaken:  time.Since(s.questionStart),
	}
	s.records = append(s.records, rec)

	if q != nil {
		s.history.Add(q.Concept)
		s.controller.Record(correct)

		if s.events != nil {
			_ = s.events.AppendAnswerEvent(ctx, store.AnswerEventData{
				SessionID:    s.id,
				QuestionText: q.Text,
				Concept:      q.Concept,
				Difficulty:   q.Difficulty.String(),
				Style:        string(q.Style),
				UserAnswer:   answer,
				Correct:      correct,
				TimedOut:     timedOut,
				TimeMs:       rec.TimeTaken.Milliseconds(),
			})
		}
	}

	s.current = nil
	s.currentIsFake = false
	return rec
}

// Finish closes out the session and returns its summary. Safe to call
// after the last answer or on early abandonment.
func (s *Session) Finish(ctx context.Context) *Summary {
	sum := s.summarize()

	if s.events != nil {
		action := "completed"
		if !s.Done() {
			action = "abandoned"
		}
		_ = s.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:         s.id,
			Action:            action,
			TestName:          s.config.TestName,
			QuestionCount:     len(s.records),
			CorrectAnswers:    sum.Correct,
			DurationSecs:      int(time.Since(s.startedAt).Seconds()),
			InitialDifficulty: s.config.InitialDifficulty.String(),
			FinalDifficulty:   s.controller.Level().String(),
		})
	}

	return sum
}
