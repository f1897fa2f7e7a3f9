// Package planner is the service layer between storage and the pure
// planning core: it loads snapshots from the repositories, invokes the
// estimator, ranker, assigner and replanner, and persists what they
// return. All policy that needs context the core refuses to carry
// (alpha selection, candidate assembly, persistence) lives here.
package planner

import (
	"time"

	"go.uber.org/zap"

	"github.com/studyplanhq/studyplan/internal/config"
	"github.com/studyplanhq/studyplan/internal/store"
)

// Repos is the set of repositories the service operates on.
type Repos struct {
	Courses     store.CourseRepo
	Topics      store.TopicRepo
	Assessments store.AssessmentRepo
	Mastery     store.MasteryRepo
	Tasks       store.TaskRepo
	Busy        store.BusyRepo
	Events      store.EventRepo
}

// FromStore builds Repos backed by one store.
func FromStore(st *store.Store) Repos {
	return Repos{
		Courses:     st.Courses(),
		Topics:      st.Topics(),
		Assessments: st.Assessments(),
		Mastery:     st.Mastery(),
		Tasks:       st.Tasks(),
		Busy:        st.Busy(),
		Events:      st.Events(),
	}
}

// Service coordinates planning operations for a single user. Callers
// must not run two mutating operations concurrently; every operation
// reads the task set and rewrites it.
type Service struct {
	repos Repos
	prefs config.Preferences
	log   *zap.Logger
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger attaches a structured logger; the default discards logs.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service over the given repositories and preferences.
func New(repos Repos, prefs config.Preferences, opts ...Option) *Service {
	s := &Service{
		repos: repos,
		prefs: prefs,
		log:   zap.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Prefs returns the preferences the service plans with.
func (s *Service) Prefs() config.Preferences {
	return s.prefs
}
