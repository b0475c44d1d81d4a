package progress

// StageRecord captures one BeginStage call for assertions
type StageRecord struct {
	Title      string
	TotalSteps int
}

// StepRecord captures one TrackStep call and its outcome for assertions
type StepRecord struct {
	Description string
	Err         error
}

// MockReporter is a recording implementation of the Reporter interface for testing
type MockReporter struct {
	BeginStageFunc func(title string, totalSteps int)
	TrackStepFunc  func(description string, fn func() error) error
	Stages         []StageRecord
	Steps          []StepRecord
}

// NewMockReporter creates a new MockReporter instance
func NewMockReporter() *MockReporter {
	return &MockReporter{}
}

// BeginStage records the stage and calls the custom BeginStageFunc if provided.
func (m *MockReporter) BeginStage(title string, totalSteps int) {
	m.Stages = append(m.Stages, StageRecord{Title: title, TotalSteps: totalSteps})
	if m.BeginStageFunc != nil {
		m.BeginStageFunc(title, totalSteps)
	}
}

// TrackStep records the step, runs fn, and records the outcome. If a custom
// TrackStepFunc is provided it takes over entirely.
func (m *MockReporter) TrackStep(description string, fn func() error) error {
	if m.TrackStepFunc != nil {
		return m.TrackStepFunc(description, fn)
	}
	err := fn()
	m.Steps = append(m.Steps, StepRecord{Description: description, Err: err})
	return err
}

// Ensure MockReporter implements Reporter interface
var _ Reporter = (*MockReporter)(nil)
