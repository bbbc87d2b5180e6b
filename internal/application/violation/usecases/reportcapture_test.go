package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeline/internal/domain/violation"
	"lifeline/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (l nopLogger) With(args ...any) logger.Interface             { return l }
func (l nopLogger) Named(name string) logger.Interface            { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type fakeViolationRepo struct {
	nextID    uint
	records   []*violation.Record
	counts    map[uint]int64
	createErr error
	warned    []uint
}

func newFakeViolationRepo() *fakeViolationRepo {
	return &fakeViolationRepo{nextID: 1, counts: map[uint]int64{}}
}

func (r *fakeViolationRepo) CreateAndCount(ctx context.Context, record *violation.Record) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	if err := record.SetID(r.nextID); err != nil {
		return 0, err
	}
	r.nextID++
	r.records = append(r.records, record)
	r.counts[record.SubscriberID()]++
	return r.counts[record.SubscriberID()], nil
}

func (r *fakeViolationRepo) CountBySubscriber(ctx context.Context, subscriberID uint) (int64, error) {
	return r.counts[subscriberID], nil
}

func (r *fakeViolationRepo) ListBySubscriber(ctx context.Context, subscriberID uint, page, pageSize int) ([]*violation.Record, int64, error) {
	var out []*violation.Record
	for _, rec := range r.records {
		if rec.SubscriberID() == subscriberID {
			out = append(out, rec)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeViolationRepo) MarkWarningIssued(ctx context.Context, recordID uint) error {
	r.warned = append(r.warned, recordID)
	return nil
}

type fakeEnforcementNotifier struct {
	triggered []uint
}

func (n *fakeEnforcementNotifier) EnforcementTriggered(ctx context.Context, subscriberID uint, contentID string, total int64) error {
	n.triggered = append(n.triggered, subscriberID)
	return nil
}

type fakeOpsMailer struct {
	warnings     int
	enforcements int
}

func (m *fakeOpsMailer) SendWarningNotice(subscriberID uint, contentID string, total int64) error {
	m.warnings++
	return nil
}

func (m *fakeOpsMailer) SendEnforcementNotice(subscriberID uint, contentID string, total int64) error {
	m.enforcements++
	return nil
}

func reportCommand() ReportCaptureCommand {
	return ReportCaptureCommand{
		SubscriberID: 11,
		CreatorID:    22,
		ContentID:    "content-1",
		Kind:         "screenshot",
	}
}

func TestReportCapture_ThreeStrikeProgression(t *testing.T) {
	repo := newFakeViolationRepo()
	notifier := &fakeEnforcementNotifier{}
	mailer := &fakeOpsMailer{}
	uc := NewReportCaptureUseCase(repo, notifier, mailer, 3, nopLogger{})

	first, err := uc.Execute(context.Background(), reportCommand())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Total)
	assert.Equal(t, "none", first.Decision)
	assert.Empty(t, notifier.triggered)

	second, err := uc.Execute(context.Background(), reportCommand())
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Total)
	assert.Equal(t, "warn", second.Decision)
	assert.True(t, second.Record.WarningIssued)
	assert.Equal(t, 1, mailer.warnings)
	assert.Empty(t, notifier.triggered)

	third, err := uc.Execute(context.Background(), reportCommand())
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.Total)
	assert.Equal(t, "enforce", third.Decision)
	assert.Equal(t, []uint{11}, notifier.triggered)
	assert.Equal(t, 1, mailer.enforcements)
}

func TestReportCapture_EnforcementIsMonotonic(t *testing.T) {
	repo := newFakeViolationRepo()
	notifier := &fakeEnforcementNotifier{}
	uc := NewReportCaptureUseCase(repo, notifier, &fakeOpsMailer{}, 3, nopLogger{})

	for i := 0; i < 5; i++ {
		_, err := uc.Execute(context.Background(), reportCommand())
		require.NoError(t, err)
	}

	result, err := uc.Execute(context.Background(), reportCommand())
	require.NoError(t, err)
	assert.Equal(t, "enforce", result.Decision)
	assert.Equal(t, int64(6), result.Total)
}

func TestReportCapture_StorageFailureSurfaces(t *testing.T) {
	repo := newFakeViolationRepo()
	repo.createErr = errors.New("database unavailable")
	uc := NewReportCaptureUseCase(repo, &fakeEnforcementNotifier{}, &fakeOpsMailer{}, 3, nopLogger{})

	_, err := uc.Execute(context.Background(), reportCommand())
	require.Error(t, err)
	assert.Empty(t, repo.records)
}

func TestReportCapture_InvalidKindRejected(t *testing.T) {
	uc := NewReportCaptureUseCase(newFakeViolationRepo(), &fakeEnforcementNotifier{}, &fakeOpsMailer{}, 3, nopLogger{})

	cmd := reportCommand()
	cmd.Kind = "telepathy"

	_, err := uc.Execute(context.Background(), cmd)
	assert.Error(t, err)
}

func TestGetViolationStatus_DerivedStates(t *testing.T) {
	repo := newFakeViolationRepo()
	report := NewReportCaptureUseCase(repo, &fakeEnforcementNotifier{}, &fakeOpsMailer{}, 3, nopLogger{})
	status := NewGetViolationStatusUseCase(repo, 3, nopLogger{})

	s, err := status.Execute(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "ok", s.State)
	assert.Equal(t, int64(0), s.Total)

	_, err = report.Execute(context.Background(), reportCommand())
	require.NoError(t, err)
	_, err = report.Execute(context.Background(), reportCommand())
	require.NoError(t, err)

	s, err = status.Execute(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "warned", s.State)

	_, err = report.Execute(context.Background(), reportCommand())
	require.NoError(t, err)

	s, err = status.Execute(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "enforced", s.State)
}
