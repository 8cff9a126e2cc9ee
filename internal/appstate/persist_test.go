package appstate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamlaw669/Curio/internal/catalog"
)

type memRepo struct {
	data   map[string][]byte
	putErr error
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (m *memRepo) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, ok := m.data[key]
	return b, ok, nil
}

func (m *memRepo) Put(_ context.Context, key string, data []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = data
	return nil
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()

	h := New(WithRepo(repo))
	h.SetCurrentUser(&catalog.User{ID: "std-1", Name: "Emma Johnson", Role: catalog.RoleStudent})
	h.SetStudentProfile(&catalog.StudentProfile{
		UserID:      "std-1",
		Level:       catalog.LevelAdvanced,
		Preferences: catalog.Preferences{Styles: []string{"video"}, TimePerDay: "30-60"},
	})
	require.NoError(t, h.SetPerformanceState(PerformanceStrong))
	h.AppendAssessment(catalog.Assessment{ID: "a", Score: 90})
	require.NoError(t, h.Save(ctx))

	assert.Contains(t, string(repo.data[StorageKey]), `"performanceState":"strong"`)

	restored, err := Load(ctx, repo)
	require.NoError(t, err)
	s := restored.Snapshot()
	require.NotNil(t, s.CurrentUser)
	assert.Equal(t, "Emma Johnson", s.CurrentUser.Name)
	require.NotNil(t, s.CurrentStudentProfile)
	assert.Equal(t, []string{"video"}, s.CurrentStudentProfile.Preferences.Styles)
	assert.Equal(t, PerformanceStrong, s.PerformanceState)
	assert.Empty(t, s.Assessments, "logs are not persisted")
}

func TestLoad_Empty(t *testing.T) {
	h, err := Load(context.Background(), newMemRepo())
	require.NoError(t, err)
	assert.Equal(t, PerformanceMixed, h.Snapshot().PerformanceState)
	assert.Nil(t, h.Snapshot().CurrentUser)
}

func TestLoad_BadPerformanceStateFallsBack(t *testing.T) {
	repo := newMemRepo()
	repo.data[StorageKey] = []byte(`{"currentUser":null,"performanceState":"great"}`)

	h, err := Load(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, PerformanceMixed, h.Snapshot().PerformanceState)
}

func TestLoad_CorruptBlob(t *testing.T) {
	repo := newMemRepo()
	repo.data[StorageKey] = []byte(`{not json`)

	_, err := Load(context.Background(), repo)
	assert.Error(t, err)
}

func TestSave_Errors(t *testing.T) {
	ctx := context.Background()
	assert.True(t, errors.Is(New().Save(ctx), ErrNoRepo))

	boom := errors.New("disk full")
	repo := newMemRepo()
	repo.putErr = boom
	err := New(WithRepo(repo)).Save(ctx)
	assert.True(t, errors.Is(err, boom))
}
