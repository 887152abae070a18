package application_test

import (
	"errors"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prodcat/prodcat/internal/adapters/outbound/history"
	"github.com/prodcat/prodcat/internal/adapters/outbound/storage"
	"github.com/prodcat/prodcat/internal/application"
	"github.com/prodcat/prodcat/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type memStore struct {
	lines    []string
	written  []string
	writeErr error
}

func (m *memStore) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, l := range m.lines {
			if !yield(l, nil) {
				return
			}
		}
	}
}

func (m *memStore) WriteAll(text string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.written = append(m.written, text)
	return nil
}

func (m *memStore) Location() string { return "/data/produtos.csv" }

type memHistory struct {
	entries []domain.SaveEntry
	err     error
}

func (h *memHistory) Append(e domain.SaveEntry) error {
	if h.err != nil {
		return h.err
	}
	h.entries = append(h.entries, e)
	return nil
}

func (h *memHistory) Load() ([]domain.SaveEntry, error) { return h.entries, nil }

type fixedGit struct{ hash string }

func (g fixedGit) CommitHash(string) (string, error) {
	if g.hash == "" {
		return "", errors.New("not a git repository")
	}
	return g.hash, nil
}

func newService(t *testing.T, store domain.CatalogStore, opts ...application.Option) *application.CatalogService {
	t.Helper()
	return application.NewCatalogService(store, zaptest.NewLogger(t), opts...)
}

func TestCatalogService_Load(t *testing.T) {
	store := &memStore{lines: []string{
		"40001,morangos da escócia,FRL,100,1.5",
		"20002,detergente,DL,15,2.99",
	}}
	svc := newService(t, store)

	require.NoError(t, svc.Load())
	assert.Equal(t, 2, svc.Len())
	assert.False(t, svc.Dirty())

	p, ok := svc.Find(40001)
	require.True(t, ok)
	assert.Equal(t, "morangos da escócia", p.Name())
}

func TestCatalogService_LoadFailureKeepsCollection(t *testing.T) {
	store := &memStore{lines: []string{"40001,a,AL,1,1"}}
	svc := newService(t, store)
	require.NoError(t, svc.Load())

	store.lines = []string{"40001,a,AL,1,1", "broken"}
	err := svc.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "/data/produtos.csv")
	assert.Equal(t, 1, svc.Len())
}

func TestCatalogService_AddFields(t *testing.T) {
	svc := newService(t, &memStore{})

	p, err := svc.AddFields("40001", "morangos", "frl", "100", "1,5")
	require.NoError(t, err)
	assert.Equal(t, "1.5", p.PriceText())
	assert.Equal(t, domain.TypeCode("FRL"), p.TypeCode())
	assert.True(t, svc.Dirty())

	got, ok := svc.Find(40001)
	require.True(t, ok)
	assert.True(t, p.Equal(got))
}

func TestCatalogService_AddFieldsRejectsInvalidInput(t *testing.T) {
	svc := newService(t, &memStore{})

	_, err := svc.AddFields("4000", "x", "AL", "1", "1")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddFields("40001", "x", "AL", "1", "1,000,5")
	assert.ErrorIs(t, err, domain.ErrParse)

	assert.Equal(t, 0, svc.Len())
	assert.False(t, svc.Dirty())
}

func TestCatalogService_AddRejectsDelimiterInName(t *testing.T) {
	svc := newService(t, &memStore{})

	p, err := domain.NewProduct(40001, "morangos, frescos", "FRL", 1, decimal.NewFromInt(1))
	require.NoError(t, err)

	err = svc.Add(p)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, 0, svc.Len())
}

func TestCatalogService_AddFieldsRejectsLineBreakInName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "produtos.csv")
	svc := newService(t, storage.New(path))
	require.NoError(t, svc.Load())

	for _, name := range []string{"morangos\nda escócia", "morangos\r\nda escócia"} {
		_, err := svc.AddFields("40001", name, "FRL", "1", "1.5")
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr), "name %q", name)
		assert.Equal(t, "name", verr.Field)
	}
	assert.Equal(t, 0, svc.Len())
	assert.False(t, svc.Dirty())

	_, err := svc.AddFields("40001", "morangos da escócia", "FRL", "1", "1.5")
	require.NoError(t, err)
	require.NoError(t, svc.Save())

	reloaded := newService(t, storage.New(path))
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 1, reloaded.Len())
}

func TestCatalogService_LongNameSurvivesSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "produtos.csv")
	svc := newService(t, storage.New(path))
	require.NoError(t, svc.Load())

	_, err := svc.AddFields("40001", strings.Repeat("a", 70000), "FRL", "1", "1.5")
	require.NoError(t, err)
	require.NoError(t, svc.Save())

	reloaded := newService(t, storage.New(path))
	require.NoError(t, reloaded.Load())
	p, ok := reloaded.Find(40001)
	require.True(t, ok)
	assert.Len(t, p.Name(), 70000)
}

func TestCatalogService_AddDuplicateLogsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	svc := application.NewCatalogService(&memStore{lines: []string{"40001,a,AL,1,1"}}, zap.New(core))
	require.NoError(t, svc.Load())

	_, err := svc.AddFields("40001", "b", "DL", "2", "2")
	assert.ErrorIs(t, err, domain.ErrDuplicateProduct)
	assert.False(t, svc.Dirty())

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "product rejected", logs.All()[0].Message)
}

func TestCatalogService_Delete(t *testing.T) {
	svc := newService(t, &memStore{lines: []string{"40001,a,AL,1,1"}})
	require.NoError(t, svc.Load())

	require.NoError(t, svc.Delete(40001))
	assert.True(t, svc.Dirty())
	_, ok := svc.Find(40001)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.Delete(40001), domain.ErrProductNotFound)
}

func TestCatalogService_Search(t *testing.T) {
	svc := newService(t, &memStore{lines: []string{
		"40001,morangos,FRL,100,1.5",
		"20002,detergente,DL,15,2.99",
	}})
	require.NoError(t, svc.Load())

	found := svc.Search(domain.OfType("DL"))
	assert.Equal(t, 1, found.Len())
	assert.Equal(t, 2, svc.Len())
}

func TestCatalogService_SaveWritesSerializedCatalog(t *testing.T) {
	store := &memStore{lines: []string{"40001,morangos,FRL,100,1.5"}}
	svc := newService(t, store)
	require.NoError(t, svc.Load())
	_, err := svc.AddFields("20002", "detergente", "dl", "15", "2.99")
	require.NoError(t, err)

	require.NoError(t, svc.Save())
	require.Len(t, store.written, 1)
	assert.Equal(t, "40001,morangos,FRL,100,1.5\n20002,detergente,DL,15,2.99\n", store.written[0])
	assert.False(t, svc.Dirty())
}

func TestCatalogService_SaveFailureKeepsDirty(t *testing.T) {
	store := &memStore{writeErr: errors.New("disk full")}
	svc := newService(t, store)
	_, err := svc.AddFields("40001", "a", "AL", "1", "1")
	require.NoError(t, err)

	err = svc.Save()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, svc.Dirty())
}

func TestCatalogService_SaveRecordsHistory(t *testing.T) {
	hist := &memHistory{}
	at := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	svc := newService(t, &memStore{lines: []string{"40001,a,AL,1,1"}},
		application.WithHistory(hist),
		application.WithGitInfo(fixedGit{hash: "0123456789abcdef0123456789abcdef01234567"}),
		application.WithClock(func() time.Time { return at }),
	)
	require.NoError(t, svc.Load())
	require.NoError(t, svc.Save())

	entries, err := svc.History()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.SaveEntry{
		Timestamp:    "2026-10-19T09:30:00Z",
		CatalogFile:  "/data/produtos.csv",
		ProductCount: 1,
		CommitHash:   "0123456789abcdef0123456789abcdef01234567",
	}, entries[0])
}

func TestCatalogService_HistoryFailureDoesNotFailSave(t *testing.T) {
	svc := newService(t, &memStore{},
		application.WithHistory(&memHistory{err: errors.New("read-only")}),
		application.WithGitInfo(fixedGit{}),
	)
	assert.NoError(t, svc.Save())
}

func TestCatalogService_HistoryDisabled(t *testing.T) {
	svc := newService(t, &memStore{})
	require.NoError(t, svc.Save())
	entries, err := svc.History()
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestCatalogService_FileSession(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "produtos.csv")
	require.NoError(t, os.WriteFile(path, []byte("#catalog\n40001,morangos da escócia,FRL,100,1.5\n\n"), 0644))

	svc := newService(t, storage.New(path), application.WithHistory(history.ForCatalog(path)))
	require.NoError(t, svc.Load())
	_, err := svc.AddFields("20002", "detergente", "DL", "15", "2,99")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(40001))
	require.NoError(t, svc.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "20002,detergente,DL,15,2.99\n", string(data))

	reloaded := newService(t, storage.New(path))
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 1, reloaded.Len())

	entries, err := history.ForCatalog(path).Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].ProductCount)
}
