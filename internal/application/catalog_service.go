package application

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"
	"time"

	"github.com/prodcat/prodcat/internal/domain"
	"go.uber.org/zap"
)

// CatalogService runs one catalog session: load, inspect and change the
// collection, then save it back on request. It owns its collection; there
// is no shared catalog.
type CatalogService struct {
	store   domain.CatalogStore
	history domain.SaveHistory
	git     domain.GitInfo
	log     *zap.Logger
	now     func() time.Time

	products *domain.ProductCollection
	dirty    bool
}

// Option configures a CatalogService.
type Option func(*CatalogService)

// WithHistory records every successful save in h.
func WithHistory(h domain.SaveHistory) Option {
	return func(s *CatalogService) { s.history = h }
}

// WithGitInfo attaches the catalog's commit hash to history entries.
func WithGitInfo(g domain.GitInfo) Option {
	return func(s *CatalogService) { s.git = g }
}

// WithClock overrides the time source used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *CatalogService) { s.now = now }
}

func NewCatalogService(store domain.CatalogStore, log *zap.Logger, opts ...Option) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &CatalogService{
		store:    store,
		log:      log.Named("catalog"),
		now:      time.Now,
		products: domain.NewProductCollection(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the session's collection with the stored catalog. On
// failure the current collection is kept.
func (s *CatalogService) Load() error {
	c, err := domain.LoadCollection(s.store.Lines())
	if err != nil {
		s.log.Error("load failed", zap.String("catalog", s.store.Location()), zap.Error(err))
		return fmt.Errorf("loading %s: %w", s.store.Location(), err)
	}
	s.products = c
	s.dirty = false
	s.log.Info("catalog loaded",
		zap.String("catalog", s.store.Location()),
		zap.Int("products", c.Len()),
	)
	return nil
}

func (s *CatalogService) Location() string { return s.store.Location() }

func (s *CatalogService) Products() iter.Seq[domain.Product] { return s.products.All() }

func (s *CatalogService) Len() int { return s.products.Len() }

// Dirty reports whether the collection changed since the last load or save.
func (s *CatalogService) Dirty() bool { return s.dirty }

func (s *CatalogService) Find(id int) (domain.Product, bool) {
	p, ok := s.products.FindByID(id)
	s.log.Debug("find", zap.Int("id", id), zap.Bool("found", ok))
	return p, ok
}

func (s *CatalogService) Search(pred domain.Predicate) *domain.ProductCollection {
	found := s.products.Search(pred)
	s.log.Debug("search", zap.Int("matches", found.Len()))
	return found
}

// Add inserts an already validated product.
func (s *CatalogService) Add(p domain.Product) error {
	if strings.Contains(p.Name(), domain.FieldDelimiter) {
		err := &domain.ValidationError{
			Field:  "name",
			Reason: fmt.Sprintf("must not contain %q", domain.FieldDelimiter),
		}
		s.log.Warn("product rejected", zap.Int("id", p.ID()), zap.Error(err))
		return err
	}
	if err := s.products.Add(p); err != nil {
		s.log.Warn("product rejected", zap.Int("id", p.ID()), zap.Error(err))
		return err
	}
	s.dirty = true
	s.log.Info("product added", zap.Int("id", p.ID()), zap.String("name", p.Name()))
	return nil
}

// AddFields builds a product from typed input and inserts it. The price
// may use a comma as decimal separator.
func (s *CatalogService) AddFields(id, name, typeCode, quantity, price string) (domain.Product, error) {
	p, err := domain.ParseFields(id, name, typeCode, quantity, domain.NormalizeDecimalInput(price))
	if err != nil {
		s.log.Warn("product rejected", zap.String("id", id), zap.Error(err))
		return domain.Product{}, err
	}
	if err := s.Add(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) Delete(id int) error {
	if err := s.products.Delete(id); err != nil {
		s.log.Warn("delete failed", zap.Int("id", id), zap.Error(err))
		return err
	}
	s.dirty = true
	s.log.Info("product deleted", zap.Int("id", id))
	return nil
}

// Save writes the whole collection to the store. History is best-effort:
// a failure to record it is logged and does not fail the save.
func (s *CatalogService) Save() error {
	if err := s.store.WriteAll(s.products.SerializeAll()); err != nil {
		s.log.Error("save failed", zap.String("catalog", s.store.Location()), zap.Error(err))
		return fmt.Errorf("saving %s: %w", s.store.Location(), err)
	}
	s.dirty = false
	s.log.Info("catalog saved",
		zap.String("catalog", s.store.Location()),
		zap.Int("products", s.products.Len()),
	)

	if s.history != nil {
		if err := s.history.Append(s.saveEntry()); err != nil {
			s.log.Warn("recording save history failed", zap.Error(err))
		}
	}
	return nil
}

// History returns the recorded saves, oldest first.
func (s *CatalogService) History() ([]domain.SaveEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Load()
}

func (s *CatalogService) saveEntry() domain.SaveEntry {
	entry := domain.SaveEntry{
		Timestamp:    s.now().UTC().Format(time.RFC3339),
		CatalogFile:  s.store.Location(),
		ProductCount: s.products.Len(),
	}
	if s.git != nil {
		if hash, err := s.git.CommitHash(filepath.Dir(s.store.Location())); err == nil {
			entry.CommitHash = hash
		}
	}
	return entry
}
