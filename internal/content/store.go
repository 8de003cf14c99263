package content

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pennyhq/website/internal/broadcast"
	"github.com/pennyhq/website/internal/locale"
)

// Reloaded is published on the store's bus after a reload swaps the bundle.
type Reloaded struct{}

// bundle is one immutable snapshot of all loaded content.
type bundle struct {
	translations table
	features     featuresDoc
	reviews      []Review
}

// Store owns the loaded content bundle. Lookups are safe for concurrent use;
// the bundle is replaced atomically by Load/Reload and never mutated in place.
type Store struct {
	src      Source
	log      *slog.Logger
	reloaded *broadcast.Bus[Reloaded]

	mu     sync.RWMutex
	bundle *bundle
}

// NewStore creates a store over src. A nil log discards diagnostics.
func NewStore(src Source, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		src:      src,
		log:      log,
		reloaded: broadcast.New[Reloaded](),
		bundle: &bundle{
			translations: fallbackTranslations(),
			features:     featuresDoc{},
		},
	}
}

// Reloaded exposes the bus that fires after every successful Reload.
func (s *Store) Reloaded() *broadcast.Bus[Reloaded] {
	return s.reloaded
}

// Load fetches the content documents concurrently: the three combined
// documents plus any per-locale translation files. Each document is
// independent: a failure is logged, degrades that document (built-in fallback
// tree for translations, empty views for features and reviews), and never
// blocks the others. The returned error joins all per-document failures so
// the caller can report them; the store remains usable regardless.
func (s *Store) Load(ctx context.Context) error {
	var (
		trans    translationsDoc
		locTrees map[string]map[string]any
		features featuresDoc
		reviews  reviewsDoc

		transErr    error
		locErr      error
		featuresErr error
		reviewsErr  error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		transErr = fetchDocument(ctx, s.src, docTranslations, &trans)
		return nil
	})
	g.Go(func() error {
		locTrees, locErr = fetchLocaleTranslations(ctx, s.src)
		return nil
	})
	g.Go(func() error {
		featuresErr = fetchDocument(ctx, s.src, docFeatures, &features)
		return nil
	})
	g.Go(func() error {
		reviewsErr = fetchDocument(ctx, s.src, docReviews, &reviews)
		return nil
	})
	_ = g.Wait()

	next := &bundle{features: featuresDoc{}}

	// Per-locale files alone are a valid translations source; a missing
	// combined document only degrades when neither exists.
	if errors.Is(transErr, ErrDocumentNotFound) && len(locTrees) > 0 {
		transErr = nil
	}

	if transErr != nil {
		s.log.Error("translations unavailable, using built-in fallback", "error", transErr)
		next.translations = fallbackTranslations()
	} else {
		next.translations = buildTable(trans)
	}
	mergeLocaleTrees(next.translations, locTrees)

	if locErr != nil {
		s.log.Error("per-locale translation files unavailable", "error", locErr)
	}

	if featuresErr != nil {
		s.log.Error("features unavailable", "error", featuresErr)
	} else {
		next.features = features
	}

	if reviewsErr != nil {
		s.log.Error("reviews unavailable", "error", reviewsErr)
	} else {
		next.reviews = sanitizeReviews(reviews.Reviews)
	}

	s.mu.Lock()
	s.bundle = next
	s.mu.Unlock()

	return errors.Join(transErr, locErr, featuresErr, reviewsErr)
}

// Reload re-fetches all documents, swaps the bundle, and notifies
// subscribers. Listeners fire even on partial failure; the bundle changed.
func (s *Store) Reload(ctx context.Context) error {
	err := s.Load(ctx)
	s.reloaded.Publish(Reloaded{})
	return err
}

// Page fetches a markdown page body such as the privacy policy. Pages are
// read through the same source as the documents but on demand, not held in
// the bundle.
func (s *Store) Page(ctx context.Context, name string) ([]byte, error) {
	return s.src.Fetch(ctx, "pages/"+name+".md")
}

// Lookup resolves a dot-path key for the given locale. Missing paths fall
// back to the default locale and finally to the key itself, which doubles as
// human-readable placeholder text. Lookup never fails.
func (s *Store) Lookup(key string, loc locale.Locale) string {
	s.mu.RLock()
	b := s.bundle
	s.mu.RUnlock()

	if v, ok := b.translations[tableKey(string(loc), key)]; ok {
		return v
	}
	if loc != locale.Default {
		if v, ok := b.translations[tableKey(string(locale.Default), key)]; ok {
			return v
		}
	}

	s.log.Debug("missing translation key", "key", key, "locale", string(loc))
	return key
}

// FeaturesFor returns the locale's feature list, or the default locale's list
// when the locale has none. Empty only if the default list is itself empty.
func (s *Store) FeaturesFor(loc locale.Locale) []Feature {
	s.mu.RLock()
	b := s.bundle
	s.mu.RUnlock()

	if features, ok := b.features[string(loc)]; ok && len(features) > 0 {
		return features
	}
	return b.features[string(locale.Default)]
}

// ReviewsFor returns every review paired with its translation for the given
// locale, falling back per review to the "en" entry. Reviews with neither
// translation are skipped.
func (s *Store) ReviewsFor(loc locale.Locale) []LocalizedReview {
	s.mu.RLock()
	b := s.bundle
	s.mu.RUnlock()

	out := make([]LocalizedReview, 0, len(b.reviews))
	for _, r := range b.reviews {
		tr, ok := r.Translations[string(loc)]
		if !ok {
			tr, ok = r.Translations[string(locale.Default)]
		}
		if !ok {
			s.log.Debug("review has no usable translation", "review_id", r.ID, "locale", string(loc))
			continue
		}
		out = append(out, LocalizedReview{Review: r, Title: tr.Title, Text: tr.Text})
	}
	return out
}

// TranslationsFor returns the flattened key/value pairs for one locale,
// serving the public content API.
func (s *Store) TranslationsFor(loc locale.Locale) map[string]string {
	s.mu.RLock()
	b := s.bundle
	s.mu.RUnlock()

	prefix := string(loc) + ":"
	out := make(map[string]string)
	for k, v := range b.translations {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			out[k[len(prefix):]] = v
		}
	}
	return out
}
