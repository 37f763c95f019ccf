package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"quickconf/internal/domain"
)

// Collection directories inside the content root.
const (
	TalksDir    = "talks"
	SpeakersDir = "speakers"
	StagesDir   = "stages"
)

type snapshot struct {
	talks    []*domain.Talk
	speakers []*domain.Speaker
	stages   []*domain.Stage
}

// ContentRepository serves the talk, speaker and stage collections from a
// content directory. Collections are read on first use and kept in memory
// until the next Load.
type ContentRepository struct {
	Dir    string
	logger *slog.Logger
	md     goldmark.Markdown

	// loadMu serializes loads so a later Load always publishes the later snapshot.
	loadMu sync.Mutex
	mu     sync.RWMutex
	snap   *snapshot
}

// NewContentRepository returns a repository over dir.
func NewContentRepository(dir string, logger *slog.Logger) *ContentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentRepository{
		Dir:    dir,
		logger: logger,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
	}
}

var _ domain.ContentRepository = (*ContentRepository)(nil)

// Load reads every collection and swaps the in-memory snapshot. Invalid records
// are logged and skipped; a missing collection directory is an empty collection.
// Concurrent calls run one at a time.
func (r *ContentRepository) Load(ctx context.Context) error {
	r.loadMu.Lock()
	defer r.loadMu.Unlock()
	return r.load(ctx)
}

func (r *ContentRepository) load(ctx context.Context) error {
	s := &snapshot{}

	talkSlugs := make(map[string]string)
	err := r.walk(ctx, TalksDir, ".md", func(path string, raw []byte) {
		t, err := r.parseTalk(path, raw)
		if err != nil {
			r.skip(ctx, "talk", path, err)
			return
		}
		if prev, ok := talkSlugs[t.Slug]; ok {
			r.skip(ctx, "talk", path, fmt.Errorf("%w: duplicate slug %q (first in %s)", domain.ErrInvalidContent, t.Slug, prev))
			return
		}
		talkSlugs[t.Slug] = path
		s.talks = append(s.talks, t)
	})
	if err != nil {
		return err
	}
	slices.SortStableFunc(s.talks, func(a, b *domain.Talk) int {
		return a.DateTime.Compare(b.DateTime)
	})

	speakerSlugs := make(map[string]string)
	err = r.walk(ctx, SpeakersDir, ".md", func(path string, raw []byte) {
		sp, err := r.parseSpeaker(path, raw)
		if err != nil {
			r.skip(ctx, "speaker", path, err)
			return
		}
		if prev, ok := speakerSlugs[sp.Slug]; ok {
			r.skip(ctx, "speaker", path, fmt.Errorf("%w: duplicate slug %q (first in %s)", domain.ErrInvalidContent, sp.Slug, prev))
			return
		}
		speakerSlugs[sp.Slug] = path
		s.speakers = append(s.speakers, sp)
	})
	if err != nil {
		return err
	}

	stageSlugs := make(map[string]string)
	err = r.walk(ctx, StagesDir, ".yml", func(path string, raw []byte) {
		st, err := parseStage(path, raw)
		if err != nil {
			r.skip(ctx, "stage", path, err)
			return
		}
		if prev, ok := stageSlugs[st.Slug]; ok {
			r.skip(ctx, "stage", path, fmt.Errorf("%w: duplicate slug %q (first in %s)", domain.ErrInvalidContent, st.Slug, prev))
			return
		}
		stageSlugs[st.Slug] = path
		s.stages = append(s.stages, st)
	})
	if err != nil {
		return err
	}

	if s.talks == nil {
		s.talks = []*domain.Talk{}
	}
	if s.speakers == nil {
		s.speakers = []*domain.Speaker{}
	}
	if s.stages == nil {
		s.stages = []*domain.Stage{}
	}

	r.mu.Lock()
	r.snap = s
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "content loaded",
		"dir", r.Dir,
		"talks", len(s.talks),
		"speakers", len(s.speakers),
		"stages", len(s.stages),
	)
	return nil
}

func (r *ContentRepository) skip(ctx context.Context, kind, path string, err error) {
	r.logger.WarnContext(ctx, "skipping content file", "kind", kind, "path", path, "err", err)
}

// walk calls fn for every file under the collection directory with the given
// extension, in lexical path order.
func (r *ContentRepository) walk(ctx context.Context, dir, ext string, fn func(path string, raw []byte)) error {
	root := filepath.Join(r.Dir, dir)
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		fn(path, raw)
		return nil
	})
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	return nil
}

func (r *ContentRepository) loaded() *snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}

// current returns the snapshot, loading it on first use. Callers racing on the
// first use share a single load.
func (r *ContentRepository) current(ctx context.Context) (*snapshot, error) {
	if s := r.loaded(); s != nil {
		return s, nil
	}
	r.loadMu.Lock()
	defer r.loadMu.Unlock()
	if s := r.loaded(); s != nil {
		return s, nil
	}
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	return r.loaded(), nil
}

// ListTalks returns all valid talks ordered by DateTime ascending.
func (r *ContentRepository) ListTalks(ctx context.Context) ([]*domain.Talk, error) {
	s, err := r.current(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(s.talks), nil
}

// ListSpeakers returns all valid speakers in file order.
func (r *ContentRepository) ListSpeakers(ctx context.Context) ([]*domain.Speaker, error) {
	s, err := r.current(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(s.speakers), nil
}

// ListStages returns all valid stages in file order.
func (r *ContentRepository) ListStages(ctx context.Context) ([]*domain.Stage, error) {
	s, err := r.current(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(s.stages), nil
}

// GetTalkBySlug returns domain.ErrNotFound when no talk has the slug.
func (r *ContentRepository) GetTalkBySlug(ctx context.Context, slug string) (*domain.Talk, error) {
	s, err := r.current(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range s.talks {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, domain.ErrNotFound
}
