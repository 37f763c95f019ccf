package files

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"quickconf/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const keynoteTalk = `---
slug: opening-keynote
type: keynote
title: Opening Keynote
speakers:
  - grace-hopper
  - ada-lovelace
dateTime: 2025-06-12T07:00:00Z
duration: 45
stage: main
resources:
  - url: https://example.org/slides.pdf
    description: Slides
---
Welcome to **the** conference.
`

const defaultDurationTalk = `---
slug: early-bird
type: talk
title: Early Bird
dateTime: "2025-06-12T06:30:00Z"
stage: side
---
`

const invalidTalk = `---
slug: broken
type: unconference
title: ""
dateTime: 2025-06-12T06:00:00Z
stage: main
---
`

const graceSpeaker = `---
slug: grace-hopper
name: Grace Hopper
description: Compiler pioneer
image: /img/grace.jpg
company: US Navy
socialMedia:
  - url: https://example.org/grace
---
Invented the first *compiler*.
`

const adaSpeaker = `---
slug: ada-lovelace
featured: true
name: Ada Lovelace
description: First programmer
image: /img/ada.jpg
---
`

func seedContent(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "talks/day1/keynote.md", keynoteTalk)
	writeFile(t, root, "talks/day1/early.md", defaultDurationTalk)
	writeFile(t, root, "talks/broken.md", invalidTalk)
	writeFile(t, root, "talks/notes.txt", "ignored")
	writeFile(t, root, "speakers/ada.md", adaSpeaker)
	writeFile(t, root, "speakers/grace.md", graceSpeaker)
	writeFile(t, root, "stages/1.main.yml", "slug: main\nname: Main Hall\nplace: Ground floor\n")
	writeFile(t, root, "stages/2.side.yml", "slug: side\nname: Side Room\n")
	writeFile(t, root, "stages/3.bad.yml", "name: No Slug\n")
	return root
}

func TestContentRepository_Load(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepository(seedContent(t), testLogger)
	require.NoError(t, repo.Load(ctx))

	talks, err := repo.ListTalks(ctx)
	require.NoError(t, err)
	require.Len(t, talks, 2, "invalid talk and non-markdown file are skipped")
	assert.Equal(t, "early-bird", talks[0].Slug, "ordered by dateTime")
	assert.Equal(t, "opening-keynote", talks[1].Slug)

	early := talks[0]
	assert.Equal(t, domain.DefaultTalkDuration, early.Duration)
	assert.NotNil(t, early.Speakers)
	assert.Empty(t, early.Speakers)
	assert.Equal(t, time.Date(2025, time.June, 12, 6, 30, 0, 0, time.UTC), early.DateTime)

	keynote := talks[1]
	assert.Equal(t, domain.TalkTypeKeynote, keynote.Type)
	assert.Equal(t, []string{"grace-hopper", "ada-lovelace"}, keynote.Speakers)
	assert.Equal(t, 45, keynote.Duration)
	assert.Equal(t, time.Date(2025, time.June, 12, 7, 0, 0, 0, time.UTC), keynote.DateTime.UTC())
	require.Len(t, keynote.Resources, 1)
	assert.Equal(t, "Slides", keynote.Resources[0].Description)
	assert.Equal(t, "Welcome to **the** conference.", keynote.Abstract)
	assert.Contains(t, keynote.AbstractHTML, "<strong>the</strong>")

	speakers, err := repo.ListSpeakers(ctx)
	require.NoError(t, err)
	require.Len(t, speakers, 2)
	assert.Equal(t, "ada-lovelace", speakers[0].Slug, "file order")
	assert.True(t, speakers[0].Featured)
	assert.Equal(t, "US Navy", speakers[1].Company)
	assert.Contains(t, speakers[1].BiographyHTML, "<em>compiler</em>")

	stages, err := repo.ListStages(ctx)
	require.NoError(t, err)
	require.Len(t, stages, 2)
	assert.Equal(t, "Ground floor", stages[0].Place)
	assert.Equal(t, "side", stages[1].Slug)
}

func TestContentRepository_LazyLoadAndMissingDirs(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepository(t.TempDir(), testLogger)

	talks, err := repo.ListTalks(ctx)
	require.NoError(t, err)
	require.NotNil(t, talks)
	assert.Empty(t, talks)

	stages, err := repo.ListStages(ctx)
	require.NoError(t, err)
	require.NotNil(t, stages)
}

// lockedBuffer is a log sink safe for concurrent writers.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestContentRepository_ConcurrentFirstUseLoadsOnce(t *testing.T) {
	ctx := context.Background()
	var logs lockedBuffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))
	repo := NewContentRepository(seedContent(t), logger)

	var g errgroup.Group
	for range 4 {
		g.Go(func() error {
			_, err := repo.ListTalks(ctx)
			return err
		})
		g.Go(func() error {
			_, err := repo.ListSpeakers(ctx)
			return err
		})
		g.Go(func() error {
			_, err := repo.ListStages(ctx)
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 1, strings.Count(logs.String(), "content loaded"))
}

func TestContentRepository_LoadsRunInOrder(t *testing.T) {
	ctx := context.Background()
	root := seedContent(t)
	repo := NewContentRepository(root, testLogger)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error { return repo.Load(ctx) })
	}
	writeFile(t, root, "stages/1.main.yml", "slug: main\nname: Renamed Hall\n")
	require.NoError(t, repo.Load(ctx))
	require.NoError(t, g.Wait())

	stages, err := repo.ListStages(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, stages)
	assert.Equal(t, "Renamed Hall", stages[0].Name)
}

func TestContentRepository_GetTalkBySlug(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepository(seedContent(t), testLogger)

	got, err := repo.GetTalkBySlug(ctx, "opening-keynote")
	require.NoError(t, err)
	assert.Equal(t, "Opening Keynote", got.Title)

	_, err = repo.GetTalkBySlug(ctx, "broken")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentRepository_DuplicateSlugSkipped(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	writeFile(t, root, "stages/a.yml", "slug: main\nname: First\n")
	writeFile(t, root, "stages/b.yml", "slug: main\nname: Second\n")
	repo := NewContentRepository(root, testLogger)

	stages, err := repo.ListStages(ctx)
	require.NoError(t, err)
	require.Len(t, stages, 1)
	assert.Equal(t, "First", stages[0].Name)
}

func TestContentRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewContentRepository(seedContent(t), testLogger)
	require.ErrorIs(t, repo.Load(ctx), context.Canceled)
}

func TestContentRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepository(seedContent(t), testLogger)
	talks, err := repo.ListTalks(ctx)
	require.NoError(t, err)
	talks[0] = nil

	again, err := repo.ListTalks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, again[0])
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2025-06-12T09:00:00Z", want: time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)},
		{in: "2025-06-12T11:00:00+02:00", want: time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)},
		{in: "2025-06-12T09:00:00", want: time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)},
		{in: "2025-06-12 09:30:00", want: time.Date(2025, 6, 12, 9, 30, 0, 0, time.UTC)},
		{in: "2025-06-12", want: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)},
		{in: "next tuesday", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDateTime(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}
