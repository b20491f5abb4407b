// internal/words/open.go
//
// Word source resolution for the entry points.

package words

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Open resolves the word Source for the process, first match wins:
//  1. dbPath: a SQLite table, seeded from dir (or the embedded lists) when empty.
//  2. dir: words<N>.txt files.
//  3. the embedded lists.
//
// The returned close func is never nil.
func Open(ctx context.Context, dbPath, dir string) (Source, func() error, error) {
	noop := func() error { return nil }

	seed := func() (List, error) {
		if dir != "" {
			return LoadDir(dir)
		}
		return LoadEmbedded()
	}

	if dbPath == "" {
		l, err := seed()
		if err != nil {
			return nil, noop, err
		}
		log.Info().Interface("counts", l.Stats()).Msg("word lists loaded")
		return l, noop, nil
	}

	db, err := OpenSQLite(dbPath)
	if err != nil {
		return nil, noop, fmt.Errorf("open words db: %w", err)
	}
	n, err := db.Count(ctx)
	if err != nil {
		_ = db.Close()
		return nil, noop, err
	}
	if n == 0 {
		l, err := seed()
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		if _, err := db.Import(ctx, l); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("seed words db: %w", err)
		}
	}
	log.Info().Str("path", dbPath).Msg("word lists served from sqlite")
	return db, db.Close, nil
}
