// Package repo provides Postgres bindings for the word catalog
package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"wordpool/internal/modkit/repokit"
	"wordpool/internal/services/catalog/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// Compile-time assertion: queries implements domain.Repo
var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

// wordColumns is the select list every word query shares; scanWord matches it
const wordColumns = `
	w.id, w.headword, w.translation,
	COALESCE(w.sentence, ''), COALESCE(w.sentence_translation, ''),
	COALESCE(w.image_url, ''), COALESCE(w.audio_url, ''),
	COALESCE(w.level_rank, 0), COALESCE(w.category_rank, 0)
`

func scanWord(r repokit.Row) (domain.Word, error) {
	var w domain.Word
	err := r.Scan(
		&w.ID, &w.Headword, &w.Translation,
		&w.Sentence, &w.SentenceTrans,
		&w.ImageURL, &w.AudioURL,
		&w.Level, &w.Category,
	)
	return w, err
}

func (r *queries) collect(ctx context.Context, sql string, args ...any) ([]domain.Word, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// ByIDs implements domain.Repo, preserving catalog insertion order
func (r *queries) ByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Word, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.collect(ctx, `
		SELECT `+wordColumns+`
		FROM words w
		WHERE w.id = ANY($1::uuid[])
		ORDER BY w.seq
	`, ids)
}

// List implements domain.Repo
func (r *queries) List(ctx context.Context, limit, offset int) ([]domain.Word, error) {
	return r.collect(ctx, `
		SELECT `+wordColumns+`
		FROM words w
		ORDER BY w.seq
		LIMIT $1 OFFSET $2
	`, limit, offset)
}

// Count implements domain.Repo
func (r *queries) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// SampleDistractors implements domain.Repo. Catalogs are small enough that
// ORDER BY random() is fine here
func (r *queries) SampleDistractors(
	ctx context.Context, exclude []uuid.UUID, limit int,
) ([]domain.Word, error) {
	return r.collect(ctx, `
		SELECT `+wordColumns+`
		FROM words w
		WHERE NOT (w.id = ANY($1::uuid[]))
		ORDER BY random()
		LIMIT $2
	`, exclude, limit)
}

// UnlearnedFrom implements domain.Repo: curriculum-tagged words without a
// progress row, walking (level, category, insertion) from pos
func (r *queries) UnlearnedFrom(
	ctx context.Context, userID uuid.UUID, pos domain.Position, limit int,
) ([]domain.Word, error) {
	return r.collect(ctx, `
		SELECT `+wordColumns+`
		FROM words w
		WHERE w.level_rank IS NOT NULL
			AND (w.level_rank, COALESCE(w.category_rank, 0)) >= ($2, $3)
			AND NOT EXISTS (
				SELECT 1 FROM word_progress p
				WHERE p.user_id = $1 AND p.word_id = w.id
			)
		ORDER BY w.level_rank, COALESCE(w.category_rank, 0), w.seq
		LIMIT $4
	`, userID, pos.Level, pos.Category, limit)
}

// UnlearnedUntagged implements domain.Repo
func (r *queries) UnlearnedUntagged(
	ctx context.Context, userID uuid.UUID, limit int,
) ([]domain.Word, error) {
	return r.collect(ctx, `
		SELECT `+wordColumns+`
		FROM words w
		WHERE w.level_rank IS NULL
			AND NOT EXISTS (
				SELECT 1 FROM word_progress p
				WHERE p.user_id = $1 AND p.word_id = w.id
			)
		ORDER BY w.seq
		LIMIT $2
	`, userID, limit)
}

// Levels implements domain.Repo
func (r *queries) Levels(ctx context.Context) ([]domain.Level, error) {
	rows, err := r.q.Query(ctx, `SELECT rank, name FROM word_levels ORDER BY rank`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Level
	for rows.Next() {
		var l domain.Level
		if err := rows.Scan(&l.Rank, &l.Name); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Categories implements domain.Repo
func (r *queries) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT rank, name FROM word_categories ORDER BY rank`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Rank, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Upsert implements domain.Repo. norms[i] is the normalized headword key of
// words[i]; conflicting seeds update content in place
func (r *queries) Upsert(ctx context.Context, words []domain.Word, norms []string) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}
	if len(norms) != len(words) {
		return 0, fmt.Errorf("upsert words: %d norms for %d words", len(norms), len(words))
	}

	heads := make([]string, len(words))
	trans := make([]string, len(words))
	sents := make([]string, len(words))
	sentTrans := make([]string, len(words))
	images := make([]string, len(words))
	audios := make([]string, len(words))
	levels := make([]*int, len(words))
	cats := make([]*int, len(words))
	for i, w := range words {
		heads[i] = w.Headword
		trans[i] = w.Translation
		sents[i] = w.Sentence
		sentTrans[i] = w.SentenceTrans
		images[i] = w.ImageURL
		audios[i] = w.AudioURL
		if w.Level > 0 {
			lv := w.Level
			levels[i] = &lv
		}
		if w.Category > 0 {
			c := w.Category
			cats[i] = &c
		}
	}

	tag, err := r.q.Exec(ctx, `
		INSERT INTO words
			(headword, headword_norm, translation, sentence, sentence_translation,
			 image_url, audio_url, level_rank, category_rank)
		SELECT h, n, tr, NULLIF(s, ''), NULLIF(st, ''), NULLIF(img, ''), NULLIF(aud, ''), lv, cat
		FROM unnest(
			$1::text[], $2::text[], $3::text[], $4::text[], $5::text[],
			$6::text[], $7::text[], $8::int[], $9::int[]
		) AS x(h, n, tr, s, st, img, aud, lv, cat)
		ON CONFLICT (headword_norm) DO UPDATE SET
			headword             = EXCLUDED.headword,
			translation          = EXCLUDED.translation,
			sentence             = EXCLUDED.sentence,
			sentence_translation = EXCLUDED.sentence_translation,
			image_url            = EXCLUDED.image_url,
			audio_url            = EXCLUDED.audio_url,
			level_rank           = EXCLUDED.level_rank,
			category_rank        = EXCLUDED.category_rank
	`, heads, norms, trans, sents, sentTrans, images, audios, levels, cats)
	if err != nil {
		return 0, fmt.Errorf("upsert words: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// MaxPosition implements domain.Repo
func (r *queries) MaxPosition(
	ctx context.Context, ids []uuid.UUID,
) (domain.Position, bool, error) {
	if len(ids) == 0 {
		return domain.Position{}, false, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT w.level_rank, COALESCE(w.category_rank, 0)
		FROM words w
		WHERE w.id = ANY($1::uuid[]) AND w.level_rank IS NOT NULL
		ORDER BY w.level_rank DESC, COALESCE(w.category_rank, 0) DESC
		LIMIT 1
	`, ids)
	if err != nil {
		return domain.Position{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return domain.Position{}, false, rows.Err()
	}
	var pos domain.Position
	if err := rows.Scan(&pos.Level, &pos.Category); err != nil {
		return domain.Position{}, false, err
	}
	return pos, true, rows.Err()
}
