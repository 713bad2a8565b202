// Package exercise assembles the per-word exercises a session hands to the
// client: option generation with uniform distractor sampling, speaking
// prompts, and the reading -> listening -> speaking presentation order.
//
// The builder is pure given its random source; callers inject a per-request
// RNG so nothing here is predictable from request content
package exercise

import (
	"math/rand/v2"
	"sort"

	"wordpool/internal/core/pool"

	"github.com/google/uuid"
)

// OptionsCount is the fixed option count for choice exercises: one correct
// answer plus three distractors
const OptionsCount = 4

// Word is the catalog view the builder needs. Kept flat so callers can map
// from any store shape
type Word struct {
	ID            uuid.UUID
	Headword      string
	Translation   string
	Sentence      string
	SentenceTrans string
	ImageURL      string
	AudioURL      string
}

// Option is one selectable answer. It carries the option word's translation
// and image but never its headword, so options do not give the answer away
type Option struct {
	Index       int       `json:"index"`
	WordID      uuid.UUID `json:"word_id"`
	Translation string    `json:"translation"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// Exercise is one assembled question. Speaking exercises carry no options and
// CorrectIndex -1; the client grades pronunciation itself
type Exercise struct {
	WordID       uuid.UUID         `json:"word_id"`
	Word         string            `json:"word"`
	Translation  string            `json:"translation"`
	ImageURL     string            `json:"image_url,omitempty"`
	AudioURL     string            `json:"audio_url,omitempty"`
	Pool         string            `json:"pool,omitempty"`
	Type         pool.ExerciseType `json:"type"`
	Options      []Option          `json:"options"`
	CorrectIndex int               `json:"correct_index"`
}

// Builder generates exercises with a caller-owned random source
type Builder struct {
	rng *rand.Rand
}

// NewBuilder wraps a random source. Use NewRequestRNG for serving paths
func NewBuilder(rng *rand.Rand) *Builder { return &Builder{rng: rng} }

// NewRequestRNG returns a fresh per-request source seeded from the
// process-wide entropy pool, never from request content
func NewRequestRNG() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Options builds the option list for correct. Distractors prefer the other
// words of the same session, topped up from the catalog; the candidate set is
// pre-filtered so sampling is rejection-free and never repeats a word.
// Returns the options and the index of the correct answer
func (b *Builder) Options(correct Word, all, session []Word) ([]Option, int) {
	candidates := make([]Word, 0, len(session)+len(all))
	seen := map[uuid.UUID]struct{}{correct.ID: {}}

	for _, w := range session {
		if _, dup := seen[w.ID]; dup {
			continue
		}
		seen[w.ID] = struct{}{}
		candidates = append(candidates, w)
	}
	if len(candidates) < OptionsCount-1 {
		for _, w := range all {
			if _, dup := seen[w.ID]; dup {
				continue
			}
			seen[w.ID] = struct{}{}
			candidates = append(candidates, w)
		}
	}

	n := OptionsCount - 1
	if n > len(candidates) {
		n = len(candidates)
	}
	// partial Fisher-Yates: the first n positions are a uniform sample
	// without replacement
	for i := 0; i < n; i++ {
		j := i + b.rng.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	words := append(candidates[:n:n], correct)
	b.rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })

	options := make([]Option, len(words))
	correctIdx := 0
	for i, w := range words {
		options[i] = Option{Index: i, WordID: w.ID, Translation: w.Translation, ImageURL: w.ImageURL}
		if w.ID == correct.ID {
			correctIdx = i
		}
	}
	return options, correctIdx
}

// Build assembles the exercise a word in pool p surfaces. Choice exercises
// get options; speaking exercises carry the full word and no options
func (b *Builder) Build(w Word, p pool.Pool, all, session []Word) (Exercise, bool) {
	typ, ok := p.Exercise()
	if !ok {
		return Exercise{}, false
	}

	ex := Exercise{
		WordID:       w.ID,
		Word:         w.Headword,
		Translation:  w.Translation,
		ImageURL:     w.ImageURL,
		AudioURL:     w.AudioURL,
		Pool:         p.String(),
		Type:         typ,
		Options:      []Option{},
		CorrectIndex: -1,
	}
	if typ == pool.SpeakingLv1 || typ == pool.SpeakingLv2 {
		return ex, true
	}

	ex.Options, ex.CorrectIndex = b.Options(w, all, session)
	return ex, true
}

// BuildLearn assembles the intake exercise for a new word, always reading_lv1
func (b *Builder) BuildLearn(w Word, all, session []Word) Exercise {
	options, correctIdx := b.Options(w, all, session)
	return Exercise{
		WordID:       w.ID,
		Word:         w.Headword,
		Translation:  w.Translation,
		ImageURL:     w.ImageURL,
		AudioURL:     w.AudioURL,
		Type:         pool.ReadingLv1,
		Options:      options,
		CorrectIndex: correctIdx,
	}
}

// SortByType orders exercises reading -> listening -> speaking, keeping the
// relative order within a type stable
func SortByType(xs []Exercise) {
	sort.SliceStable(xs, func(i, j int) bool {
		return pool.TypeRank(xs[i].Type) < pool.TypeRank(xs[j].Type)
	})
}

// Order returns the distinct exercise types in presentation order; the
// session response exposes it as exercise_order
func Order(xs []Exercise) []pool.ExerciseType {
	seen := map[pool.ExerciseType]struct{}{}
	out := make([]pool.ExerciseType, 0, len(xs))
	for _, ex := range xs {
		if _, dup := seen[ex.Type]; dup {
			continue
		}
		seen[ex.Type] = struct{}{}
		out = append(out, ex.Type)
	}
	return out
}
