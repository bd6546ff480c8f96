// Package matching scores how well a referral request fits a job posting.
package matching

import (
	"math"
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"github.com/hirehunt/hirehunt/internal/app/models"
)

const (
	// MaxScore caps every presented score
	MaxScore = 98

	FloorThreshold = 40
	FloorMin       = 40
	FloorMax       = 70

	minKeywordLength = 4
)

var nonWord = regexp.MustCompile(`\W+`)

// Keywords extracts the distinct lower-cased words longer than three
// characters from text, in order of first appearance.
func Keywords(text string) []string {
	seen := map[string]struct{}{}
	var keywords []string
	for _, w := range nonWord.Split(strings.ToLower(text), -1) {
		if len(w) < minKeywordLength {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
	}
	return keywords
}

// KeywordOverlap returns the rounded percentage of job keywords contained
// (as substrings) in seekerText, together with the keyword count. The score is
// 0 when jobText yields no keywords.
func KeywordOverlap(jobText, seekerText string) (score, keywords int) {
	set := Keywords(jobText)
	if len(set) == 0 {
		return 0, 0
	}

	haystack := strings.ToLower(seekerText)
	matches := 0
	for _, k := range set {
		if strings.Contains(haystack, k) {
			matches++
		}
	}

	return int(math.Round(100 * float64(matches) / float64(len(set)))), len(set)
}

// Floor adjusts a raw overlap score for presentation
type Floor interface {
	Apply(score, keywords int) int
}

// NoFloor presents raw scores unchanged
type NoFloor struct{}

func (NoFloor) Apply(score, _ int) int { return score }

// RandomFloor replaces low scores with a random value in [FloorMin, FloorMax]
// whenever the job had at least one keyword.
type RandomFloor struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomFloor creates a RandomFloor drawing from src
func NewRandomFloor(src rand.Source) *RandomFloor {
	return &RandomFloor{rng: rand.New(src)}
}

func (f *RandomFloor) Apply(score, keywords int) int {
	if score >= FloorThreshold || keywords == 0 {
		return score
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return FloorMin + f.rng.Intn(FloorMax-FloorMin+1)
}

// Scorer computes the stored score of a new referral
type Scorer struct {
	floor Floor
}

// NewScorer creates a Scorer applying floor to raw overlap scores
func NewScorer(floor Floor) *Scorer {
	if floor == nil {
		floor = NoFloor{}
	}
	return &Scorer{floor: floor}
}

// Score rates a referral request against job. A nil job scores 0. The result
// is always within [0, MaxScore].
func (s *Scorer) Score(job *models.Job, note, skills string) int {
	if job == nil {
		return 0
	}

	raw, keywords := KeywordOverlap(job.MatchText(), note+" "+skills)
	score := s.floor.Apply(raw, keywords)

	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}
