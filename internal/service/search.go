package service

import (
	"context"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/jask/kikaportals/internal/database/repository"
)

// JobLister is the catalog read the search needs.
type JobLister interface {
	List(ctx context.Context) ([]repository.JobPosting, error)
}

// JobSearch filters the job catalog by a free-text query, tolerating typos.
type JobSearch struct {
	Jobs JobLister
}

// Search returns the postings matching query in catalog order. An empty query
// returns the whole catalog.
func (s *JobSearch) Search(ctx context.Context, query string) ([]repository.JobPosting, error) {
	jobs, err := s.Jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(jobs, query), nil
}

// Filter keeps the jobs where every query term matches position, company or
// location.
func Filter(jobs []repository.JobPosting, query string) []repository.JobPosting {
	terms := tokens(query)
	if len(terms) == 0 {
		return jobs
	}
	out := make([]repository.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if Matches(j, terms) {
			out = append(out, j)
		}
	}
	return out
}

// Matches reports whether all terms hit the job. A term hits when it is a
// substring of the job text or within edit distance len/3 of one of its words.
func Matches(j repository.JobPosting, terms []string) bool {
	text := strings.ToLower(j.Position + " " + j.Company + " " + j.Location)
	words := tokens(text)
	for _, term := range terms {
		if !termHits(term, text, words) {
			return false
		}
	}
	return true
}

func termHits(term, text string, words []string) bool {
	if strings.Contains(text, term) {
		return true
	}
	limit := len(term) / 3
	if limit == 0 {
		return false
	}
	for _, w := range words {
		if levenshtein.ComputeDistance(term, w) <= limit {
			return true
		}
	}
	return false
}

func tokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
