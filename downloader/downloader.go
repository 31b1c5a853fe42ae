// Package downloader turns a pasted URL into metadata and, on confirmation,
// into the link of one downloadable variant.
package downloader

import (
	"context"
	"fmt"

	"github.com/tubegrab/tubegrab/log"
	"github.com/tubegrab/tubegrab/video"
)

// API is the subset of the video API the service needs.
type API interface {
	Details(ctx context.Context, id video.Reference) (video.Metadata, error)
	Variants(ctx context.Context, id video.Reference) ([]video.Variant, error)
}

// Result of a lookup.
type Result struct {
	ID       video.Reference
	Metadata video.Metadata
}

// Runner is what the front ends need from a Service. Tests substitute fakes.
type Runner interface {
	Lookup(ctx context.Context, rawURL string) (Result, error)
	Resolve(ctx context.Context, rawURL string, quality video.Quality) (video.Variant, error)
}

var _ Runner = (*Service)(nil)

// Service runs lookups and selections. It holds no state between calls.
type Service struct {
	api API
}

func New(api API) *Service {
	return &Service{api: api}
}

// Lookup extracts the id from rawURL and fetches its metadata.
func (s *Service) Lookup(ctx context.Context, rawURL string) (Result, error) {
	id, err := video.ExtractID(rawURL)
	if err != nil {
		return Result{}, err
	}

	meta, err := s.api.Details(ctx, id)
	if err != nil {
		return Result{}, fmt.Errorf("details of %s: %w", id, err)
	}

	return Result{ID: id, Metadata: meta}, nil
}

// Resolve fetches the variants of rawURL and selects one meeting quality.
func (s *Service) Resolve(ctx context.Context, rawURL string, quality video.Quality) (video.Variant, error) {
	id, err := video.ExtractID(rawURL)
	if err != nil {
		return video.Variant{}, err
	}

	variants, err := s.api.Variants(ctx, id)
	if err != nil {
		log.Trace("variant request failed", log.Fields{"id": id, "quality": quality, "error": err})
		return video.Variant{}, fmt.Errorf("variants of %s: %w", id, err)
	}

	chosen, err := video.Select(variants, quality)

	fields := log.Fields{
		"id":       id,
		"quality":  quality,
		"variants": len(variants),
		"eligible": countEligible(variants),
	}
	if err != nil {
		fields["error"] = err
		log.Trace("no variant selected", fields)
		return video.Variant{}, err
	}

	fields["selected"] = chosen.Quality
	log.Trace("variant selected", fields)
	return chosen, nil
}

func countEligible(variants []video.Variant) int {
	n := 0
	for _, v := range variants {
		if v.Eligible() {
			n++
		}
	}
	return n
}
