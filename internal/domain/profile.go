package domain

import (
	"context"
	"sync"
	"time"
)

type Span struct {
	Name    string `json:"name"`
	startTs time.Time
	Elapsed *int64 `json:"elapsedMs"`
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

// Profile is a flat list of timed spans for one request.
type Profile struct {
	mu      sync.Mutex
	spans   []*Span
	startTs time.Time
	TotalMs *int64
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		spans:   []*Span{},
		startTs: time.Now(),
	}
	return newProfile, newProfile.End
}

func (p *Profile) End() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.spans) > 0 {
		p.spans[len(p.spans)-1].End()
	}
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
}

// StartNewSpan ends the previous span and begins a new one.
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.spans) > 0 {
		p.spans[len(p.spans)-1].End()
	}
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	p.spans = append(p.spans, newSpan)
	return newSpan, newSpan.End
}

func (p *Profile) Spans() []Span {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Span, 0, len(p.spans))
	for _, s := range p.spans {
		out = append(out, *s)
	}
	return out
}

type profileKey struct{}

func NewContextWithProfile(ctx context.Context, profile *Profile) context.Context {
	return context.WithValue(ctx, profileKey{}, profile)
}

// GetProfile returns the request's profile, or a detached one when the
// caller did not attach any.
func GetProfile(ctx context.Context) *Profile {
	if profile, ok := ctx.Value(profileKey{}).(*Profile); ok {
		return profile
	}
	profile, _ := NewProfile()
	return profile
}
