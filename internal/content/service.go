// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
)

// Service serves the static pages.
type Service struct {
	home    HomePage
	about   AboutPage
	contact ContactPage
	faqs    []FAQ
}

// NewService renders every FAQ answer and freezes the pages.
func NewService(data Data) (*Service, error) {
	markdown := goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Typographer))
	policy := bluemonday.UGCPolicy()

	faqs := make([]FAQ, len(data.FAQs))
	for i, faq := range data.FAQs {
		var buffer bytes.Buffer
		if err := markdown.Convert([]byte(faq.Answer), &buffer); err != nil {
			return nil, fmt.Errorf("content: render faq %d: %w", i, err)
		}

		faqs[i] = FAQ{
			Question:   faq.Question,
			Answer:     faq.Answer,
			AnswerHTML: strings.TrimSpace(policy.Sanitize(buffer.String())),
		}
	}

	return &Service{
		home: HomePage{
			Features:     nonNil(data.Features),
			Stats:        nonNil(data.Stats),
			Testimonials: nonNil(data.Testimonials),
		},
		about: AboutPage{
			Values:     nonNil(data.Values),
			Milestones: nonNil(data.Milestones),
		},
		contact: ContactPage{
			Channels:   nonNil(data.Channels),
			Highlights: nonNil(data.Highlights),
		},
		faqs: faqs,
	}, nil
}

func (service *Service) Home() HomePage       { return service.home }
func (service *Service) About() AboutPage     { return service.about }
func (service *Service) Contact() ContactPage { return service.contact }

// FAQs returns the questions whose question or answer contains query,
// case-insensitively. An empty query returns every question.
func (service *Service) FAQs(query string) []FAQ {
	folder := cases.Fold()
	needle := folder.String(strings.TrimSpace(query))
	if needle == "" {
		return slices.Clone(service.faqs)
	}

	matches := make([]FAQ, 0)
	for _, faq := range service.faqs {
		if strings.Contains(folder.String(faq.Question), needle) || strings.Contains(folder.String(faq.Answer), needle) {
			matches = append(matches, faq)
		}
	}
	return matches
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
