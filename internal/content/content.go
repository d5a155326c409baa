// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content serves the marketing copy of the home, about, FAQ and
contact pages. The copy is static; FAQ answers are authored in markdown
and rendered once, at construction, to sanitised HTML.
*/
package content

// # Home

type Feature struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Stat is a headline figure such as "10,000+ Premium Products".
type Stat struct {
	Value  string `json:"value" yaml:"value"`
	Label  string `json:"label" yaml:"label"`
	Suffix string `json:"suffix,omitempty" yaml:"suffix"`
}

type Testimonial struct {
	Name    string `json:"name" yaml:"name"`
	Company string `json:"company" yaml:"company"`
	Text    string `json:"text" yaml:"text"`
	Rating  int    `json:"rating" yaml:"rating"`
}

// # About

type Value struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type Milestone struct {
	Year        string `json:"year" yaml:"year"`
	Event       string `json:"event" yaml:"event"`
	Description string `json:"description" yaml:"description"`
}

// # FAQ

// FAQ is one question. Answer is markdown; AnswerHTML is filled in by the
// service.
type FAQ struct {
	Question   string `json:"question" yaml:"question"`
	Answer     string `json:"answer" yaml:"answer"`
	AnswerHTML string `json:"answer_html" yaml:"-"`
}

// # Contact

// Channel is one way to reach the company. Action is a link target and may
// be empty.
type Channel struct {
	Title   string   `json:"title" yaml:"title"`
	Details []string `json:"details" yaml:"details"`
	Action  string   `json:"action,omitempty" yaml:"action"`
}

type Highlight struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// # Pages

// Data is the full content set.
type Data struct {
	Features     []Feature     `yaml:"features"`
	Stats        []Stat        `yaml:"stats"`
	Testimonials []Testimonial `yaml:"testimonials"`
	Values       []Value       `yaml:"values"`
	Milestones   []Milestone   `yaml:"milestones"`
	FAQs         []FAQ         `yaml:"faqs"`
	Channels     []Channel     `yaml:"channels"`
	Highlights   []Highlight   `yaml:"highlights"`
}

type HomePage struct {
	Features     []Feature     `json:"features"`
	Stats        []Stat        `json:"stats"`
	Testimonials []Testimonial `json:"testimonials"`
}

type AboutPage struct {
	Values     []Value     `json:"values"`
	Milestones []Milestone `json:"milestones"`
}

type ContactPage struct {
	Channels   []Channel   `json:"channels"`
	Highlights []Highlight `json:"highlights"`
}
