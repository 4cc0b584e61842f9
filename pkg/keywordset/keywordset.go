// Package keywordset implements case-insensitive multi-keyword matching
// using an Aho-Corasick automaton.
//
// The extractor classifies every log line against the configured
// failed-login keyword set; building one automaton up front makes that a
// single O(line length) scan regardless of how many keywords are configured.
//
// Thread Safety: Match is safe for concurrent calls after construction.
// The Set is immutable after New() returns.
package keywordset

import "unicode"

// Set is an Aho-Corasick automaton over a fixed keyword list.
type Set struct {
	root     *node
	keywords []string
}

type node struct {
	children map[rune]*node
	fail     *node
	terminal bool
}

// New builds a matcher for the given keywords. Matching is case-insensitive.
func New(keywords []string) *Set {
	s := &Set{
		root:     newNode(),
		keywords: append([]string(nil), keywords...),
	}

	for _, kw := range keywords {
		s.add(kw)
	}
	s.buildFailureLinks()

	return s
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

func (s *Set) add(keyword string) {
	current := s.root
	for _, r := range keyword {
		r = unicode.ToLower(r)
		if _, ok := current.children[r]; !ok {
			current.children[r] = newNode()
		}
		current = current.children[r]
	}
	current.terminal = true
}

// buildFailureLinks constructs suffix links via BFS so that a failed
// transition falls back to the longest proper suffix still in the trie.
func (s *Set) buildFailureLinks() {
	queue := make([]*node, 0)

	for _, child := range s.root.children {
		child.fail = s.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for r, child := range current.children {
			queue = append(queue, child)

			fail := current.fail
			for fail != nil {
				if next, ok := fail.children[r]; ok {
					child.fail = next
					if next.terminal {
						child.terminal = true
					}
					break
				}
				fail = fail.fail
			}
			if child.fail == nil {
				child.fail = s.root
			}
		}
	}
}

// Match reports whether any keyword occurs in text, case-insensitively.
func (s *Set) Match(text string) bool {
	if s.root == nil || len(s.keywords) == 0 {
		return false
	}

	current := s.root
	for _, r := range text {
		r = unicode.ToLower(r)

		for current != s.root {
			if _, ok := current.children[r]; ok {
				break
			}
			current = current.fail
		}

		if next, ok := current.children[r]; ok {
			current = next
		}

		if current.terminal {
			return true
		}
	}

	return false
}

// Keywords returns a copy of the keyword list the set was built from.
func (s *Set) Keywords() []string {
	return append([]string(nil), s.keywords...)
}

// Len returns the number of keywords in the set.
func (s *Set) Len() int {
	return len(s.keywords)
}
