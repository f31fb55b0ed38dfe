// SPDX-License-Identifier: Unlicense OR MIT

package bind

import "sync"

// Shared opens a source once on behalf of several tables, so that the tiers
// of one API use a single library handle. A failed open is remembered until
// Close.
type Shared struct {
	open func() (Source, error)

	mu   sync.Mutex
	done bool
	src  Source
	err  error
}

// NewShared returns a Shared calling open on first use.
func NewShared(open func() (Source, error)) *Shared {
	return &Shared{open: open}
}

// Open returns the shared source, opening it if needed. It has the
// signature NewTable expects.
func (s *Shared) Open() (Source, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.done {
		s.src, s.err = s.open()
		s.done = true
	}
	return s.src, s.err
}

// Close closes the source if it is a Library. The next Open reopens it.
func (s *Shared) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.src
	s.done, s.src, s.err = false, nil, nil
	if lib, ok := src.(Library); ok {
		return lib.Close()
	}
	return nil
}
