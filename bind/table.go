// SPDX-License-Identifier: Unlicense OR MIT

package bind

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/pvrsdk/native/internal/log"
)

// Table is the resolution cache of one API tier. ID enumerates the entry
// points and F is the struct of typed functions they are bound into.
//
// Table is safe for concurrent use. The first Load is serialized and every
// caller observes the snapshot it publishes.
type Table[ID constraints.Integer, F any] struct {
	tier     string
	names    []string
	fields   func(*F) []any
	open     func() (Source, error)
	reg      Registrar
	log      *zap.Logger
	optional bool

	mu   sync.Mutex
	gen  int
	snap atomic.Pointer[snapshot[F]]
}

type snapshot[F any] struct {
	fns     *F
	slots   []uintptr
	missing []string
	err     error
	gen     int
}

// Option configures a Table.
type Option func(*tableOptions)

type tableOptions struct {
	reg      Registrar
	log      *zap.Logger
	optional bool
}

// WithRegistrar replaces RegisterFunc.
func WithRegistrar(reg Registrar) Option {
	return func(o *tableOptions) {
		if reg != nil {
			o.reg = reg
		}
	}
}

// WithLogger replaces the process logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *tableOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// Optional marks every entry point of the table as optional, as for
// extension tables. Missing optional symbols are logged at debug level.
func Optional() Option {
	return func(o *tableOptions) {
		o.optional = true
	}
}

// NewTable returns an unloaded table. names[i] is the symbol bound into the
// i-th field returned by fields; open is called on the first Load and on
// every Reset.
func NewTable[ID constraints.Integer, F any](tier string, names []string, fields func(*F) []any, open func() (Source, error), opts ...Option) *Table[ID, F] {
	if n := len(fields(new(F))); n != len(names) {
		panic(fmt.Sprintf("bind: %s has %d names for %d fields", tier, len(names), n))
	}
	o := tableOptions{reg: RegisterFunc, log: log.L()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[ID, F]{
		tier:     tier,
		names:    names,
		fields:   fields,
		open:     open,
		reg:      o.reg,
		log:      o.log.With(zap.String("tier", tier)),
		optional: o.optional,
	}
}

// Tier returns the table's name.
func (t *Table[ID, F]) Tier() string {
	return t.tier
}

// Len returns the number of entry points.
func (t *Table[ID, F]) Len() int {
	return len(t.names)
}

// Name returns the native symbol name of id.
func (t *Table[ID, F]) Name(id ID) string {
	i := int(id)
	if i < 0 || i >= len(t.names) {
		return ""
	}
	return t.names[i]
}

// Load resolves the table on first use and returns its functions. The
// returned struct is never nil; when the library could not be opened every
// field is nil and the error is a *LibraryError.
func (t *Table[ID, F]) Load() (*F, error) {
	s := t.load()
	return s.fns, s.err
}

// Reset discards the current snapshot and resolves the table again,
// reopening its source. Functions obtained earlier remain callable.
func (t *Table[ID, F]) Reset() (*F, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.next()
	return s.fns, s.err
}

// Unload drops the current snapshot without resolving. The next call that
// needs the functions resolves the table again through its opener.
// Functions obtained earlier must not be called once their library is
// closed.
func (t *Table[ID, F]) Unload() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.snap.Load() != nil {
		t.log.Debug("table unloaded", zap.Int("generation", t.gen))
	}
	t.snap.Store(nil)
}

// Generation counts resolutions: 0 before the first Load, 1 after it and
// one more for every Reset or reload after Unload. It reads 0 while the
// table is unloaded.
func (t *Table[ID, F]) Generation() int {
	if s := t.snap.Load(); s != nil {
		return s.gen
	}
	return 0
}

// Resolve returns the native address of id.
func (t *Table[ID, F]) Resolve(id ID) (uintptr, error) {
	s := t.load()
	if s.err != nil {
		return 0, s.err
	}
	i := int(id)
	if i < 0 || i >= len(s.slots) {
		return 0, fmt.Errorf("%s: identifier %d out of range", t.tier, i)
	}
	if s.slots[i] == 0 {
		return 0, &SymbolError{Tier: t.tier, Names: []string{t.names[i]}}
	}
	return s.slots[i], nil
}

// Has reports whether id resolved.
func (t *Table[ID, F]) Has(id ID) bool {
	_, err := t.Resolve(id)
	return err == nil
}

// Require returns an error naming every id that did not resolve. With no
// ids it checks the whole table.
func (t *Table[ID, F]) Require(ids ...ID) error {
	s := t.load()
	if s.err != nil {
		return s.err
	}
	if len(ids) == 0 {
		if len(s.missing) == 0 {
			return nil
		}
		return &SymbolError{Tier: t.tier, Names: append([]string(nil), s.missing...)}
	}
	var missing []string
	for _, id := range ids {
		i := int(id)
		if i < 0 || i >= len(s.slots) || s.slots[i] == 0 {
			missing = append(missing, t.Name(id))
		}
	}
	if len(missing) > 0 {
		return &SymbolError{Tier: t.tier, Names: missing}
	}
	return nil
}

// Missing returns the names that did not resolve, in identifier order.
func (t *Table[ID, F]) Missing() []string {
	return append([]string(nil), t.load().missing...)
}

func (t *Table[ID, F]) load() *snapshot[F] {
	if s := t.snap.Load(); s != nil {
		return s
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if s := t.snap.Load(); s != nil {
		return s
	}
	return t.next()
}

// next resolves a new generation and publishes it. t.mu must be held.
func (t *Table[ID, F]) next() *snapshot[F] {
	t.gen++
	s := t.resolve(t.gen)
	t.snap.Store(s)
	return s
}

func (t *Table[ID, F]) resolve(gen int) *snapshot[F] {
	s := &snapshot[F]{fns: new(F), gen: gen}
	src, err := t.open()
	if err != nil {
		t.log.Error("failed to open library", zap.Error(err))
		s.err = &LibraryError{Tier: t.tier, Err: err}
		s.slots = make([]uintptr, len(t.names))
		s.missing = append([]string(nil), t.names...)
		return s
	}
	if lib, ok := src.(Library); ok {
		t.log.Info("library loaded", zap.String("library", lib.Name()))
	}
	s.slots, s.missing = Fill(t.names, t.fields(s.fns), src, t.reg)
	for _, name := range s.missing {
		if t.optional {
			t.log.Debug("entry point not available", zap.String("symbol", name))
		} else {
			t.log.Warn("entry point not found", zap.String("symbol", name))
		}
	}
	t.log.Debug("table resolved",
		zap.Int("generation", gen),
		zap.Int("resolved", len(t.names)-len(s.missing)),
		zap.Int("missing", len(s.missing)))
	return s
}
