// Package association keeps the two sides of a relationship between two
// entity types consistent.
//
// A Link owns both directions of one relationship: a forward index from each
// A to its Bs and a reverse index from each B to its As. Entities never hold
// pointers to each other, so the object graph has no ownership cycles and
// every mutation updates both indexes before returning. After any exported
// call returns, a holds b if and only if b holds a.
//
// Every concrete relationship is expressed as a Spec (kind plus optional
// bounds) rather than bespoke code. A Link is not safe for concurrent use.
package association

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/extents/internal/extent"
	"github.com/mesh-intelligence/extents/pkg/types"
)

// Kind is the cardinality of a relationship.
type Kind int

const (
	// OneToOne: each side holds at most one partner.
	OneToOne Kind = iota + 1
	// OneToMany: A is the owning "one" side holding many Bs; each B holds at
	// most one A.
	OneToMany
	// ManyToMany: both sides hold ordered collections.
	ManyToMany
)

func (k Kind) String() string {
	switch k {
	case OneToOne:
		return "one-to-one"
	case OneToMany:
		return "one-to-many"
	case ManyToMany:
		return "many-to-many"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Spec configures one relationship.
type Spec struct {
	Name string
	Kind Kind

	// MaxPerA bounds how many Bs one A may hold. Zero means unbounded.
	// Ignored for OneToOne.
	MaxPerA int

	// MaxPerB bounds how many As one B may hold. Zero means unbounded.
	// Only used for ManyToMany.
	MaxPerB int
}

// Pair is one connected (A, B) pair.
type Pair[A, B extent.Member] struct {
	From A
	To   B
}

// Link is the bidirectional association between entity types A and B.
type Link[A, B extent.Member] struct {
	spec    Spec
	forward map[A]*set[B]
	reverse map[B]*set[A]

	// owners lists each A with at least one partner, in first-connect order,
	// so Pairs is deterministic.
	owners []A
}

// New returns an empty link. It panics on an unknown Kind or a negative
// bound, which are configuration mistakes.
func New[A, B extent.Member](spec Spec) *Link[A, B] {
	switch spec.Kind {
	case OneToOne, OneToMany, ManyToMany:
	default:
		panic(fmt.Sprintf("association %q: unknown kind %v", spec.Name, spec.Kind))
	}
	if spec.MaxPerA < 0 || spec.MaxPerB < 0 {
		panic(fmt.Sprintf("association %q: negative bound", spec.Name))
	}
	return &Link[A, B]{
		spec:    spec,
		forward: make(map[A]*set[B]),
		reverse: make(map[B]*set[A]),
	}
}

// Name returns the configured relationship name.
func (l *Link[A, B]) Name() string { return l.spec.Name }

// Spec returns the configuration.
func (l *Link[A, B]) Spec() Spec { return l.spec }

func (l *Link[A, B]) singleA() bool { return l.spec.Kind == OneToOne }
func (l *Link[A, B]) singleB() bool { return l.spec.Kind != ManyToMany }

// capA is the most Bs one A may hold; zero is unbounded.
func (l *Link[A, B]) capA() int {
	if l.singleA() {
		return 1
	}
	return l.spec.MaxPerA
}

// capB is the most As one B may hold; zero is unbounded.
func (l *Link[A, B]) capB() int {
	if l.singleB() {
		return 1
	}
	return l.spec.MaxPerB
}

func (l *Link[A, B]) nilEndpoint(a A, b B) bool {
	var za A
	var zb B
	return a == za || b == zb
}

// Linked reports whether a and b are connected.
func (l *Link[A, B]) Linked(a A, b B) bool {
	return l.forward[a].has(b)
}

// Connect links a and b on both sides.
//
// Connecting an already connected pair is a no-op that returns false. A nil
// endpoint returns ErrNilEntity. ErrDuplicateMember is returned when a
// different entity with the same identifier already sits on either side, and
// ErrCardinality when a collection is at its bound; both are detected before
// anything changes. When a single-valued side already holds another partner,
// that pair is disconnected on both sides first.
func (l *Link[A, B]) Connect(a A, b B) (bool, error) {
	if err := l.CanConnect(a, b); err != nil {
		return false, err
	}
	if l.Linked(a, b) {
		return false, nil
	}
	l.attach(a, b)
	return true, nil
}

// CanConnect returns the error Connect(a, b) would return, without changing
// the link.
func (l *Link[A, B]) CanConnect(a A, b B) error {
	if l.nilEndpoint(a, b) {
		return fmt.Errorf("%s: %w", l.spec.Name, types.ErrNilEntity)
	}
	if l.Linked(a, b) {
		return nil
	}
	var leaving B
	return l.admit(a, b, leaving)
}

// Displaces reports whether connecting a and b would drop an existing pair
// from a single-valued side.
func (l *Link[A, B]) Displaces(a A, b B) bool {
	if l.singleA() {
		if cur, ok := l.forward[a].first(); ok && cur != b {
			return true
		}
	}
	if l.singleB() {
		if cur, ok := l.reverse[b].first(); ok && cur != a {
			return true
		}
	}
	return false
}

// admit checks whether b may join a's side and a may join b's side.
// leaving is a partner of a about to be dropped by Reassign; it does not
// count against a's bound.
func (l *Link[A, B]) admit(a A, b B, leaving B) error {
	fwd, rev := l.forward[a], l.reverse[b]

	if !l.singleA() {
		if other, ok := fwd.sameID(b); ok && other != leaving {
			return fmt.Errorf("%s: %T %d already holds %T %d: %w",
				l.spec.Name, a, a.ID(), b, b.ID(), types.ErrDuplicateMember)
		}
		n := fwd.len()
		if fwd.has(leaving) {
			n--
		}
		if c := l.capA(); c > 0 && n >= c {
			return fmt.Errorf("%s: %T %d already holds %d of %d: %w",
				l.spec.Name, a, a.ID(), n, c, types.ErrCardinality)
		}
	}
	if !l.singleB() {
		if _, ok := rev.sameID(a); ok {
			return fmt.Errorf("%s: %T %d already holds %T %d: %w",
				l.spec.Name, b, b.ID(), a, a.ID(), types.ErrDuplicateMember)
		}
		if c := l.capB(); c > 0 && rev.len() >= c {
			return fmt.Errorf("%s: %T %d already holds %d of %d: %w",
				l.spec.Name, b, b.ID(), rev.len(), c, types.ErrCardinality)
		}
	}
	return nil
}

// attach performs the mutation for an admitted pair. Each half checks
// whether it is already in place before writing, so neither half ever
// triggers the other.
func (l *Link[A, B]) attach(a A, b B) {
	if l.singleA() {
		if cur, ok := l.forward[a].first(); ok && cur != b {
			l.Disconnect(a, cur)
		}
	}
	if l.singleB() {
		if cur, ok := l.reverse[b].first(); ok && cur != a {
			l.Disconnect(cur, b)
		}
	}
	if !l.forward[a].has(b) {
		l.addForward(a, b)
	}
	if !l.reverse[b].has(a) {
		l.addReverse(b, a)
	}
}

func (l *Link[A, B]) addForward(a A, b B) {
	s, ok := l.forward[a]
	if !ok {
		s = &set[B]{}
		l.forward[a] = s
		l.owners = append(l.owners, a)
	}
	s.add(b)
}

func (l *Link[A, B]) addReverse(b B, a A) {
	s, ok := l.reverse[b]
	if !ok {
		s = &set[A]{}
		l.reverse[b] = s
	}
	s.add(a)
}

// Disconnect removes the pair from both sides. It reports whether anything
// was removed; disconnecting an unconnected pair, or a nil endpoint, is a
// no-op.
func (l *Link[A, B]) Disconnect(a A, b B) bool {
	if l.nilEndpoint(a, b) {
		return false
	}
	removed := false
	if fwd := l.forward[a]; fwd.remove(b) {
		removed = true
		if fwd.len() == 0 {
			delete(l.forward, a)
			l.dropOwner(a)
		}
	}
	if rev := l.reverse[b]; rev.remove(a) {
		removed = true
		if rev.len() == 0 {
			delete(l.reverse, b)
		}
	}
	return removed
}

func (l *Link[A, B]) dropOwner(a A) {
	for i, o := range l.owners {
		if o == a {
			l.owners = append(l.owners[:i], l.owners[i+1:]...)
			return
		}
	}
}

// Reassign replaces old with next among a's partners. Afterwards a is
// connected to next and not to old. old == next is a no-op, a nil next is a
// plain Disconnect, and a nil old is a plain Connect. Bounds and duplicate
// checks run before old is dropped, so a refused reassign changes nothing.
func (l *Link[A, B]) Reassign(a A, old, next B) error {
	var za A
	var zb B
	if a == za {
		return fmt.Errorf("%s: %w", l.spec.Name, types.ErrNilEntity)
	}
	if old == next {
		return nil
	}
	if next == zb {
		l.Disconnect(a, old)
		return nil
	}
	if !l.Linked(a, next) {
		if err := l.admit(a, next, old); err != nil {
			return err
		}
	}
	if old != zb {
		l.Disconnect(a, old)
	}
	l.attach(a, next)
	return nil
}

// DetachA disconnects a from every partner and returns them in order.
func (l *Link[A, B]) DetachA(a A) []B {
	partners := l.forward[a].snapshot()
	for _, b := range partners {
		l.Disconnect(a, b)
	}
	return partners
}

// DetachB disconnects b from every partner and returns them in order.
func (l *Link[A, B]) DetachB(b B) []A {
	partners := l.reverse[b].snapshot()
	for _, a := range partners {
		l.Disconnect(a, b)
	}
	return partners
}

// Targets returns a's partners in connect order. The slice is a copy.
func (l *Link[A, B]) Targets(a A) []B { return l.forward[a].snapshot() }

// Sources returns b's partners in connect order. The slice is a copy.
func (l *Link[A, B]) Sources(b B) []A { return l.reverse[b].snapshot() }

// Target returns a's first partner; for single-valued A sides, its only one.
func (l *Link[A, B]) Target(a A) (B, bool) { return l.forward[a].first() }

// Source returns b's first partner; for single-valued B sides, its only one.
func (l *Link[A, B]) Source(b B) (A, bool) { return l.reverse[b].first() }

// Pairs returns every connected pair, grouped by A in first-connect order.
func (l *Link[A, B]) Pairs() []Pair[A, B] {
	var out []Pair[A, B]
	for _, a := range l.owners {
		for _, b := range l.forward[a].items {
			out = append(out, Pair[A, B]{From: a, To: b})
		}
	}
	return out
}

// Len returns the number of connected pairs.
func (l *Link[A, B]) Len() int {
	n := 0
	for _, s := range l.forward {
		n += s.len()
	}
	return n
}

// Clear drops every pair.
func (l *Link[A, B]) Clear() {
	clear(l.forward)
	clear(l.reverse)
	l.owners = nil
}

// Check audits the link: both indexes agree, no collection is over its
// bound, and the owner order matches the forward index. Violations are
// joined into one error wrapping ErrAsymmetric or ErrCardinality.
func (l *Link[A, B]) Check() error {
	var errs []error
	for a, fwd := range l.forward {
		if c := l.capA(); c > 0 && fwd.len() > c {
			errs = append(errs, fmt.Errorf("%s: %T %d holds %d, bound %d: %w",
				l.spec.Name, a, a.ID(), fwd.len(), c, types.ErrCardinality))
		}
		for _, b := range fwd.items {
			if !l.reverse[b].has(a) {
				errs = append(errs, fmt.Errorf("%s: %T %d -> %T %d has no reverse: %w",
					l.spec.Name, a, a.ID(), b, b.ID(), types.ErrAsymmetric))
			}
		}
	}
	for b, rev := range l.reverse {
		if c := l.capB(); c > 0 && rev.len() > c {
			errs = append(errs, fmt.Errorf("%s: %T %d holds %d, bound %d: %w",
				l.spec.Name, b, b.ID(), rev.len(), c, types.ErrCardinality))
		}
		for _, a := range rev.items {
			if !l.forward[a].has(b) {
				errs = append(errs, fmt.Errorf("%s: %T %d -> %T %d has no forward: %w",
					l.spec.Name, b, b.ID(), a, a.ID(), types.ErrAsymmetric))
			}
		}
	}
	if len(l.owners) != len(l.forward) {
		errs = append(errs, fmt.Errorf("%s: %d owners for %d forward entries: %w",
			l.spec.Name, len(l.owners), len(l.forward), types.ErrAsymmetric))
	}
	return errors.Join(errs...)
}
