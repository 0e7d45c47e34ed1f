package core

import "math/rand/v2"

// Source supplies the two kinds of draws the wildfire engine consumes:
// uniform floats for probability checks and non-negative integers for
// shuffling.
type Source interface {
	Float64() float64
	Int31() int32
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed reports the seed the generator was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Int31 returns a uniform non-negative 31-bit integer.
func (r *RNG) Int31() int32 {
	return r.r.Int32()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Sequence replays a fixed list of draws. It lets tests decide exactly which
// cells ignite and where the shuffle sends each symbol. Once a list runs out
// it repeats its last value; an empty list yields zero.
type Sequence struct {
	Floats []float64
	Ints   []int32

	fi, ii int
	draws  int
}

// Float64 returns the next scripted float.
func (s *Sequence) Float64() float64 {
	s.draws++
	if len(s.Floats) == 0 {
		return 0
	}
	if s.fi >= len(s.Floats) {
		return s.Floats[len(s.Floats)-1]
	}
	v := s.Floats[s.fi]
	s.fi++
	return v
}

// Int31 returns the next scripted integer.
func (s *Sequence) Int31() int32 {
	if len(s.Ints) == 0 {
		return 0
	}
	if s.ii >= len(s.Ints) {
		return s.Ints[len(s.Ints)-1]
	}
	v := s.Ints[s.ii]
	s.ii++
	return v
}

// FloatDraws reports how many floats have been consumed.
func (s *Sequence) FloatDraws() int { return s.draws }
