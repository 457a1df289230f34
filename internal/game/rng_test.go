package game

import "testing"

// scriptRand plays back a fixed sequence of draws, then repeats the last
// one. Feeding the exact values a decision reads makes procedural rolls
// fully dictated by the test.
type scriptRand struct {
	vals []float64
	next int
}

func (r *scriptRand) Float64() float64 {
	if r.next >= len(r.vals) {
		return r.vals[len(r.vals)-1]
	}
	v := r.vals[r.next]
	r.next++
	return v
}

// drawsTaken reports how many scripted values have been consumed.
func (r *scriptRand) drawsTaken() int { return r.next }

// --- uniform ---

func TestUniform_LowDrawHitsLo(t *testing.T) {
	rng := &scriptRand{vals: []float64{0}}
	if got := uniform(rng, 5, 9); got != 5 {
		t.Fatalf("draw 0 should map to lo, got %.4f", got)
	}
}

func TestUniform_MidDrawHitsMidpoint(t *testing.T) {
	rng := &scriptRand{vals: []float64{0.5}}
	if got := uniform(rng, 5, 9); got != 7 {
		t.Fatalf("draw 0.5 should map to the midpoint, got %.4f", got)
	}
}

// --- chance ---

func TestChance_StrictlyBelowThreshold(t *testing.T) {
	rng := &scriptRand{vals: []float64{0.039, 0.04}}
	if !chance(rng, 0.04) {
		t.Fatal("draw below p should succeed")
	}
	if chance(rng, 0.04) {
		t.Fatal("draw exactly at p should fail, the comparison is strict")
	}
}

// --- weighted3 ---

func TestWeighted3_FirstBucket(t *testing.T) {
	rng := &scriptRand{vals: []float64{0, 0.449}}
	if got := weighted3(rng, 45, 35, 20); got != 0 {
		t.Fatalf("draw 0 should land in the first bucket, got %d", got)
	}
	if got := weighted3(rng, 45, 35, 20); got != 0 {
		t.Fatalf("draw just under 0.45 should land in the first bucket, got %d", got)
	}
}

func TestWeighted3_MiddleBucket(t *testing.T) {
	rng := &scriptRand{vals: []float64{0.45, 0.799}}
	if got := weighted3(rng, 45, 35, 20); got != 1 {
		t.Fatalf("draw at the first boundary should land in the second bucket, got %d", got)
	}
	if got := weighted3(rng, 45, 35, 20); got != 1 {
		t.Fatalf("draw just under 0.80 should land in the second bucket, got %d", got)
	}
}

func TestWeighted3_LastBucket(t *testing.T) {
	rng := &scriptRand{vals: []float64{0.8, 0.999}}
	if got := weighted3(rng, 45, 35, 20); got != 2 {
		t.Fatalf("draw at the second boundary should land in the last bucket, got %d", got)
	}
	if got := weighted3(rng, 45, 35, 20); got != 2 {
		t.Fatalf("draw near 1 should land in the last bucket, got %d", got)
	}
}
