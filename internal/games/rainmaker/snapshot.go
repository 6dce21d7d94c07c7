package rainmaker

import "math"

// Snapshot contains the observable simulation state for determinism checks
// and headless summaries. Uses primitive types only for stable comparison.
type Snapshot struct {
	Ticks   uint64
	Elapsed float64

	HeliX, HeliY float64
	Heading      float64
	Speed        float64
	Fuel         float64
	State        int
	BladeSpeed   float64

	WindSpeed float64

	// Each cloud is 4 values: ID, X, Y, Saturation
	CloudData []float64

	// Each pond is 2 values: ID, WaterLevel
	PondData []float64

	// Each blimp is 4 values: ID, X, Y, Fuel
	BlimpData []float64
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	h := w.helicopter

	clouds := w.clouds.Items()
	cloudData := make([]float64, 0, len(clouds)*4)
	for _, c := range clouds {
		cloudData = append(cloudData, float64(c.id), c.position.X(), c.position.Y(), float64(c.saturation))
	}

	ponds := w.ponds.Items()
	pondData := make([]float64, 0, len(ponds)*2)
	for _, p := range ponds {
		pondData = append(pondData, float64(p.id), p.water)
	}

	blimps := w.blimps.Items()
	blimpData := make([]float64, 0, len(blimps)*4)
	for _, b := range blimps {
		blimpData = append(blimpData, float64(b.id), b.position.X(), b.position.Y(), b.fuel)
	}

	return Snapshot{
		Ticks:      w.ticks,
		Elapsed:    w.elapsed,
		HeliX:      h.position.X(),
		HeliY:      h.position.Y(),
		Heading:    h.heading,
		Speed:      h.speed,
		Fuel:       h.fuel,
		State:      int(h.state),
		BladeSpeed: h.blade.Speed(),
		WindSpeed:  w.wind.Speed(),
		CloudData:  cloudData,
		PondData:   pondData,
		BlimpData:  blimpData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Ticks
	mix := func(f float64) {
		h = h*31 + math.Float64bits(f)
	}

	mix(snap.Elapsed)
	mix(snap.HeliX)
	mix(snap.HeliY)
	mix(snap.Heading)
	mix(snap.Speed)
	mix(snap.Fuel)
	mix(float64(snap.State))
	mix(snap.BladeSpeed)
	mix(snap.WindSpeed)

	for _, v := range snap.CloudData {
		mix(v)
	}
	for _, v := range snap.PondData {
		mix(v)
	}
	for _, v := range snap.BlimpData {
		mix(v)
	}
	return h
}
