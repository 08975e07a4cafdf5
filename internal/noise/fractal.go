package noise

// Fractal2D accumulates octaves of a 2D kernel. Amplitude decays by Gain
// and frequency grows by Lacunarity each octave; the sum is normalized by
// the total amplitude and shifted so output lands in roughly [0, 1].
type Fractal2D struct {
	Noise      Noise2D
	Octaves    int
	Gain       float64 // persistence, below 1
	Lacunarity float64 // above 1
	Amplitude  float64
	Frequency  float64
}

// Sample returns the octave sum at (x, y).
func (f *Fractal2D) Sample(x, y float64) float64 {
	amp := f.Amplitude
	freq := f.Frequency

	var total, norm float64
	for i := 0; i < f.Octaves; i++ {
		total += f.Noise(x*freq, y*freq) * amp
		norm += amp
		amp *= f.Gain
		freq *= f.Lacunarity
	}
	if norm == 0 {
		return 0.5
	}
	return total/norm/2 + 0.5
}

// Fractal3D accumulates octaves of a 3D kernel, with the same shaping as
// Fractal2D.
type Fractal3D struct {
	Noise      Noise3D
	Octaves    int
	Gain       float64
	Lacunarity float64
	Amplitude  float64
	Frequency  float64
}

// Sample returns the octave sum at (x, y, z).
func (f *Fractal3D) Sample(x, y, z float64) float64 {
	amp := f.Amplitude
	freq := f.Frequency

	var total, norm float64
	for i := 0; i < f.Octaves; i++ {
		total += f.Noise(x*freq, y*freq, z*freq) * amp
		norm += amp
		amp *= f.Gain
		freq *= f.Lacunarity
	}
	if norm == 0 {
		return 0.5
	}
	return total/norm/2 + 0.5
}
