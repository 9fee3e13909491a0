// Package mt19937 implements the 32-bit Mersenne Twister seeded with init_genrand and its
// 53-bit float draw. The output sequence is the one of the legacy NumPy global generator,
// so a seed reproduces figures produced with np.random.seed(seed) + np.random.rand()
package mt19937

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

type MT19937 struct {
	state [n]uint32
	index int
}

func New(seed uint32) *MT19937 {
	generator := &MT19937{}
	generator.Seed(seed)
	return generator
}

func (generator *MT19937) Seed(seed uint32) {
	generator.state[0] = seed
	for i := 1; i < n; i++ {
		previous := generator.state[i-1]
		generator.state[i] = 1812433253*(previous^(previous>>30)) + uint32(i)
	}
	generator.index = n
}

// Uint32 returns the next tempered word
func (generator *MT19937) Uint32() uint32 {
	if generator.index >= n {
		generator.twist()
	}

	y := generator.state[generator.index]
	generator.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Float64 returns a value in [0, 1) built from two words (27 + 26 bits)
func (generator *MT19937) Float64() float64 {
	a := generator.Uint32() >> 5
	b := generator.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}

func (generator *MT19937) twist() {
	for i := range n {
		y := (generator.state[i] & upperMask) | (generator.state[(i+1)%n] & lowerMask)
		next := generator.state[(i+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		generator.state[i] = next
	}
	generator.index = 0
}
