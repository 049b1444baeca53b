package core

const AVG_COUNT uint8 = 30

// Metrics keeps a rolling average of frame times together with the number
// of host frames and simulation steps observed during the last full second.
type Metrics struct {
	frameAVGCounter    uint8
	msTimes            [AVG_COUNT]float64
	msAvg              float64
	frames             int32
	steps              int32
	accumulatedFrameMS float64
	fps                float64
	sps                float64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Update records one host frame that took frameMS milliseconds since the
// previous one and ran the given number of simulation steps.
// Returns true every time a full second has been accumulated.
func (m *Metrics) Update(frameMS float64, steps int) bool {
	// Calculate frame ms average
	m.msTimes[m.frameAVGCounter] = frameMS
	if m.frameAVGCounter == AVG_COUNT-1 {
		m.msAvg = 0
		for i := uint8(0); i < AVG_COUNT; i++ {
			m.msAvg += m.msTimes[i]
		}
		m.msAvg /= float64(AVG_COUNT)
	}
	m.frameAVGCounter++
	m.frameAVGCounter %= AVG_COUNT

	m.frames++
	m.steps += int32(steps)

	// Calculate frames and steps per second.
	m.accumulatedFrameMS += frameMS
	if m.accumulatedFrameMS >= 1000 {
		m.fps = float64(m.frames)
		m.sps = float64(m.steps)
		m.accumulatedFrameMS -= 1000
		m.frames = 0
		m.steps = 0
		return true
	}
	return false
}

func (m *Metrics) FPS() float64 {
	return m.fps
}

func (m *Metrics) StepsPerSecond() float64 {
	return m.sps
}

func (m *Metrics) FrameTime() float64 {
	return m.msAvg
}

func (m *Metrics) Frame() (float64, float64) {
	return m.fps, m.msAvg
}
