package renderer

import "github.com/df07/go-stochastic-raytracer/pkg/core"

// progressReporter logs scanline progress; a nil logger silences it
type progressReporter struct {
	logger core.Logger
	height int
}

func newProgressReporter(logger core.Logger, height int) *progressReporter {
	return &progressReporter{logger: logger, height: height}
}

// scanline is called just before row j is written
func (p *progressReporter) scanline(j int) {
	if p.logger == nil {
		return
	}
	percent := float64(j) / float64(p.height) * 100
	p.logger.Printf("Scanlines remaining: %d Percent complete: %.1f%%\n", p.height-j, percent)
}

func (p *progressReporter) done(stats RenderStats) {
	if p.logger == nil {
		return
	}
	p.logger.Printf("Done. %d pixels, %d samples, %d workers in %v\n",
		stats.TotalPixels, stats.TotalSamples, stats.Workers, stats.Duration)
}
