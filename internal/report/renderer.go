// Package report serves the bundled analysis document through an ordered
// chain of renderer strategies: native embed, per-page rasterization, raw
// download. Each strategy either renders or fails with a typed reason; the
// chain tries them in order and the download strategy is always last, so a
// present file always leaves at least a download option.
package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	srvErrors "github.com/Drishanv/ola-rides-insights/pkg/errors"
)

// FailureReason classifies why a strategy could not render.
type FailureReason string

const (
	ReasonFileMissing           FailureReason = "file_missing"
	ReasonRasterizerUnavailable FailureReason = "rasterizer_unavailable"
	ReasonRasterFailed          FailureReason = "raster_failed"
	ReasonPageOutOfRange        FailureReason = "page_out_of_range"
)

// Failure is a typed render failure from one strategy.
type Failure struct {
	Strategy string
	Reason   FailureReason
	Err      error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Strategy, f.Reason, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Strategy, f.Reason)
}

// Mode says how the client should present the document under the winning
// strategy.
type Mode string

const (
	ModeEmbed    Mode = "embed"
	ModeImages   Mode = "images"
	ModeDownload Mode = "download"
)

// Rendition is a successful outcome: the presentation mode plus anything the
// strategy produced up front.
type Rendition struct {
	Strategy string `json:"strategy"`
	Mode     Mode   `json:"mode"`
	Pages    int    `json:"pages"`
}

// Document describes the fixed-name report file.
type Document struct {
	Path string
	// Zoom scales the rasterization resolution; 1.0 is 72 dpi.
	Zoom       float64
	PageTitles []string
}

func (d Document) Pages() int {
	return len(d.PageTitles)
}

// Strategy renders a document or fails with a typed reason.
type Strategy interface {
	Name() string
	Render(ctx context.Context, doc Document) (*Rendition, *Failure)
}

// Chain tries its strategies in order and returns the first rendition.
type Chain struct {
	strategies []Strategy
	log        *zap.SugaredLogger
}

// NewChain builds the default ordered chain.
func NewChain() *Chain {
	return &Chain{
		strategies: []Strategy{
			&EmbedStrategy{},
			NewRasterStrategy(),
			&DownloadStrategy{},
		},
		log: zap.S().Named("report"),
	}
}

// Resolve walks the chain. When every strategy fails the document is
// unavailable; the typed failures are logged, not surfaced.
func (c *Chain) Resolve(ctx context.Context, doc Document) (*Rendition, error) {
	for _, s := range c.strategies {
		rendition, failure := s.Render(ctx, doc)
		if failure == nil {
			return rendition, nil
		}
		c.log.Infow("renderer strategy failed",
			"strategy", failure.Strategy, "reason", failure.Reason, "error", failure.Err)
	}
	return nil, srvErrors.NewReportUnavailableError(doc.Path)
}

// Raster returns the chain's rasterizing strategy for per-page image requests.
func (c *Chain) Raster() *RasterStrategy {
	for _, s := range c.strategies {
		if r, ok := s.(*RasterStrategy); ok {
			return r
		}
	}
	return nil
}
