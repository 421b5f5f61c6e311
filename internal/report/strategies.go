package report

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strconv"
)

// EmbedStrategy serves the document for native inline viewing. It succeeds
// whenever the file exists; clients without an inline viewer fall through to
// the next strategy on their own request.
type EmbedStrategy struct{}

func (s *EmbedStrategy) Name() string { return "embed" }

func (s *EmbedStrategy) Render(_ context.Context, doc Document) (*Rendition, *Failure) {
	if _, err := os.Stat(doc.Path); err != nil {
		return nil, &Failure{Strategy: s.Name(), Reason: ReasonFileMissing, Err: err}
	}
	return &Rendition{Strategy: s.Name(), Mode: ModeEmbed, Pages: doc.Pages()}, nil
}

// RasterStrategy rasterizes single pages to PNG via the poppler pdftoppm
// tool. It fails up front when the tool is not installed.
type RasterStrategy struct {
	tool string
}

func NewRasterStrategy() *RasterStrategy {
	return &RasterStrategy{tool: "pdftoppm"}
}

func (s *RasterStrategy) Name() string { return "raster" }

func (s *RasterStrategy) Render(_ context.Context, doc Document) (*Rendition, *Failure) {
	if _, err := os.Stat(doc.Path); err != nil {
		return nil, &Failure{Strategy: s.Name(), Reason: ReasonFileMissing, Err: err}
	}
	if _, err := exec.LookPath(s.tool); err != nil {
		return nil, &Failure{Strategy: s.Name(), Reason: ReasonRasterizerUnavailable, Err: err}
	}
	return &Rendition{Strategy: s.Name(), Mode: ModeImages, Pages: doc.Pages()}, nil
}

// RenderPage rasterizes one 1-based page at the document's zoom factor.
func (s *RasterStrategy) RenderPage(ctx context.Context, doc Document, page int) ([]byte, *Failure) {
	if page < 1 || page > doc.Pages() {
		return nil, &Failure{Strategy: s.Name(), Reason: ReasonPageOutOfRange}
	}
	if _, err := os.Stat(doc.Path); err != nil {
		return nil, &Failure{Strategy: s.Name(), Reason: ReasonFileMissing, Err: err}
	}

	zoom := doc.Zoom
	if zoom <= 0 {
		zoom = 1.0
	}
	dpi := strconv.Itoa(int(72 * zoom))
	pageArg := strconv.Itoa(page)

	// Without an output root pdftoppm writes the single page to stdout.
	cmd := exec.CommandContext(ctx, s.tool,
		"-png", "-r", dpi, "-f", pageArg, "-l", pageArg, doc.Path)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &Failure{Strategy: s.Name(), Reason: ReasonRasterFailed, Err: err}
	}
	return out.Bytes(), nil
}

// DownloadStrategy is the final fallback: the raw file as an attachment. It
// only fails when the file itself is gone.
type DownloadStrategy struct{}

func (s *DownloadStrategy) Name() string { return "download" }

func (s *DownloadStrategy) Render(_ context.Context, doc Document) (*Rendition, *Failure) {
	if _, err := os.Stat(doc.Path); err != nil {
		return nil, &Failure{Strategy: s.Name(), Reason: ReasonFileMissing, Err: err}
	}
	return &Rendition{Strategy: s.Name(), Mode: ModeDownload, Pages: doc.Pages()}, nil
}
