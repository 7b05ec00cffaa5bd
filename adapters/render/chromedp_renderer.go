package render

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/aaguilard28/cv-areli/internal/application/service"
)

// Script run before capture: open every collapsed <details> so nothing is
// hidden in the PDF, remembering which ones were collapsed.
const expandCollapsedJS = `(() => {
	window.__collapsed = [];
	document.querySelectorAll('details:not([open])').forEach(el => {
		window.__collapsed.push(el);
		el.setAttribute('open', '');
	});
	return window.__collapsed.length;
})()`

// Script run after capture, on every exit path: restore the prior collapsed
// state.
const restoreCollapsedJS = `(() => {
	(window.__collapsed || []).forEach(el => el.removeAttribute('open'));
	const n = (window.__collapsed || []).length;
	window.__collapsed = [];
	return n;
})()`

type ChromedpRenderer struct{}

func NewChromedpRenderer() service.Renderer { return &ChromedpRenderer{} }

func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, 60*time.Second)
	defer cancel2()

	tmpDir, err := os.MkdirTemp("", "cv-capture-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	var expanded int
	err = chromedp.Run(ctx2,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(expandCollapsedJS, &expanded),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Restore runs whether or not printing succeeded.
			defer func() {
				var restored int
				_ = chromedp.Evaluate(restoreCollapsedJS, &restored).Do(ctx)
			}()

			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
