package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"saralgst/internal/extractor"
)

// BatchConfig holds settings for the batch processor.
type BatchConfig struct {
	Concurrency int
	MaxRetries  int
	ItemTimeout time.Duration
}

// BatchItem is one document in a batch run, identified by the caller.
type BatchItem struct {
	ID  string
	Doc extractor.Document
}

// BatchResult carries the outcome for one item. Err is set when every
// attempt failed.
type BatchResult struct {
	ID       string
	Invoice  *ProcessedInvoice
	Attempts int
	Err      error
}

// BatchProcessor fans a set of documents out over a bounded worker
// pool. Generative-model calls are the dominant cost and failure
// surface, so concurrency is capped, every item gets its own timeout,
// and rate-limit errors are retried after the provider's backoff.
type BatchProcessor struct {
	pipeline *Pipeline
	cfg      BatchConfig
}

// NewBatchProcessor creates a BatchProcessor around a pipeline.
func NewBatchProcessor(pipeline *Pipeline, cfg BatchConfig) *BatchProcessor {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.ItemTimeout <= 0 {
		cfg.ItemTimeout = 5 * time.Minute
	}
	return &BatchProcessor{pipeline: pipeline, cfg: cfg}
}

// Run processes all items and returns one result per item, in input
// order. It blocks until every in-flight extraction has finished or
// ctx is canceled; items not yet started when ctx ends are reported
// with ctx's error.
func (b *BatchProcessor) Run(ctx context.Context, items []BatchItem) []BatchResult {
	results := make([]BatchResult, len(items))
	sem := make(chan struct{}, b.cfg.Concurrency)
	var wg sync.WaitGroup

	log.Printf("service.BatchProcessor: starting batch of %d (concurrency=%d, maxRetries=%d)",
		len(items), b.cfg.Concurrency, b.cfg.MaxRetries)

	for i := range items {
		// Checked before the select so a done context drains the
		// remaining items even while the semaphore has capacity.
		if err := ctx.Err(); err != nil {
			results[i] = BatchResult{ID: items[i].ID, Err: err}
			continue
		}
		select {
		case <-ctx.Done():
			results[i] = BatchResult{ID: items[i].ID, Err: ctx.Err()}
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[idx] = b.processOne(ctx, items[idx])
		}(i)
	}

	wg.Wait()
	return results
}

// processOne runs one item with bounded retries. Rate limits wait out
// the provider's Retry-After; other failures retry immediately up to
// the cap.
func (b *BatchProcessor) processOne(ctx context.Context, item BatchItem) BatchResult {
	res := BatchResult{ID: item.ID}

	for attempt := 0; attempt <= b.cfg.MaxRetries; attempt++ {
		res.Attempts = attempt + 1

		itemCtx, cancel := context.WithTimeout(ctx, b.cfg.ItemTimeout)
		inv, err := b.process(itemCtx, item.Doc)
		cancel()

		if err == nil {
			res.Invoice = inv
			res.Err = nil
			return res
		}
		res.Err = err
		log.Printf("service.BatchProcessor: item %s attempt %d failed: %v", item.ID, attempt+1, err)

		if attempt == b.cfg.MaxRetries {
			break
		}

		var rlErr *extractor.RateLimitError
		if errors.As(err, &rlErr) {
			select {
			case <-ctx.Done():
				res.Err = ctx.Err()
				return res
			case <-time.After(rlErr.RetryAfter):
			}
		}
	}

	return res
}

func (b *BatchProcessor) process(ctx context.Context, doc extractor.Document) (*ProcessedInvoice, error) {
	if doc.Text != "" {
		return b.pipeline.ProcessText(ctx, doc.Text)
	}
	return b.pipeline.ProcessImage(ctx, doc.Image, doc.ContentType)
}
