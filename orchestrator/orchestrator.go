// Package orchestrator runs one end-to-end pipeline cycle: feed crawl, site
// crawls, aggregation, serialization, and delivery to the configured
// collaborators.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"newsharvest/config"
	"newsharvest/crawl"
	"newsharvest/delivery"
	"newsharvest/fetch"
	"newsharvest/store"
	"newsharvest/types"
)

// RunOnce executes a single cycle for cfg's target date. Sites run
// concurrently with no shared mutable state; per-site results are merged in
// configured order after every site finishes, feed records first. A site
// that fails entirely contributes zero records and never aborts the run.
func RunOnce(ctx context.Context, cfg *config.RunConfig, st store.Store) (*types.RunResult, error) {
	started := time.Now()
	log.Printf("=== News harvest for %s ===", cfg.TargetDateString())

	ctx, cancel := context.WithTimeout(ctx, cfg.Deadline)
	defer cancel()

	fetcher := fetch.New(config.UserAgent, cfg.FetchTimeout, cfg.FetchDelay)

	feedRecords := crawl.NewFeedCrawler(fetcher, cfg).Run(ctx)

	siteRecords := make([][]types.ArticleRecord, len(cfg.Sites))
	var wg sync.WaitGroup
	for i, site := range cfg.Sites {
		wg.Add(1)
		go func(i int, site types.SiteConfig) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[error scraping site %s] %v", site.Name, r)
				}
			}()
			crawler, err := crawl.NewSiteCrawler(site, fetcher, cfg)
			if err != nil {
				log.Printf("[error scraping site %s] %v", site.Name, err)
				return
			}
			siteRecords[i] = crawler.Run(ctx)
		}(i, site)
	}
	wg.Wait()

	result := &types.RunResult{
		TargetDate: cfg.TargetDateString(),
		StartedAt:  started,
		SiteCounts: map[string]int{cfg.FeedSite: len(feedRecords)},
	}
	result.Records = append(result.Records, feedRecords...)
	for i, site := range cfg.Sites {
		result.SiteCounts[site.Name] = len(siteRecords[i])
		result.Records = append(result.Records, siteRecords[i]...)
	}
	result.Total = len(result.Records)
	result.FinishedAt = time.Now()

	if result.Total == 0 {
		log.Printf("No articles found for %s.", cfg.TargetDateString())
		saveResult(ctx, st, result)
		return result, nil
	}

	path := cfg.OutputFile()
	log.Printf("Writing %d rows to %s ...", result.Total, path)
	if err := delivery.WriteCSV(path, result.Records); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	result.OutputFile = path

	deliver(ctx, cfg, path, result)
	saveResult(ctx, st, result)

	log.Printf("=== Run complete: %d article(s) across %d source(s) ===", result.Total, len(result.SiteCounts))
	return result, nil
}

// deliver hands the artifact to the optional collaborators. Delivery
// failures are logged, never fatal: the CSV on disk is the primary output.
func deliver(ctx context.Context, cfg *config.RunConfig, path string, result *types.RunResult) {
	if uploader, bucket, prefix := delivery.NewS3FromEnv(ctx); uploader != nil {
		if err := uploader.UploadFile(ctx, bucket, prefix, path); err != nil {
			log.Printf("Warning: S3 upload failed: %v", err)
		} else {
			log.Printf("Uploaded %s to s3://%s/%s", path, bucket, prefix)
		}
	} else {
		log.Printf("S3 not configured; skipping upload")
	}

	if mailer := delivery.NewMailerFromEnv(); mailer != nil {
		subject := fmt.Sprintf("News Scraper Report - %s", cfg.TargetDateString())
		if err := mailer.SendReport(subject, path); err != nil {
			log.Printf("Warning: email delivery failed: %v", err)
		} else {
			log.Printf("Report emailed: %s", subject)
		}
	} else {
		log.Printf("Email not configured; skipping delivery")
	}

	if publisher := delivery.NewKafkaFromEnv(); publisher != nil {
		defer publisher.Close()
		n, err := publisher.PublishRecords(result.Records)
		if err != nil {
			log.Printf("Warning: Kafka publish failed after %d record(s): %v", n, err)
		} else {
			log.Printf("Published %d record(s) to Kafka", n)
		}
	}
}

func saveResult(ctx context.Context, st store.Store, result *types.RunResult) {
	if st == nil {
		return
	}
	if err := st.Save(ctx, result); err != nil {
		log.Printf("Warning: failed to save run result: %v", err)
	}
}
