package crawler

import (
	"context"
	"errors"
	"fmt"
	"time"

	db "github.com/courtwatch/court-auction-BE/internal/db"
	"github.com/courtwatch/court-auction-BE/internal/storage"
	"github.com/courtwatch/court-auction-BE/internal/util"
	"github.com/courtwatch/court-auction-BE/internal/worker"
	"github.com/go-co-op/gocron/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"resty.dev/v3"
)

const (
	imageFolder    = "court-auction"
	lastRunKey     = "crawler:last_run"
	requestTimeout = 30 * time.Second
)

// Crawler periodically scrapes the court auction listing pages and stores the
// results. It is the event source for the notification core: a committed
// status change is handed to the task queue, never pushed directly.
type Crawler struct {
	store           db.Store
	fileStore       storage.FileStore
	taskDistributor worker.TaskDistributor
	redisClient     *redis.Client
	client          *resty.Client
	scheduler       gocron.Scheduler

	pages    int
	interval time.Duration
}

func NewCrawler(
	config util.Config,
	store db.Store,
	fileStore storage.FileStore,
	taskDistributor worker.TaskDistributor,
	redisClient *redis.Client,
) (*Crawler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(config.CrawlerBaseURL).
		SetTimeout(requestTimeout)

	return &Crawler{
		store:           store,
		fileStore:       fileStore,
		taskDistributor: taskDistributor,
		redisClient:     redisClient,
		client:          client,
		scheduler:       scheduler,
		pages:           config.CrawlPages,
		interval:        config.CrawlInterval,
	}, nil
}

// Start schedules the periodic crawl job.
func (c *Crawler) Start() error {
	_, err := c.scheduler.NewJob(
		gocron.DurationJob(c.interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), c.interval)
			defer cancel()

			c.CrawlAuctions(ctx)
		}),
	)
	if err != nil {
		return err
	}

	c.scheduler.Start()
	return nil
}

// Stop shuts the crawl scheduler down.
func (c *Crawler) Stop() error {
	return c.scheduler.Shutdown()
}

// CrawlAuctions fetches the configured number of listing pages and upserts
// every auction found. Page-level failures are logged and skipped so one bad
// page does not abort the whole run.
func (c *Crawler) CrawlAuctions(ctx context.Context) {
	log.Info().Int("pages", c.pages).Msg("starting auction crawl")

	var stored, changed int
	for page := 1; page <= c.pages; page++ {
		auctions, err := c.fetchListingPage(ctx, page)
		if err != nil {
			log.Error().Err(err).Int("page", page).Msg("failed to fetch listing page")
			continue
		}

		for _, auction := range auctions {
			statusChanged, err := c.saveAuction(ctx, auction)
			if err != nil {
				log.Error().Err(err).Str("case_number", auction.CaseNumber).Msg("failed to save auction")
				continue
			}
			stored++
			if statusChanged {
				changed++
			}
		}
	}

	if err := c.redisClient.Set(ctx, lastRunKey, time.Now().Format(time.RFC3339), 0).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to record crawl timestamp")
	}

	log.Info().Int("stored", stored).Int("status_changes", changed).Msg("auction crawl completed")
}

// LastRun returns the completion time of the most recent crawl, zero if none
// has been recorded yet.
func (c *Crawler) LastRun(ctx context.Context) (time.Time, error) {
	value, err := c.redisClient.Get(ctx, lastRunKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}

	return time.Parse(time.RFC3339, value)
}

func (c *Crawler) fetchListingPage(ctx context.Context, page int) ([]AuctionData, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		Get("/RetrieveRealEstMulDetailList.laf")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("listing page %d returned status %s", page, resp.Status())
	}

	return ParseListingPage(resp.String())
}

// saveAuction mirrors the listing images, commits the auction, and enqueues a
// notification task when the durable write reported a status change.
func (c *Crawler) saveAuction(ctx context.Context, auction AuctionData) (bool, error) {
	imageURLs := c.mirrorImages(ctx, auction)

	result, err := c.store.UpsertAuctionTx(ctx, db.UpsertAuctionTxParams{
		CaseNumber:     auction.CaseNumber,
		Court:          auction.Court,
		Location:       auction.Location,
		Type:           auction.Type,
		MinimumBid:     auction.MinimumBid,
		EstimatedPrice: auction.EstimatedPrice,
		AuctionDate:    auction.AuctionDate,
		Status:         auction.Status,
		ImageURLs:      imageURLs,
		Details:        auction.Details,
	})
	if err != nil {
		return false, err
	}

	if result.StatusChanged {
		err = c.taskDistributor.DistributeTaskNotifyAuctionChanged(ctx, &worker.PayloadNotifyAuctionChanged{
			AuctionID: result.Auction.ID,
		})
		if err != nil {
			// The auction is already committed; the lost notification is
			// accepted rather than failing the crawl.
			log.Error().Err(err).Str("case_number", auction.CaseNumber).Msg("failed to enqueue notification task")
		}
	}

	return result.StatusChanged, nil
}

// mirrorImages uploads each listing image to Cloudinary and returns the
// mirrored URLs. An image that cannot be mirrored keeps its original URL.
func (c *Crawler) mirrorImages(ctx context.Context, auction AuctionData) []string {
	urls := make([]string, 0, len(auction.ImageURLs))
	for i, src := range auction.ImageURLs {
		resp, err := c.client.R().SetContext(ctx).Get(src)
		if err != nil || resp.IsError() {
			log.Warn().Str("url", src).Msg("failed to download auction image")
			urls = append(urls, src)
			continue
		}

		filename := fmt.Sprintf("%s-%d", auction.CaseNumber, i)
		mirrored, err := c.fileStore.UploadFile(resp.Bytes(), filename, imageFolder)
		if err != nil {
			log.Warn().Err(err).Str("url", src).Msg("failed to mirror auction image")
			urls = append(urls, src)
			continue
		}

		urls = append(urls, mirrored)
	}

	return urls
}
