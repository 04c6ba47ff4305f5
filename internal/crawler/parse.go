package crawler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	db "github.com/courtwatch/court-auction-BE/internal/db"
)

// AuctionData is one listing scraped from a court auction result page.
type AuctionData struct {
	CaseNumber     string
	Court          string
	Location       string
	Type           string
	MinimumBid     int64
	EstimatedPrice int64
	AuctionDate    time.Time
	Status         db.AuctionStatus
	ImageURLs      []string
	Details        []db.AuctionDetailParams
}

var dateLayouts = []string{"2006-01-02", "2006.01.02", "2006. 01. 02"}

// korean status labels as they appear on the listing page
var statusLabels = map[string]db.AuctionStatus{
	"신건": db.AuctionStatusScheduled,
	"진행": db.AuctionStatusInProgress,
	"매각": db.AuctionStatusSold,
	"유찰": db.AuctionStatusFailed,
	"취하": db.AuctionStatusCanceled,
}

// ParseListingPage extracts every auction item from one listing page.
// Items without a case number are skipped; they cannot be upserted.
func ParseListingPage(html string) ([]AuctionData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}

	auctions := []AuctionData{}
	doc.Find(".auction-item").Each(func(_ int, item *goquery.Selection) {
		caseNumber := strings.TrimSpace(item.Find(".case-number").Text())
		if caseNumber == "" {
			return
		}

		auction := AuctionData{
			CaseNumber:     caseNumber,
			Court:          strings.TrimSpace(item.Find(".court").Text()),
			Location:       strings.TrimSpace(item.Find(".location").Text()),
			Type:           strings.TrimSpace(item.Find(".type").Text()),
			MinimumBid:     parseAmount(item.Find(".minimum-bid").Text()),
			EstimatedPrice: parseAmount(item.Find(".estimated-price").Text()),
			AuctionDate:    parseDate(item.Find(".auction-date").Text()),
			Status:         parseStatus(item.Find(".status").Text()),
		}

		item.Find(".images img").Each(func(_ int, img *goquery.Selection) {
			if src, ok := img.Attr("src"); ok && src != "" {
				auction.ImageURLs = append(auction.ImageURLs, src)
			}
		})

		item.Find(".details tr").Each(func(_ int, tr *goquery.Selection) {
			key := strings.TrimSpace(tr.Find("th").Text())
			value := strings.TrimSpace(tr.Find("td").Text())
			if key != "" {
				auction.Details = append(auction.Details, db.AuctionDetailParams{Key: key, Value: value})
			}
		})

		auctions = append(auctions, auction)
	})

	return auctions, nil
}

// parseAmount strips every non-digit rune ("123,456,000원" -> 123456000).
func parseAmount(text string) int64 {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	amount, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return amount
}

func parseDate(text string) time.Time {
	text = strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseStatus(text string) db.AuctionStatus {
	if status, ok := statusLabels[strings.TrimSpace(text)]; ok {
		return status
	}
	return db.AuctionStatusScheduled
}
