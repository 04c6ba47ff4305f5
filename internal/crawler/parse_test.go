package crawler

import (
	"testing"
	"time"

	db "github.com/courtwatch/court-auction-BE/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPageHTML = `
<html><body>
  <div class="auction-item">
    <span class="case-number">2026타경10001</span>
    <span class="court">서울중앙지방법원</span>
    <span class="location">서울특별시 강남구 역삼동</span>
    <span class="type">아파트</span>
    <span class="minimum-bid">480,000,000원</span>
    <span class="estimated-price">600,000,000원</span>
    <span class="auction-date">2026-09-15</span>
    <span class="status">진행</span>
    <div class="images">
      <img src="https://img.example.com/10001-1.jpg">
      <img src="https://img.example.com/10001-2.jpg">
    </div>
    <table class="details">
      <tr><th>건물면적</th><td>84.92㎡</td></tr>
      <tr><th>대지권</th><td>38.15㎡</td></tr>
    </table>
  </div>
  <div class="auction-item">
    <span class="case-number">2026타경10002</span>
    <span class="court">부산지방법원</span>
    <span class="location">부산광역시 해운대구</span>
    <span class="type">오피스텔</span>
    <span class="minimum-bid">120,000,000원</span>
    <span class="estimated-price">150,000,000원</span>
    <span class="auction-date">2026.10.02</span>
    <span class="status">유찰</span>
  </div>
  <div class="auction-item">
    <span class="court">수원지방법원</span>
    <span class="status">신건</span>
  </div>
</body></html>`

func TestParseListingPage(t *testing.T) {
	auctions, err := ParseListingPage(listingPageHTML)
	require.NoError(t, err)

	// The third item has no case number and is skipped.
	require.Len(t, auctions, 2)

	first := auctions[0]
	assert.Equal(t, "2026타경10001", first.CaseNumber)
	assert.Equal(t, "서울중앙지방법원", first.Court)
	assert.Equal(t, "서울특별시 강남구 역삼동", first.Location)
	assert.Equal(t, "아파트", first.Type)
	assert.Equal(t, int64(480000000), first.MinimumBid)
	assert.Equal(t, int64(600000000), first.EstimatedPrice)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), first.AuctionDate)
	assert.Equal(t, db.AuctionStatusInProgress, first.Status)
	assert.Equal(t, []string{
		"https://img.example.com/10001-1.jpg",
		"https://img.example.com/10001-2.jpg",
	}, first.ImageURLs)
	require.Len(t, first.Details, 2)
	assert.Equal(t, db.AuctionDetailParams{Key: "건물면적", Value: "84.92㎡"}, first.Details[0])
	assert.Equal(t, db.AuctionDetailParams{Key: "대지권", Value: "38.15㎡"}, first.Details[1])

	second := auctions[1]
	assert.Equal(t, "2026타경10002", second.CaseNumber)
	assert.Equal(t, db.AuctionStatusFailed, second.Status)
	assert.Equal(t, time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC), second.AuctionDate)
	assert.Empty(t, second.ImageURLs)
}

func TestParseListingPage_Empty(t *testing.T) {
	auctions, err := ParseListingPage("<html><body></body></html>")
	require.NoError(t, err)
	assert.Empty(t, auctions)
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, int64(480000000), parseAmount("480,000,000원"))
	assert.Equal(t, int64(1234), parseAmount(" 1,234 "))
	assert.Equal(t, int64(0), parseAmount("미정"))
	assert.Equal(t, int64(0), parseAmount(""))
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, db.AuctionStatusInProgress, parseStatus("진행"))
	assert.Equal(t, db.AuctionStatusSold, parseStatus("매각"))
	assert.Equal(t, db.AuctionStatusCanceled, parseStatus("취하"))
	// Unknown labels fall back to scheduled
	assert.Equal(t, db.AuctionStatusScheduled, parseStatus("???"))
}
