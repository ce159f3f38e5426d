package scraper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viettran1502/transcriptor/internal/domain"
	"github.com/viettran1502/transcriptor/internal/platform"
)

// douyinAPIEndpoints are unauthenticated item-info endpoints. They come
// and go; each is tried before falling back to page scraping.
var douyinAPIEndpoints = []string{
	"https://www.douyin.com/web/api/v2/aweme/iteminfo/?item_ids=%s",
	"https://www.iesdouyin.com/web/api/v2/aweme/iteminfo/?item_ids=%s",
}

type douyinItemInfo struct {
	ItemList []struct {
		Desc   string `json:"desc"`
		Author struct {
			Nickname string `json:"nickname"`
		} `json:"author"`
	} `json:"item_list"`
}

func (s *implScraper) scrapeDouyin(ctx context.Context, url string) (*domain.Metadata, error) {
	videoID := platform.VideoID(domain.PlatformDouyin, url)

	if videoID != "" {
		for _, endpoint := range douyinAPIEndpoints {
			apiURL := fmt.Sprintf(endpoint, videoID)
			s.logger.Debug(ctx, "Trying Douyin API: %s", apiURL)

			md, err := s.douyinItemInfo(ctx, apiURL)
			if err != nil {
				s.logger.Debug(ctx, "Douyin API failed: %v", err)
				continue
			}
			return md, nil
		}
	}

	return s.scrapePage(ctx, domain.PlatformDouyin, url)
}

func (s *implScraper) douyinItemInfo(ctx context.Context, apiURL string) (*domain.Metadata, error) {
	resp, err := s.get(ctx, apiURL, map[string]string{
		"Referer":          "https://www.douyin.com/",
		"X-Requested-With": "XMLHttpRequest",
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info douyinItemInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode item info: %w", err)
	}
	if len(info.ItemList) == 0 || info.ItemList[0].Desc == "" {
		return nil, fmt.Errorf("item info is empty")
	}

	item := info.ItemList[0]
	return &domain.Metadata{
		Title:  item.Desc,
		Author: item.Author.Nickname,
	}, nil
}
