package fetcher

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"election_dashboard/internal/models"

	"golang.org/x/net/html/charset"
)

var (
	// ErrFetch — сеть недоступна или лента ответила неуспешным статусом.
	ErrFetch = errors.New("fetch feed")
	// ErrParse — тело ответа не является корректным XML.
	ErrParse = errors.New("parse feed XML")
	// ErrFormat — XML корректен, но в нём нет rss > channel > item.
	ErrFormat = errors.New("unexpected RSS format")
)

// Client загружает одну RSS-ленту и приводит её элементы к models.NewsItem.
type Client struct {
	url        string
	http       *http.Client
	summaryLen int
}

// NewClient создаёт клиента для ленты url с таймаутом timeout на запрос.
func NewClient(url string, timeout time.Duration, summaryLen int) *Client {
	return &Client{
		url:        url,
		http:       &http.Client{Timeout: timeout},
		summaryLen: summaryLen,
	}
}

// FetchNews загружает ленту и возвращает все её элементы.
// При любой ошибке список не возвращается даже частично.
func (c *Client) FetchNews(ctx context.Context) ([]models.NewsItem, error) {
	rss, err := c.FetchRSS(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.NewsItem, 0, len(rss.Channel.Items))
	for _, item := range rss.Channel.Items {
		items = append(items, Normalize(item, c.summaryLen))
	}
	return items, nil
}

// FetchRSS загружает XML-ленту, декодирует её и проверяет вложенность rss > channel > item.
func (c *Client) FetchRSS(ctx context.Context) (*models.RSS, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP error! status: %d", ErrFetch, resp.StatusCode)
	}

	dec := xml.NewDecoder(resp.Body)
	dec.CharsetReader = charset.NewReaderLabel

	var rss models.RSS
	if err := dec.Decode(&rss); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if rss.XMLName.Local != "rss" {
		return nil, fmt.Errorf("%w: root element <%s>", ErrFormat, rss.XMLName.Local)
	}
	if rss.Channel == nil {
		return nil, fmt.Errorf("%w: missing channel", ErrFormat)
	}
	if len(rss.Channel.Items) == 0 {
		return nil, fmt.Errorf("%w: channel has no items", ErrFormat)
	}
	return &rss, nil
}

// expectEOF проверяет, что после корневого элемента остались только пробелы, комментарии и инструкции.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return errors.New("unexpected content after root element")
			}
		case xml.Comment, xml.ProcInst:
		default:
			return fmt.Errorf("unexpected %T after root element", tok)
		}
	}
}

// Normalize подставляет значения по умолчанию вместо отсутствующих полей и строит краткое описание.
func Normalize(item models.Item, summaryLen int) models.NewsItem {
	news := models.NewsItem{
		Title:       valueOr(item.Title, models.DefaultTitle),
		Link:        valueOr(item.Link, models.DefaultLink),
		PubDate:     valueOr(item.PubDate, models.DefaultPubDate),
		Description: valueOr(item.Description, models.DefaultDescription),
	}
	news.Summary = Summarize(news.Description, summaryLen)
	return news
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
