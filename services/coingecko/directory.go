package coingecko

import (
	"context"
	"strings"
	"sync"

	"travelplanner/models"

	"golang.org/x/sync/singleflight"
)

// MaxSearchResults caps every coin search result.
const MaxSearchResults = 100

// CoinLister is the source of the coin directory.
type CoinLister interface {
	ListCoins(ctx context.Context) ([]models.Coin, error)
}

// Directory fetches the coin list on first use and keeps it for the life of
// the process. Only a successful fetch is cached.
type Directory struct {
	source CoinLister
	group  singleflight.Group

	mu     sync.RWMutex
	coins  []models.Coin
	loaded bool
}

func NewDirectory(source CoinLister) *Directory {
	return &Directory{source: source}
}

// Coins returns the cached directory, fetching it if this is the first need.
// Concurrent first calls share one fetch.
func (d *Directory) Coins(ctx context.Context) ([]models.Coin, error) {
	d.mu.RLock()
	if d.loaded {
		coins := d.coins
		d.mu.RUnlock()
		return coins, nil
	}
	d.mu.RUnlock()

	// The shared fetch must not die with whichever request happened to start it.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := d.group.Do("coins", func() (any, error) {
		d.mu.RLock()
		if d.loaded {
			coins := d.coins
			d.mu.RUnlock()
			return coins, nil
		}
		d.mu.RUnlock()

		coins, err := d.source.ListCoins(fetchCtx)
		if err != nil {
			return nil, err
		}

		d.mu.Lock()
		d.coins = coins
		d.loaded = true
		d.mu.Unlock()
		return coins, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Coin), nil
}

// Search filters the directory by a case-insensitive substring of a coin's
// name or symbol.
func (d *Directory) Search(ctx context.Context, term string) ([]models.Coin, error) {
	coins, err := d.Coins(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCoins(coins, term, MaxSearchResults), nil
}

// Lookup finds a coin by id in the cached directory. It never triggers a fetch.
func (d *Directory) Lookup(id string) (models.Coin, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, coin := range d.coins {
		if coin.ID == id {
			return coin, true
		}
	}
	return models.Coin{}, false
}

// Loaded reports whether the directory has been fetched.
func (d *Directory) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loaded
}

// FilterCoins keeps directory order and returns at most limit coins. An empty
// term matches everything.
func FilterCoins(coins []models.Coin, term string, limit int) []models.Coin {
	needle := strings.ToLower(term)
	result := make([]models.Coin, 0, min(limit, len(coins)))
	for _, coin := range coins {
		if len(result) == limit {
			break
		}
		if needle == "" ||
			strings.Contains(strings.ToLower(coin.Name), needle) ||
			strings.Contains(strings.ToLower(coin.Symbol), needle) {
			result = append(result, coin)
		}
	}
	return result
}
