package coingecko

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"travelplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	calls atomic.Int32
	delay time.Duration
	err   error
	coins []models.Coin
}

func (s *stubLister) ListCoins(ctx context.Context) ([]models.Coin, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.coins, nil
}

var sampleCoins = []models.Coin{
	{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
	{ID: "ethereum", Symbol: "eth", Name: "Ethereum"},
	{ID: "wrapped-bitcoin", Symbol: "wbtc", Name: "Wrapped Bitcoin"},
	{ID: "tether", Symbol: "usdt", Name: "Tether"},
}

func TestDirectory_FetchesOnce(t *testing.T) {
	lister := &stubLister{coins: sampleCoins}
	dir := NewDirectory(lister)
	assert.False(t, dir.Loaded())

	for i := 0; i < 3; i++ {
		coins, err := dir.Coins(context.Background())
		require.NoError(t, err)
		assert.Len(t, coins, len(sampleCoins))
	}
	assert.Equal(t, int32(1), lister.calls.Load())
	assert.True(t, dir.Loaded())
}

func TestDirectory_ConcurrentFirstCallsShareFetch(t *testing.T) {
	lister := &stubLister{coins: sampleCoins, delay: 50 * time.Millisecond}
	dir := NewDirectory(lister)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := dir.Coins(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), lister.calls.Load())
}

func TestDirectory_FailureIsNotCached(t *testing.T) {
	lister := &stubLister{err: fmt.Errorf("%w: boom", ErrDirectoryUnavailable)}
	dir := NewDirectory(lister)

	_, err := dir.Coins(context.Background())
	assert.True(t, errors.Is(err, ErrDirectoryUnavailable))
	assert.False(t, dir.Loaded())

	lister.err = nil
	lister.coins = sampleCoins
	coins, err := dir.Coins(context.Background())
	require.NoError(t, err)
	assert.Len(t, coins, len(sampleCoins))
	assert.Equal(t, int32(2), lister.calls.Load())
}

func TestDirectory_SearchByNameOrSymbol(t *testing.T) {
	dir := NewDirectory(&stubLister{coins: sampleCoins})

	byName, err := dir.Search(context.Background(), "BITCOIN")
	require.NoError(t, err)
	assert.Equal(t, []string{"bitcoin", "wrapped-bitcoin"}, coinIDs(byName))

	bySymbol, err := dir.Search(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal(t, []string{"tether"}, coinIDs(bySymbol))

	none, err := dir.Search(context.Background(), "zzz-no-such-coin")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDirectory_Lookup(t *testing.T) {
	dir := NewDirectory(&stubLister{coins: sampleCoins})

	_, ok := dir.Lookup("bitcoin")
	assert.False(t, ok, "lookup must not trigger a fetch")

	_, err := dir.Coins(context.Background())
	require.NoError(t, err)

	coin, ok := dir.Lookup("ethereum")
	assert.True(t, ok)
	assert.Equal(t, "Ethereum", coin.Name)
}

func TestFilterCoins_CapsResults(t *testing.T) {
	var coins []models.Coin
	for i := 0; i < 250; i++ {
		coins = append(coins, models.Coin{ID: fmt.Sprintf("coin-%d", i), Symbol: fmt.Sprintf("c%d", i), Name: fmt.Sprintf("Coin %d", i)})
	}

	for _, term := range []string{"", "coin", "c1", "Coin 2"} {
		got := FilterCoins(coins, term, MaxSearchResults)
		assert.LessOrEqual(t, len(got), MaxSearchResults, "term %q", term)
	}
	assert.Len(t, FilterCoins(coins, "", MaxSearchResults), MaxSearchResults)
	assert.Equal(t, "coin-0", FilterCoins(coins, "", MaxSearchResults)[0].ID)
}

func TestFilterCoins_EverySubstringFindsItsCoin(t *testing.T) {
	for _, coin := range sampleCoins {
		for i := 0; i < len(coin.Name); i++ {
			for j := i + 1; j <= len(coin.Name); j++ {
				got := FilterCoins(sampleCoins, coin.Name[i:j], MaxSearchResults)
				assert.Contains(t, coinIDs(got), coin.ID, "name substring %q", coin.Name[i:j])
			}
		}
		for i := 0; i < len(coin.Symbol); i++ {
			sub := coin.Symbol[i:]
			got := FilterCoins(sampleCoins, sub, MaxSearchResults)
			assert.Contains(t, coinIDs(got), coin.ID, "symbol substring %q", sub)
		}
	}
}

func coinIDs(coins []models.Coin) []string {
	ids := make([]string, 0, len(coins))
	for _, c := range coins {
		ids = append(ids, c.ID)
	}
	return ids
}
