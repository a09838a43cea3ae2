package resolver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/okorolenko/storefront/internal/catalog"
	"github.com/okorolenko/storefront/internal/models"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	products []models.Product
	err      error
	calls    int
}

func (f *fakeSource) ListProducts(ctx context.Context, opts catalog.ListOptions) ([]models.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return catalog.Apply(f.products, opts), nil
}

func (f *fakeSource) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSource) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

type fakeSearcher struct {
	hits  []models.Product
	err   error
	calls int
	size  int
}

func (f *fakeSearcher) Search(ctx context.Context, query string, size int) ([]models.Product, error) {
	f.calls++
	f.size = size
	if f.err != nil {
		return nil, f.err
	}
	if size < len(f.hits) {
		return f.hits[:size], nil
	}
	return f.hits, nil
}

func f64(v float64) *float64 { return &v }

func TestListUsesRemoteWhenHealthy(t *testing.T) {
	remote := &fakeSource{products: []models.Product{
		{ID: "r1", Name: "Remote Lamp", Category: "Home & Garden", Price: 25},
	}}
	r := New(remote, nil, catalog.NewDataset())

	items := r.List(context.Background(), Options{})
	require.Len(t, items, 1)
	require.Equal(t, "r1", items[0].ID)
	require.Equal(t, 1, remote.calls)
}

func TestListFallsBackToLocalOnRemoteError(t *testing.T) {
	remote := &fakeSource{err: errors.New("connection refused")}
	local := catalog.NewDataset()
	r := New(remote, nil, local)

	opts := Options{ListOptions: catalog.ListOptions{Category: "Electronics", MinPrice: f64(100), MaxPrice: f64(200)}}
	items := r.List(context.Background(), opts)

	require.Equal(t, local.Filter(opts.ListOptions), items)
	require.NotEmpty(t, items)
}

func TestListPrefersLocalWhenAsked(t *testing.T) {
	remote := &fakeSource{products: []models.Product{{ID: "r1"}}}
	local := catalog.NewDataset()
	r := New(remote, nil, local)

	items := r.List(context.Background(), Options{PreferLocal: true})
	require.Equal(t, local.Filter(catalog.ListOptions{}), items)
	require.Zero(t, remote.calls)
}

func TestListLocalOnlyWhenUnconfigured(t *testing.T) {
	local := catalog.NewDataset()
	r := New(nil, nil, local)

	items := r.List(context.Background(), Options{ListOptions: catalog.ListOptions{Search: "watch"}})
	require.NotEmpty(t, items)
	require.Equal(t, local.Filter(catalog.ListOptions{Search: "watch"}), items)
}

func TestListSearchIndexNarrowedByFilters(t *testing.T) {
	searcher := &fakeSearcher{hits: []models.Product{
		{ID: "s1", Name: "Cheap Watch", Category: "Electronics", Price: 20},
		{ID: "s2", Name: "Posh Watch", Category: "Electronics", Price: 500},
	}}
	remote := &fakeSource{}
	r := New(remote, searcher, catalog.NewDataset())

	opts := Options{ListOptions: catalog.ListOptions{Search: "watch", MaxPrice: f64(100)}}
	items := r.List(context.Background(), opts)

	require.Len(t, items, 1)
	require.Equal(t, "s1", items[0].ID)
	require.Zero(t, remote.calls)
}

func TestListSearchIndexSecondPage(t *testing.T) {
	hits := make([]models.Product, 20)
	for i := range hits {
		hits[i] = models.Product{ID: fmt.Sprintf("s%d", i), Name: "Watch", Category: "Electronics", Price: 10}
	}
	searcher := &fakeSearcher{hits: hits}
	remote := &fakeSource{}
	r := New(remote, searcher, catalog.NewDataset())

	opts := Options{ListOptions: catalog.ListOptions{Search: "watch", Offset: 10, Limit: 10}}
	items := r.List(context.Background(), opts)

	require.Equal(t, 20, searcher.size, "requested hits must cover the offset")
	require.Len(t, items, 10)
	require.Equal(t, "s10", items[0].ID)
	require.Equal(t, "s19", items[9].ID)
	require.Zero(t, remote.calls)
}

func TestNewDropsSearcherWithoutRemote(t *testing.T) {
	searcher := &fakeSearcher{hits: []models.Product{{ID: "s1", Name: "Ghost Watch"}}}
	local := catalog.NewDataset()
	r := New(nil, searcher, local)

	items := r.List(context.Background(), Options{ListOptions: catalog.ListOptions{Search: "watch"}})
	require.Equal(t, local.Filter(catalog.ListOptions{Search: "watch"}), items)
	require.Zero(t, searcher.calls)
}

func TestListSearchIndexErrorFallsThrough(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("index unavailable")}
	remote := &fakeSource{err: errors.New("connection refused")}
	local := catalog.NewDataset()
	r := New(remote, searcher, local)

	items := r.List(context.Background(), Options{ListOptions: catalog.ListOptions{Search: "watch"}})
	require.Equal(t, local.Filter(catalog.ListOptions{Search: "watch"}), items)
	require.Equal(t, 1, remote.calls)
}

func TestGetFallsBackAndAbsentIsNil(t *testing.T) {
	remote := &fakeSource{err: errors.New("boom")}
	r := New(remote, nil, catalog.NewDataset())

	p := r.Get(context.Background(), "2", false)
	require.NotNil(t, p)
	require.Equal(t, "Smart Fitness Watch", p.Name)

	require.Nil(t, r.Get(context.Background(), "no-such-id", false))
}

func TestGetRemoteMissConsultsLocal(t *testing.T) {
	remote := &fakeSource{products: []models.Product{{ID: "r1"}}}
	r := New(remote, nil, catalog.NewDataset())

	p := r.Get(context.Background(), "2", false)
	require.NotNil(t, p)
	require.Equal(t, "Smart Fitness Watch", p.Name)

	require.Nil(t, r.Get(context.Background(), "absent-everywhere", false))
}

func TestFeaturedFallsBack(t *testing.T) {
	remote := &fakeSource{err: errors.New("boom")}
	local := catalog.NewDataset()
	r := New(remote, nil, local)

	top := r.Featured(context.Background(), 3)
	require.Equal(t, local.Featured(3), top)
}
