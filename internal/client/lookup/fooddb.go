package lookup

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/fittrack/internal/client/remote"
)

// RemoteFoodDatabase serves lookups through the API, which proxies the
// third-party food database.
type RemoteFoodDatabase struct {
	client *remote.Client
}

func NewRemoteFoodDatabase(client *remote.Client) *RemoteFoodDatabase {
	return &RemoteFoodDatabase{client: client}
}

func (d *RemoteFoodDatabase) Search(ctx context.Context, query string) ([]FoodItem, error) {
	var items []FoodItem
	path := "/api/foods/search?q=" + url.QueryEscape(query)
	if err := d.client.Get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (d *RemoteFoodDatabase) ByBarcode(ctx context.Context, code string) (FoodItem, bool, error) {
	var item FoodItem
	err := d.client.Get(ctx, "/api/foods/barcode/"+url.PathEscape(code), &item)
	if err != nil {
		var status *remote.StatusError
		if errors.As(err, &status) && status.Status == http.StatusNotFound {
			return FoodItem{}, false, nil
		}
		return FoodItem{}, false, err
	}
	return item, true, nil
}
