package wallhaven

import (
	"fmt"
	"strconv"

	"github.com/shivlim/wallhaven-go/constants"
	"github.com/shivlim/wallhaven-go/errors"
)

// GetWallpaperInfo returns the metadata of the wallpaper with the
// given ID, including its uploader and tags.
//
// Returns whverrors.ErrNotFound if the wallpaper does not exist and
// whverrors.ErrApiKeyRequired if the wallpaper is NSFW and the client
// has no valid API key.
func (w *Wallhaven) GetWallpaperInfo(wallpaperId string) (*Wallpaper, error) {
	if wallpaperId == "" {
		return nil, fmt.Errorf(
			"error %d: wallpaper id cannot be empty: %w",
			whverrors.INPUT_ERROR,
			whverrors.ErrInvalidOption,
		)
	}

	var res wallpaperResponse
	if err := w.get(constants.WALLPAPER_PATH+wallpaperId, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetTagInfo returns the metadata of the tag with the given ID.
//
// Returns whverrors.ErrNotFound if the tag does not exist.
func (w *Wallhaven) GetTagInfo(tagId int) (*Tag, error) {
	if tagId < 1 {
		return nil, fmt.Errorf(
			"error %d: tag id must be a positive integer, got %d: %w",
			whverrors.INPUT_ERROR,
			tagId,
			whverrors.ErrInvalidOption,
		)
	}

	var res tagResponse
	if err := w.get(constants.TAG_PATH+strconv.Itoa(tagId), nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetUserSettings returns the account-level preferences of the API
// key's owner. Requires an API key and fails with
// whverrors.ErrApiKeyRequired before any network call if none is set.
func (w *Wallhaven) GetUserSettings() (*UserSettings, error) {
	if !w.HasApiKey() {
		return nil, fmt.Errorf(
			"error %d: an api key is required to retrieve user settings: %w",
			whverrors.INPUT_ERROR,
			whverrors.ErrApiKeyRequired,
		)
	}

	var res settingsResponse
	if err := w.get(constants.SETTINGS_PATH, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetCollectionsFromUsername returns the public
// collections of the given user. No API key is needed.
func (w *Wallhaven) GetCollectionsFromUsername(username string) ([]*Collection, error) {
	if username == "" {
		return nil, fmt.Errorf(
			"error %d: username cannot be empty: %w",
			whverrors.INPUT_ERROR,
			whverrors.ErrInvalidOption,
		)
	}

	var res collectionsResponse
	if err := w.get(constants.COLLECTIONS_PATH+"/"+username, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetCollectionsFromApiKey returns the public and private collections
// of the API key's owner. Requires an API key and fails with
// whverrors.ErrApiKeyRequired before any network call if none is set.
func (w *Wallhaven) GetCollectionsFromApiKey() ([]*Collection, error) {
	if !w.HasApiKey() {
		return nil, fmt.Errorf(
			"error %d: an api key is required to retrieve your own collections: %w",
			whverrors.INPUT_ERROR,
			whverrors.ErrApiKeyRequired,
		)
	}

	var res collectionsResponse
	if err := w.get(constants.COLLECTIONS_PATH, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetWallpapersFromCollection returns the wallpapers in the given
// user's collection, requesting further pages until the API reports
// no more pages or limit wallpapers have been accumulated. A limit
// of 0 fetches all pages.
func (w *Wallhaven) GetWallpapersFromCollection(username string, collectionId, limit int) ([]*Wallpaper, error) {
	if username == "" {
		return nil, fmt.Errorf(
			"error %d: username cannot be empty: %w",
			whverrors.INPUT_ERROR,
			whverrors.ErrInvalidOption,
		)
	}
	if limit < 0 {
		return nil, fmt.Errorf(
			"error %d: limit cannot be negative, got %d: %w",
			whverrors.INPUT_ERROR,
			limit,
			whverrors.ErrInvalidOption,
		)
	}

	path := fmt.Sprintf(
		"%s/%s/%d",
		constants.COLLECTIONS_PATH,
		username,
		collectionId,
	)

	var wallpapers []*Wallpaper
	for page := 1; ; page++ {
		var res searchResponse
		params := map[string]string{"page": strconv.Itoa(page)}
		if err := w.get(path, params, &res); err != nil {
			return nil, err
		}

		for _, wallpaper := range res.Data {
			wallpapers = append(wallpapers, wallpaper)
			if limit > 0 && len(wallpapers) >= limit {
				return wallpapers, nil
			}
		}

		if len(res.Data) == 0 || res.Meta == nil || page >= res.Meta.LastPage {
			break
		}
	}
	return wallpapers, nil
}

// Search returns the wallpapers matching the given parameters. The
// map can come from Parameters.GetParams() or be built by the caller
// directly. A search with zero matches returns an empty slice, not
// an error.
//
// If the purity parameter requests NSFW results and the client has no
// API key, whverrors.ErrApiKeyRequired is returned before any network
// call is made.
func (w *Wallhaven) Search(params map[string]string) ([]*Wallpaper, error) {
	wallpapers, _, err := w.SearchPage(params)
	return wallpapers, err
}

// SearchPage is like Search but also returns the pagination metadata
// of the result page so that callers can walk through further pages.
func (w *Wallhaven) SearchPage(params map[string]string) ([]*Wallpaper, *Meta, error) {
	if wantsNsfw(params) && !w.HasApiKey() {
		return nil, nil, fmt.Errorf(
			"error %d: an api key is required for NSFW results: %w",
			whverrors.INPUT_ERROR,
			whverrors.ErrApiKeyRequired,
		)
	}

	var res searchResponse
	if err := w.get(constants.SEARCH_PATH, params, &res); err != nil {
		return nil, nil, err
	}

	if res.Data == nil {
		res.Data = []*Wallpaper{}
	}
	return res.Data, res.Meta, nil
}

// Reports whether the purity mask in the given
// search parameters has the NSFW bit set.
func wantsNsfw(params map[string]string) bool {
	purity := params["purity"]
	return len(purity) == 3 && purity[2] == '1'
}
