// Package feed parses GitHub-style release feeds using JSONPath lookups.
package feed

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/ApplicationsForge/textokit/internal/domain"
)

// Latest extracts the newest release from the feed. platform filters the
// downloadable asset by substring match on its name (e.g. "linux"); when no
// asset matches, AssetURL is left empty but the release is still reported.
func Latest(body []byte, platform string) (domain.Release, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.Release{}, &domain.OpError{
			Op:   "feed.latest",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("release feed is not valid JSON: %w", err),
		}
	}

	tag, err := jsonpath.Get("$[0].tag_name", doc)
	if err != nil {
		return domain.Release{}, &domain.OpError{
			Op:   "feed.latest",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("release feed has no tag_name: %w", err),
		}
	}

	version, ok := tag.(string)
	if !ok || strings.TrimSpace(version) == "" {
		return domain.Release{}, &domain.OpError{
			Op:   "feed.latest",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("release feed tag_name is not a string"),
		}
	}

	rel := domain.Release{Version: version}

	assets, err := jsonpath.Get("$[0].assets", doc)
	if err != nil {
		return rel, nil
	}
	arr, ok := assets.([]any)
	if !ok {
		return rel, nil
	}

	needle := strings.ToLower(strings.TrimSpace(platform))
	for _, a := range arr {
		m, ok := a.(map[string]any)
		if !ok {
			continue
		}
		name, _ := m["name"].(string)
		download, _ := m["browser_download_url"].(string)
		if download == "" {
			continue
		}
		if needle == "" || strings.Contains(strings.ToLower(name), needle) {
			rel.AssetURL = download
			break
		}
	}

	return rel, nil
}
