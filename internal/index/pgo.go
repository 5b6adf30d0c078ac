package index

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const packagesAPI = "https://packages.gentoo.org"

// PackagesAPI queries packages.gentoo.org for package metadata.
type PackagesAPI struct {
	apiURL string
	client *http.Client
}

// PackageInfo is the subset of the packages.gentoo.org response we consume.
type PackageInfo struct {
	Atom     string           `json:"atom"`
	Category string           `json:"category"`
	Name     string           `json:"name"`
	Versions []PackageVersion `json:"versions"`
}

// PackageVersion is one known version with its keywords.
type PackageVersion struct {
	Version  string   `json:"version"`
	Keywords []string `json:"keywords"`
}

// NewPackagesAPI creates a client against packages.gentoo.org.
func NewPackagesAPI() *PackagesAPI {
	return &PackagesAPI{
		apiURL: packagesAPI,
		client: &http.Client{},
	}
}

// Lookup fetches the known versions of a "category/name" atom.
func (api *PackagesAPI) Lookup(pkgAtom string) (*PackageInfo, error) {
	category, name, ok := strings.Cut(pkgAtom, "/")
	if !ok {
		return nil, fmt.Errorf("malformed atom %q, want category/name", pkgAtom)
	}

	apiURL := fmt.Sprintf("%s/packages/%s/%s.json",
		api.apiURL, url.PathEscape(category), url.PathEscape(name))

	req, err := http.NewRequest("GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := api.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying packages.gentoo.org: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("package %s not found", pkgAtom)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("packages.gentoo.org API error: HTTP %d", resp.StatusCode)
	}

	var info PackageInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return &info, nil
}
