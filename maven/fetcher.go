// Package maven downloads artifact jars from a Maven repository so that the
// classes in them can be described.
package maven

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
)

const (
	DefaultRepoURL = "https://repo1.maven.org/maven2"
	EnvRepoURL     = "MAVEN_REPO_URL"
)

var log = commonlog.GetLogger("typefind.maven")

// Coordinate names an artifact as groupId:artifactId[:classifier]:version.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Version    string
	Classifier string
}

func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	for _, p := range parts {
		if p == "" {
			parts = nil
			break
		}
	}
	switch len(parts) {
	case 3:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}, nil
	case 4:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Classifier: parts[2], Version: parts[3]}, nil
	}
	return Coordinate{}, fmt.Errorf("invalid Maven coordinate: %s (expected groupId:artifactId:version or groupId:artifactId:classifier:version)", s)
}

func (c Coordinate) String() string {
	if c.Classifier != "" {
		return strings.Join([]string{c.GroupID, c.ArtifactID, c.Classifier, c.Version}, ":")
	}
	return strings.Join([]string{c.GroupID, c.ArtifactID, c.Version}, ":")
}

// JarName is the file name of the artifact's jar.
func (c Coordinate) JarName() string {
	if c.Classifier != "" {
		return fmt.Sprintf("%s-%s-%s.jar", c.ArtifactID, c.Version, c.Classifier)
	}
	return fmt.Sprintf("%s-%s.jar", c.ArtifactID, c.Version)
}

// dir is the artifact's directory relative to the repository root.
func (c Coordinate) dir() string {
	return strings.Join([]string{strings.ReplaceAll(c.GroupID, ".", "/"), c.ArtifactID, c.Version}, "/")
}

// Fetcher downloads jars into a cache laid out like a local repository.
// Released artifacts never change, so a cached jar is never fetched again.
type Fetcher struct {
	RepoURL    string
	CacheDir   string
	httpClient *http.Client
}

// NewFetcher uses the repository named by $MAVEN_REPO_URL, or Maven
// Central.
func NewFetcher(cacheDir string) *Fetcher {
	repoURL := os.Getenv(EnvRepoURL)
	if repoURL == "" {
		repoURL = DefaultRepoURL
	}
	return &Fetcher{
		RepoURL:    strings.TrimSuffix(repoURL, "/"),
		CacheDir:   cacheDir,
		httpClient: &http.Client{},
	}
}

// DefaultCacheDir is typefind/maven in the user's cache directory.
func DefaultCacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "typefind", "maven"), nil
}

func (f *Fetcher) JarURL(c Coordinate) string {
	return f.RepoURL + "/" + c.dir() + "/" + c.JarName()
}

// Jar returns the path of the cached jar of c, downloading it first if
// needed.
func (f *Fetcher) Jar(ctx context.Context, c Coordinate) (string, error) {
	destDir := filepath.Join(f.CacheDir, filepath.FromSlash(c.dir()))
	destPath := filepath.Join(destDir, c.JarName())
	if _, err := os.Stat(destPath); err == nil {
		log.Debugf("using cached %s", destPath)
		return destPath, nil
	}

	url := f.JarURL(c)
	log.Infof("downloading %s", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("download JAR: %w", err)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download JAR: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download JAR: HTTP %d for %s", resp.StatusCode, url)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}

	// A partial download must never be mistaken for a cached jar.
	tmp, err := os.CreateTemp(destDir, c.JarName()+".*.part")
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), destPath); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return destPath, nil
}
