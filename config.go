package jsonschema4

import (
	"io"
	"net/http"
	"os"
	"strconv"
)

// HTTPClient is the injected collaborator used to fetch http(s) schema
// documents (spec §1's "deliberately out of scope" HTTP client, §6's
// "get(url) -> body" contract).
type HTTPClient interface {
	Get(url string) (*http.Response, error)
}

// Config is the configuration surface (spec §4.C / §6): coercion toggle,
// format table, cache directory, injected collaborators. Zero value is
// usable; NewConfig applies the environment-variable fallbacks.
type Config struct {
	Coerce               bool
	Debug                bool
	WarnOnMissingFormat  bool
	CacheDir             string
	HTTPClient           HTTPClient
	Formats              map[string]func(any) bool
	Loaders              map[string]Loader
	EmbeddedResources    map[string][]byte // "Module/Name" -> raw bytes
	warnings             []string
}

// Loader fetches the raw bytes of a schema document named by url.
type Loader func(url string) ([]byte, error)

// Env variable names for the optional configuration fallbacks (spec §6).
const (
	envCacheDir            = "JSON_VALIDATOR_CACHE_DIR"
	envCoerce              = "JSON_VALIDATOR_COERCE"
	envDebug               = "JSON_VALIDATOR_DEBUG"
	envWarnOnMissingFormat = "JSON_VALIDATOR_WARN_ON_MISSING_FORMAT"
)

// NewConfig returns a Config with built-in formats registered and the
// environment-variable fallbacks (spec §6) applied as initial values;
// explicit Configure(...) calls still override them.
func NewConfig() *Config {
	cfg := &Config{
		Formats:           defaultFormats(),
		Loaders:           make(map[string]Loader),
		EmbeddedResources: defaultEmbeddedResources(),
	}
	cfg.CacheDir = os.Getenv(envCacheDir)
	if v, err := strconv.ParseBool(os.Getenv(envCoerce)); err == nil {
		cfg.Coerce = v
	}
	if v, err := strconv.ParseBool(os.Getenv(envDebug)); err == nil {
		cfg.Debug = v
	}
	if v, err := strconv.ParseBool(os.Getenv(envWarnOnMissingFormat)); err == nil {
		cfg.WarnOnMissingFormat = v
	}
	cfg.Loaders["file"] = cfg.loadFile
	cfg.Loaders[""] = cfg.loadFile
	cfg.Loaders["http"] = cfg.loadHTTP
	cfg.Loaders["https"] = cfg.loadHTTP
	cfg.Loaders["data"] = cfg.loadEmbedded
	return cfg
}

// tracef writes a debug trace line to stderr when Config.Debug is set. This
// is the entirety of the logging surface (spec §4.A): the core performs no
// I/O beyond schema ingestion, so there is no request-scoped logger to wire,
// only ad-hoc tracing of ingestion decisions.
func (c *Config) tracef(format string, args ...any) {
	if c == nil || !c.Debug {
		return
	}
	fwriteTrace(format, args...)
}

// warn records a non-fatal diagnostic (spec §4.4: "missing-format
// predicates surface as warnings, never errors"). Warnings accumulate on
// the per-call Config copy that one Validate call works with and are
// surfaced through that call's Result.Warnings (spec §6 supplemented
// feature).
func (c *Config) warn(format string, args ...any) {
	msg := sprintfWarn(format, args...)
	c.warnings = append(c.warnings, msg)
	c.tracef("warning: %s", msg)
}

// drainWarnings returns and clears the accumulated warnings.
func (c *Config) drainWarnings() []string {
	w := c.warnings
	c.warnings = nil
	return w
}

func (c *Config) loadFile(url string) ([]byte, error) {
	path := url
	if scheme := getURLScheme(url); scheme == "file" {
		path = url[len("file://"):]
	}
	return os.ReadFile(path)
}

func (c *Config) loadHTTP(url string) ([]byte, error) {
	if c.HTTPClient == nil {
		return nil, ErrHTTPClientMissing
	}
	resp, err := c.HTTPClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ErrBadStatusCode
	}
	return io.ReadAll(resp.Body)
}

func (c *Config) loadEmbedded(url string) ([]byte, error) {
	key := url
	if scheme := getURLScheme(url); scheme == "data" {
		key = url[len("data://"):]
	}
	if b, ok := c.EmbeddedResources[key]; ok {
		return b, nil
	}
	return nil, ErrEmbeddedNotFound
}
