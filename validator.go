package jsonschema4

// Validator is the public entry point (spec §6): load a schema once, then
// validate any number of data documents against it. A Validator owns its
// document cache and $ref memo table, and each Validate call builds its own
// pattern cache; none of that state is package-level, so independent
// Validators never interfere with each other even when used from separate
// goroutines (spec §5).
type Validator struct {
	cfg      *Config
	resolver *resolver
	schema   *Value
}

// Option mutates a Config; passed to New, Configure, or per-call to
// Validate to override a setting for one call only.
type Option func(*Config)

// WithCoerce toggles the opt-in numeric/string coercion family (spec
// §4.5).
func WithCoerce(enabled bool) Option {
	return func(c *Config) { c.Coerce = enabled }
}

// WithDebug toggles stderr trace logging of ingestion decisions.
func WithDebug(enabled bool) Option {
	return func(c *Config) { c.Debug = enabled }
}

// WithWarnOnMissingFormat toggles whether an unrecognized "format" name
// surfaces as a Result warning instead of being silently skipped.
func WithWarnOnMissingFormat(enabled bool) Option {
	return func(c *Config) { c.WarnOnMissingFormat = enabled }
}

// WithCacheDir sets the on-disk cache directory for fetched http(s)
// documents (spec §4.1).
func WithCacheDir(dir string) Option {
	return func(c *Config) { c.CacheDir = dir }
}

// WithHTTPClient injects the collaborator used to fetch http(s) schema
// documents (spec §1, §6).
func WithHTTPClient(client HTTPClient) Option {
	return func(c *Config) { c.HTTPClient = client }
}

// WithFormat registers or overrides a single named format predicate (spec
// §4.4).
func WithFormat(name string, check func(any) bool) Option {
	return func(c *Config) {
		if c.Formats == nil {
			c.Formats = make(map[string]func(any) bool)
		}
		c.Formats[name] = check
	}
}

// New returns a Validator configured from the environment-variable
// fallbacks (spec §6), further adjusted by opts.
func New(opts ...Option) *Validator {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Validator{cfg: cfg, resolver: newResolver(cfg)}
}

// Configure applies additional options to an existing Validator and
// returns it, for chaining: jsonschema4.New().Configure(WithCoerce(true)).
func (v *Validator) Configure(opts ...Option) *Validator {
	for _, opt := range opts {
		opt(v.cfg)
	}
	return v
}

// Schema loads and $ref-resolves the document named by source, storing it
// as this Validator's current schema, and returns the Validator for
// chaining (spec §6: "Schema(source) -> self").
func (v *Validator) Schema(source string) (*Validator, error) {
	root, err := v.resolver.resolveDocument(source)
	if err != nil {
		return v, err
	}
	v.schema = root
	return v, nil
}

// SchemaFromValue is Schema's in-memory counterpart: it resolves root as a
// schema document using namespace as the $ref base, for callers that
// already hold a decoded Value tree instead of a loadable source string.
func (v *Validator) SchemaFromValue(root *Value, namespace string) (*Validator, error) {
	resolved, err := v.resolver.resolveBytes(root, namespace)
	if err != nil {
		return v, err
	}
	v.schema = resolved
	return v, nil
}

// CurrentSchema returns the Validator's resolved schema (spec §6:
// "Schema() -> current schema"), or nil if none has been loaded yet.
func (v *Validator) CurrentSchema() *Value {
	return v.schema
}

// Result is the outcome of one Validate call: the ordered validation
// errors (empty when the data is valid) plus any non-fatal warnings
// accumulated during the call, e.g. an unrecognized format name (spec §6
// supplemented feature, §4.4).
type Result struct {
	Errors   []ValidationError
	Warnings []string
}

// Valid reports whether the data satisfied the schema.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks data against the Validator's current schema, applying
// any per-call option overrides (e.g. WithCoerce(true) for one call
// without mutating the Validator's default).
func (v *Validator) Validate(data *Value, opts ...Option) Result {
	return v.validateAgainst(v.schema, data, opts...)
}

// ValidateAgainst checks data against an explicit schema, bypassing
// CurrentSchema (spec §6: "Validate(data[, schema])"). schema must already
// be $ref-resolved, e.g. via CurrentSchema, Ingest, or IngestValue.
func (v *Validator) ValidateAgainst(schema, data *Value, opts ...Option) Result {
	return v.validateAgainst(schema, data, opts...)
}

func (v *Validator) validateAgainst(schema, data *Value, opts ...Option) Result {
	cfg := *v.cfg
	cfg.warnings = nil
	for _, opt := range opts {
		opt(&cfg)
	}
	ctx := &evalContext{cfg: &cfg, patterns: newPatternCompiler()}
	errs := ctx.validate(schema, data, rootPath())
	return Result{Errors: errs, Warnings: cfg.drainWarnings()}
}
