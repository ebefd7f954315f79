package bind

// ProgramCache stores compiled rule programs keyed by expression strings.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// WithProgramCache registers a program cache on the field.
func WithProgramCache(cache ProgramCache) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.programCache = cache
	}
}
